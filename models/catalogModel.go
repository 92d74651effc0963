package models

import (
	"time"
)

// Doctor is a bookable practitioner. Catalog data, never mutated at runtime.
type Doctor struct {
	DoctorID    int     `json:"doctorId"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Gender      string  `json:"gender"`
	Description string  `json:"description"`
	Experience  float64 `json:"experience"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageURL"`
	Rating      float64 `json:"rating"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BloodInventory is the unit count a bank holds for one blood type.
type BloodInventory struct {
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type BloodBank struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Location    string           `json:"location"`
	Address     string           `json:"address"`
	Phone       string           `json:"phone"`
	BloodTypes  []BloodInventory `json:"bloodTypes"`
	Coordinates Coordinates      `json:"coordinates"`
}

// Available reports whether the bank holds at least one unit of bloodType.
func (b BloodBank) Available(bloodType string) bool {
	for _, bt := range b.BloodTypes {
		if bt.Type == bloodType && bt.Quantity > 0 {
			return true
		}
	}
	return false
}

type LabCenter struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Location     string      `json:"location"`
	Address      string      `json:"address"`
	Phone        string      `json:"phone"`
	Services     []string    `json:"services"`
	Ratings      float64     `json:"ratings"`
	OpeningHours string      `json:"openingHours"`
	Coordinates  Coordinates `json:"coordinates"`
}

// Offers reports whether the lab lists service exactly.
func (l LabCenter) Offers(service string) bool {
	for _, s := range l.Services {
		if s == service {
			return true
		}
	}
	return false
}

var (
	BloodTypes  = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
	Locations   = []string{"Chennai", "Madurai", "Coimbatore", "Salem", "Trichy"}
	LabServices = []string{
		"Blood Test",
		"Urine Test",
		"X-Ray",
		"CT Scan",
		"MRI",
		"Ultrasound",
		"ECG",
		"Health Packages",
		"Thyroid Profile",
	}
)
