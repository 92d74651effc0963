package models

import (
	"time"
)

// Patient model. One record per authenticated user, keyed by the auth uid.
type Patient struct {
	UID            string    `gorm:"primaryKey;column:uid" json:"uid" firestore:"uid"`
	FullName       string    `gorm:"column:full_name;not null" json:"fullName" firestore:"fullName"`
	Email          string    `gorm:"column:email;not null;index" json:"email" firestore:"email"`
	Phone          string    `gorm:"column:phone" json:"phone" firestore:"phone"`
	Address        string    `gorm:"column:address" json:"address,omitempty" firestore:"address"`
	Age            int       `gorm:"column:age" json:"age,omitempty" firestore:"age"`
	Gender         string    `gorm:"column:gender" json:"gender,omitempty" firestore:"gender"`
	BloodGroup     string    `gorm:"column:blood_group" json:"bloodGroup,omitempty" firestore:"bloodGroup"`
	MedicalHistory []string  `gorm:"column:medical_history;serializer:json" json:"medicalHistory" firestore:"medicalHistory"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt" firestore:"updatedAt"`
}

func (Patient) TableName() string {
	return "patients"
}

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

type AppointmentType string

const (
	TypeVideo  AppointmentType = "video"
	TypeClinic AppointmentType = "clinic"
)

// Appointment model. Doctor and patient names are denormalized at write time.
// Date is a calendar day in YYYY-MM-DD form so that lexical order is date order.
type Appointment struct {
	ID          string            `gorm:"primaryKey;column:id" json:"id" firestore:"-"`
	DoctorID    int               `gorm:"column:doctor_id;not null;index" json:"doctorId" firestore:"doctorId"`
	DoctorName  string            `gorm:"column:doctor_name;not null" json:"doctorName" firestore:"doctorName"`
	PatientID   string            `gorm:"column:patient_id;not null;index" json:"patientId" firestore:"patientId"`
	PatientName string            `gorm:"column:patient_name;not null" json:"patientName" firestore:"patientName"`
	Date        string            `gorm:"column:date;not null;index" json:"date" firestore:"date"`
	Time        string            `gorm:"column:time;not null" json:"time" firestore:"time"`
	Status      AppointmentStatus `gorm:"column:status;check:status IN ('pending', 'confirmed', 'completed', 'cancelled');not null" json:"status" firestore:"status"`
	Type        AppointmentType   `gorm:"column:type;check:type IN ('video', 'clinic');not null" json:"type" firestore:"type"`
	Paid        bool              `gorm:"column:paid;not null" json:"paid" firestore:"paid"`
	Amount      float64           `gorm:"column:amount;not null" json:"amount" firestore:"amount"`
	BookingFee  float64           `gorm:"column:booking_fee" json:"bookingFee" firestore:"bookingFee"`
	Tax         float64           `gorm:"column:tax" json:"tax" firestore:"tax"`
	Total       float64           `gorm:"column:total" json:"total" firestore:"total"`
	ChargeID    string            `gorm:"column:charge_id" json:"chargeId,omitempty" firestore:"chargeId"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt" firestore:"createdAt"`
}

func (Appointment) TableName() string {
	return "appointments"
}
