package models

import (
	"time"
)

// SeedDoctors returns the doctor catalog.
func SeedDoctors() []Doctor {
	return []Doctor{
		{DoctorID: 1, Name: "Dr. Aravind", Role: "ENT Specialist", Gender: "Male", Description: "Expert in otolaryngology at Chennai.", Experience: 15.0, Price: 2000.00, ImageURL: "https://th.bing.com/th/id/OIP.xe-ilxtZnmRc0Nd47btnQQAAAA?w=183&h=209&c=7&r=0&o=5&dpr=1.4&pid=1.7", Rating: 4.5},
		{DoctorID: 2, Name: "Dr. Meera Priyadarshini", Role: "ENT Specialist", Gender: "Female", Description: "Skilled ENT surgeon in Coimbatore.", Experience: 12.0, Price: 1800.00, ImageURL: "https://th.bing.com/th/id/OIP.ETzjd8CiWdmRt8SjPh3vXgHaHa?w=173&h=180&c=7&r=0&o=5&dpr=1.4&pid=1.7", Rating: 4.2},
		{DoctorID: 3, Name: "Dr. Rajasekaran", Role: "ENT Specialist", Gender: "Male", Description: "Renowned for ear surgeries in Madurai.", Experience: 20.0, Price: 2200.00, ImageURL: "https://th.bing.com/th/id/OIP.tb5NqBCj8-Ul6KA120QftgHaHa?w=174&h=180&c=7&r=0&o=5&dpr=1.4&pid=1.7", Rating: 4.7},
		{DoctorID: 4, Name: "Dr. Saranya Shankar", Role: "ENT Specialist", Gender: "Female", Description: "Experienced otolaryngologist in Trichy.", Experience: 18.0, Price: 2100.00, ImageURL: "https://th.bing.com/th/id/OIP.BVLxB8CbqkSbBBckNrY6_QHaHa?w=196&h=196&c=7&r=0&o=5&dpr=1.4&pid=1.7", Rating: 4.4},
		{DoctorID: 5, Name: "Dr. Vivek R", Role: "ENT Specialist", Gender: "Male", Description: "Specialist in ENT disorders at Salem.", Experience: 14.0, Price: 1900.00, ImageURL: "https://th.bing.com/th/id/OIP.NlCHnHeYklAsJUZfhokaOAHaHa?w=167&h=180&c=7&r=0&o=5&dpr=1.4&pid=1.7", Rating: 4.1},
		{DoctorID: 6, Name: "Dr. Lakshmi Srinivasan", Role: "Gynecologist", Gender: "Female", Description: "Leading gynecologist in Chennai.", Experience: 18.0, Price: 2500.00, ImageURL: "https://bewellhospitals.in/admin/assets/images/upload/IMG_2871.jpg", Rating: 4.8},
		{DoctorID: 7, Name: "Dr. Revathi Chandran", Role: "Gynecologist", Gender: "Female", Description: "Pioneer in maternal care at Trichy.", Experience: 22.0, Price: 2600.00, ImageURL: "https://th.bing.com/th/id/OIP.1OeuWZHb1MEaxsLTJKWJ9gAAAA?w=147&h=194&c=7&r=0&o=5&dpr=1.4&pid=1.7", Rating: 4.9},
		{DoctorID: 8, Name: "Dr. Nalini Suresh", Role: "Gynecologist", Gender: "Female", Description: "Experienced obstetrician in Coimbatore.", Experience: 16.0, Price: 2400.00, ImageURL: "https://th.bing.com/th/id/OIP.pALyDjwvfWxWT_dSQCOnhQAAAA?w=169&h=209&c=7&r=0&o=5&dpr=1.4&pid=1.7", Rating: 4.3},
		{DoctorID: 9, Name: "Dr. Preethi Arul", Role: "Gynecologist", Gender: "Female", Description: "Expert in reproductive health at Madurai.", Experience: 20.0, Price: 2700.00, ImageURL: "https://bewellhospitals.in/admin/assets/images/upload/qq_1.jpg", Rating: 4.7},
		{DoctorID: 10, Name: "Dr. Karthik V", Role: "Gynecologist", Gender: "Male", Description: "Renowned specialist in Salem.", Experience: 15.0, Price: 2300.00, ImageURL: "https://www.bewellhospitals.in/admin/assets/images/upload/Dr_Ram_praveen.png", Rating: 4.0},
		{DoctorID: 11, Name: "Dr. Gopalakrishnan R", Role: "Pediatrician", Gender: "Male", Description: "Specialist in child healthcare in Chennai.", Experience: 25.0, Price: 2300.00, ImageURL: "https://th.bing.com/th/id/OIP.-VwsZx1SBSFjdmeV60tE4gAAAA?w=199&h=199&c=7&r=0&o=5&dpr=1.4&pid=1.7", Rating: 4.8},
		{DoctorID: 12, Name: "Dr. Divya Sundar", Role: "Pediatrician", Gender: "Female", Description: "Child specialist in Trichy.", Experience: 14.0, Price: 2100.00, ImageURL: "https://th.bing.com/th/id/OIP.qi5osnqv3vmT4pYhYycb2AHaHj?w=192&h=196&c=7&r=0&o=5&dpr=1.4&pid=1.7", Rating: 4.2},
	}
}

// inventoryOrder is the column order of the counts passed to inventory.
var inventoryOrder = []string{"A+", "O+", "B+", "AB+", "A-", "O-", "B-", "AB-"}

func inventory(updated time.Time, counts ...int) []BloodInventory {
	out := make([]BloodInventory, 0, len(counts))
	for i, n := range counts {
		out = append(out, BloodInventory{Type: inventoryOrder[i], Quantity: n, LastUpdated: updated})
	}
	return out
}

// SeedBloodBanks returns the blood bank directory stamped with updated as
// the inventory time.
func SeedBloodBanks(updated time.Time) []BloodBank {
	return []BloodBank{
		{
			ID: "1", Name: "Red Cross Blood Bank", Location: "Chennai",
			Address: "23 Main Road, Adyar, Chennai - 600020", Phone: "+91 4442138113",
			BloodTypes:  inventory(updated, 50, 30, 20, 15, 10, 12, 8, 5),
			Coordinates: Coordinates{Lat: 13.0108, Lng: 80.2339},
		},
		{
			ID: "2", Name: "Apollo Blood Donation Center", Location: "Chennai",
			Address: "21 Greams Lane, Thousand Lights, Chennai - 600006", Phone: "+91 4428294397",
			BloodTypes:  inventory(updated, 35, 45, 25, 10, 5, 15, 7, 3),
			Coordinates: Coordinates{Lat: 13.0569, Lng: 80.2426},
		},
		{
			ID: "3", Name: "Government General Hospital Blood Bank", Location: "Chennai",
			Address: "EVR Periyar Salai, Park Town, Chennai - 600003", Phone: "+91 4425302000",
			BloodTypes:  inventory(updated, 60, 55, 45, 20, 15, 20, 15, 10),
			Coordinates: Coordinates{Lat: 13.0827, Lng: 80.2707},
		},
		{
			ID: "4", Name: "Madurai Blood Donation Society", Location: "Madurai",
			Address: "45 East Masi Street, Madurai - 625001", Phone: "+91 4522345678",
			BloodTypes:  inventory(updated, 40, 35, 30, 12, 8, 10, 6, 4),
			Coordinates: Coordinates{Lat: 9.9252, Lng: 78.1198},
		},
		{
			ID: "5", Name: "Coimbatore Medical College Blood Bank", Location: "Coimbatore",
			Address: "Trichy Road, Coimbatore - 641018", Phone: "+91 4222301393",
			BloodTypes:  inventory(updated, 55, 50, 40, 18, 12, 14, 10, 6),
			Coordinates: Coordinates{Lat: 11.0168, Lng: 76.9558},
		},
		{
			ID: "6", Name: "Salem Government Hospital Blood Bank", Location: "Salem",
			Address: "Shevapet, Salem - 636002", Phone: "+91 4272529855",
			BloodTypes:  inventory(updated, 30, 35, 25, 10, 8, 12, 7, 4),
			Coordinates: Coordinates{Lat: 11.6643, Lng: 78.1460},
		},
		{
			ID: "7", Name: "Trichy Blood Donors Association", Location: "Trichy",
			Address: "Thillai Nagar, Trichy - 620018", Phone: "+91 4312765432",
			BloodTypes:  inventory(updated, 25, 40, 35, 15, 7, 9, 8, 3),
			Coordinates: Coordinates{Lat: 10.7905, Lng: 78.7047},
		},
	}
}

// SeedLabCenters returns the lab center directory.
func SeedLabCenters() []LabCenter {
	return []LabCenter{
		{
			ID: "1", Name: "Apollo Diagnostics", Location: "Chennai",
			Address: "15 Greams Road, Chennai - 600006", Phone: "+91 4428294999",
			Services:     []string{"Blood Test", "Urine Test", "X-Ray", "CT Scan", "MRI", "Ultrasound"},
			Ratings:      4.5,
			OpeningHours: "Mon-Sat: 7:00 AM - 9:00 PM, Sun: 8:00 AM - 6:00 PM",
			Coordinates:  Coordinates{Lat: 13.0569, Lng: 80.2425},
		},
		{
			ID: "2", Name: "Lister Metropolis", Location: "Chennai",
			Address: "142 Mint Street, Chennai - 600001", Phone: "+91 4425368000",
			Services:     []string{"Blood Test", "Urine Test", "Fecal Test", "Thyroid Profile", "Liver Function Test"},
			Ratings:      4.2,
			OpeningHours: "Mon-Sat: 6:30 AM - 8:00 PM, Sun: 7:00 AM - 5:00 PM",
			Coordinates:  Coordinates{Lat: 13.0878, Lng: 80.2785},
		},
		{
			ID: "3", Name: "Medall Diagnostics", Location: "Chennai",
			Address: "27 Woods Road, Royapettah, Chennai - 600014", Phone: "+91 4442132000",
			Services:     []string{"Blood Test", "Urine Test", "Health Packages", "CT Scan", "PET-CT Scan", "MRI"},
			Ratings:      4.3,
			OpeningHours: "Open 24 Hours",
			Coordinates:  Coordinates{Lat: 13.0595, Lng: 80.2613},
		},
		{
			ID: "4", Name: "SRL Diagnostics", Location: "Madurai",
			Address: "123 East Veli Street, Madurai - 625001", Phone: "+91 4522345444",
			Services:     []string{"Blood Test", "Urine Test", "ECG", "X-Ray", "Ultrasound"},
			Ratings:      4.1,
			OpeningHours: "Mon-Sat: 7:00 AM - 9:00 PM, Sun: 8:00 AM - 2:00 PM",
			Coordinates:  Coordinates{Lat: 9.9195, Lng: 78.1208},
		},
		{
			ID: "5", Name: "Thyrocare", Location: "Coimbatore",
			Address: "45 DB Road, RS Puram, Coimbatore - 641002", Phone: "+91 4224267890",
			Services:     []string{"Blood Test", "Thyroid Profile", "Diabetes Care", "Health Packages"},
			Ratings:      4.0,
			OpeningHours: "Mon-Sat: 6:30 AM - 8:30 PM, Sun: 7:00 AM - 1:00 PM",
			Coordinates:  Coordinates{Lat: 11.0047, Lng: 76.9650},
		},
		{
			ID: "6", Name: "Vijaya Diagnostic Centre", Location: "Salem",
			Address: "67 Sarada College Road, Salem - 636007", Phone: "+91 4272445678",
			Services:     []string{"Blood Test", "ECG", "X-Ray", "Ultrasound", "CT Scan"},
			Ratings:      4.2,
			OpeningHours: "Mon-Sat: 7:00 AM - 8:00 PM, Sun: 8:00 AM - 2:00 PM",
			Coordinates:  Coordinates{Lat: 11.6540, Lng: 78.1545},
		},
		{
			ID: "7", Name: "Neuberg Diagnostics", Location: "Trichy",
			Address: "12 Thillai Nagar Main Road, Trichy - 620018", Phone: "+91 4312765789",
			Services:     []string{"Blood Test", "Urine Test", "X-Ray", "MRI", "CT Scan", "Ultrasound"},
			Ratings:      4.4,
			OpeningHours: "Mon-Sat: 6:30 AM - 9:00 PM, Sun: 7:00 AM - 2:00 PM",
			Coordinates:  Coordinates{Lat: 10.8156, Lng: 78.6973},
		},
	}
}
