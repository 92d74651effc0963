// Command seed fills the configured store with demo patients, local accounts
// and confirmed appointments over the coming weeks.
package main

import (
	"MediCare/cache"
	"MediCare/config"
	"MediCare/database"
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/services"
	"MediCare/utils"
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

const demoPassword = "Welcome@123"

func main() {
	count := flag.Int("patients", 10, "number of demo patients to create")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.StoreBackend != config.StorePostgres {
		log.Fatalf("seeding supports STORE_BACKEND=%s only, got %s", config.StorePostgres, cfg.StoreBackend)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.InitDB(ctx, cfg.DBURL, false)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer database.Close(db)

	// Seeding bypasses Redis, so the repositories cache into process memory.
	store := cache.NewMemory()
	seeder := &seeder{
		faker:        gofakeit.New(*seed),
		users:        repositories.NewUserRepository(db),
		patients:     repositories.NewPatientRepository(db, store, store),
		appointments: repositories.NewAppointmentRepository(db, store),
		doctors:      models.SeedDoctors(),
		now:          time.Now().In(cfg.Location),
		withAccounts: cfg.AuthBackend == config.AuthLocal,
	}

	created := 0
	for i := 0; i < *count; i++ {
		email, n, err := seeder.seedPatient(ctx)
		if err != nil {
			log.Printf("Skipping patient %d: %v", i+1, err)
			continue
		}
		created++
		log.Printf("Created %s with %d appointments", email, n)
	}
	log.Printf("Seeded %d patients, password for local accounts is %q", created, demoPassword)
}

type seeder struct {
	faker        *gofakeit.Faker
	users        repositories.UserRepository
	patients     repositories.PatientRepository
	appointments repositories.AppointmentRepository
	doctors      []models.Doctor
	now          time.Time
	withAccounts bool
}

func (s *seeder) seedPatient(ctx context.Context) (string, int, error) {
	f := s.faker
	patient := &models.Patient{
		UID:            uuid.New().String(),
		FullName:       f.Name(),
		Email:          strings.ToLower(f.Email()),
		Phone:          f.Phone(),
		Address:        f.Address().Address,
		Age:            f.Number(18, 85),
		Gender:         f.RandomString([]string{"male", "female", "other"}),
		BloodGroup:     f.RandomString(models.BloodTypes),
		MedicalHistory: []string{},
	}
	if f.Bool() {
		patient.MedicalHistory = append(patient.MedicalHistory, f.RandomString([]string{"Asthma", "Diabetes", "Hypertension", "Migraine"}))
	}

	if s.withAccounts {
		hashed, err := utils.HashPassword(demoPassword)
		if err != nil {
			return "", 0, err
		}
		user := &models.User{
			UID:           patient.UID,
			Email:         patient.Email,
			Password:      hashed,
			DisplayName:   patient.FullName,
			EmailVerified: true,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return "", 0, fmt.Errorf("create account: %w", err)
		}
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return "", 0, fmt.Errorf("create patient: %w", err)
	}

	booked := 0
	for i, n := 0, f.Number(1, 3); i < n; i++ {
		appointment, err := s.appointment(patient)
		if err != nil {
			return patient.Email, booked, err
		}
		if err := s.appointments.Create(ctx, appointment); err != nil {
			return patient.Email, booked, fmt.Errorf("create appointment: %w", err)
		}
		booked++
	}
	return patient.Email, booked, nil
}

// appointment picks a bookable day within the window and a slot from the
// fixed grid.
func (s *seeder) appointment(patient *models.Patient) (*models.Appointment, error) {
	f := s.faker
	doctor := s.doctors[f.Number(0, len(s.doctors)-1)]

	day := s.now.AddDate(0, 0, f.Number(1, services.BookingWindowDays))
	if day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, -1)
	}
	group := services.Slots[f.Number(0, len(services.Slots)-1)]

	kind := models.TypeClinic
	if f.Number(1, 4) == 1 {
		kind = models.TypeVideo
	}
	fee, err := services.ComputeFee(doctor.Price, kind)
	if err != nil {
		return nil, err
	}

	return &models.Appointment{
		ID:          uuid.New().String(),
		DoctorID:    doctor.DoctorID,
		DoctorName:  doctor.Name,
		PatientID:   patient.UID,
		PatientName: patient.FullName,
		Date:        day.Format(services.DateLayout),
		Time:        group.Times[f.Number(0, len(group.Times)-1)],
		Status:      models.StatusConfirmed,
		Type:        kind,
		Paid:        true,
		Amount:      fee.Price,
		BookingFee:  fee.BookingFee,
		Tax:         fee.Tax,
		Total:       fee.Total,
		ChargeID:    "ch_seed_" + f.UUID(),
	}, nil
}
