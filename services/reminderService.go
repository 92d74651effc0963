package services

import (
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// ReminderService mails patients the day before a confirmed appointment.
type ReminderService struct {
	appointments repositories.AppointmentRepository
	patients     repositories.PatientRepository
	mailer       utils.Mailer
	location     *time.Location
	now          func() time.Time
	scheduler    *gocron.Scheduler
}

func NewReminderService(appointments repositories.AppointmentRepository, patients repositories.PatientRepository, mailer utils.Mailer, location *time.Location) *ReminderService {
	if location == nil {
		location = time.Local
	}
	return &ReminderService{
		appointments: appointments,
		patients:     patients,
		mailer:       mailer,
		location:     location,
		now:          func() time.Time { return time.Now().In(location) },
	}
}

// Start schedules SendReminders every day at "HH:MM" in the service time zone.
func (s *ReminderService) Start(at string) error {
	scheduler := gocron.NewScheduler(s.location)
	_, err := scheduler.Every(1).Day().At(at).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		sent, err := s.SendReminders(ctx)
		if err != nil {
			log.Printf("Reminder job failed after %d mails: %v", sent, err)
			return
		}
		log.Printf("Reminder job sent %d mails", sent)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}
	scheduler.StartAsync()
	s.scheduler = scheduler
	log.Printf("Appointment reminders scheduled daily at %s (%s)", at, s.location)
	return nil
}

func (s *ReminderService) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// SendReminders mails every patient with a confirmed appointment tomorrow.
// A failed mail is logged and skipped.
func (s *ReminderService) SendReminders(ctx context.Context) (int, error) {
	tomorrow := s.now().AddDate(0, 0, 1).Format(DateLayout)
	appointments, err := s.appointments.ListByDate(ctx, tomorrow)
	if err != nil {
		return 0, fmt.Errorf("failed to list appointments for %s: %w", tomorrow, err)
	}

	sent := 0
	for _, a := range appointments {
		if a.Status != models.StatusConfirmed {
			continue
		}
		patient, err := s.patients.GetByID(ctx, a.PatientID)
		if err != nil {
			log.Printf("Skipping reminder for appointment %s: %v", a.ID, err)
			continue
		}
		if patient.Email == "" {
			continue
		}
		email := utils.ReminderEmail(patient.Email, a.PatientName, a.DoctorName, a.Date, a.Time)
		if err := s.mailer.Send(ctx, email); err != nil {
			log.Printf("Failed to send reminder for appointment %s: %v", a.ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}
