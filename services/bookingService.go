package services

import (
	"MediCare/cache"
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	ClinicBookingFee  = 50.0
	VideoBookingFee   = 100.0
	TaxRate           = 0.18
	BookingWindowDays = 30

	DateLayout = "2006-01-02"
)

var (
	ErrInvalidDate         = errors.New("invalid appointment date")
	ErrInvalidSlot         = errors.New("invalid time slot")
	ErrInvalidType         = errors.New("invalid appointment type")
	ErrPaymentFailed       = errors.New("payment failed")
	ErrBookingInProgress   = errors.New("a booking for this slot is already in progress")
	ErrDuplicateBooking    = errors.New("appointment already booked for this slot")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type SlotGroup struct {
	Period string   `json:"period"`
	Times  []string `json:"times"`
}

// Slots are the bookable times of a day, grouped the way the booking screen
// shows them.
var Slots = []SlotGroup{
	{Period: "morning", Times: []string{"09:00", "10:00", "11:00"}},
	{Period: "afternoon", Times: []string{"12:00", "14:00", "15:00"}},
	{Period: "evening", Times: []string{"16:00", "17:00", "18:00"}},
}

func validSlot(slot string) bool {
	for _, group := range Slots {
		for _, t := range group.Times {
			if t == slot {
				return true
			}
		}
	}
	return false
}

type FeeBreakdown struct {
	Price      float64 `json:"price"`
	BookingFee float64 `json:"bookingFee"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeFee returns price + booking fee + 18% tax on the price.
func ComputeFee(price float64, kind models.AppointmentType) (FeeBreakdown, error) {
	var fee float64
	switch kind {
	case models.TypeClinic:
		fee = ClinicBookingFee
	case models.TypeVideo:
		fee = VideoBookingFee
	default:
		return FeeBreakdown{}, fmt.Errorf("%w: %q", ErrInvalidType, kind)
	}
	tax := round2(price * TaxRate)
	return FeeBreakdown{
		Price:      round2(price),
		BookingFee: fee,
		Tax:        tax,
		Total:      round2(price + fee + tax),
	}, nil
}

// ValidateBookingDate parses date and checks it against today in now's
// location: not in the past, at most BookingWindowDays ahead, not a Sunday.
func ValidateBookingDate(date string, now time.Time) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD", ErrInvalidDate)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case day.Before(today):
		return time.Time{}, fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	case day.After(today.AddDate(0, 0, BookingWindowDays)):
		return time.Time{}, fmt.Errorf("%w: bookings open %d days ahead", ErrInvalidDate, BookingWindowDays)
	case day.Weekday() == time.Sunday:
		return time.Time{}, fmt.Errorf("%w: the clinic is closed on Sundays", ErrInvalidDate)
	}
	return day, nil
}

type BookingRequest struct {
	DoctorID int    `json:"doctorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

func (r BookingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DoctorID, validation.Required),
		validation.Field(&r.Date, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.Time, validation.Required, validation.By(func(value interface{}) error {
			if !validSlot(value.(string)) {
				return ErrInvalidSlot
			}
			return nil
		})),
	)
}

type Quote struct {
	Doctor models.Doctor          `json:"doctor"`
	Type   models.AppointmentType `json:"type"`
	Date   string                 `json:"date,omitempty"`
	Time   string                 `json:"time,omitempty"`
	FeeBreakdown
}

type BookingConfirmation struct {
	Appointment models.Appointment `json:"appointment"`
	FeeBreakdown
}

type BookingService struct {
	doctors      *DoctorService
	appointments repositories.AppointmentRepository
	patients     repositories.PatientRepository
	payments     PaymentGateway
	locker       cache.Locker
	mailer       utils.Mailer
	now          func() time.Time
}

func NewBookingService(doctors *DoctorService, appointments repositories.AppointmentRepository, patients repositories.PatientRepository, payments PaymentGateway, locker cache.Locker, mailer utils.Mailer, location *time.Location) *BookingService {
	if location == nil {
		location = time.Local
	}
	return &BookingService{
		doctors:      doctors,
		appointments: appointments,
		patients:     patients,
		payments:     payments,
		locker:       locker,
		mailer:       mailer,
		now:          func() time.Time { return time.Now().In(location) },
	}
}

// Now returns the service clock.
func (s *BookingService) Now() time.Time {
	return s.now()
}

// SetClock replaces the service clock.
func (s *BookingService) SetClock(now func() time.Time) {
	s.now = now
}

// Quote is the review step: it validates the selection and prices it
// without charging.
func (s *BookingService) Quote(ctx context.Context, req BookingRequest) (Quote, error) {
	doctor, err := s.checkRequest(ctx, req)
	if err != nil {
		return Quote{}, err
	}
	fee, err := ComputeFee(doctor.Price, models.TypeClinic)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Doctor: *doctor, Type: models.TypeClinic, Date: req.Date, Time: req.Time, FeeBreakdown: fee}, nil
}

func (s *BookingService) checkRequest(ctx context.Context, req BookingRequest) (*models.Doctor, error) {
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}
	if _, err := ValidateBookingDate(req.Date, s.now()); err != nil {
		return nil, err
	}
	return s.doctors.GetByID(ctx, req.DoctorID)
}

// AvailableSlots returns the slot groups for a bookable date.
func (s *BookingService) AvailableSlots(ctx context.Context, doctorID int, date string) ([]SlotGroup, error) {
	if _, err := s.doctors.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}
	if _, err := ValidateBookingDate(date, s.now()); err != nil {
		return nil, err
	}
	return Slots, nil
}

// Book charges the patient and writes one confirmed clinic appointment.
// Nothing is written unless the charge is confirmed.
func (s *BookingService) Book(ctx context.Context, session Session, req BookingRequest) (*BookingConfirmation, error) {
	doctor, err := s.checkRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	fee, err := ComputeFee(doctor.Price, models.TypeClinic)
	if err != nil {
		return nil, err
	}
	patientName := s.patientName(ctx, session)

	var confirmation *BookingConfirmation
	key := fmt.Sprintf("booking_lock:%s:%d:%s:%s", session.UID, doctor.DoctorID, req.Date, req.Time)
	err = cache.WithLock(ctx, s.locker, key, cache.LockOptions{TTL: time.Minute}, func(ctx context.Context) error {
		if err := s.checkDuplicate(ctx, session.UID, doctor.DoctorID, req.Date, req.Time); err != nil {
			return err
		}

		chargeID, err := s.charge(ctx, session.UID, fee.Total, fmt.Sprintf("Clinic visit with %s on %s %s", doctor.Name, req.Date, req.Time))
		if err != nil {
			return err
		}

		appointment := models.Appointment{
			ID:          uuid.New().String(),
			DoctorID:    doctor.DoctorID,
			DoctorName:  doctor.Name,
			PatientID:   session.UID,
			PatientName: patientName,
			Date:        req.Date,
			Time:        req.Time,
			Status:      models.StatusConfirmed,
			Type:        models.TypeClinic,
			Paid:        true,
			Amount:      fee.Price,
			BookingFee:  fee.BookingFee,
			Tax:         fee.Tax,
			Total:       fee.Total,
			ChargeID:    chargeID,
			CreatedAt:   s.now(),
		}
		if err := s.appointments.Create(ctx, &appointment); err != nil {
			return fmt.Errorf("failed to save appointment: %w", err)
		}
		confirmation = &BookingConfirmation{Appointment: appointment, FeeBreakdown: fee}
		return nil
	})
	if errors.Is(err, cache.ErrLockNotAcquired) {
		return nil, ErrBookingInProgress
	}
	if err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, session, confirmation.Appointment)
	return confirmation, nil
}

func (s *BookingService) checkDuplicate(ctx context.Context, patientID string, doctorID int, date, slot string) error {
	existing, err := s.appointments.ListByPatient(ctx, patientID, 0)
	if err != nil {
		return fmt.Errorf("failed to load appointments: %w", err)
	}
	for _, a := range existing {
		if a.DoctorID == doctorID && a.Date == date && a.Time == slot && a.Status != models.StatusCancelled {
			return ErrDuplicateBooking
		}
	}
	return nil
}

func (s *BookingService) charge(ctx context.Context, patientID string, amount float64, description string) (string, error) {
	charge, err := s.payments.InitiateCharge(ctx, ChargeRequest{PatientID: patientID, Amount: amount, Currency: "INR", Description: description})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	charge, err = s.payments.ConfirmCharge(ctx, charge.ID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	if charge.Status != ChargeConfirmed {
		return "", fmt.Errorf("%w: charge %s is %s", ErrPaymentFailed, charge.ID, charge.Status)
	}
	return charge.ID, nil
}

// patientName prefers the profile name and falls back to the account.
func (s *BookingService) patientName(ctx context.Context, session Session) string {
	patient, err := s.patients.GetByID(ctx, session.UID)
	if err == nil && strings.TrimSpace(patient.FullName) != "" {
		return patient.FullName
	}
	if session.DisplayName != "" {
		return session.DisplayName
	}
	return session.Email
}

func (s *BookingService) sendConfirmation(ctx context.Context, session Session, a models.Appointment) {
	if session.Email == "" {
		return
	}
	email := utils.BookingConfirmationEmail(session.Email, a.PatientName, a.DoctorName, a.Date, a.Time, a.Total)
	if err := s.mailer.Send(ctx, email); err != nil {
		log.Printf("Failed to send booking confirmation for appointment %s: %v", a.ID, err)
	}
}

func (s *BookingService) ListAppointments(ctx context.Context, patientID string, limit int) ([]models.Appointment, error) {
	return s.appointments.ListByPatient(ctx, patientID, limit)
}

func (s *BookingService) GetAppointment(ctx context.Context, patientID, id string) (*models.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, patientID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrAppointmentNotFound
	}
	return appointment, err
}
