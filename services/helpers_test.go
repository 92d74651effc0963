package services

import (
	"MediCare/cache"
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*3600+1800)

// fixedNow is a Thursday.
var fixedNow = time.Date(2026, time.October, 15, 10, 0, 0, 0, ist)

type recordingMailer struct {
	mu   sync.Mutex
	sent []utils.Email
	err  error
}

func (m *recordingMailer) Send(_ context.Context, email utils.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

func (m *recordingMailer) emails() []utils.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]utils.Email(nil), m.sent...)
}

type fakePayments struct {
	initiate func(ctx context.Context, req ChargeRequest) (Charge, error)
	confirm  func(ctx context.Context, chargeID string) (Charge, error)
}

func (f *fakePayments) InitiateCharge(ctx context.Context, req ChargeRequest) (Charge, error) {
	return f.initiate(ctx, req)
}

func (f *fakePayments) ConfirmCharge(ctx context.Context, chargeID string) (Charge, error) {
	return f.confirm(ctx, chargeID)
}

type bookingFixture struct {
	booking      *BookingService
	store        *cache.Memory
	appointments repositories.AppointmentRepository
	patients     repositories.PatientRepository
	mailer       *recordingMailer
}

func newBookingFixture(t *testing.T, payments PaymentGateway) *bookingFixture {
	t.Helper()
	if payments == nil {
		payments = NewMockPaymentGateway(0)
	}
	f := &bookingFixture{
		store:        cache.NewMemory(),
		appointments: repositories.NewMemoryAppointmentRepository(),
		patients:     repositories.NewMemoryPatientRepository(),
		mailer:       &recordingMailer{},
	}
	doctors := NewDoctorService(repositories.NewDoctorRepository(models.SeedDoctors()))
	f.booking = NewBookingService(doctors, f.appointments, f.patients, payments, f.store, f.mailer, ist)
	f.booking.SetClock(func() time.Time { return fixedNow })

	require.NoError(t, f.patients.Create(context.Background(), &models.Patient{
		UID:            "patient-1",
		FullName:       "Asha Raman",
		Email:          "asha@example.com",
		Phone:          "9876543210",
		MedicalHistory: []string{},
	}))
	return f
}

func testSession() Session {
	return Session{UID: "patient-1", Email: "asha@example.com", DisplayName: "Asha"}
}
