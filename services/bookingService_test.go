package services

import (
	"MediCare/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFee(t *testing.T) {
	clinic, err := ComputeFee(2000, models.TypeClinic)
	require.NoError(t, err)
	assert.Equal(t, FeeBreakdown{Price: 2000, BookingFee: 50, Tax: 360, Total: 2410}, clinic)

	video, err := ComputeFee(2000, models.TypeVideo)
	require.NoError(t, err)
	assert.Equal(t, 2460.0, video.Total)

	odd, err := ComputeFee(1899.99, models.TypeClinic)
	require.NoError(t, err)
	assert.Equal(t, 342.0, odd.Tax)
	assert.Equal(t, 2291.99, odd.Total)

	_, err = ComputeFee(2000, "home")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestValidateBookingDate(t *testing.T) {
	tests := []struct {
		date string
		ok   bool
	}{
		{"2026-10-15", true},
		{"2026-10-16", true},
		{"2026-11-14", true},
		{"2026-10-14", false},
		{"2026-10-18", false},
		{"2026-11-16", false},
		{"15-10-2026", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			_, err := ValidateBookingDate(tt.date, fixedNow)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidDate)
			}
		})
	}
}

func TestValidateBookingDateLateEvening(t *testing.T) {
	late := time.Date(2026, time.October, 15, 23, 59, 0, 0, ist)
	_, err := ValidateBookingDate("2026-10-15", late)
	assert.NoError(t, err)
}

func TestQuoteForAravind(t *testing.T) {
	f := newBookingFixture(t, nil)

	quote, err := f.booking.Quote(context.Background(), BookingRequest{DoctorID: 1, Date: "2026-10-16", Time: "09:00"})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Aravind", quote.Doctor.Name)
	assert.Equal(t, 2000.0, quote.Price)
	assert.Equal(t, 50.0, quote.BookingFee)
	assert.Equal(t, 360.0, quote.Tax)
	assert.Equal(t, 2410.0, quote.Total)
}

func TestQuoteRejectsUnknownSlot(t *testing.T) {
	f := newBookingFixture(t, nil)

	_, err := f.booking.Quote(context.Background(), BookingRequest{DoctorID: 1, Date: "2026-10-16", Time: "13:00"})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestQuoteUnknownDoctor(t *testing.T) {
	f := newBookingFixture(t, nil)

	_, err := f.booking.Quote(context.Background(), BookingRequest{DoctorID: 99, Date: "2026-10-16", Time: "09:00"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestBookWritesConfirmedClinicAppointment(t *testing.T) {
	f := newBookingFixture(t, nil)
	ctx := context.Background()

	confirmation, err := f.booking.Book(ctx, testSession(), BookingRequest{DoctorID: 1, Date: "2026-10-16", Time: "09:00"})
	require.NoError(t, err)

	a := confirmation.Appointment
	assert.Equal(t, "Dr. Aravind", a.DoctorName)
	assert.Equal(t, "Asha Raman", a.PatientName)
	assert.Equal(t, "2026-10-16", a.Date)
	assert.Equal(t, "09:00", a.Time)
	assert.Equal(t, models.StatusConfirmed, a.Status)
	assert.Equal(t, models.TypeClinic, a.Type)
	assert.True(t, a.Paid)
	assert.Equal(t, 2000.0, a.Amount)
	assert.NotEmpty(t, a.ChargeID)

	stored, err := f.booking.GetAppointment(ctx, "patient-1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, stored.ID)

	mails := f.mailer.emails()
	require.Len(t, mails, 1)
	assert.Equal(t, "asha@example.com", mails[0].To)
}

func TestBookPaymentFailureWritesNothing(t *testing.T) {
	payments := &fakePayments{
		initiate: func(context.Context, ChargeRequest) (Charge, error) {
			return Charge{}, errors.New("card declined")
		},
	}
	f := newBookingFixture(t, payments)
	ctx := context.Background()

	_, err := f.booking.Book(ctx, testSession(), BookingRequest{DoctorID: 1, Date: "2026-10-16", Time: "09:00"})
	assert.ErrorIs(t, err, ErrPaymentFailed)

	list, err := f.booking.ListAppointments(ctx, "patient-1", 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, f.mailer.emails())
}

func TestBookUnconfirmedChargeWritesNothing(t *testing.T) {
	payments := &fakePayments{
		initiate: func(_ context.Context, req ChargeRequest) (Charge, error) {
			return Charge{ID: "ch_1", Amount: req.Amount, Status: ChargeInitiated}, nil
		},
		confirm: func(_ context.Context, id string) (Charge, error) {
			return Charge{ID: id, Status: ChargeInitiated}, nil
		},
	}
	f := newBookingFixture(t, payments)

	_, err := f.booking.Book(context.Background(), testSession(), BookingRequest{DoctorID: 1, Date: "2026-10-16", Time: "09:00"})
	assert.ErrorIs(t, err, ErrPaymentFailed)

	list, err := f.booking.ListAppointments(context.Background(), "patient-1", 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBookTwiceSameSlot(t *testing.T) {
	f := newBookingFixture(t, nil)
	ctx := context.Background()
	req := BookingRequest{DoctorID: 1, Date: "2026-10-16", Time: "09:00"}

	_, err := f.booking.Book(ctx, testSession(), req)
	require.NoError(t, err)
	_, err = f.booking.Book(ctx, testSession(), req)
	assert.ErrorIs(t, err, ErrDuplicateBooking)
}

func TestBookWhileLocked(t *testing.T) {
	f := newBookingFixture(t, nil)
	ctx := context.Background()

	ok, err := f.store.Acquire(ctx, "booking_lock:patient-1:1:2026-10-16:09:00", "someone-else", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.booking.Book(ctx, testSession(), BookingRequest{DoctorID: 1, Date: "2026-10-16", Time: "09:00"})
	assert.ErrorIs(t, err, ErrBookingInProgress)
}

func TestBookSurvivesMailFailure(t *testing.T) {
	f := newBookingFixture(t, nil)
	f.mailer.err = errors.New("smtp down")

	_, err := f.booking.Book(context.Background(), testSession(), BookingRequest{DoctorID: 6, Date: "2026-10-17", Time: "18:00"})
	assert.NoError(t, err)
}

func TestAvailableSlots(t *testing.T) {
	f := newBookingFixture(t, nil)

	slots, err := f.booking.AvailableSlots(context.Background(), 1, "2026-10-16")
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slots[0].Times)

	_, err = f.booking.AvailableSlots(context.Background(), 1, "2026-10-18")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGetAppointmentOfAnotherPatient(t *testing.T) {
	f := newBookingFixture(t, nil)
	ctx := context.Background()

	confirmation, err := f.booking.Book(ctx, testSession(), BookingRequest{DoctorID: 2, Date: "2026-10-16", Time: "10:00"})
	require.NoError(t, err)

	_, err = f.booking.GetAppointment(ctx, "patient-2", confirmation.Appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
