package services

import (
	"MediCare/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsultationService(t *testing.T) (*ConsultationService, *bookingFixture) {
	t.Helper()
	f := newBookingFixture(t, nil)
	return NewConsultationService(f.booking, NewMockVideoGateway(0, "http://localhost:8930"), f.store, f.store), f
}

func TestConsultationFlow(t *testing.T) {
	s, f := newConsultationService(t)
	ctx := context.Background()
	session := testSession()

	c, err := s.Start(ctx, session, 1)
	require.NoError(t, err)
	assert.Equal(t, ConsultationPaid, c.Status)
	assert.Equal(t, 2460.0, c.Fee.Total)
	assert.NotEmpty(t, c.ChargeID)

	c, err = s.Connect(ctx, session, c.ID)
	require.NoError(t, err)
	assert.Equal(t, ConsultationInCall, c.Status)
	require.NotNil(t, c.Session)
	assert.Contains(t, c.Session.RoomURL, "/video/rooms/")

	appointment, err := f.booking.GetAppointment(ctx, session.UID, c.AppointmentID)
	require.NoError(t, err)
	assert.Equal(t, models.TypeVideo, appointment.Type)
	assert.Equal(t, "2026-10-15", appointment.Date)
	assert.Equal(t, "10:00", appointment.Time)
	assert.Equal(t, 2460.0, appointment.Total)

	c, err = s.End(ctx, session, c.ID)
	require.NoError(t, err)
	assert.Equal(t, ConsultationEnded, c.Status)

	_, err = s.Get(ctx, session.UID, c.ID)
	assert.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestConsultationStepsOutOfOrder(t *testing.T) {
	s, _ := newConsultationService(t)
	ctx := context.Background()
	session := testSession()

	c, err := s.Start(ctx, session, 2)
	require.NoError(t, err)

	_, err = s.End(ctx, session, c.ID)
	assert.ErrorIs(t, err, ErrConsultationState)

	_, err = s.Connect(ctx, session, c.ID)
	require.NoError(t, err)
	_, err = s.Connect(ctx, session, c.ID)
	assert.ErrorIs(t, err, ErrConsultationState)
}

func TestConsultationBelongsToPatient(t *testing.T) {
	s, _ := newConsultationService(t)
	ctx := context.Background()

	c, err := s.Start(ctx, testSession(), 3)
	require.NoError(t, err)

	_, err = s.Connect(ctx, Session{UID: "patient-2"}, c.ID)
	assert.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestConsultationConnectHonoursCancel(t *testing.T) {
	f := newBookingFixture(t, nil)
	s := NewConsultationService(f.booking, NewMockVideoGateway(time.Minute, ""), f.store, f.store)
	session := testSession()

	c, err := s.Start(context.Background(), session, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = s.Connect(ctx, session, c.ID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	list, err := f.booking.ListAppointments(context.Background(), session.UID, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}
