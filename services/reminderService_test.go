package services

import (
	"MediCare/models"
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRemindersForTomorrow(t *testing.T) {
	f := newBookingFixture(t, nil)
	ctx := context.Background()

	_, err := f.booking.Book(ctx, testSession(), BookingRequest{DoctorID: 1, Date: "2026-10-16", Time: "09:00"})
	require.NoError(t, err)
	_, err = f.booking.Book(ctx, testSession(), BookingRequest{DoctorID: 2, Date: "2026-10-17", Time: "09:00"})
	require.NoError(t, err)
	require.NoError(t, f.appointments.Create(ctx, &models.Appointment{
		ID: "cancelled-1", DoctorID: 3, PatientID: "patient-1", Date: "2026-10-16", Time: "11:00",
		Status: models.StatusCancelled, Type: models.TypeClinic,
	}))
	require.NoError(t, f.appointments.Create(ctx, &models.Appointment{
		ID: "orphan-1", DoctorID: 3, PatientID: "ghost", Date: "2026-10-16", Time: "12:00",
		Status: models.StatusConfirmed, Type: models.TypeClinic,
	}))

	mailer := &recordingMailer{}
	reminders := NewReminderService(f.appointments, f.patients, mailer, ist)
	reminders.now = func() time.Time { return fixedNow }

	sent, err := reminders.SendReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	mails := mailer.emails()
	require.Len(t, mails, 1)
	assert.Equal(t, "asha@example.com", mails[0].To)
	assert.Contains(t, mails[0].Text, "Dr. Aravind")
	assert.Contains(t, mails[0].Text, "2026-10-16")
}

func TestReminderScheduleRejectsBadTime(t *testing.T) {
	f := newBookingFixture(t, nil)
	reminders := NewReminderService(f.appointments, f.patients, &recordingMailer{}, ist)
	defer reminders.Stop()

	assert.Error(t, reminders.Start("25:99"))
}

func TestExportAppointments(t *testing.T) {
	f := newBookingFixture(t, nil)
	ctx := context.Background()

	_, err := f.booking.Book(ctx, testSession(), BookingRequest{DoctorID: 1, Date: "2026-10-16", Time: "09:00"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewExportService(f.appointments).WriteAppointments(ctx, "patient-1", &buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Date", book.GetCellValue(appointmentSheet, "A1"))
	assert.Equal(t, "2026-10-16", book.GetCellValue(appointmentSheet, "A2"))
	assert.Equal(t, "Dr. Aravind", book.GetCellValue(appointmentSheet, "C2"))
	assert.Equal(t, "clinic", book.GetCellValue(appointmentSheet, "D2"))
}
