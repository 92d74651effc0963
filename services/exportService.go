package services

import (
	"MediCare/repositories"
	"context"
	"fmt"
	"io"

	"github.com/360EntSecGroup-Skylar/excelize"
)

const appointmentSheet = "Appointments"

var appointmentColumns = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

var appointmentHeaders = []string{"Date", "Time", "Doctor", "Type", "Status", "Paid", "Consultation", "Booking fee", "Tax", "Total"}

// ExportService renders a patient's appointment history as a workbook.
type ExportService struct {
	appointments repositories.AppointmentRepository
}

func NewExportService(appointments repositories.AppointmentRepository) *ExportService {
	return &ExportService{appointments: appointments}
}

func (s *ExportService) WriteAppointments(ctx context.Context, patientID string, w io.Writer) error {
	appointments, err := s.appointments.ListByPatient(ctx, patientID, 0)
	if err != nil {
		return fmt.Errorf("failed to load appointments: %w", err)
	}

	f := excelize.NewFile()
	index := f.NewSheet(appointmentSheet)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, h := range appointmentHeaders {
		f.SetCellValue(appointmentSheet, appointmentColumns[i]+"1", h)
	}
	for i, a := range appointments {
		row := fmt.Sprint(i + 2)
		values := []interface{}{a.Date, a.Time, a.DoctorName, string(a.Type), string(a.Status), a.Paid, a.Amount, a.BookingFee, a.Tax, a.Total}
		for j, v := range values {
			f.SetCellValue(appointmentSheet, appointmentColumns[j]+row, v)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
