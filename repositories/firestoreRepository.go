package repositories

import (
	"MediCare/models"
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	patientsCollection     = "patients"
	appointmentsCollection = "appointments"
)

type firestorePatientRepository struct {
	client *firestore.Client
	now    func() time.Time
}

// NewFirestorePatientRepository keeps patients in the "patients" collection,
// one document per uid.
func NewFirestorePatientRepository(client *firestore.Client) PatientRepository {
	return &firestorePatientRepository{client: client, now: time.Now}
}

func (r *firestorePatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	now := r.now()
	patient.CreatedAt = now
	patient.UpdatedAt = now
	_, err := r.client.Collection(patientsCollection).Doc(patient.UID).Create(ctx, patient)
	if status.Code(err) == codes.AlreadyExists {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("failed to create patient document: %w", err)
	}
	return nil
}

func (r *firestorePatientRepository) GetByID(ctx context.Context, uid string) (*models.Patient, error) {
	doc, err := r.client.Collection(patientsCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient document: %w", err)
	}

	var patient models.Patient
	if err := doc.DataTo(&patient); err != nil {
		return nil, fmt.Errorf("failed to decode patient document: %w", err)
	}
	patient.UID = doc.Ref.ID
	return &patient, nil
}

func (r *firestorePatientRepository) Save(ctx context.Context, patient *models.Patient) error {
	now := r.now()
	if patient.CreatedAt.IsZero() {
		patient.CreatedAt = now
	}
	patient.UpdatedAt = now
	if _, err := r.client.Collection(patientsCollection).Doc(patient.UID).Set(ctx, patient); err != nil {
		return fmt.Errorf("failed to save patient document: %w", err)
	}
	return nil
}

type firestoreAppointmentRepository struct {
	client *firestore.Client
	now    func() time.Time
}

// NewFirestoreAppointmentRepository keeps appointments in the "appointments"
// collection keyed by appointment id.
func NewFirestoreAppointmentRepository(client *firestore.Client) AppointmentRepository {
	return &firestoreAppointmentRepository{client: client, now: time.Now}
}

func (r *firestoreAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = r.now()
	}
	_, err := r.client.Collection(appointmentsCollection).Doc(appointment.ID).Create(ctx, appointment)
	if status.Code(err) == codes.AlreadyExists {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("failed to create appointment document: %w", err)
	}
	return nil
}

func (r *firestoreAppointmentRepository) GetByID(ctx context.Context, patientID, id string) (*models.Appointment, error) {
	doc, err := r.client.Collection(appointmentsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment document: %w", err)
	}

	appointment, err := decodeAppointment(doc)
	if err != nil {
		return nil, err
	}
	if appointment.PatientID != patientID {
		return nil, ErrNotFound
	}
	return &appointment, nil
}

func (r *firestoreAppointmentRepository) ListByPatient(ctx context.Context, patientID string, limit int) ([]models.Appointment, error) {
	q := r.client.Collection(appointmentsCollection).
		Where("patientId", "==", patientID).
		OrderBy("date", firestore.Asc).
		OrderBy("time", firestore.Asc)
	if limit > 0 {
		q = q.Limit(limit)
	}
	return r.run(ctx, q)
}

func (r *firestoreAppointmentRepository) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	q := r.client.Collection(appointmentsCollection).
		Where("date", "==", date).
		OrderBy("time", firestore.Asc)
	return r.run(ctx, q)
}

func (r *firestoreAppointmentRepository) run(ctx context.Context, q firestore.Query) ([]models.Appointment, error) {
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}

	appointments := make([]models.Appointment, 0, len(docs))
	for _, doc := range docs {
		a, err := decodeAppointment(doc)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}

func decodeAppointment(doc *firestore.DocumentSnapshot) (models.Appointment, error) {
	var a models.Appointment
	if err := doc.DataTo(&a); err != nil {
		return a, fmt.Errorf("failed to decode appointment %s: %w", doc.Ref.ID, err)
	}
	a.ID = doc.Ref.ID
	return a, nil
}
