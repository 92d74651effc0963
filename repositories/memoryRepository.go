package repositories

import (
	"MediCare/models"
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// The memory stores back STORE_BACKEND=memory for local runs without
// Postgres or Firestore. Records are copied on the way in and out.

type memoryPatientRepository struct {
	mu       sync.RWMutex
	patients map[string]models.Patient
}

func NewMemoryPatientRepository() PatientRepository {
	return &memoryPatientRepository{patients: make(map[string]models.Patient)}
}

func copyPatient(p models.Patient) models.Patient {
	p.MedicalHistory = append([]string(nil), p.MedicalHistory...)
	return p
}

func (r *memoryPatientRepository) Create(_ context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patients[patient.UID]; ok {
		return ErrAlreadyExists
	}
	now := time.Now()
	patient.CreatedAt, patient.UpdatedAt = now, now
	r.patients[patient.UID] = copyPatient(*patient)
	return nil
}

func (r *memoryPatientRepository) GetByID(_ context.Context, uid string) (*models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patients[uid]
	if !ok {
		return nil, ErrNotFound
	}
	p = copyPatient(p)
	return &p, nil
}

func (r *memoryPatientRepository) Save(_ context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if patient.CreatedAt.IsZero() {
		patient.CreatedAt = now
	}
	patient.UpdatedAt = now
	r.patients[patient.UID] = copyPatient(*patient)
	return nil
}

type memoryAppointmentRepository struct {
	mu           sync.RWMutex
	appointments []models.Appointment
}

func NewMemoryAppointmentRepository() AppointmentRepository {
	return &memoryAppointmentRepository{}
}

func (r *memoryAppointmentRepository) Create(_ context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.appointments {
		if a.ID == appointment.ID {
			return ErrAlreadyExists
		}
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}
	r.appointments = append(r.appointments, *appointment)
	return nil
}

func (r *memoryAppointmentRepository) GetByID(_ context.Context, patientID, id string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.appointments {
		if a.ID == id && a.PatientID == patientID {
			found := a
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryAppointmentRepository) ListByPatient(_ context.Context, patientID string, limit int) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return limitAppointments(out, limit), nil
}

func (r *memoryAppointmentRepository) ListByDate(_ context.Context, date string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.Date == date {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]models.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrAlreadyExists
		}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.UID] = *user
	return nil
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) GetByID(_ context.Context, uid string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[uid]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *memoryUserRepository) UpdatePassword(_ context.Context, uid, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uid]
	if !ok {
		return ErrNotFound
	}
	u.Password = hashedPassword
	r.users[uid] = u
	return nil
}

func (r *memoryUserRepository) MarkEmailVerified(_ context.Context, uid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uid]
	if !ok {
		return ErrNotFound
	}
	u.EmailVerified = true
	r.users[uid] = u
	return nil
}
