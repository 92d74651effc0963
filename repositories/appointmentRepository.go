package repositories

import (
	"MediCare/cache"
	"MediCare/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	AppointmentCacheExpiry = 7 * 24 * time.Hour
)

// AppointmentRepository stores appointment records. Records are written once
// and never updated.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	// GetByID only returns appointments owned by patientID.
	GetByID(ctx context.Context, patientID, id string) (*models.Appointment, error)
	// ListByPatient orders by date then time, ascending. limit <= 0 returns all.
	ListByPatient(ctx context.Context, patientID string, limit int) ([]models.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
}

type appointmentRepository struct {
	db    *gorm.DB
	cache cache.Store
}

func NewAppointmentRepository(db *gorm.DB, store cache.Store) AppointmentRepository {
	return &appointmentRepository{db: db, cache: store}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getPatientAppointmentsCacheKey(appointment.PatientID)); err != nil {
		log.Printf("Failed to delete appointments cache: %v", err)
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, patientID, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getAppointmentCacheKey(patientID, id)
	cachedAppointment, err := r.cache.Get(ctx, cacheKey)
	if err != nil {
		log.Printf("Failed to get appointment from cache: %v", err)
	} else if cachedAppointment != "" {
		var appointment models.Appointment
		if err := json.Unmarshal([]byte(cachedAppointment), &appointment); err == nil {
			return &appointment, nil
		}
	}

	var appointment models.Appointment
	err = r.db.WithContext(ctx).First(&appointment, "id = ? AND patient_id = ?", id, patientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	appointmentJSON, err := json.Marshal(appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointment: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointment in cache: %v", err)
	}

	return &appointment, nil
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID string, limit int) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientAppointmentsCacheKey(patientID)
	cachedAppointments, err := r.cache.Get(ctx, cacheKey)
	if err != nil {
		log.Printf("Failed to get appointments from cache: %v", err)
	} else if cachedAppointments != "" {
		var appointments []models.Appointment
		if err := json.Unmarshal([]byte(cachedAppointments), &appointments); err == nil {
			return limitAppointments(appointments, limit), nil
		}
	}

	var appointments []models.Appointment
	err = r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	appointmentsJSON, err := json.Marshal(appointments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointments: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentsJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointments in cache: %v", err)
	}

	return limitAppointments(appointments, limit), nil
}

func (r *appointmentRepository) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for %s: %w", date, err)
	}
	return appointments, nil
}

func (r *appointmentRepository) getAppointmentCacheKey(patientID, id string) string {
	return fmt.Sprintf("appointment_cache:%s:%s", patientID, id)
}

func (r *appointmentRepository) getPatientAppointmentsCacheKey(patientID string) string {
	return fmt.Sprintf("appointments_cache:%s", patientID)
}

func limitAppointments(appointments []models.Appointment, limit int) []models.Appointment {
	if limit > 0 && len(appointments) > limit {
		return appointments[:limit]
	}
	return appointments
}
