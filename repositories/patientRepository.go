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
	"gorm.io/gorm/clause"
)

const (
	PatientCacheExpiry = 7 * 24 * time.Hour
)

// PatientRepository stores one patient document per account uid.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, uid string) (*models.Patient, error)
	// Save inserts or replaces the patient.
	Save(ctx context.Context, patient *models.Patient) error
}

type patientRepository struct {
	db     *gorm.DB
	cache  cache.Store
	locker cache.Locker
}

func NewPatientRepository(db *gorm.DB, store cache.Store, locker cache.Locker) PatientRepository {
	return &patientRepository{db: db, cache: store, locker: locker}
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return cache.WithLock(ctx, r.locker, r.getPatientLockKey(patient.UID), cache.DefaultLockOptions, func(ctx context.Context) error {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Patient{}).Where("uid = ?", patient.UID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check for existing patient: %w", err)
		}
		if count > 0 {
			return ErrAlreadyExists
		}

		if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
			return fmt.Errorf("failed to create patient: %w", err)
		}
		return r.invalidate(ctx, patient.UID)
	})
}

func (r *patientRepository) GetByID(ctx context.Context, uid string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(uid)
	cachedPatient, err := r.cache.Get(ctx, cacheKey)
	if err != nil {
		log.Printf("Failed to get patient from cache: %v", err)
	} else if cachedPatient != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cachedPatient), &patient); err == nil {
			return &patient, nil
		}
	}

	var patient models.Patient
	err = r.db.WithContext(ctx).First(&patient, "uid = ?", uid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

func (r *patientRepository) Save(ctx context.Context, patient *models.Patient) error {
	return cache.WithLock(ctx, r.locker, r.getPatientLockKey(patient.UID), cache.DefaultLockOptions, func(ctx context.Context) error {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "email", "phone", "address", "age", "gender", "blood_group", "medical_history", "updated_at",
			}),
		}).Create(patient).Error
		if err != nil {
			return fmt.Errorf("failed to save patient: %w", err)
		}
		return r.invalidate(ctx, patient.UID)
	})
}

func (r *patientRepository) invalidate(ctx context.Context, uid string) error {
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(uid)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return nil
}

func (r *patientRepository) getPatientCacheKey(uid string) string {
	return fmt.Sprintf("patient_cache:%s", uid)
}

func (r *patientRepository) getPatientLockKey(uid string) string {
	return fmt.Sprintf("patient_lock:%s", uid)
}
