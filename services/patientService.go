package services

import (
	"MediCare/models"
	"MediCare/repositories"
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ProfileUpdate carries the profile form. Nil fields are left unchanged.
type ProfileUpdate struct {
	FullName       *string   `json:"fullName"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	Address        *string   `json:"address"`
	Age            *int      `json:"age"`
	Gender         *string   `json:"gender"`
	BloodGroup     *string   `json:"bloodGroup"`
	MedicalHistory *[]string `json:"medicalHistory"`
}

func (u ProfileUpdate) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.FullName, validation.NilOrNotEmpty, validation.RuneLength(3, 0)),
		validation.Field(&u.Email, validation.NilOrNotEmpty, is.Email),
		validation.Field(&u.Phone, validation.NilOrNotEmpty, validation.Length(10, 0)),
		validation.Field(&u.Age, validation.When(u.Age != nil, validation.Required, validation.Min(1), validation.Max(120))),
		validation.Field(&u.Gender, validation.When(u.Gender != nil && *u.Gender != "", validation.In(genders...))),
		validation.Field(&u.BloodGroup, validation.When(u.BloodGroup != nil && *u.BloodGroup != "", validation.In(bloodGroups()...))),
	)
}

type PatientService struct {
	repository repositories.PatientRepository
}

func NewPatientService(repository repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

// GetProfile returns the patient document, or a blank profile seeded from
// the session when none has been written yet.
func (s *PatientService) GetProfile(ctx context.Context, session Session) (*models.Patient, error) {
	patient, err := s.repository.GetByID(ctx, session.UID)
	if errors.Is(err, repositories.ErrNotFound) {
		return &models.Patient{
			UID:            session.UID,
			FullName:       session.DisplayName,
			Email:          session.Email,
			MedicalHistory: []string{},
		}, nil
	}
	return patient, err
}

// UpdateProfile merges the provided fields into the stored profile.
func (s *PatientService) UpdateProfile(ctx context.Context, session Session, update ProfileUpdate) (*models.Patient, error) {
	if err := update.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	patient, err := s.GetProfile(ctx, session)
	if err != nil {
		return nil, err
	}
	update.apply(patient)
	if err := s.repository.Save(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (u ProfileUpdate) apply(p *models.Patient) {
	if u.FullName != nil {
		p.FullName = strings.TrimSpace(*u.FullName)
	}
	if u.Email != nil {
		p.Email = normalizeEmail(*u.Email)
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.BloodGroup != nil {
		p.BloodGroup = *u.BloodGroup
	}
	if u.MedicalHistory != nil {
		p.MedicalHistory = append([]string{}, (*u.MedicalHistory)...)
	}
	if p.MedicalHistory == nil {
		p.MedicalHistory = []string{}
	}
}
