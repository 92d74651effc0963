package services

import (
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var ErrUnknownStep = errors.New("unknown registration step")

const (
	StepBasic    = "basic"
	StepDetails  = "details"
	StepPassword = "password"
)

var genders = []interface{}{"male", "female", "other"}

func bloodGroups() []interface{} {
	out := make([]interface{}, len(models.BloodTypes))
	for i, t := range models.BloodTypes {
		out[i] = t
	}
	return out
}

type RegistrationRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Age             *int   `json:"age"`
	Gender          string `json:"gender"`
	BloodGroup      string `json:"bloodGroup"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r RegistrationRequest) validateBasic() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required, validation.RuneLength(3, 50)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Phone, validation.Required, validation.Length(10, 15)),
	)
}

func (r RegistrationRequest) validateDetails() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Age, validation.When(r.Age != nil, validation.Required, validation.Min(1), validation.Max(120))),
		validation.Field(&r.Gender, validation.In(genders...)),
		validation.Field(&r.BloodGroup, validation.In(bloodGroups()...)),
	)
}

// ValidateStep checks one page of the registration form.
func (r RegistrationRequest) ValidateStep(step string) error {
	var err error
	switch step {
	case StepBasic:
		err = r.validateBasic()
	case StepDetails:
		err = r.validateDetails()
	case StepPassword:
		err = utils.ValidatePasswordPair(r.Password, r.ConfirmPassword)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStep, step)
	}
	if err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// Validate checks every step and merges the field errors.
func (r RegistrationRequest) Validate() error {
	merged := validation.Errors{}
	for _, step := range []string{StepBasic, StepDetails, StepPassword} {
		err := r.ValidateStep(step)
		if err == nil {
			continue
		}
		var fields validation.Errors
		if errors.As(err, &fields) {
			for k, v := range fields {
				merged[k] = v
			}
			continue
		}
		return err
	}
	if len(merged) > 0 {
		return &ValidationError{Err: merged}
	}
	return nil
}

type RegistrationService struct {
	auth     AuthProvider
	patients repositories.PatientRepository
}

func NewRegistrationService(auth AuthProvider, patients repositories.PatientRepository) *RegistrationService {
	return &RegistrationService{auth: auth, patients: patients}
}

// Register creates the account and the patient document.
func (s *RegistrationService) Register(ctx context.Context, req RegistrationRequest) (*models.Patient, error) {
	req.Email = normalizeEmail(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	uid, err := s.auth.SignUp(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{
		UID:            uid,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Gender:         req.Gender,
		BloodGroup:     req.BloodGroup,
		MedicalHistory: []string{},
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		// The account stays usable: GetProfile falls back to a blank profile
		// and the first UpdateProfile writes the record.
		log.Printf("Orphaned account uid=%s email=%s: patient record not created: %v", uid, req.Email, err)
		return nil, fmt.Errorf("failed to create patient record: %w", err)
	}
	return patient, nil
}
