package services

import (
	"MediCare/models"
	"MediCare/repositories"
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidSort    = errors.New("unknown sort key")
	ErrInvalidPage    = errors.New("limit and offset must not be negative")
)

type SortKey string

const (
	SortNone       SortKey = ""
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
	SortExpDesc    SortKey = "exp-desc"
)

// DoctorQuery is a catalog search: filter, then sort, then page.
type DoctorQuery struct {
	repositories.DoctorFilter
	Sort   SortKey
	Limit  int
	Offset int
}

type DoctorPage struct {
	Doctors []models.Doctor `json:"doctors"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit,omitempty"`
	Offset  int             `json:"offset"`
}

type DoctorService struct {
	repository repositories.DoctorRepository
}

func NewDoctorService(repository repositories.DoctorRepository) *DoctorService {
	return &DoctorService{repository: repository}
}

func (s *DoctorService) Search(ctx context.Context, q DoctorQuery) (DoctorPage, error) {
	if q.Limit < 0 || q.Offset < 0 {
		return DoctorPage{}, ErrInvalidPage
	}

	doctors, err := s.repository.Filter(ctx, q.DoctorFilter)
	if err != nil {
		return DoctorPage{}, fmt.Errorf("failed to filter doctors: %w", err)
	}
	if err := SortDoctors(doctors, q.Sort); err != nil {
		return DoctorPage{}, err
	}

	page := DoctorPage{Total: len(doctors), Limit: q.Limit, Offset: q.Offset}
	start := q.Offset
	if start > len(doctors) {
		start = len(doctors)
	}
	end := len(doctors)
	if q.Limit > 0 && q.Limit < end-start {
		end = start + q.Limit
	}
	page.Doctors = doctors[start:end]
	return page, nil
}

func (s *DoctorService) GetByID(ctx context.Context, id int) (*models.Doctor, error) {
	doctor, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrDoctorNotFound
	}
	return doctor, err
}

func (s *DoctorService) Specialties(ctx context.Context) ([]string, error) {
	return s.repository.Specialties(ctx)
}

// SortDoctors orders doctors in place. The sort is stable so ties keep their
// catalog order. An empty key leaves the order untouched.
func SortDoctors(doctors []models.Doctor, key SortKey) error {
	var less func(a, b models.Doctor) bool
	switch key {
	case SortNone:
		return nil
	case SortPriceAsc:
		less = func(a, b models.Doctor) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b models.Doctor) bool { return a.Price > b.Price }
	case SortRatingDesc:
		less = func(a, b models.Doctor) bool { return a.Rating > b.Rating }
	case SortExpDesc:
		less = func(a, b models.Doctor) bool { return a.Experience > b.Experience }
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSort, key)
	}

	sort.SliceStable(doctors, func(i, j int) bool { return less(doctors[i], doctors[j]) })
	return nil
}
