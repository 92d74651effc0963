package repositories

import (
	"MediCare/models"
	"context"
	"strings"
)

// DoctorFilter narrows the doctor catalog. Zero-valued fields do not filter.
type DoctorFilter struct {
	Specialty string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating float64
	Query     string
}

type doctorPredicate func(models.Doctor) bool

// predicates returns one independent check per active criterion.
func (f DoctorFilter) predicates() []doctorPredicate {
	var ps []doctorPredicate
	if f.Specialty != "" {
		ps = append(ps, func(d models.Doctor) bool { return d.Role == f.Specialty })
	}
	if f.MinPrice != nil {
		min := *f.MinPrice
		ps = append(ps, func(d models.Doctor) bool { return d.Price >= min })
	}
	if f.MaxPrice != nil {
		max := *f.MaxPrice
		ps = append(ps, func(d models.Doctor) bool { return d.Price <= max })
	}
	if f.MinRating > 0 {
		ps = append(ps, func(d models.Doctor) bool { return d.Rating >= f.MinRating })
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		ps = append(ps, func(d models.Doctor) bool {
			return strings.Contains(strings.ToLower(d.Name), q) ||
				strings.Contains(strings.ToLower(d.Role), q) ||
				strings.Contains(strings.ToLower(d.Description), q)
		})
	}
	return ps
}

// Match reports whether d satisfies every criterion of the filter.
func (f DoctorFilter) Match(d models.Doctor) bool {
	for _, p := range f.predicates() {
		if !p(d) {
			return false
		}
	}
	return true
}

type DoctorRepository interface {
	GetByID(ctx context.Context, id int) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Filter(ctx context.Context, filter DoctorFilter) ([]models.Doctor, error)
	Specialties(ctx context.Context) ([]string, error)
}

type doctorRepository struct {
	doctors []models.Doctor
}

// NewDoctorRepository serves the given catalog. The slice is copied.
func NewDoctorRepository(doctors []models.Doctor) DoctorRepository {
	return &doctorRepository{doctors: append([]models.Doctor(nil), doctors...)}
}

func (r *doctorRepository) GetByID(_ context.Context, id int) (*models.Doctor, error) {
	for _, d := range r.doctors {
		if d.DoctorID == id {
			doctor := d
			return &doctor, nil
		}
	}
	return nil, ErrNotFound
}

func (r *doctorRepository) GetAll(_ context.Context) ([]models.Doctor, error) {
	return append([]models.Doctor(nil), r.doctors...), nil
}

func (r *doctorRepository) Filter(_ context.Context, filter DoctorFilter) ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		if filter.Match(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *doctorRepository) Specialties(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, d := range r.doctors {
		if !seen[d.Role] {
			seen[d.Role] = true
			out = append(out, d.Role)
		}
	}
	return out, nil
}
