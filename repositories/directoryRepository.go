package repositories

import (
	"MediCare/models"
	"context"
	"strings"
)

// BloodBankFilter keeps banks that stock BloodType and sit in Location.
type BloodBankFilter struct {
	BloodType string
	Location  string
}

func (f BloodBankFilter) Match(b models.BloodBank) bool {
	if f.BloodType != "" && !b.Available(f.BloodType) {
		return false
	}
	if f.Location != "" && !strings.EqualFold(b.Location, f.Location) {
		return false
	}
	return true
}

// LabCenterFilter: Query is a case-insensitive substring over name, location
// and services. Location and Service match exactly.
type LabCenterFilter struct {
	Query    string
	Location string
	Service  string
}

func (f LabCenterFilter) Match(l models.LabCenter) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" && !labMatchesQuery(l, q) {
		return false
	}
	if f.Location != "" && l.Location != f.Location {
		return false
	}
	if f.Service != "" && !l.Offers(f.Service) {
		return false
	}
	return true
}

func labMatchesQuery(l models.LabCenter, q string) bool {
	if strings.Contains(strings.ToLower(l.Name), q) || strings.Contains(strings.ToLower(l.Location), q) {
		return true
	}
	for _, s := range l.Services {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

type BloodBankRepository interface {
	GetByID(ctx context.Context, id string) (*models.BloodBank, error)
	GetAll(ctx context.Context) ([]models.BloodBank, error)
	Filter(ctx context.Context, filter BloodBankFilter) ([]models.BloodBank, error)
}

type LabCenterRepository interface {
	GetByID(ctx context.Context, id string) (*models.LabCenter, error)
	GetAll(ctx context.Context) ([]models.LabCenter, error)
	Filter(ctx context.Context, filter LabCenterFilter) ([]models.LabCenter, error)
}

type bloodBankRepository struct {
	banks []models.BloodBank
}

func NewBloodBankRepository(banks []models.BloodBank) BloodBankRepository {
	return &bloodBankRepository{banks: banks}
}

func copyBloodBank(b models.BloodBank) models.BloodBank {
	b.BloodTypes = append([]models.BloodInventory(nil), b.BloodTypes...)
	return b
}

func (r *bloodBankRepository) GetByID(_ context.Context, id string) (*models.BloodBank, error) {
	for _, b := range r.banks {
		if b.ID == id {
			bank := copyBloodBank(b)
			return &bank, nil
		}
	}
	return nil, ErrNotFound
}

func (r *bloodBankRepository) GetAll(ctx context.Context) ([]models.BloodBank, error) {
	return r.Filter(ctx, BloodBankFilter{})
}

func (r *bloodBankRepository) Filter(_ context.Context, filter BloodBankFilter) ([]models.BloodBank, error) {
	out := make([]models.BloodBank, 0, len(r.banks))
	for _, b := range r.banks {
		if filter.Match(b) {
			out = append(out, copyBloodBank(b))
		}
	}
	return out, nil
}

type labCenterRepository struct {
	labs []models.LabCenter
}

func NewLabCenterRepository(labs []models.LabCenter) LabCenterRepository {
	return &labCenterRepository{labs: labs}
}

func copyLabCenter(l models.LabCenter) models.LabCenter {
	l.Services = append([]string(nil), l.Services...)
	return l
}

func (r *labCenterRepository) GetByID(_ context.Context, id string) (*models.LabCenter, error) {
	for _, l := range r.labs {
		if l.ID == id {
			lab := copyLabCenter(l)
			return &lab, nil
		}
	}
	return nil, ErrNotFound
}

func (r *labCenterRepository) GetAll(ctx context.Context) ([]models.LabCenter, error) {
	return r.Filter(ctx, LabCenterFilter{})
}

func (r *labCenterRepository) Filter(_ context.Context, filter LabCenterFilter) ([]models.LabCenter, error) {
	out := make([]models.LabCenter, 0, len(r.labs))
	for _, l := range r.labs {
		if filter.Match(l) {
			out = append(out, copyLabCenter(l))
		}
	}
	return out, nil
}
