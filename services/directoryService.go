package services

import (
	"MediCare/models"
	"MediCare/repositories"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrBloodBankNotFound = errors.New("blood bank not found")
	ErrLabCenterNotFound = errors.New("lab center not found")
	ErrUnknownBloodType  = errors.New("unknown blood type")
)

// DefaultCenter is where the map opens when there is nothing to show.
var DefaultCenter = models.Coordinates{Lat: 13.0827, Lng: 80.2707}

const (
	DefaultZoom = 10
	SingleZoom  = 15
	minZoom     = 3
)

type Marker struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	Position models.Coordinates `json:"position"`
	Info     string             `json:"info"`
}

type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

type Viewport struct {
	Center models.Coordinates `json:"center"`
	Zoom   int                `json:"zoom"`
	Bounds *Bounds            `json:"bounds,omitempty"`
}

type BloodBankListing struct {
	BloodBanks []models.BloodBank `json:"bloodBanks"`
	Markers    []Marker           `json:"markers"`
	Viewport   Viewport           `json:"viewport"`
}

type LabCenterListing struct {
	LabCenters []models.LabCenter `json:"labCenters"`
	Markers    []Marker           `json:"markers"`
	Viewport   Viewport           `json:"viewport"`
}

type Facets struct {
	BloodTypes  []string `json:"bloodTypes"`
	Locations   []string `json:"locations"`
	LabServices []string `json:"labServices"`
}

// FitViewport centres the map on the markers. No markers keeps the default
// view; a single marker is shown close up.
func FitViewport(markers []Marker) Viewport {
	switch len(markers) {
	case 0:
		return Viewport{Center: DefaultCenter, Zoom: DefaultZoom}
	case 1:
		return Viewport{Center: markers[0].Position, Zoom: SingleZoom}
	}

	b := Bounds{North: -90, South: 90, East: -180, West: 180}
	for _, m := range markers {
		b.North = math.Max(b.North, m.Position.Lat)
		b.South = math.Min(b.South, m.Position.Lat)
		b.East = math.Max(b.East, m.Position.Lng)
		b.West = math.Min(b.West, m.Position.Lng)
	}
	span := math.Max(b.North-b.South, b.East-b.West)
	zoom := SingleZoom
	if span > 0 {
		zoom = int(math.Floor(math.Log2(360 / span)))
		if zoom > SingleZoom {
			zoom = SingleZoom
		}
		if zoom < minZoom {
			zoom = minZoom
		}
	}
	return Viewport{
		Center: models.Coordinates{Lat: (b.North + b.South) / 2, Lng: (b.East + b.West) / 2},
		Zoom:   zoom,
		Bounds: &b,
	}
}

func bloodBankMarker(b models.BloodBank) Marker {
	var stock []string
	for _, bt := range b.BloodTypes {
		if bt.Quantity > 0 {
			stock = append(stock, fmt.Sprintf("%s: %d", bt.Type, bt.Quantity))
		}
	}
	return Marker{
		ID:       b.ID,
		Title:    b.Name,
		Position: b.Coordinates,
		Info:     fmt.Sprintf("%s\n%s\n%s", b.Address, b.Phone, strings.Join(stock, ", ")),
	}
}

func labCenterMarker(l models.LabCenter) Marker {
	return Marker{
		ID:       l.ID,
		Title:    l.Name,
		Position: l.Coordinates,
		Info:     fmt.Sprintf("%s\n%s\n%s", l.Address, l.OpeningHours, strings.Join(l.Services, ", ")),
	}
}

type DirectoryService struct {
	bloodBanks repositories.BloodBankRepository
	labCenters repositories.LabCenterRepository
}

func NewDirectoryService(bloodBanks repositories.BloodBankRepository, labCenters repositories.LabCenterRepository) *DirectoryService {
	return &DirectoryService{bloodBanks: bloodBanks, labCenters: labCenters}
}

func (s *DirectoryService) SearchBloodBanks(ctx context.Context, filter repositories.BloodBankFilter) (BloodBankListing, error) {
	if filter.BloodType != "" && !contains(models.BloodTypes, filter.BloodType) {
		return BloodBankListing{}, fmt.Errorf("%w: %q", ErrUnknownBloodType, filter.BloodType)
	}
	banks, err := s.bloodBanks.Filter(ctx, filter)
	if err != nil {
		return BloodBankListing{}, fmt.Errorf("failed to filter blood banks: %w", err)
	}
	markers := make([]Marker, len(banks))
	for i, b := range banks {
		markers[i] = bloodBankMarker(b)
	}
	return BloodBankListing{BloodBanks: banks, Markers: markers, Viewport: FitViewport(markers)}, nil
}

func (s *DirectoryService) GetBloodBank(ctx context.Context, id string) (*models.BloodBank, error) {
	bank, err := s.bloodBanks.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrBloodBankNotFound
	}
	return bank, err
}

func (s *DirectoryService) SearchLabCenters(ctx context.Context, filter repositories.LabCenterFilter) (LabCenterListing, error) {
	labs, err := s.labCenters.Filter(ctx, filter)
	if err != nil {
		return LabCenterListing{}, fmt.Errorf("failed to filter lab centers: %w", err)
	}
	markers := make([]Marker, len(labs))
	for i, l := range labs {
		markers[i] = labCenterMarker(l)
	}
	return LabCenterListing{LabCenters: labs, Markers: markers, Viewport: FitViewport(markers)}, nil
}

func (s *DirectoryService) GetLabCenter(ctx context.Context, id string) (*models.LabCenter, error) {
	lab, err := s.labCenters.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrLabCenterNotFound
	}
	return lab, err
}

func (s *DirectoryService) Facets(context.Context) Facets {
	return Facets{
		BloodTypes:  append([]string(nil), models.BloodTypes...),
		Locations:   append([]string(nil), models.Locations...),
		LabServices: append([]string(nil), models.LabServices...),
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
