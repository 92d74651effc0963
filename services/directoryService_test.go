package services

import (
	"MediCare/models"
	"MediCare/repositories"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectoryService() *DirectoryService {
	return NewDirectoryService(
		repositories.NewBloodBankRepository(models.SeedBloodBanks(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC))),
		repositories.NewLabCenterRepository(models.SeedLabCenters()),
	)
}

func TestFitViewport(t *testing.T) {
	empty := FitViewport(nil)
	assert.Equal(t, DefaultCenter, empty.Center)
	assert.Equal(t, DefaultZoom, empty.Zoom)
	assert.Nil(t, empty.Bounds)

	one := FitViewport([]Marker{{Position: models.Coordinates{Lat: 9.9252, Lng: 78.1198}}})
	assert.Equal(t, 9.9252, one.Center.Lat)
	assert.Equal(t, SingleZoom, one.Zoom)

	many := FitViewport([]Marker{
		{Position: models.Coordinates{Lat: 13.0, Lng: 80.0}},
		{Position: models.Coordinates{Lat: 11.0, Lng: 77.0}},
	})
	require.NotNil(t, many.Bounds)
	assert.Equal(t, Bounds{North: 13, South: 11, East: 80, West: 77}, *many.Bounds)
	assert.Equal(t, models.Coordinates{Lat: 12, Lng: 78.5}, many.Center)
	assert.Equal(t, 6, many.Zoom)
}

func TestSearchBloodBanksReturnsMarkers(t *testing.T) {
	s := newDirectoryService()

	listing, err := s.SearchBloodBanks(context.Background(), repositories.BloodBankFilter{Location: "chennai"})
	require.NoError(t, err)
	require.Len(t, listing.BloodBanks, 3)
	require.Len(t, listing.Markers, 3)
	require.NotNil(t, listing.Viewport.Bounds)
	for i, m := range listing.Markers {
		assert.Equal(t, listing.BloodBanks[i].ID, m.ID)
		assert.LessOrEqual(t, m.Position.Lat, listing.Viewport.Bounds.North)
		assert.GreaterOrEqual(t, m.Position.Lat, listing.Viewport.Bounds.South)
	}

	_, err = s.SearchBloodBanks(context.Background(), repositories.BloodBankFilter{BloodType: "C+"})
	assert.ErrorIs(t, err, ErrUnknownBloodType)
}

func TestSearchLabCentersSingleResultZoomsIn(t *testing.T) {
	listing, err := newDirectoryService().SearchLabCenters(context.Background(), repositories.LabCenterFilter{Query: "salem"})
	require.NoError(t, err)
	require.Len(t, listing.LabCenters, 1)
	assert.Equal(t, SingleZoom, listing.Viewport.Zoom)
	assert.Equal(t, listing.LabCenters[0].Coordinates, listing.Viewport.Center)
}

func TestDirectoryNotFound(t *testing.T) {
	s := newDirectoryService()
	_, err := s.GetBloodBank(context.Background(), "99")
	assert.ErrorIs(t, err, ErrBloodBankNotFound)
	_, err = s.GetLabCenter(context.Background(), "99")
	assert.ErrorIs(t, err, ErrLabCenterNotFound)
}

func TestFacets(t *testing.T) {
	facets := newDirectoryService().Facets(context.Background())
	assert.Len(t, facets.BloodTypes, 8)
	assert.Contains(t, facets.Locations, "Trichy")
	assert.Contains(t, facets.LabServices, "MRI")
}
