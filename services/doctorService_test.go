package services

import (
	"MediCare/models"
	"MediCare/repositories"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoctorService() *DoctorService {
	return NewDoctorService(repositories.NewDoctorRepository(models.SeedDoctors()))
}

func ids(doctors []models.Doctor) []int {
	out := make([]int, len(doctors))
	for i, d := range doctors {
		out[i] = d.DoctorID
	}
	return out
}

func reversed(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func TestSortPriceAscIsReverseOfDesc(t *testing.T) {
	s := newDoctorService()
	ctx := context.Background()

	// Stable sorting keeps tied prices in catalog order both ways, so exact
	// reversal only holds for sets without ties.
	filters := []struct {
		filter  repositories.DoctorFilter
		hasTies bool
	}{
		{filter: repositories.DoctorFilter{}, hasTies: true},
		{filter: repositories.DoctorFilter{Specialty: "ENT Specialist"}},
		{filter: repositories.DoctorFilter{Specialty: "Gynecologist"}},
		{filter: repositories.DoctorFilter{Query: "chennai"}},
	}
	for _, tt := range filters {
		asc, err := s.Search(ctx, DoctorQuery{DoctorFilter: tt.filter, Sort: SortPriceAsc})
		require.NoError(t, err)
		desc, err := s.Search(ctx, DoctorQuery{DoctorFilter: tt.filter, Sort: SortPriceDesc})
		require.NoError(t, err)
		require.NotEmpty(t, asc.Doctors)

		if !tt.hasTies {
			assert.Equal(t, reversed(ids(asc.Doctors)), ids(desc.Doctors), tt.filter)
		}
		for i := 1; i < len(asc.Doctors); i++ {
			assert.LessOrEqual(t, asc.Doctors[i-1].Price, asc.Doctors[i].Price)
			assert.GreaterOrEqual(t, desc.Doctors[i-1].Price, desc.Doctors[i].Price)
		}
	}
}

func TestSortGynecologistsByPrice(t *testing.T) {
	page, err := newDoctorService().Search(context.Background(), DoctorQuery{
		DoctorFilter: repositories.DoctorFilter{Specialty: "Gynecologist"},
		Sort:         SortPriceAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 8, 6, 7, 9}, ids(page.Doctors))
}

func TestSortRatingAndExperience(t *testing.T) {
	s := newDoctorService()
	ctx := context.Background()

	byRating, err := s.Search(ctx, DoctorQuery{Sort: SortRatingDesc})
	require.NoError(t, err)
	assert.Equal(t, 7, byRating.Doctors[0].DoctorID)
	// 6 and 11 tie at 4.8 and keep catalog order.
	assert.Equal(t, []int{7, 6, 11}, ids(byRating.Doctors[:3]))

	byExp, err := s.Search(ctx, DoctorQuery{Sort: SortExpDesc})
	require.NoError(t, err)
	assert.Equal(t, 11, byExp.Doctors[0].DoctorID)
}

func TestSearchUnknownSort(t *testing.T) {
	_, err := newDoctorService().Search(context.Background(), DoctorQuery{Sort: "name"})
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestSearchPaging(t *testing.T) {
	s := newDoctorService()
	ctx := context.Background()

	page, err := s.Search(ctx, DoctorQuery{Limit: 5, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, []int{11, 12}, ids(page.Doctors))

	page, err = s.Search(ctx, DoctorQuery{Offset: 40})
	require.NoError(t, err)
	assert.Empty(t, page.Doctors)

	page, err = s.Search(ctx, DoctorQuery{Limit: math.MaxInt, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, page.Doctors, 11)
	assert.Equal(t, 2, page.Doctors[0].DoctorID)

	_, err = s.Search(ctx, DoctorQuery{Limit: -1})
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestGetDoctorNotFound(t *testing.T) {
	_, err := newDoctorService().GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
