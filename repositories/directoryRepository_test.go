package repositories

import (
	"MediCare/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bankIDs(bs []models.BloodBank) []string {
	ids := make([]string, len(bs))
	for i, b := range bs {
		ids[i] = b.ID
	}
	return ids
}

func labIDs(ls []models.LabCenter) []string {
	ids := make([]string, len(ls))
	for i, l := range ls {
		ids[i] = l.ID
	}
	return ids
}

func TestBloodBankFilterLocationIgnoresCase(t *testing.T) {
	repo := NewBloodBankRepository(models.SeedBloodBanks(time.Now()))

	got, err := repo.Filter(context.Background(), BloodBankFilter{Location: "chennai"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, bankIDs(got))
}

func TestBloodBankFilterSkipsEmptyStock(t *testing.T) {
	banks := models.SeedBloodBanks(time.Now())
	for i := range banks[0].BloodTypes {
		if banks[0].BloodTypes[i].Type == "AB-" {
			banks[0].BloodTypes[i].Quantity = 0
		}
	}
	repo := NewBloodBankRepository(banks)

	got, err := repo.Filter(context.Background(), BloodBankFilter{BloodType: "AB-", Location: "Chennai"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, bankIDs(got))
}

func TestLabCenterFilter(t *testing.T) {
	repo := NewLabCenterRepository(models.SeedLabCenters())
	ctx := context.Background()

	got, err := repo.Filter(ctx, LabCenterFilter{Query: "thyroid"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "5"}, labIDs(got))

	got, err = repo.Filter(ctx, LabCenterFilter{Location: "Chennai", Service: "MRI"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, labIDs(got))

	got, err = repo.Filter(ctx, LabCenterFilter{Query: "salem"})
	require.NoError(t, err)
	assert.Equal(t, []string{"6"}, labIDs(got))
}

func TestLabCenterGetByID(t *testing.T) {
	repo := NewLabCenterRepository(models.SeedLabCenters())

	lab, err := repo.GetByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Open 24 Hours", lab.OpeningHours)

	_, err = repo.GetByID(context.Background(), "42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentChatStep(t *testing.T) {
	repo := NewContentRepository()

	step, err := repo.ChatStep(context.Background(), models.ChatStartStep)
	require.NoError(t, err)
	assert.Equal(t, "options", step.Trigger)

	_, err = repo.ChatStep(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
