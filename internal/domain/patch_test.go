package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripplanner/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestTripPatch_Apply_OnlySetFields(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	orig := domain.Trip{
		ID:          uuid.New(),
		Title:       "Paris",
		Destination: "France",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		CoverImage:  "cover.jpg",
	}

	got := domain.TripPatch{Title: strPtr("Paris & Lyon")}.Apply(orig)

	assert.Equal(t, "Paris & Lyon", got.Title)
	assert.Equal(t, orig.Destination, got.Destination)
	assert.Equal(t, orig.StartDate, got.StartDate)
	assert.Equal(t, orig.EndDate, got.EndDate)
	assert.Equal(t, orig.CoverImage, got.CoverImage)
	// The original value is a snapshot and must not change.
	assert.Equal(t, "Paris", orig.Title)
}

func TestActivityPatch_Apply_ReplacesLocationWhole(t *testing.T) {
	orig := domain.Activity{Title: "Louvre", Location: domain.Location{Address: "Rue de Rivoli"}}
	empty := domain.Location{}

	got := domain.ActivityPatch{Location: &empty}.Apply(orig)

	assert.Equal(t, "", got.Location.Address)
	assert.Equal(t, "Louvre", got.Title)
}

func TestPackingItemPatch_Apply_IsPacked(t *testing.T) {
	packed := true
	orig := domain.PackingItem{Item: "Charger", Quantity: 2}

	got := domain.PackingItemPatch{IsPacked: &packed}.Apply(orig)

	assert.True(t, got.IsPacked)
	assert.Equal(t, 2, got.Quantity)
	assert.False(t, orig.IsPacked)
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = domain.ParseDate("06/01/2024")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
