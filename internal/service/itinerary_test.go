package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/service"
)

// ---- TripDays --------------------------------------------------------------

func TestTripDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"three day trip", date(2024, 6, 1), date(2024, 6, 3), 3},
		{"single day", date(2024, 6, 1), date(2024, 6, 1), 1},
		{"across month end", date(2024, 1, 30), date(2024, 2, 2), 4},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 3},
		{"inverted range", date(2024, 6, 3), date(2024, 6, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := domain.Trip{StartDate: tt.start, EndDate: tt.end}

			got := service.TripDays(trip)

			assert.Len(t, got, tt.want)
			assert.NotNil(t, got)
			if tt.want > 0 {
				assert.Equal(t, tt.start, got[0])
				assert.Equal(t, tt.end, got[len(got)-1])
			}
		})
	}
}

func TestTripDays_LengthMatchesDayDifference(t *testing.T) {
	start := date(2024, 1, 1)
	for n := 0; n < 60; n++ {
		trip := domain.Trip{StartDate: start, EndDate: start.AddDate(0, 0, n)}
		assert.Len(t, service.TripDays(trip), n+1, "span of %d days", n)
	}
}

func TestTripDays_IgnoresTimeOfDay(t *testing.T) {
	trip := domain.Trip{
		StartDate: time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 2, 6, 0, 0, 0, time.UTC),
	}

	got := service.TripDays(trip)

	assert.Equal(t, []time.Time{date(2024, 6, 1), date(2024, 6, 2)}, got)
}

// ---- ActivitiesForDay ------------------------------------------------------

func TestActivitiesForDay_FiltersAndSorts(t *testing.T) {
	activities := []domain.Activity{
		{Title: "lunch", Day: 2, StartTime: "12:30"},
		{Title: "day one", Day: 1, StartTime: "08:00"},
		{Title: "breakfast", Day: 2, StartTime: "08:00"},
		{Title: "no time", Day: 2},
		{Title: "dinner", Day: 2, StartTime: "19:00"},
	}

	got := service.ActivitiesForDay(activities, 2)

	titles := make([]string, len(got))
	for i, a := range got {
		titles[i] = a.Title
	}
	assert.Equal(t, []string{"no time", "breakfast", "lunch", "dinner"}, titles)
}

func TestActivitiesForDay_StableForEqualTimes(t *testing.T) {
	activities := []domain.Activity{
		{Title: "first", Day: 1, StartTime: "10:00"},
		{Title: "midnight", Day: 1, StartTime: "00:00"},
		{Title: "second", Day: 1, StartTime: "10:00"},
		{Title: "unset", Day: 1},
		{Title: "third", Day: 1, StartTime: "10:00"},
	}

	got := service.ActivitiesForDay(activities, 1)

	require.Len(t, got, 5)
	// "00:00" and an unset time tie; input order decides.
	assert.Equal(t, "midnight", got[0].Title)
	assert.Equal(t, "unset", got[1].Title)
	assert.Equal(t, "first", got[2].Title)
	assert.Equal(t, "second", got[3].Title)
	assert.Equal(t, "third", got[4].Title)
}

func TestActivitiesForDay_NoMatches(t *testing.T) {
	got := service.ActivitiesForDay([]domain.Activity{{Day: 1}}, 7)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestActivitiesForDay_DoesNotReorderInput(t *testing.T) {
	activities := []domain.Activity{
		{Title: "late", Day: 1, StartTime: "20:00"},
		{Title: "early", Day: 1, StartTime: "07:00"},
	}

	_ = service.ActivitiesForDay(activities, 1)

	assert.Equal(t, "late", activities[0].Title)
}

// ---- DaySummaries / BuildItinerary -----------------------------------------

func TestDaySummaries_CountsPerDay(t *testing.T) {
	trip := tripFixture()
	activities := []domain.Activity{
		{Day: 1}, {Day: 2}, {Day: 2}, {Day: 9}, {Day: 0},
	}

	got := service.DaySummaries(trip, activities)

	require.Len(t, got, 3)
	assert.Equal(t, domain.DaySummary{Day: 1, Date: date(2024, 6, 1), ActivityCount: 1}, got[0])
	assert.Equal(t, domain.DaySummary{Day: 2, Date: date(2024, 6, 2), ActivityCount: 2}, got[1])
	assert.Equal(t, domain.DaySummary{Day: 3, Date: date(2024, 6, 3), ActivityCount: 0}, got[2])
}

func TestBuildItinerary(t *testing.T) {
	trip := tripFixture()
	activities := []domain.Activity{
		{Title: "b", Day: 1, StartTime: "11:00"},
		{Title: "a", Day: 1, StartTime: "09:00"},
	}

	got := service.BuildItinerary(trip, activities)

	require.Len(t, got, 3)
	require.Len(t, got[0].Activities, 2)
	assert.Equal(t, "a", got[0].Activities[0].Title)
	assert.Equal(t, 2, got[0].ActivityCount)
	assert.Empty(t, got[2].Activities)
}

// ---- ItineraryService ------------------------------------------------------

func TestItineraryService_Scenario(t *testing.T) {
	store := newStore()
	trips := service.NewTripService(store.Trips())
	activities := service.NewActivityService(store.Activities())
	itinerary := service.NewItineraryService(store.Trips(), store.Activities())
	ctx := context.Background()

	trip, err := trips.Create(ctx, domain.Trip{
		Title:     "Weekend",
		StartDate: date(2024, 6, 1),
		EndDate:   date(2024, 6, 3),
	})
	require.NoError(t, err)
	assert.Len(t, service.TripDays(trip), 3)

	nine, err := activities.Create(ctx, trip.ID, 2, domain.Activity{Title: "Museum", StartTime: "09:00"})
	require.NoError(t, err)
	eight, err := activities.Create(ctx, trip.ID, 2, domain.Activity{Title: "Breakfast", StartTime: "08:00"})
	require.NoError(t, err)

	day2, err := itinerary.ActivitiesForDay(ctx, trip.ID, 2)
	require.NoError(t, err)
	require.Len(t, day2, 2)
	assert.Equal(t, eight.ID, day2[0].ID)
	assert.Equal(t, nine.ID, day2[1].ID)

	days, err := itinerary.Days(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, 0, days[0].ActivityCount)
	assert.Equal(t, 2, days[1].ActivityCount)

	// Counts are recomputed from the store, never cached.
	require.NoError(t, activities.Delete(ctx, nine.ID))
	days, err = itinerary.Days(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, days[1].ActivityCount)
}

func TestItineraryService_UnknownTrip(t *testing.T) {
	store := newStore()
	itinerary := service.NewItineraryService(store.Trips(), store.Activities())

	_, err := itinerary.Days(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = itinerary.Itinerary(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripDayCount_MatchesTripDays(t *testing.T) {
	for _, trip := range []domain.Trip{
		{StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 3)},
		{StartDate: date(2024, 2, 28), EndDate: date(2024, 3, 1)},
		{StartDate: date(2024, 6, 3), EndDate: date(2024, 6, 1)},
		{StartDate: date(2023, 12, 31), EndDate: date(2024, 12, 31)},
	} {
		assert.Equal(t, len(service.TripDays(trip)), service.TripDayCount(trip))
	}
}

func TestTripDayCount_FullCalendarRange(t *testing.T) {
	trip := domain.Trip{StartDate: date(1, 1, 1), EndDate: date(9999, 12, 31)}

	assert.Equal(t, 3652059, service.TripDayCount(trip))
}

func TestItineraryService_RefusesOversizedRange(t *testing.T) {
	store := newStore()
	trips := service.NewTripService(store.Trips())
	itinerary := service.NewItineraryService(store.Trips(), store.Activities())
	ctx := context.Background()

	// Storing the trip is fine; only the day views are refused.
	trip, err := trips.Create(ctx, domain.Trip{
		Title:     "Forever",
		StartDate: date(1, 1, 1),
		EndDate:   date(9999, 12, 31),
	})
	require.NoError(t, err)

	_, err = itinerary.Days(ctx, trip.ID)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = itinerary.Itinerary(ctx, trip.ID)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItineraryService_AcceptsLongestAllowedRange(t *testing.T) {
	store := newStore()
	trips := service.NewTripService(store.Trips())
	itinerary := service.NewItineraryService(store.Trips(), store.Activities())
	ctx := context.Background()

	start := date(2024, 1, 1)
	trip, err := trips.Create(ctx, domain.Trip{
		Title:     "Sabbatical",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, service.MaxTripDays-1),
	})
	require.NoError(t, err)

	days, err := itinerary.Days(ctx, trip.ID)

	require.NoError(t, err)
	assert.Len(t, days, service.MaxTripDays)
}
