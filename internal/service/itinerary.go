package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/repo"
)

// defaultStartTime is the sort key for activities without a start time.
const defaultStartTime = "00:00"

// MaxTripDays is the longest date range ItineraryService will enumerate.
// Longer trips can still be stored; only their day views are refused.
const MaxTripDays = 3660

// TripDays enumerates the calendar days from trip.StartDate to trip.EndDate
// inclusive, as UTC midnights. An inverted range yields an empty slice.
// Day index d (1-based) refers to TripDays(trip)[d-1].
func TripDays(trip domain.Trip) []time.Time {
	start := midnight(trip.StartDate)
	end := midnight(trip.EndDate)

	days := []time.Time{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// TripDayCount returns len(TripDays(trip)) without building the slice.
func TripDayCount(trip domain.Trip) int {
	const secondsPerDay = 24 * 60 * 60
	n := (midnight(trip.EndDate).Unix()-midnight(trip.StartDate).Unix())/secondsPerDay + 1
	if n < 0 {
		return 0
	}
	return int(n)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ActivitiesForDay returns the activities whose Day equals day, ordered by
// StartTime. Times compare as strings, which is correct for zero-padded
// "HH:MM"; an empty StartTime sorts as "00:00". Equal times keep input order.
func ActivitiesForDay(activities []domain.Activity, day int) []domain.Activity {
	out := []domain.Activity{}
	for _, a := range activities {
		if a.Day == day {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Activity) int {
		return cmp.Compare(startKey(a), startKey(b))
	})
	return out
}

func startKey(a domain.Activity) string {
	if a.StartTime == "" {
		return defaultStartTime
	}
	return a.StartTime
}

// DaySummaries returns one entry per trip day with the number of activities
// assigned to that day index. Activities whose Day falls outside the trip's
// range are not counted anywhere.
func DaySummaries(trip domain.Trip, activities []domain.Activity) []domain.DaySummary {
	days := TripDays(trip)
	out := make([]domain.DaySummary, len(days))
	for i, date := range days {
		out[i] = domain.DaySummary{Day: i + 1, Date: date}
	}
	for _, a := range activities {
		if a.Day >= 1 && a.Day <= len(out) {
			out[a.Day-1].ActivityCount++
		}
	}
	return out
}

// BuildItinerary pairs every day summary with that day's ordered activities.
func BuildItinerary(trip domain.Trip, activities []domain.Activity) []domain.ItineraryDay {
	summaries := DaySummaries(trip, activities)
	out := make([]domain.ItineraryDay, len(summaries))
	for i, s := range summaries {
		out[i] = domain.ItineraryDay{
			DaySummary: s,
			Activities: ActivitiesForDay(activities, s.Day),
		}
	}
	return out
}

// ItineraryService builds day-indexed views of a trip's activities.
// Views are recomputed from the store on every call.
type ItineraryService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(trips repo.TripRepo, activities repo.ActivityRepo) *ItineraryService {
	return &ItineraryService{trips: trips, activities: activities}
}

// Days returns the day summaries for a trip.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrValidation if it spans more than MaxTripDays.
func (s *ItineraryService) Days(ctx context.Context, tripID uuid.UUID) ([]domain.DaySummary, error) {
	trip, activities, err := s.load(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Days: %w", err)
	}
	return DaySummaries(trip, activities), nil
}

// ActivitiesForDay returns a trip's activities for one day index, ordered by start time.
// The trip itself is not looked up; an unknown trip simply has no activities.
func (s *ItineraryService) ActivitiesForDay(ctx context.Context, tripID uuid.UUID, day int) ([]domain.Activity, error) {
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ActivitiesForDay: %w", err)
	}
	return ActivitiesForDay(activities, day), nil
}

// Itinerary returns every day of the trip with its ordered activities.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrValidation if it spans more than MaxTripDays.
func (s *ItineraryService) Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error) {
	trip, activities, err := s.load(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Itinerary: %w", err)
	}
	return BuildItinerary(trip, activities), nil
}

func (s *ItineraryService) load(ctx context.Context, tripID uuid.UUID) (domain.Trip, []domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, err
	}
	if n := TripDayCount(trip); n > MaxTripDays {
		return domain.Trip{}, nil, fmt.Errorf("%w: trip spans %d days, at most %d can be listed", domain.ErrValidation, n, MaxTripDays)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, err
	}
	return trip, activities, nil
}
