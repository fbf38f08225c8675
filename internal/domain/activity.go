package domain

import "github.com/google/uuid"

// ActivityCategory classifies an itinerary entry.
type ActivityCategory string

const (
	ActivitySightseeing ActivityCategory = "Sightseeing"
	ActivityFood        ActivityCategory = "Food"
	ActivityTransport   ActivityCategory = "Transport"
	ActivityActivity    ActivityCategory = "Activity"
	ActivityRest        ActivityCategory = "Rest"
)

// ActivityCategories lists every activity category in display order.
var ActivityCategories = []ActivityCategory{
	ActivitySightseeing,
	ActivityFood,
	ActivityTransport,
	ActivityActivity,
	ActivityRest,
}

// Location is where an activity takes place. Only a free-form address is kept.
type Location struct {
	Address string
}

// Activity is a scheduled itinerary entry within a trip.
//
// Day is the 1-based day index chosen by the user when the activity was added.
// It is not derived from a date and is not checked against the trip's length.
// StartTime and EndTime are zero-padded "HH:MM" strings.
type Activity struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Day       int
	Title     string
	StartTime string
	EndTime   string
	Location  Location
	Notes     string
	Category  ActivityCategory
}

// ActivityPatch is a partial update for an Activity. Nil fields are left
// unchanged. Location replaces the whole nested value when set.
type ActivityPatch struct {
	Day       *int
	Title     *string
	StartTime *string
	EndTime   *string
	Location  *Location
	Notes     *string
	Category  *ActivityCategory
}

// Apply returns a copy of a with every non-nil field of p written over it.
func (p ActivityPatch) Apply(a Activity) Activity {
	if p.Day != nil {
		a.Day = *p.Day
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.StartTime != nil {
		a.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		a.EndTime = *p.EndTime
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	return a
}
