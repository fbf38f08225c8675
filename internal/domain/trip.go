// Package domain contains the core data types for the Trip Planner application.
// This package depends only on uuid and is imported by every other internal
// package (repo, service, handler, seed).
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used for trip start and end dates
// in fixtures and on the wire.
const DateLayout = "2006-01-02"

// Trip is the top-level planning entity: a destination and a date range.
// Activities and packing items reference a trip by ID only.
// StartDate <= EndDate is expected but never enforced.
type Trip struct {
	ID          uuid.UUID
	Title       string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	CoverImage  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TripPatch is a partial update for a Trip. Nil fields are left unchanged.
type TripPatch struct {
	Title       *string
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	CoverImage  *string
}

// Apply returns a copy of t with every non-nil field of p written over it.
// Timestamps are not touched; the store owns UpdatedAt.
func (p TripPatch) Apply(t Trip) Trip {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	if p.CoverImage != nil {
		t.CoverImage = *p.CoverImage
	}
	return t
}

// ParseDate parses a "2006-01-02" calendar date as UTC midnight.
// Returns ErrValidation for malformed input.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, s)
	}
	return d, nil
}
