package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/tripplanner/internal/domain"
)

// DaySummary is one entry of GET /trips/{tripID}/days.
type DaySummary struct {
	Day           int                `json:"day"`
	Date          openapi_types.Date `json:"date"`
	ActivityCount int                `json:"activityCount"`
}

// ItineraryDay is one entry of GET /trips/{tripID}/itinerary.
type ItineraryDay struct {
	DaySummary
	Activities []Activity `json:"activities"`
}

// ListDays handles GET /trips/{tripID}/days.
// An inverted date range yields an empty list.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}

	days, err := s.itinerary.Days(r.Context(), tripID)
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}

	out := make([]DaySummary, len(days))
	for i, d := range days {
		out[i] = daySummaryToResponse(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// ListActivitiesForDay handles GET /trips/{tripID}/days/{day}/activities.
// Activities are ordered by start time; an empty start time sorts as "00:00".
func (s *Server) ListActivitiesForDay(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}
	day, err := pathInt(r, "day")
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}

	acts, err := s.itinerary.ActivitiesForDay(r.Context(), tripID, day)
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, activitiesToResponse(acts))
}

// GetItinerary handles GET /trips/{tripID}/itinerary.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}

	days, err := s.itinerary.Itinerary(r.Context(), tripID)
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}

	out := make([]ItineraryDay, len(days))
	for i, d := range days {
		out[i] = ItineraryDay{
			DaySummary: daySummaryToResponse(d.DaySummary),
			Activities: activitiesToResponse(d.Activities),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func daySummaryToResponse(d domain.DaySummary) DaySummary {
	return DaySummary{
		Day:           d.Day,
		Date:          openapi_types.Date{Time: d.Date},
		ActivityCount: d.ActivityCount,
	}
}
