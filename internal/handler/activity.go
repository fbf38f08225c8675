package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/tripplanner/internal/domain"
)

// Location is the JSON representation of a domain.Location.
type Location struct {
	Address string `json:"address"`
}

// Activity is the JSON representation of a domain.Activity.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"tripId"`
	Day       int       `json:"day"`
	Title     string    `json:"title"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Location  Location  `json:"location"`
	Notes     string    `json:"notes"`
	Category  string    `json:"category"`
}

// CreateActivityRequest is the body of POST /trips/{tripID}/activities.
// Day defaults to 1 when omitted.
type CreateActivityRequest struct {
	Day       *int     `json:"day,omitempty"`
	Title     string   `json:"title"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Location  Location `json:"location"`
	Notes     string   `json:"notes"`
	Category  string   `json:"category"`
}

// UpdateActivityRequest is the body of PATCH /activities/{activityID}.
type UpdateActivityRequest struct {
	Day       *int      `json:"day,omitempty"`
	Title     *string   `json:"title,omitempty"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	Location  *Location `json:"location,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	Category  *string   `json:"category,omitempty"`
}

// ListActivities handles GET /trips/{tripID}/activities.
// Activities are returned in insertion order across all days.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}

	acts, err := s.activities.ListByTripID(r.Context(), tripID)
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, activitiesToResponse(acts))
}

// CreateActivity handles POST /trips/{tripID}/activities.
// The trip is not required to exist.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}
	var body CreateActivityRequest
	if err := decodeJSON(r, &body); err != nil {
		rejectBody(w, err)
		return
	}

	day := 1
	if body.Day != nil {
		day = *body.Day
	}
	created, err := s.activities.Create(r.Context(), tripID, day, domain.Activity{
		Title:     body.Title,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Location:  domain.Location{Address: body.Location.Address},
		Notes:     body.Notes,
		Category:  domain.ActivityCategory(body.Category),
	})
	if err != nil {
		s.fail(w, r, err, "activity")
		return
	}

	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// GetActivity handles GET /activities/{activityID}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "activityID")
	if err != nil {
		s.fail(w, r, err, "activity")
		return
	}

	a, err := s.activities.GetByID(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "activity")
		return
	}

	writeJSON(w, http.StatusOK, activityToResponse(a))
}

// UpdateActivity handles PATCH /activities/{activityID}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "activityID")
	if err != nil {
		s.fail(w, r, err, "activity")
		return
	}
	var body UpdateActivityRequest
	if err := decodeJSON(r, &body); err != nil {
		rejectBody(w, err)
		return
	}

	updated, err := s.activities.Update(r.Context(), id, requestToActivityPatch(body))
	if err != nil {
		s.fail(w, r, err, "activity")
		return
	}

	writeJSON(w, http.StatusOK, activityToResponse(updated))
}

// DeleteActivity handles DELETE /activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "activityID")
	if err != nil {
		s.fail(w, r, err, "activity")
		return
	}

	if err := s.activities.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err, "activity")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func requestToActivityPatch(body UpdateActivityRequest) domain.ActivityPatch {
	p := domain.ActivityPatch{
		Day:       body.Day,
		Title:     body.Title,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Notes:     body.Notes,
	}
	if body.Location != nil {
		p.Location = &domain.Location{Address: body.Location.Address}
	}
	if body.Category != nil {
		c := domain.ActivityCategory(*body.Category)
		p.Category = &c
	}
	return p
}

func activityToResponse(a domain.Activity) Activity {
	return Activity{
		ID:        a.ID,
		TripID:    a.TripID,
		Day:       a.Day,
		Title:     a.Title,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Location:  Location{Address: a.Location.Address},
		Notes:     a.Notes,
		Category:  string(a.Category),
	}
}

// activitiesToResponse always returns a non-nil slice so the body is [] not null.
func activitiesToResponse(acts []domain.Activity) []Activity {
	out := make([]Activity, len(acts))
	for i, a := range acts {
		out[i] = activityToResponse(a)
	}
	return out
}
