// Package handler implements the HTTP handlers for the Trip Planner API.
// All handlers are methods on Server. Methods are split into resource files
// (trip.go, activity.go, etc.) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/tripplanner/internal/domain"
)

// TripServicer defines the trip operations the handlers depend on.
// Interfaces live here, in the consumer package, so handler tests can inject
// mocks without touching the store.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityServicer defines the activity operations the handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, day int, activity domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ActivityPatch) (domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItineraryServicer defines the day-indexed views the handlers depend on.
type ItineraryServicer interface {
	Days(ctx context.Context, tripID uuid.UUID) ([]domain.DaySummary, error)
	ActivitiesForDay(ctx context.Context, tripID uuid.UUID, day int) ([]domain.Activity, error)
	Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error)
}

// PackingServicer defines the packing-list operations the handlers depend on.
type PackingServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, item domain.PackingItem) (domain.PackingItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.PackingItem, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID, category *domain.PackingCategory) ([]domain.PackingItem, error)
	Summary(ctx context.Context, tripID uuid.UUID) (domain.PackingSummary, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.PackingItemPatch) (domain.PackingItem, error)
	TogglePacked(ctx context.Context, id uuid.UUID) (domain.PackingItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Server holds the handler dependencies.
type Server struct {
	log        *slog.Logger
	trips      TripServicer
	activities ActivityServicer
	itinerary  ItineraryServicer
	packing    PackingServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(log *slog.Logger, trips TripServicer, activities ActivityServicer, itinerary ItineraryServicer, packing PackingServicer) *Server {
	return &Server{
		log:        log,
		trips:      trips,
		activities: activities,
		itinerary:  itinerary,
		packing:    packing,
	}
}

// Routes returns a chi router with every API endpoint registered.
// Cross-cutting middleware (request IDs, logging, CORS) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Patch("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Get("/days", s.ListDays)
			r.Get("/days/{day}/activities", s.ListActivitiesForDay)
			r.Get("/itinerary", s.GetItinerary)

			r.Get("/activities", s.ListActivities)
			r.Post("/activities", s.CreateActivity)

			r.Get("/packing-items", s.ListPackingItems)
			r.Post("/packing-items", s.CreatePackingItem)
			r.Get("/packing", s.GetPackingSummary)
		})
	})

	r.Route("/activities/{activityID}", func(r chi.Router) {
		r.Get("/", s.GetActivity)
		r.Patch("/", s.UpdateActivity)
		r.Delete("/", s.DeleteActivity)
	})

	r.Route("/packing-items/{itemID}", func(r chi.Router) {
		r.Get("/", s.GetPackingItem)
		r.Patch("/", s.UpdatePackingItem)
		r.Delete("/", s.DeletePackingItem)
		r.Post("/toggle", s.TogglePackingItem)
	})

	return r
}
