package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/handler"
)

// mockItineraryServicer is a test double for handler.ItineraryServicer.
type mockItineraryServicer struct {
	days             func(ctx context.Context, tripID uuid.UUID) ([]domain.DaySummary, error)
	activitiesForDay func(ctx context.Context, tripID uuid.UUID, day int) ([]domain.Activity, error)
	itinerary        func(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error)
}

func (m *mockItineraryServicer) Days(ctx context.Context, tripID uuid.UUID) ([]domain.DaySummary, error) {
	return m.days(ctx, tripID)
}
func (m *mockItineraryServicer) ActivitiesForDay(ctx context.Context, tripID uuid.UUID, day int) ([]domain.Activity, error) {
	return m.activitiesForDay(ctx, tripID, day)
}
func (m *mockItineraryServicer) Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error) {
	return m.itinerary(ctx, tripID)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

func TestListDays_200(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := &mockItineraryServicer{
		days: func(_ context.Context, _ uuid.UUID) ([]domain.DaySummary, error) {
			return []domain.DaySummary{
				{Day: 1, Date: start, ActivityCount: 2},
				{Day: 2, Date: start.AddDate(0, 0, 1), ActivityCount: 0},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String()+"/days", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, svc, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"day":1,"date":"2024-06-01","activityCount":2},
		{"day":2,"date":"2024-06-02","activityCount":0}
	]`, rec.Body.String())
}

func TestListDays_404(t *testing.T) {
	svc := &mockItineraryServicer{
		days: func(_ context.Context, _ uuid.UUID) ([]domain.DaySummary, error) {
			return nil, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String()+"/days", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, svc, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListActivitiesForDay_BindsDay(t *testing.T) {
	var gotDay int
	svc := &mockItineraryServicer{
		activitiesForDay: func(_ context.Context, _ uuid.UUID, day int) ([]domain.Activity, error) {
			gotDay = day
			return []domain.Activity{{Title: "Louvre", Day: day, StartTime: "09:00"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String()+"/days/2/activities", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, svc, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, gotDay)

	var resp []handler.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Louvre", resp[0].Title)
}

func TestListActivitiesForDay_422_NonNumericDay(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String()+"/days/two/activities", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, &mockItineraryServicer{}, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetItinerary_200(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := &mockItineraryServicer{
		itinerary: func(_ context.Context, _ uuid.UUID) ([]domain.ItineraryDay, error) {
			return []domain.ItineraryDay{{
				DaySummary: domain.DaySummary{Day: 1, Date: start, ActivityCount: 1},
				Activities: []domain.Activity{{Title: "Louvre", Day: 1}},
			}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String()+"/itinerary", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, svc, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []handler.ItineraryDay
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 1, resp[0].Day)
	assert.Equal(t, 1, resp[0].ActivityCount)
	require.Len(t, resp[0].Activities, 1)
}
