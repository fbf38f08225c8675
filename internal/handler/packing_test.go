package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/handler"
)

// mockPackingServicer is a test double for handler.PackingServicer.
type mockPackingServicer struct {
	create       func(ctx context.Context, tripID uuid.UUID, it domain.PackingItem) (domain.PackingItem, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.PackingItem, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID, category *domain.PackingCategory) ([]domain.PackingItem, error)
	summary      func(ctx context.Context, tripID uuid.UUID) (domain.PackingSummary, error)
	update       func(ctx context.Context, id uuid.UUID, patch domain.PackingItemPatch) (domain.PackingItem, error)
	toggle       func(ctx context.Context, id uuid.UUID) (domain.PackingItem, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPackingServicer) Create(ctx context.Context, tripID uuid.UUID, it domain.PackingItem) (domain.PackingItem, error) {
	return m.create(ctx, tripID, it)
}
func (m *mockPackingServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.PackingItem, error) {
	return m.getByID(ctx, id)
}
func (m *mockPackingServicer) ListByTripID(ctx context.Context, tripID uuid.UUID, category *domain.PackingCategory) ([]domain.PackingItem, error) {
	return m.listByTripID(ctx, tripID, category)
}
func (m *mockPackingServicer) Summary(ctx context.Context, tripID uuid.UUID) (domain.PackingSummary, error) {
	return m.summary(ctx, tripID)
}
func (m *mockPackingServicer) Update(ctx context.Context, id uuid.UUID, patch domain.PackingItemPatch) (domain.PackingItem, error) {
	return m.update(ctx, id, patch)
}
func (m *mockPackingServicer) TogglePacked(ctx context.Context, id uuid.UUID) (domain.PackingItem, error) {
	return m.toggle(ctx, id)
}
func (m *mockPackingServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.PackingServicer = (*mockPackingServicer)(nil)

func TestCreatePackingItem_201_QuantityDefaultsToOne(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"omitted", `{"item":"Passport","category":"Documents"}`, 1},
		{"zero", `{"item":"Passport","category":"Documents","quantity":0}`, 1},
		{"explicit", `{"item":"Socks","category":"Clothing","quantity":4}`, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got domain.PackingItem
			svc := &mockPackingServicer{
				create: func(_ context.Context, tripID uuid.UUID, it domain.PackingItem) (domain.PackingItem, error) {
					got = it
					it.ID, it.TripID = uuid.New(), tripID
					return it, nil
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.New().String()+"/packing-items", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

			require.Equal(t, http.StatusCreated, rec.Code)
			assert.Equal(t, tc.want, got.Quantity)

			var resp handler.PackingItem
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.False(t, resp.IsPacked)
		})
	}
}

func TestListPackingItems_CategoryFilterForwarded(t *testing.T) {
	var gotCategory *domain.PackingCategory
	svc := &mockPackingServicer{
		listByTripID: func(_ context.Context, _ uuid.UUID, category *domain.PackingCategory) ([]domain.PackingItem, error) {
			gotCategory = category
			return []domain.PackingItem{{Item: "Charger", Category: domain.PackingElectronics, Quantity: 1}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String()+"/packing-items?category=Electronics", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotCategory)
	assert.Equal(t, domain.PackingElectronics, *gotCategory)
}

func TestListPackingItems_NoFilter(t *testing.T) {
	var called bool
	svc := &mockPackingServicer{
		listByTripID: func(_ context.Context, _ uuid.UUID, category *domain.PackingCategory) ([]domain.PackingItem, error) {
			called = true
			assert.Nil(t, category)
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String()+"/packing-items", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetPackingSummary_200(t *testing.T) {
	svc := &mockPackingServicer{
		summary: func(_ context.Context, _ uuid.UUID) (domain.PackingSummary, error) {
			return domain.PackingSummary{
				Progress: 67,
				Packed:   2,
				Total:    3,
				Categories: []domain.CategoryProgress{
					{Category: domain.PackingClothing, Packed: 2, Total: 3, Items: []domain.PackingItem{}},
				},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String()+"/packing", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.PackingSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 67, resp.Progress)
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, "Clothing", resp.Categories[0].Category)
}

func TestTogglePackingItem_200(t *testing.T) {
	id := uuid.New()
	svc := &mockPackingServicer{
		toggle: func(_ context.Context, got uuid.UUID) (domain.PackingItem, error) {
			return domain.PackingItem{ID: got, Item: "Passport", IsPacked: true, Quantity: 1}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/packing-items/"+id.String()+"/toggle", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.PackingItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, id, resp.ID)
	assert.True(t, resp.IsPacked)
}

func TestTogglePackingItem_404(t *testing.T) {
	svc := &mockPackingServicer{
		toggle: func(_ context.Context, _ uuid.UUID) (domain.PackingItem, error) {
			return domain.PackingItem{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/packing-items/"+uuid.New().String()+"/toggle", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "packing item not found", decodeError(t, rec).Error.Message)
}

func TestUpdatePackingItem_200(t *testing.T) {
	var gotPatch domain.PackingItemPatch
	svc := &mockPackingServicer{
		update: func(_ context.Context, id uuid.UUID, patch domain.PackingItemPatch) (domain.PackingItem, error) {
			gotPatch = patch
			return patch.Apply(domain.PackingItem{ID: id, Item: "Socks", Quantity: 1}), nil
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/packing-items/"+uuid.New().String(), strings.NewReader(`{"quantity":5}`))
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotPatch.Quantity)
	assert.Equal(t, 5, *gotPatch.Quantity)
	assert.Nil(t, gotPatch.IsPacked)
}

func TestDeletePackingItem_404(t *testing.T) {
	svc := &mockPackingServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}

	req := httptest.NewRequest(http.MethodDelete, "/packing-items/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
