package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/tripplanner/internal/domain"
)

// PackingItem is the JSON representation of a domain.PackingItem.
type PackingItem struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"tripId"`
	Item     string    `json:"item"`
	Category string    `json:"category"`
	Quantity int       `json:"quantity"`
	IsPacked bool      `json:"isPacked"`
}

// CreatePackingItemRequest is the body of POST /trips/{tripID}/packing-items.
// A missing or zero quantity is stored as 1.
type CreatePackingItemRequest struct {
	Item     string `json:"item"`
	Category string `json:"category"`
	Quantity *int   `json:"quantity,omitempty"`
}

// UpdatePackingItemRequest is the body of PATCH /packing-items/{itemID}.
type UpdatePackingItemRequest struct {
	Item     *string `json:"item,omitempty"`
	Category *string `json:"category,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
	IsPacked *bool   `json:"isPacked,omitempty"`
}

// CategoryProgress is the JSON representation of a domain.CategoryProgress.
type CategoryProgress struct {
	Category string        `json:"category"`
	Packed   int           `json:"packed"`
	Total    int           `json:"total"`
	Items    []PackingItem `json:"items"`
}

// PackingSummary is the body of GET /trips/{tripID}/packing.
type PackingSummary struct {
	Progress   int                `json:"progress"`
	Packed     int                `json:"packed"`
	Total      int                `json:"total"`
	Categories []CategoryProgress `json:"categories"`
}

// ListPackingItems handles GET /trips/{tripID}/packing-items.
// ?category= narrows the list to one packing category.
func (s *Server) ListPackingItems(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}
	q, err := bindListPackingItemsParams(r)
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}

	var category *domain.PackingCategory
	if q.Category != nil {
		c := domain.PackingCategory(*q.Category)
		category = &c
	}
	items, err := s.packing.ListByTripID(r.Context(), tripID, category)
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, packingItemsToResponse(items))
}

// CreatePackingItem handles POST /trips/{tripID}/packing-items.
// New items always start unpacked.
func (s *Server) CreatePackingItem(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}
	var body CreatePackingItemRequest
	if err := decodeJSON(r, &body); err != nil {
		rejectBody(w, err)
		return
	}

	quantity := 1
	if body.Quantity != nil && *body.Quantity != 0 {
		quantity = *body.Quantity
	}
	created, err := s.packing.Create(r.Context(), tripID, domain.PackingItem{
		Item:     body.Item,
		Category: domain.PackingCategory(body.Category),
		Quantity: quantity,
	})
	if err != nil {
		s.fail(w, r, err, "packing item")
		return
	}

	writeJSON(w, http.StatusCreated, packingItemToResponse(created))
}

// GetPackingSummary handles GET /trips/{tripID}/packing.
func (s *Server) GetPackingSummary(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}

	sum, err := s.packing.Summary(r.Context(), tripID)
	if err != nil {
		s.fail(w, r, err, "trip")
		return
	}

	cats := make([]CategoryProgress, len(sum.Categories))
	for i, c := range sum.Categories {
		cats[i] = CategoryProgress{
			Category: string(c.Category),
			Packed:   c.Packed,
			Total:    c.Total,
			Items:    packingItemsToResponse(c.Items),
		}
	}
	writeJSON(w, http.StatusOK, PackingSummary{
		Progress:   sum.Progress,
		Packed:     sum.Packed,
		Total:      sum.Total,
		Categories: cats,
	})
}

// GetPackingItem handles GET /packing-items/{itemID}.
func (s *Server) GetPackingItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "itemID")
	if err != nil {
		s.fail(w, r, err, "packing item")
		return
	}

	it, err := s.packing.GetByID(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "packing item")
		return
	}

	writeJSON(w, http.StatusOK, packingItemToResponse(it))
}

// UpdatePackingItem handles PATCH /packing-items/{itemID}.
func (s *Server) UpdatePackingItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "itemID")
	if err != nil {
		s.fail(w, r, err, "packing item")
		return
	}
	var body UpdatePackingItemRequest
	if err := decodeJSON(r, &body); err != nil {
		rejectBody(w, err)
		return
	}

	p := domain.PackingItemPatch{
		Item:     body.Item,
		Quantity: body.Quantity,
		IsPacked: body.IsPacked,
	}
	if body.Category != nil {
		c := domain.PackingCategory(*body.Category)
		p.Category = &c
	}
	updated, err := s.packing.Update(r.Context(), id, p)
	if err != nil {
		s.fail(w, r, err, "packing item")
		return
	}

	writeJSON(w, http.StatusOK, packingItemToResponse(updated))
}

// TogglePackingItem handles POST /packing-items/{itemID}/toggle.
// It flips isPacked and returns the stored item.
func (s *Server) TogglePackingItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "itemID")
	if err != nil {
		s.fail(w, r, err, "packing item")
		return
	}

	toggled, err := s.packing.TogglePacked(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "packing item")
		return
	}

	writeJSON(w, http.StatusOK, packingItemToResponse(toggled))
}

// DeletePackingItem handles DELETE /packing-items/{itemID}.
func (s *Server) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "itemID")
	if err != nil {
		s.fail(w, r, err, "packing item")
		return
	}

	if err := s.packing.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err, "packing item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func packingItemToResponse(it domain.PackingItem) PackingItem {
	return PackingItem{
		ID:       it.ID,
		TripID:   it.TripID,
		Item:     it.Item,
		Category: string(it.Category),
		Quantity: it.Quantity,
		IsPacked: it.IsPacked,
	}
}

func packingItemsToResponse(items []domain.PackingItem) []PackingItem {
	out := make([]PackingItem, len(items))
	for i, it := range items {
		out[i] = packingItemToResponse(it)
	}
	return out
}
