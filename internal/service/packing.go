package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/repo"
)

// ItemsByCategory returns the items whose category matches exactly.
func ItemsByCategory(items []domain.PackingItem, category domain.PackingCategory) []domain.PackingItem {
	out := []domain.PackingItem{}
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Progress returns the percentage of packed items, rounded half-up.
// An empty list is 0% packed.
func Progress(items []domain.PackingItem) int {
	return percent(countPacked(items), len(items))
}

// percent computes round(100*part/total) half-up in integer arithmetic.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}

func countPacked(items []domain.PackingItem) int {
	n := 0
	for _, it := range items {
		if it.IsPacked {
			n++
		}
	}
	return n
}

// CategoryBreakdown groups items under each of the fixed packing categories,
// in display order. Categories with no items are still listed. Items with a
// category outside the fixed set are left out of the breakdown.
func CategoryBreakdown(items []domain.PackingItem) []domain.CategoryProgress {
	out := make([]domain.CategoryProgress, 0, len(domain.PackingCategories))
	for _, c := range domain.PackingCategories {
		in := ItemsByCategory(items, c)
		out = append(out, domain.CategoryProgress{
			Category: c,
			Packed:   countPacked(in),
			Total:    len(in),
			Items:    in,
		})
	}
	return out
}

// Summarize builds the overall and per-category packing progress.
func Summarize(items []domain.PackingItem) domain.PackingSummary {
	return domain.PackingSummary{
		Progress:   Progress(items),
		Packed:     countPacked(items),
		Total:      len(items),
		Categories: CategoryBreakdown(items),
	}
}

// PackingService implements business logic for PackingItem operations.
type PackingService struct {
	items repo.PackingItemRepo
}

// NewPackingService constructs a PackingService backed by the provided repo.
func NewPackingService(r repo.PackingItemRepo) *PackingService {
	return &PackingService{items: r}
}

// Create adds an unpacked item to a trip's packing list.
func (s *PackingService) Create(ctx context.Context, tripID uuid.UUID, item domain.PackingItem) (domain.PackingItem, error) {
	item.TripID = tripID
	item.IsPacked = false

	result, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns domain.ErrNotFound if no item with that ID exists.
func (s *PackingService) GetByID(ctx context.Context, id uuid.UUID) (domain.PackingItem, error) {
	result, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns a trip's items in insertion order, restricted to
// category when it is non-nil. Always returns a non-nil slice.
func (s *PackingService) ListByTripID(ctx context.Context, tripID uuid.UUID, category *domain.PackingCategory) ([]domain.PackingItem, error) {
	items, err := s.items.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PackingService.ListByTripID: %w", err)
	}
	if category != nil {
		return ItemsByCategory(items, *category), nil
	}
	if items == nil {
		return []domain.PackingItem{}, nil
	}
	return items, nil
}

// Summary returns the packing progress for a trip.
func (s *PackingService) Summary(ctx context.Context, tripID uuid.UUID) (domain.PackingSummary, error) {
	items, err := s.items.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.PackingSummary{}, fmt.Errorf("service.PackingService.Summary: %w", err)
	}
	return Summarize(items), nil
}

// Update merges patch over an existing item.
func (s *PackingService) Update(ctx context.Context, id uuid.UUID, patch domain.PackingItemPatch) (domain.PackingItem, error) {
	result, err := s.items.Update(ctx, id, patch)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.Update: %w", err)
	}
	return result, nil
}

// TogglePacked flips an item between packed and unpacked and returns the
// stored result. The read and the write are separate store calls, so two
// rapid toggles on the same item resolve last-write-wins.
func (s *PackingService) TogglePacked(ctx context.Context, id uuid.UUID) (domain.PackingItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.TogglePacked: %w", err)
	}

	packed := !item.IsPacked
	result, err := s.items.Update(ctx, id, domain.PackingItemPatch{IsPacked: &packed})
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.TogglePacked: %w", err)
	}
	return result, nil
}

// Delete removes an item by ID.
func (s *PackingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PackingService.Delete: %w", err)
	}
	return nil
}
