package domain

import "github.com/google/uuid"

// PackingCategory groups packing items on the checklist.
type PackingCategory string

const (
	PackingClothing    PackingCategory = "Clothing"
	PackingElectronics PackingCategory = "Electronics"
	PackingDocuments   PackingCategory = "Documents"
	PackingToiletries  PackingCategory = "Toiletries"
	PackingOther       PackingCategory = "Other"
)

// PackingCategories lists every packing category in display order.
var PackingCategories = []PackingCategory{
	PackingClothing,
	PackingElectronics,
	PackingDocuments,
	PackingToiletries,
	PackingOther,
}

// PackingItem is a checklist entry for trip preparation.
// IsPacked starts false and is normally flipped by a toggle.
type PackingItem struct {
	ID       uuid.UUID
	TripID   uuid.UUID
	Item     string
	Category PackingCategory
	Quantity int
	IsPacked bool
}

// PackingItemPatch is a partial update for a PackingItem. Nil fields are left unchanged.
type PackingItemPatch struct {
	Item     *string
	Category *PackingCategory
	Quantity *int
	IsPacked *bool
}

// Apply returns a copy of it with every non-nil field of p written over it.
func (p PackingItemPatch) Apply(it PackingItem) PackingItem {
	if p.Item != nil {
		it.Item = *p.Item
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Quantity != nil {
		it.Quantity = *p.Quantity
	}
	if p.IsPacked != nil {
		it.IsPacked = *p.IsPacked
	}
	return it
}
