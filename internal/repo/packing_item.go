package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/tripplanner/internal/domain"
)

// PackingItemRepo defines the persistence operations for PackingItems.
type PackingItemRepo interface {
	// Create stores a new item at the end of the collection and returns it with its ID.
	Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)

	// GetByID returns domain.ErrNotFound if no item with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.PackingItem, error)

	// List returns all items in insertion order.
	List(ctx context.Context) ([]domain.PackingItem, error)

	// ListByTripID returns the items of one trip in insertion order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error)

	// Update merges the patch over an existing item and returns the full record.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, id uuid.UUID, patch domain.PackingItemPatch) (domain.PackingItem, error)

	// Delete removes an item. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgPackingItemRepo struct {
	db db
}

// NewPackingItemRepo constructs a PackingItemRepo backed by the provided db connection.
func NewPackingItemRepo(db db) PackingItemRepo {
	return &pgPackingItemRepo{db: db}
}

const packingItemColumns = `id, trip_id, item, category, quantity, is_packed`

func (r *pgPackingItemRepo) Create(ctx context.Context, it domain.PackingItem) (domain.PackingItem, error) {
	const q = `
		INSERT INTO packing_items (trip_id, item, category, quantity, is_packed)
		VALUES (@trip_id, @item, @category, @quantity, @is_packed)
		RETURNING ` + packingItemColumns

	args := pgx.NamedArgs{
		"trip_id":   it.TripID,
		"item":      it.Item,
		"category":  string(it.Category),
		"quantity":  it.Quantity,
		"is_packed": it.IsPacked,
	}

	result, err := scanPackingItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingItemRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgPackingItemRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.PackingItem, error) {
	const q = `SELECT ` + packingItemColumns + ` FROM packing_items WHERE id = @id`

	result, err := scanPackingItem(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingItemRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgPackingItemRepo) List(ctx context.Context) ([]domain.PackingItem, error) {
	const q = `SELECT ` + packingItemColumns + ` FROM packing_items ORDER BY seq ASC`

	out, err := r.query(ctx, q, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("repo.PackingItemRepo.List: %w", err)
	}
	return out, nil
}

func (r *pgPackingItemRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	const q = `SELECT ` + packingItemColumns + ` FROM packing_items WHERE trip_id = @trip_id ORDER BY seq ASC`

	out, err := r.query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.PackingItemRepo.ListByTripID: %w", err)
	}
	return out, nil
}

func (r *pgPackingItemRepo) Update(ctx context.Context, id uuid.UUID, patch domain.PackingItemPatch) (domain.PackingItem, error) {
	const q = `
		UPDATE packing_items
		SET item      = COALESCE(@item, item),
		    category  = COALESCE(@category, category),
		    quantity  = COALESCE(@quantity::integer, quantity),
		    is_packed = COALESCE(@is_packed::boolean, is_packed)
		WHERE id = @id
		RETURNING ` + packingItemColumns

	var category *string
	if patch.Category != nil {
		c := string(*patch.Category)
		category = &c
	}

	args := pgx.NamedArgs{
		"id":        id,
		"item":      patch.Item,
		"category":  category,
		"quantity":  patch.Quantity,
		"is_packed": patch.IsPacked,
	}

	result, err := scanPackingItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingItemRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgPackingItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM packing_items WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.PackingItemRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackingItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgPackingItemRepo) query(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.PackingItem, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PackingItem
	for rows.Next() {
		it, err := scanPackingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func scanPackingItem(s scanner) (domain.PackingItem, error) {
	var (
		it       domain.PackingItem
		id       pgtype.UUID
		tripID   pgtype.UUID
		category string
	)

	err := s.Scan(&id, &tripID, &it.Item, &category, &it.Quantity, &it.IsPacked)
	if err != nil {
		return domain.PackingItem{}, notFoundOr(err)
	}

	it.ID = uuid.UUID(id.Bytes)
	it.TripID = uuid.UUID(tripID.Bytes)
	it.Category = domain.PackingCategory(category)
	return it, nil
}
