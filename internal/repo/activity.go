package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/tripplanner/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
// Activities reference their trip by ID only; nothing checks that the trip exists.
type ActivityRepo interface {
	// Create stores a new activity at the end of the collection and returns it with its ID.
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// GetByID returns domain.ErrNotFound if no activity with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)

	// List returns all activities in insertion order.
	List(ctx context.Context) ([]domain.Activity, error)

	// ListByTripID returns the activities of one trip in insertion order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// Update merges the patch over an existing activity and returns the full record.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, id uuid.UUID, patch domain.ActivityPatch) (domain.Activity, error)

	// Delete removes an activity. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, trip_id, day, title, start_time, end_time, location_address, notes, category`

func (r *pgActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (trip_id, day, title, start_time, end_time, location_address, notes, category)
		VALUES (@trip_id, @day, @title, @start_time, @end_time, @location_address, @notes, @category)
		RETURNING ` + activityColumns

	args := pgx.NamedArgs{
		"trip_id":          a.TripID,
		"day":              a.Day,
		"title":            a.Title,
		"start_time":       a.StartTime,
		"end_time":         a.EndTime,
		"location_address": a.Location.Address,
		"notes":            a.Notes,
		"category":         string(a.Category),
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE id = @id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities ORDER BY seq ASC`

	out, err := r.query(ctx, q, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.List: %w", err)
	}
	return out, nil
}

func (r *pgActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE trip_id = @trip_id ORDER BY seq ASC`

	out, err := r.query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}
	return out, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, id uuid.UUID, patch domain.ActivityPatch) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET day              = COALESCE(@day::integer, day),
		    title            = COALESCE(@title, title),
		    start_time       = COALESCE(@start_time, start_time),
		    end_time         = COALESCE(@end_time, end_time),
		    location_address = COALESCE(@location_address, location_address),
		    notes            = COALESCE(@notes, notes),
		    category         = COALESCE(@category, category)
		WHERE id = @id
		RETURNING ` + activityColumns

	var address *string
	if patch.Location != nil {
		address = &patch.Location.Address
	}
	var category *string
	if patch.Category != nil {
		c := string(*patch.Category)
		category = &c
	}

	args := pgx.NamedArgs{
		"id":               id,
		"day":              patch.Day,
		"title":            patch.Title,
		"start_time":       patch.StartTime,
		"end_time":         patch.EndTime,
		"location_address": address,
		"notes":            patch.Notes,
		"category":         category,
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgActivityRepo) query(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Activity, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a        domain.Activity
		id       pgtype.UUID
		tripID   pgtype.UUID
		category string
	)

	err := s.Scan(&id, &tripID, &a.Day, &a.Title, &a.StartTime, &a.EndTime, &a.Location.Address, &a.Notes, &category)
	if err != nil {
		return domain.Activity{}, notFoundOr(err)
	}

	a.ID = uuid.UUID(id.Bytes)
	a.TripID = uuid.UUID(tripID.Bytes)
	a.Category = domain.ActivityCategory(category)
	return a, nil
}
