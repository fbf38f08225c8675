// Package seed loads the fixture collections that form the store's initial state.
// Fixtures are JSON files embedded at compile time.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/repo"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Data is the decoded fixture set, in file order.
// Trips are listed most recent first, matching the store's list order.
type Data struct {
	Trips        []domain.Trip
	Activities   []domain.Activity
	PackingItems []domain.PackingItem
}

type tripRecord struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	CoverImage  string    `json:"coverImage"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type activityRecord struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"tripId"`
	Day       int       `json:"day"`
	Title     string    `json:"title"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Location  struct {
		Address string `json:"address"`
	} `json:"location"`
	Notes    string `json:"notes"`
	Category string `json:"category"`
}

type packingItemRecord struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"tripId"`
	Item     string    `json:"item"`
	Category string    `json:"category"`
	Quantity int       `json:"quantity"`
	IsPacked bool      `json:"isPacked"`
}

// Load decodes the embedded fixtures.
func Load() (Data, error) {
	var (
		trips      []tripRecord
		activities []activityRecord
		items      []packingItemRecord
	)
	if err := decode("fixtures/trips.json", &trips); err != nil {
		return Data{}, err
	}
	if err := decode("fixtures/activities.json", &activities); err != nil {
		return Data{}, err
	}
	if err := decode("fixtures/packing_items.json", &items); err != nil {
		return Data{}, err
	}

	var d Data
	for _, r := range trips {
		t, err := r.toDomain()
		if err != nil {
			return Data{}, fmt.Errorf("seed.Load: trip %s: %w", r.ID, err)
		}
		d.Trips = append(d.Trips, t)
	}
	for _, r := range activities {
		d.Activities = append(d.Activities, domain.Activity{
			ID:        r.ID,
			TripID:    r.TripID,
			Day:       r.Day,
			Title:     r.Title,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Location:  domain.Location{Address: r.Location.Address},
			Notes:     r.Notes,
			Category:  domain.ActivityCategory(r.Category),
		})
	}
	for _, r := range items {
		d.PackingItems = append(d.PackingItems, domain.PackingItem{
			ID:       r.ID,
			TripID:   r.TripID,
			Item:     r.Item,
			Category: domain.PackingCategory(r.Category),
			Quantity: r.Quantity,
			IsPacked: r.IsPacked,
		})
	}
	return d, nil
}

func decode(name string, v any) error {
	b, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("seed.Load: read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("seed.Load: decode %s: %w", name, err)
	}
	return nil
}

func (r tripRecord) toDomain() (domain.Trip, error) {
	start, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return domain.Trip{}, err
	}
	end, err := domain.ParseDate(r.EndDate)
	if err != nil {
		return domain.Trip{}, err
	}
	return domain.Trip{
		ID:          r.ID,
		Title:       r.Title,
		Destination: r.Destination,
		StartDate:   start,
		EndDate:     end,
		CoverImage:  r.CoverImage,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

// Into replaces the contents of an in-memory store with d, keeping fixture IDs.
func (d Data) Into(store *repo.MemoryStore) {
	store.Load(d.Trips, d.Activities, d.PackingItems)
}

// Insert writes d through the given repos, which assign fresh IDs.
// Activity and packing-item trip references are rewritten to the new trip IDs;
// references to trips not in the fixtures are kept as-is.
// Trips are created oldest first so the store's most-recent-first order
// matches the fixture order.
func (d Data) Insert(ctx context.Context, trips repo.TripRepo, activities repo.ActivityRepo, items repo.PackingItemRepo) error {
	ids := make(map[uuid.UUID]uuid.UUID, len(d.Trips))
	for i := len(d.Trips) - 1; i >= 0; i-- {
		t := d.Trips[i]
		created, err := trips.Create(ctx, t)
		if err != nil {
			return fmt.Errorf("seed.Insert: trip %q: %w", t.Title, err)
		}
		ids[t.ID] = created.ID
	}

	remap := func(id uuid.UUID) uuid.UUID {
		if n, ok := ids[id]; ok {
			return n
		}
		return id
	}

	for _, a := range d.Activities {
		a.TripID = remap(a.TripID)
		if _, err := activities.Create(ctx, a); err != nil {
			return fmt.Errorf("seed.Insert: activity %q: %w", a.Title, err)
		}
	}
	for _, it := range d.PackingItems {
		it.TripID = remap(it.TripID)
		if _, err := items.Create(ctx, it); err != nil {
			return fmt.Errorf("seed.Insert: packing item %q: %w", it.Item, err)
		}
	}
	return nil
}

// TxBeginner is implemented by *pgxpool.Pool and *pgx.Conn.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// InsertTx runs Insert against the Postgres repos inside one transaction.
// Either every fixture is written or none is.
func (d Data) InsertTx(ctx context.Context, db TxBeginner) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed.InsertTx: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := d.Insert(ctx, repo.NewTripRepo(tx), repo.NewActivityRepo(tx), repo.NewPackingItemRepo(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("seed.InsertTx: commit: %w", err)
	}
	return nil
}
