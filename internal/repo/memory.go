package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tripplanner/internal/domain"
)

// Clock abstracts time retrieval so timestamps are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator abstracts unique ID generation so tests are deterministic.
type IDGenerator interface {
	New() uuid.UUID
}

// UUIDGenerator produces random (v4) UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() uuid.UUID { return uuid.New() }

// Latency is the artificial delay applied before each in-memory operation,
// standing in for a network round-trip. The zero value disables all delays.
type Latency struct {
	List   time.Duration
	Get    time.Duration
	Create time.Duration
	Update time.Duration
	Delete time.Duration
}

// DefaultLatency returns the per-operation delays of the simulated remote API.
func DefaultLatency() Latency {
	return Latency{
		List:   300 * time.Millisecond,
		Get:    200 * time.Millisecond,
		Create: 400 * time.Millisecond,
		Update: 300 * time.Millisecond,
		Delete: 250 * time.Millisecond,
	}
}

// wait blocks for d. It deliberately ignores context cancellation: once an
// operation has started, its side effect on the collection always happens.
func wait(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// collection is an ordered, mutex-guarded slice of value records.
// The mutex only protects the slice itself; a read-modify-write spanning two
// calls is not serialised, so concurrent writers resolve last-write-wins.
type collection[T any] struct {
	mu    sync.Mutex
	items []T
	id    func(T) uuid.UUID
}

func newCollection[T any](id func(T) uuid.UUID) *collection[T] {
	return &collection[T]{id: id}
}

// all returns a copy of the collection, optionally filtered by keep.
// The result is never nil.
func (c *collection[T]) all(keep func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, 0, len(c.items))
	for _, v := range c.items {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (c *collection[T]) find(id uuid.UUID) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range c.items {
		if c.id(v) == id {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) prepend(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{v}, c.items...)
}

func (c *collection[T]) append(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, v)
}

// replace swaps the record with the given id for fn(record) in place.
// Reports false, leaving the collection untouched, when the id is absent.
func (c *collection[T]) replace(id uuid.UUID, fn func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, v := range c.items {
		if c.id(v) == id {
			c.items[i] = fn(v)
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) remove(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, v := range c.items {
		if c.id(v) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// MemoryStore owns the in-memory trip, activity, and packing-item collections.
// Construct one per process and hand its repos to the services.
type MemoryStore struct {
	trips      *collection[domain.Trip]
	activities *collection[domain.Activity]
	items      *collection[domain.PackingItem]

	latency Latency
	clock   Clock
	ids     IDGenerator
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithLatency overrides the simulated per-operation latency.
// Pass Latency{} to disable delays entirely.
func WithLatency(l Latency) MemoryOption {
	return func(s *MemoryStore) { s.latency = l }
}

// WithClock overrides the clock used for trip timestamps.
func WithClock(c Clock) MemoryOption {
	return func(s *MemoryStore) { s.clock = c }
}

// WithIDGenerator overrides the ID source for new records.
func WithIDGenerator(g IDGenerator) MemoryOption {
	return func(s *MemoryStore) { s.ids = g }
}

// NewMemoryStore returns an empty store with DefaultLatency, the real clock,
// and random UUIDs unless overridden by opts.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		trips:      newCollection(func(t domain.Trip) uuid.UUID { return t.ID }),
		activities: newCollection(func(a domain.Activity) uuid.UUID { return a.ID }),
		items:      newCollection(func(it domain.PackingItem) uuid.UUID { return it.ID }),
		latency:    DefaultLatency(),
		clock:      RealClock{},
		ids:        UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the store's contents with the given records, kept in the
// order supplied. It is the bootstrap path for seed fixtures and applies no
// latency, ID assignment, or timestamping.
func (s *MemoryStore) Load(trips []domain.Trip, activities []domain.Activity, items []domain.PackingItem) {
	s.trips.mu.Lock()
	s.trips.items = append([]domain.Trip(nil), trips...)
	s.trips.mu.Unlock()

	s.activities.mu.Lock()
	s.activities.items = append([]domain.Activity(nil), activities...)
	s.activities.mu.Unlock()

	s.items.mu.Lock()
	s.items.items = append([]domain.PackingItem(nil), items...)
	s.items.mu.Unlock()
}

// Trips returns the TripRepo view of the store.
func (s *MemoryStore) Trips() TripRepo { return &memTripRepo{s: s} }

// Activities returns the ActivityRepo view of the store.
func (s *MemoryStore) Activities() ActivityRepo { return &memActivityRepo{s: s} }

// PackingItems returns the PackingItemRepo view of the store.
func (s *MemoryStore) PackingItems() PackingItemRepo { return &memPackingItemRepo{s: s} }

// ---- trips -----------------------------------------------------------------

type memTripRepo struct{ s *MemoryStore }

func (r *memTripRepo) Create(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	wait(r.s.latency.Create)
	now := r.s.clock.Now().UTC()
	trip.ID = r.s.ids.New()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	r.s.trips.prepend(trip)
	return trip, nil
}

func (r *memTripRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	wait(r.s.latency.Get)
	t, ok := r.s.trips.find(id)
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
	}
	return t, nil
}

func (r *memTripRepo) List(_ context.Context) ([]domain.Trip, error) {
	wait(r.s.latency.List)
	return r.s.trips.all(nil), nil
}

func (r *memTripRepo) Update(_ context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	wait(r.s.latency.Update)
	now := r.s.clock.Now().UTC()
	t, ok := r.s.trips.replace(id, func(t domain.Trip) domain.Trip {
		t = patch.Apply(t)
		t.UpdatedAt = now
		return t
	})
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", domain.ErrNotFound)
	}
	return t, nil
}

func (r *memTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	wait(r.s.latency.Delete)
	if !r.s.trips.remove(id) {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// ---- activities ------------------------------------------------------------

type memActivityRepo struct{ s *MemoryStore }

func (r *memActivityRepo) Create(_ context.Context, a domain.Activity) (domain.Activity, error) {
	wait(r.s.latency.Create)
	a.ID = r.s.ids.New()
	r.s.activities.append(a)
	return a, nil
}

func (r *memActivityRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Activity, error) {
	wait(r.s.latency.Get)
	a, ok := r.s.activities.find(id)
	if !ok {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", domain.ErrNotFound)
	}
	return a, nil
}

func (r *memActivityRepo) List(_ context.Context) ([]domain.Activity, error) {
	wait(r.s.latency.List)
	return r.s.activities.all(nil), nil
}

func (r *memActivityRepo) ListByTripID(_ context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	wait(r.s.latency.List)
	return r.s.activities.all(func(a domain.Activity) bool { return a.TripID == tripID }), nil
}

func (r *memActivityRepo) Update(_ context.Context, id uuid.UUID, patch domain.ActivityPatch) (domain.Activity, error) {
	wait(r.s.latency.Update)
	a, ok := r.s.activities.replace(id, patch.Apply)
	if !ok {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", domain.ErrNotFound)
	}
	return a, nil
}

func (r *memActivityRepo) Delete(_ context.Context, id uuid.UUID) error {
	wait(r.s.latency.Delete)
	if !r.s.activities.remove(id) {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// ---- packing items ---------------------------------------------------------

type memPackingItemRepo struct{ s *MemoryStore }

func (r *memPackingItemRepo) Create(_ context.Context, it domain.PackingItem) (domain.PackingItem, error) {
	wait(r.s.latency.Create)
	it.ID = r.s.ids.New()
	r.s.items.append(it)
	return it, nil
}

func (r *memPackingItemRepo) GetByID(_ context.Context, id uuid.UUID) (domain.PackingItem, error) {
	wait(r.s.latency.Get)
	it, ok := r.s.items.find(id)
	if !ok {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingItemRepo.GetByID: %w", domain.ErrNotFound)
	}
	return it, nil
}

func (r *memPackingItemRepo) List(_ context.Context) ([]domain.PackingItem, error) {
	wait(r.s.latency.List)
	return r.s.items.all(nil), nil
}

func (r *memPackingItemRepo) ListByTripID(_ context.Context, tripID uuid.UUID) ([]domain.PackingItem, error) {
	wait(r.s.latency.List)
	return r.s.items.all(func(it domain.PackingItem) bool { return it.TripID == tripID }), nil
}

func (r *memPackingItemRepo) Update(_ context.Context, id uuid.UUID, patch domain.PackingItemPatch) (domain.PackingItem, error) {
	wait(r.s.latency.Update)
	it, ok := r.s.items.replace(id, patch.Apply)
	if !ok {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingItemRepo.Update: %w", domain.ErrNotFound)
	}
	return it, nil
}

func (r *memPackingItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	wait(r.s.latency.Delete)
	if !r.s.items.remove(id) {
		return fmt.Errorf("repo.PackingItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}
