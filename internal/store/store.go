// Package store keeps the durable local record of bookings. The full
// list is snapshotted as one serialized array under a single key
// through the injected Persistence collaborator. Persistence failures
// never surface to callers: reads degrade to an empty list, writes are
// dropped with a log line while the data stays in memory.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/abarriera/CPA-BookingService/internal/domain"
)

// Store append-only booking record keyed by id
type Store struct {
	persistence Persistence
	key         string
	log         Logger

	mu       sync.Mutex
	bookings []domain.Booking
}

// New creates the store and loads the persisted snapshot. A missing or
// corrupt snapshot degrades to an empty list rather than blocking
// startup.
func New(ctx context.Context, persistence Persistence, key string, log Logger) *Store {
	s := &Store{
		persistence: persistence,
		key:         key,
		log:         log,
	}
	s.loadAll(ctx)
	return s
}

// All returns a copy of the current booking list in insertion order
func (s *Store) All() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Get returns the booking with the given id
func (s *Store) Get(id string) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Booking{}, false
}

// Append adds the booking and persists the full updated list.
// Duplicate (date, time) pairs are not rejected here: double-booking
// prevention is advisory and lives at the offering layer.
func (s *Store) Append(ctx context.Context, b domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, b)
	s.persist(ctx)
	s.log.Info("store: appended booking id=%s date=%s time=%q status=%s", b.ID, b.Date, b.Time, b.Status)
}

// UpdateStatus replaces the entry matching id with a copy carrying the
// new status and persists the full list. Unknown ids are a silent
// no-op; repeating the same update leaves exactly one entry.
func (s *Store) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			updated := s.bookings[i]
			updated.Status = status
			s.bookings[i] = updated
			s.persist(ctx)
			s.log.Info("store: booking id=%s status -> %s", id, status)
			return
		}
	}
	s.log.Warn("store: UpdateStatus for unknown booking id=%s ignored", id)
}

// Count returns the number of stored bookings
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *Store) loadAll(ctx context.Context) {
	data, found, err := s.persistence.Load(ctx, s.key)
	if err != nil {
		s.log.Warn("store: failed to load snapshot key=%s, starting empty: %v", s.key, err)
		return
	}
	if !found {
		s.log.Info("store: no snapshot for key=%s, starting empty", s.key)
		return
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		s.log.Warn("store: corrupt snapshot key=%s, starting empty: %v", s.key, err)
		return
	}

	// Неизвестный статус из старого снапшота приводим к pending
	for i := range bookings {
		if !domain.IsValidStatus(bookings[i].Status) {
			s.log.Warn("store: booking id=%s has unknown status %q, treating as pending",
				bookings[i].ID, bookings[i].Status)
			bookings[i].Status = domain.StatusPending
		}
	}

	s.bookings = bookings
	s.log.Info("store: loaded %d bookings from snapshot key=%s", len(bookings), s.key)
}

func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.bookings)
	if err != nil {
		s.log.Error("store: failed to serialize bookings, write dropped: %v", err)
		return
	}
	if err := s.persistence.Save(ctx, s.key, data); err != nil {
		s.log.Warn("store: failed to persist snapshot key=%s, write dropped: %v", s.key, err)
	}
}
