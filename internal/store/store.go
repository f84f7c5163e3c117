package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"antalyahotel/internal/domain"
)

// Snapshot keys in the durable substrate. Each key holds one serialized
// snapshot of the whole collection (or flag), not a per-record scheme.
const (
	KeyRooms     = "rooms"
	KeyBookings  = "bookings"
	KeyAdminAuth = "adminAuth"
)

// SnapshotRepository is the durable key-value substrate the store
// writes through. Load reports found=false when the key is absent.
type SnapshotRepository interface {
	Load(ctx context.Context, key string) (value []byte, found bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store is the single source of truth for the room catalog, the booking
// list and the admin session flag. Every mutation is serialized to the
// substrate before the call returns, so a fresh process re-loading the
// store observes it. The three keys are written independently; there is
// no cross-key transaction.
//
// A mutex serializes access: the store was designed for one logical
// actor, but an HTTP server calls in from many goroutines. Last writer
// wins, same as the substrate itself.
type Store struct {
	mu        sync.Mutex
	snapshots SnapshotRepository

	rooms     []domain.Room
	bookings  []domain.Booking // newest first
	adminAuth bool
}

// New loads each collection from the substrate, falling back to the
// built-in seed when a key is absent or its value does not parse.
// A corrupt snapshot is logged and treated the same as a missing one.
func New(ctx context.Context, snapshots SnapshotRepository) (*Store, error) {
	s := &Store{snapshots: snapshots}

	rooms := SeedRooms()
	if raw, found, err := snapshots.Load(ctx, KeyRooms); err != nil {
		return nil, err
	} else if found {
		var stored []domain.Room
		if jsonErr := json.Unmarshal(raw, &stored); jsonErr != nil {
			log.Printf("store: discarding unreadable %q snapshot: %v", KeyRooms, jsonErr)
		} else {
			rooms = stored
		}
	}
	s.rooms = rooms

	if raw, found, err := snapshots.Load(ctx, KeyBookings); err != nil {
		return nil, err
	} else if found {
		var stored []domain.Booking
		if jsonErr := json.Unmarshal(raw, &stored); jsonErr != nil {
			log.Printf("store: discarding unreadable %q snapshot: %v", KeyBookings, jsonErr)
		} else {
			s.bookings = stored
		}
	}

	if raw, found, err := snapshots.Load(ctx, KeyAdminAuth); err != nil {
		return nil, err
	} else if found {
		s.adminAuth = string(raw) == "true"
	}

	return s, nil
}

/* ---------- ROOMS ---------- */

// ListRooms returns the catalog in insertion order.
func (s *Store) ListRooms() []domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRooms(s.rooms)
}

// AddRoom appends a room. The caller supplies the id; a duplicate id
// fails with ErrValidation and leaves the catalog unchanged.
func (s *Store) AddRoom(ctx context.Context, room domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.ID == room.ID {
			return ErrValidation
		}
	}
	s.rooms = append(s.rooms, room)
	return s.saveRooms(ctx)
}

// UpdateRoom replaces the matching entry wholesale. An unknown id is a
// silent no-op, matching the source system.
func (s *Store) UpdateRoom(ctx context.Context, room domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.rooms {
		if r.ID == room.ID {
			s.rooms[i] = room
			return s.saveRooms(ctx)
		}
	}
	return nil
}

// DeleteRoom removes the matching entry. Idempotent.
func (s *Store) DeleteRoom(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.rooms {
		if r.ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			return s.saveRooms(ctx)
		}
	}
	return nil
}

/* ---------- BOOKINGS ---------- */

// ListBookings returns bookings newest first.
func (s *Store) ListBookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyBookings(s.bookings)
}

// AddBooking prepends the booking. No duplicate-id check is performed.
func (s *Store) AddBooking(ctx context.Context, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append([]domain.Booking{b}, s.bookings...)
	return s.saveBookings(ctx)
}

// UpdateBookingStatus replaces the status field of the matching entry,
// leaving every other field untouched. An unknown id is a silent no-op.
// Transitions are not policed: re-updating a Confirmed or Cancelled
// booking succeeds.
func (s *Store) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			return s.saveBookings(ctx)
		}
	}
	return nil
}

/* ---------- SESSION & RESET ---------- */

// AdminAuthenticated reports the persisted session flag.
func (s *Store) AdminAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adminAuth
}

func (s *Store) Login(ctx context.Context) error {
	return s.setAdminAuth(ctx, true)
}

func (s *Store) Logout(ctx context.Context) error {
	return s.setAdminAuth(ctx, false)
}

// ResetAll clears the booking list, restores the seed catalog and
// removes both durable entries. Irreversible; the session flag is left
// alone. Callers are expected to have confirmed the action.
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.snapshots.Delete(ctx, KeyRooms); err != nil {
		return err
	}
	if err := s.snapshots.Delete(ctx, KeyBookings); err != nil {
		return err
	}
	s.rooms = SeedRooms()
	s.bookings = nil
	return nil
}

/* ---------- internals ---------- */

func (s *Store) setAdminAuth(ctx context.Context, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := "false"
	if v {
		raw = "true"
	}
	if err := s.snapshots.Save(ctx, KeyAdminAuth, []byte(raw)); err != nil {
		return err
	}
	s.adminAuth = v
	return nil
}

func (s *Store) saveRooms(ctx context.Context) error {
	raw, err := json.Marshal(s.rooms)
	if err != nil {
		return err
	}
	return s.snapshots.Save(ctx, KeyRooms, raw)
}

func (s *Store) saveBookings(ctx context.Context) error {
	raw, err := json.Marshal(s.bookings)
	if err != nil {
		return err
	}
	return s.snapshots.Save(ctx, KeyBookings, raw)
}

func copyRooms(in []domain.Room) []domain.Room {
	out := make([]domain.Room, len(in))
	copy(out, in)
	return out
}

func copyBookings(in []domain.Booking) []domain.Booking {
	out := make([]domain.Booking, len(in))
	copy(out, in)
	return out
}
