package booking

import (
	"context"
	"math"
	"strconv"
	"time"

	"antalyahotel/internal/domain"
)

const dateLayout = "2006-01-02"

type Service struct {
	store BookingStore
	now   func() time.Time
}

func NewService(store BookingStore) *Service {
	return &Service{store: store, now: time.Now}
}

// CreateBooking prices the stay and prepends it to the list as Pending.
// The total is nights times the room's nightly price, where nights is
// the absolute day span rounded up, so a reversed date range still
// prices the same stay.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, ErrValidation
	}

	room, ok := s.findRoom(req.RoomID)
	if !ok {
		return nil, ErrRoomNotFound
	}

	nights := math.Ceil(math.Abs(checkOut.Sub(checkIn).Hours()) / 24)
	total := nights * room.Price

	now := s.now()
	b := domain.Booking{
		ID:            strconv.FormatInt(now.UnixMilli(), 10),
		RoomID:        req.RoomID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Guests:        req.Guests,
		TotalPrice:    total,
		Status:        domain.BookingPending,
		CreatedAt:     now.UTC().Format(time.RFC3339),
	}

	if err := s.store.AddBooking(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBookings returns bookings newest first.
func (s *Service) ListBookings(_ context.Context) []domain.Booking {
	return s.store.ListBookings()
}

// UpdateStatus sets the booking's status. Any known status can replace
// any other; a Cancelled booking can be re-confirmed. The store treats
// an unknown id as a no-op, so existence is checked here to give the
// API a 404.
func (s *Service) UpdateStatus(ctx context.Context, id string, rawStatus string) (*domain.Booking, error) {
	status, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		return nil, ErrValidation
	}

	b, ok := s.findBooking(id)
	if !ok {
		return nil, ErrNotFound
	}

	if err := s.store.UpdateBookingStatus(ctx, id, status); err != nil {
		return nil, err
	}
	b.Status = status
	return &b, nil
}

func (s *Service) findRoom(id string) (domain.Room, bool) {
	for _, r := range s.store.ListRooms() {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Room{}, false
}

func (s *Service) findBooking(id string) (domain.Booking, bool) {
	for _, b := range s.store.ListBookings() {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Booking{}, false
}
