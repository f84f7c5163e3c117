package booking

import (
	"context"

	"antalyahotel/internal/domain"
)

// BookingStore is the slice of the domain store this module needs.
type BookingStore interface {
	ListRooms() []domain.Room
	ListBookings() []domain.Booking
	AddBooking(ctx context.Context, b domain.Booking) error
	UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error
}
