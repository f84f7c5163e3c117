package admin

import (
	"context"

	"antalyahotel/internal/domain"
)

// AdminStore is the slice of the domain store this module needs.
type AdminStore interface {
	ListRooms() []domain.Room
	ListBookings() []domain.Booking
	AdminAuthenticated() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ResetAll(ctx context.Context) error
}
