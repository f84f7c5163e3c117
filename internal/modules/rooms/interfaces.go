package rooms

import (
	"context"

	"antalyahotel/internal/domain"
)

// RoomStore is the slice of the domain store this module needs.
type RoomStore interface {
	ListRooms() []domain.Room
	AddRoom(ctx context.Context, room domain.Room) error
	UpdateRoom(ctx context.Context, room domain.Room) error
	DeleteRoom(ctx context.Context, id string) error
}
