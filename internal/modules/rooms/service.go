package rooms

import (
	"context"
	"errors"
	"strconv"
	"time"

	"antalyahotel/internal/domain"
	"antalyahotel/internal/store"
)

type Service struct {
	store RoomStore
}

func NewService(store RoomStore) *Service {
	return &Service{store: store}
}

func (s *Service) ListRooms(_ context.Context) []domain.Room {
	return s.store.ListRooms()
}

// CreateRoom adds a room to the catalog. When the request carries no id
// one is minted from the clock, same scheme as booking ids.
func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	roomType, err := domain.ParseRoomType(req.Type)
	if err != nil {
		return nil, ErrValidation
	}

	room := domain.Room{
		ID:            req.ID,
		Type:          roomType,
		TitleEn:       req.TitleEn,
		TitleAr:       req.TitleAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		Price:         req.Price,
		Capacity:      req.Capacity,
		Amenities:     req.Amenities,
		ImageURL:      req.ImageURL,
		Available:     true,
	}
	if room.ID == "" {
		room.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if room.Amenities == nil {
		room.Amenities = []string{}
	}
	if req.Available != nil {
		room.Available = *req.Available
	}

	if err := s.store.AddRoom(ctx, room); err != nil {
		if errors.Is(err, store.ErrValidation) {
			return nil, ErrDuplicateID
		}
		return nil, err
	}
	return &room, nil
}

// UpdateRoom replaces the room wholesale. The underlying store treats
// an unknown id as a no-op, so existence is checked here to give the
// API a 404.
func (s *Service) UpdateRoom(ctx context.Context, id string, req UpdateRoomRequest) (*domain.Room, error) {
	roomType, err := domain.ParseRoomType(req.Type)
	if err != nil {
		return nil, ErrValidation
	}

	existing, ok := s.findRoom(id)
	if !ok {
		return nil, ErrNotFound
	}

	room := domain.Room{
		ID:            id,
		Type:          roomType,
		TitleEn:       req.TitleEn,
		TitleAr:       req.TitleAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		Price:         req.Price,
		Capacity:      req.Capacity,
		Amenities:     req.Amenities,
		ImageURL:      req.ImageURL,
		Available:     existing.Available,
	}
	if room.Amenities == nil {
		room.Amenities = []string{}
	}
	if req.Available != nil {
		room.Available = *req.Available
	}

	if err := s.store.UpdateRoom(ctx, room); err != nil {
		return nil, err
	}
	return &room, nil
}

// DeleteRoom removes the room. Deleting an unknown id succeeds: the
// operation is idempotent end to end.
func (s *Service) DeleteRoom(ctx context.Context, id string) error {
	return s.store.DeleteRoom(ctx, id)
}

func (s *Service) findRoom(id string) (domain.Room, bool) {
	for _, r := range s.store.ListRooms() {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Room{}, false
}
