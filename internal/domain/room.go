package domain

import "fmt"

type RoomType string

const (
	RoomTypeDeluxe    RoomType = "Deluxe Room"
	RoomTypeSuite     RoomType = "Royal Suite"
	RoomTypeFamily    RoomType = "Family Suite"
	RoomTypeExecutive RoomType = "Executive Room"
)

func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomTypeDeluxe, RoomTypeSuite, RoomTypeFamily, RoomTypeExecutive:
		return RoomType(s), nil
	}
	return "", fmt.Errorf("unknown room type %q", s)
}

// Room is a bookable unit. The JSON field names match the snapshot
// encoding used by the durable substrate, so stored collections
// round-trip unchanged.
type Room struct {
	ID            string   `json:"id"`
	Type          RoomType `json:"type"`
	TitleEn       string   `json:"titleEn"`
	TitleAr       string   `json:"titleAr"`
	DescriptionEn string   `json:"descriptionEn"`
	DescriptionAr string   `json:"descriptionAr"`
	Price         float64  `json:"price"`
	Capacity      int      `json:"capacity"`
	Amenities     []string `json:"amenities"`
	ImageURL      string   `json:"imageUrl"`
	Available     bool     `json:"available"`
}
