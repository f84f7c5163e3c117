package store

import "antalyahotel/internal/domain"

// SeedRooms returns the built-in room catalog used when no snapshot
// exists or the stored one cannot be parsed.
func SeedRooms() []domain.Room {
	return []domain.Room{
		{
			ID:            "1",
			Type:          domain.RoomTypeDeluxe,
			TitleEn:       "Deluxe City View",
			TitleAr:       "غرفة ديلوكس مطلة على المدينة",
			DescriptionEn: "Elegant 40sqm room with a stunning view of Amman.",
			DescriptionAr: "غرفة أنيقة بمساحة 40 متر مربع مع إطلالة خلابة على عمان.",
			Price:         120,
			Capacity:      2,
			Amenities:     []string{"wifi", "ac", "tv", "minibar"},
			ImageURL:      "https://picsum.photos/id/10/800/600",
			Available:     true,
		},
		{
			ID:            "2",
			Type:          domain.RoomTypeSuite,
			TitleEn:       "Royal Suite",
			TitleAr:       "الجناح الملكي",
			DescriptionEn: "Experience ultimate luxury in our 100sqm Royal Suite with private jacuzzi.",
			DescriptionAr: "جرب الرفاهية المطلقة في الجناح الملكي بمساحة 100 متر مربع مع جاكوزي خاص.",
			Price:         350,
			Capacity:      4,
			Amenities:     []string{"wifi", "ac", "tv", "minibar", "jacuzzi", "breakfast"},
			ImageURL:      "https://picsum.photos/id/14/800/600",
			Available:     true,
		},
		{
			ID:            "3",
			Type:          domain.RoomTypeFamily,
			TitleEn:       "Family Connecting Room",
			TitleAr:       "غرفة عائلية متصلة",
			DescriptionEn: "Perfect for families, offering two connecting bedrooms and spacious living area.",
			DescriptionAr: "مثالية للعائلات، وتوفر غرفتي نوم متصلتين ومنطقة معيشة واسعة.",
			Price:         220,
			Capacity:      5,
			Amenities:     []string{"wifi", "ac", "tv", "kitchen"},
			ImageURL:      "https://picsum.photos/id/20/800/600",
			Available:     true,
		},
	}
}
