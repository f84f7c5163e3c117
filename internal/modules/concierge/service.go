package concierge

import (
	"context"
	"fmt"
	"log"
	"strings"

	"antalyahotel/internal/domain"
)

const (
	fallbackEn = "I'm sorry, the concierge is taking a short break. Please call us at %s or email %s and our team will be happy to help."
	fallbackAr = "عذراً، المساعد غير متاح حالياً. يرجى الاتصال بنا على %s أو مراسلتنا عبر %s وسيسعد فريقنا بمساعدتك."
)

type Service struct {
	store     ConciergeStore
	generator Generator // nil when no API key is configured
	hotel     domain.HotelInfo
}

func NewService(store ConciergeStore, generator Generator, hotel domain.HotelInfo) *Service {
	return &Service{store: store, generator: generator, hotel: hotel}
}

// Ask answers a guest question grounded in the live room catalog. A
// missing generator or an upstream failure degrades to a canned reply
// in the guest's language rather than an error.
func (s *Service) Ask(ctx context.Context, req AskRequest) AskResponse {
	lang := normalizeLanguage(req.Language)

	if s.generator == nil {
		return AskResponse{Reply: s.fallback(lang), Language: lang}
	}

	reply, err := s.generator.GenerateContent(ctx, s.buildPrompt(req.Message, lang))
	if err != nil {
		log.Printf("concierge: generation failed, using fallback: %v", err)
		return AskResponse{Reply: s.fallback(lang), Language: lang}
	}

	return AskResponse{Reply: strings.TrimSpace(reply), Language: lang}
}

func (s *Service) buildPrompt(question, lang string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are the guest concierge for %s in %s.\n", s.hotel.Name, s.hotel.Location)
	fmt.Fprintf(&sb, "Contact: phone %s, email %s.\n", s.hotel.Phone, s.hotel.Email)
	sb.WriteString("Current room catalog:\n")

	for _, r := range s.store.ListRooms() {
		availability := "available"
		if !r.Available {
			availability = "unavailable"
		}
		fmt.Fprintf(&sb, "- %s (%s / %s): $%.0f per night, sleeps %d, %s. Amenities: %s\n",
			r.Type, r.TitleEn, r.TitleAr, r.Price, r.Capacity, availability,
			strings.Join(r.Amenities, ", "))
	}

	if lang == "ar" {
		sb.WriteString("Answer in Arabic.\n")
	} else {
		sb.WriteString("Answer in English.\n")
	}
	sb.WriteString("Be concise and warm. Only discuss this hotel and its rooms.\n\n")
	fmt.Fprintf(&sb, "Guest: %s\n", question)

	return sb.String()
}

func (s *Service) fallback(lang string) string {
	if lang == "ar" {
		return fmt.Sprintf(fallbackAr, s.hotel.Phone, s.hotel.Email)
	}
	return fmt.Sprintf(fallbackEn, s.hotel.Phone, s.hotel.Email)
}

func normalizeLanguage(lang string) string {
	if strings.EqualFold(strings.TrimSpace(lang), "ar") {
		return "ar"
	}
	return "en"
}
