package concierge

import (
	"context"

	"antalyahotel/internal/domain"
)

// Generator produces a reply for a prompt. Satisfied by the Gemini
// client and by test doubles.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ConciergeStore is the slice of the domain store this module needs.
type ConciergeStore interface {
	ListRooms() []domain.Room
}
