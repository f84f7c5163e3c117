package concierge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"antalyahotel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockConciergeStore struct {
	mock.Mock
}

func (m *MockConciergeStore) ListRooms() []domain.Room {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Room)
}

func TestAsk_GroundsPromptInCatalog(t *testing.T) {
	st := new(MockConciergeStore)
	st.On("ListRooms").Return([]domain.Room{
		{ID: "1", Type: domain.RoomTypeDeluxe, TitleEn: "Deluxe Room", TitleAr: "غرفة ديلوكس",
			Price: 120, Capacity: 2, Available: true, Amenities: []string{"WiFi", "AC"}},
	})

	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Antalya Hotel Amman") &&
			strings.Contains(prompt, "Deluxe Room") &&
			strings.Contains(prompt, "$120") &&
			strings.Contains(prompt, "Do you have rooms for two?")
	})).Return("Yes, our Deluxe Room sleeps two.", nil)

	svc := NewService(st, gen, domain.DefaultHotelInfo())
	resp := svc.Ask(context.Background(), AskRequest{Message: "Do you have rooms for two?"})

	assert.Equal(t, "Yes, our Deluxe Room sleeps two.", resp.Reply)
	assert.Equal(t, "en", resp.Language)
	gen.AssertExpectations(t)
}

func TestAsk_FallsBackOnGeneratorError(t *testing.T) {
	st := new(MockConciergeStore)
	st.On("ListRooms").Return([]domain.Room{})

	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	svc := NewService(st, gen, domain.DefaultHotelInfo())
	resp := svc.Ask(context.Background(), AskRequest{Message: "hi", Language: "ar"})

	assert.Equal(t, "ar", resp.Language)
	assert.Contains(t, resp.Reply, "+962 7 9908 6087")
	assert.Contains(t, resp.Reply, "عذراً")
}

func TestAsk_NoGeneratorConfigured(t *testing.T) {
	st := new(MockConciergeStore)

	svc := NewService(st, nil, domain.DefaultHotelInfo())
	resp := svc.Ask(context.Background(), AskRequest{Message: "hello"})

	assert.Equal(t, "en", resp.Language)
	assert.Contains(t, resp.Reply, "reservations@antalyahotelamman.com")
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, "ar", normalizeLanguage("AR"))
	assert.Equal(t, "ar", normalizeLanguage(" ar "))
	assert.Equal(t, "en", normalizeLanguage(""))
	assert.Equal(t, "en", normalizeLanguage("fr"))
}
