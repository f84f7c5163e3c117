package booking

import (
	"context"
	"testing"
	"time"

	"antalyahotel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) ListRooms() []domain.Room {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Room)
}

func (m *MockBookingStore) ListBookings() []domain.Booking {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Booking)
}

func (m *MockBookingStore) AddBooking(ctx context.Context, b domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingStore) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
}

func TestCreateBooking_PricesByNights(t *testing.T) {
	st := new(MockBookingStore)
	st.On("ListRooms").Return([]domain.Room{{ID: "1", Price: 120}})
	st.On("AddBooking", mock.Anything, mock.MatchedBy(func(b domain.Booking) bool {
		return b.TotalPrice == 360 && b.Status == domain.BookingPending
	})).Return(nil)

	svc := NewService(st)
	svc.now = fixedClock

	b, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:        "1",
		CustomerName:  "Layla Hassan",
		CustomerEmail: "layla@example.com",
		CheckIn:       "2024-06-01",
		CheckOut:      "2024-06-04",
		Guests:        2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 360.0, b.TotalPrice)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, "1717237800000", b.ID)
	assert.Equal(t, "2024-06-01T10:30:00Z", b.CreatedAt)
	st.AssertExpectations(t)
}

func TestCreateBooking_ReversedRangePricesSameStay(t *testing.T) {
	st := new(MockBookingStore)
	st.On("ListRooms").Return([]domain.Room{{ID: "2", Price: 350}})
	st.On("AddBooking", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(st)
	svc.now = fixedClock

	b, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:        "2",
		CustomerName:  "Omar Said",
		CustomerEmail: "omar@example.com",
		CheckIn:       "2024-06-04",
		CheckOut:      "2024-06-01",
		Guests:        1,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1050.0, b.TotalPrice)
}

func TestCreateBooking_UnknownRoom(t *testing.T) {
	st := new(MockBookingStore)
	st.On("ListRooms").Return([]domain.Room{{ID: "1", Price: 120}})

	svc := NewService(st)
	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:        "404",
		CustomerName:  "Nobody",
		CustomerEmail: "n@example.com",
		CheckIn:       "2024-06-01",
		CheckOut:      "2024-06-02",
		Guests:        1,
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
	st.AssertNotCalled(t, "AddBooking", mock.Anything, mock.Anything)
}

func TestCreateBooking_BadDate(t *testing.T) {
	st := new(MockBookingStore)

	svc := NewService(st)
	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:        "1",
		CustomerName:  "x",
		CustomerEmail: "x@example.com",
		CheckIn:       "June 1st",
		CheckOut:      "2024-06-02",
		Guests:        1,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	st := new(MockBookingStore)
	st.On("ListBookings").Return([]domain.Booking{
		{ID: "b1", Status: domain.BookingCancelled, TotalPrice: 360},
	})
	st.On("UpdateBookingStatus", mock.Anything, "b1", domain.BookingConfirmed).Return(nil)

	svc := NewService(st)
	b, err := svc.UpdateStatus(context.Background(), "b1", "Confirmed")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, 360.0, b.TotalPrice)
	st.AssertExpectations(t)
}

func TestUpdateStatus_UnknownBooking(t *testing.T) {
	st := new(MockBookingStore)
	st.On("ListBookings").Return([]domain.Booking{})

	svc := NewService(st)
	_, err := svc.UpdateStatus(context.Background(), "missing", "Confirmed")

	assert.ErrorIs(t, err, ErrNotFound)
	st.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	st := new(MockBookingStore)

	svc := NewService(st)
	_, err := svc.UpdateStatus(context.Background(), "b1", "Archived")

	assert.ErrorIs(t, err, ErrValidation)
}
