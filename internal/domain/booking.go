package domain

import "fmt"

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// Booking is a reservation request. RoomID is a loose reference: the
// room may be deleted while bookings still point at its former id.
// CheckIn/CheckOut are date strings (2006-01-02); CreatedAt is RFC3339.
type Booking struct {
	ID            string        `json:"id"`
	RoomID        string        `json:"roomId"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	CheckIn       string        `json:"checkIn"`
	CheckOut      string        `json:"checkOut"`
	Guests        int           `json:"guests"`
	TotalPrice    float64       `json:"totalPrice"`
	Status        BookingStatus `json:"status"`
	CreatedAt     string        `json:"createdAt"`
}
