package booking

type CreateBookingRequest struct {
	RoomID        string `json:"roomId" validate:"required"`
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CheckIn       string `json:"checkIn" validate:"required"`
	CheckOut      string `json:"checkOut" validate:"required"`
	Guests        int    `json:"guests" validate:"required,gt=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
