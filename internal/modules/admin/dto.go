package admin

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

type MonthlyStat struct {
	Month    string  `json:"month"` // 2006-01
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type Stats struct {
	TotalRooms      int            `json:"totalRooms"`
	AvailableRooms  int            `json:"availableRooms"`
	TotalBookings   int            `json:"totalBookings"`
	PendingBookings int            `json:"pendingBookings"`
	ByStatus        map[string]int `json:"byStatus"`
	Revenue         float64        `json:"revenue"`
	Monthly         []MonthlyStat  `json:"monthly"`
}
