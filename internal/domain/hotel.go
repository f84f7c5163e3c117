package domain

// HotelInfo is the static hotel metadata shown on the site and fed to
// the concierge prompt.
type HotelInfo struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
}

func DefaultHotelInfo() HotelInfo {
	return HotelInfo{
		Name:     "Antalya Hotel Amman",
		Location: "Amman, Jordan",
		Lat:      31.9539,
		Lng:      35.9106,
		Phone:    "+962 7 9908 6087",
		Email:    "reservations@antalyahotelamman.com",
	}
}
