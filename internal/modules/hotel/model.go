package hotel

// Hotel is a catalog entry.
type Hotel struct {
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	Address    string  `json:"address"`
	PriceRange string  `json:"price_range"`
}

// SearchRequest is the inbound lookup payload.
type SearchRequest struct {
	CityName     string `json:"cityname"`
	NumOfRooms   int    `json:"num_of_rooms"`
	CheckinDate  string `json:"checkin_date"`
	CheckoutDate string `json:"checkout_date"`
}

// Offer is a hotel echoed back with the caller's stay details attached.
type Offer struct {
	Hotel
	CheckinDate  string `json:"checkin_date"`
	CheckoutDate string `json:"checkout_date"`
	NumOfRooms   int    `json:"num_of_rooms"`
}

// SearchResponse wraps the offers. Message is set only when the city has no
// inventory; that case is still a success, not an error.
type SearchResponse struct {
	Hotels  []Offer `json:"hotels"`
	Message string  `json:"message,omitempty"`
}
