package entity

// Restaurant is a place returned by the places provider.
type Restaurant struct {
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"user_ratings_total"`
	PriceLevel       int     `json:"price_level"` // 0 = unknown, 1-4 per the places API
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// Competitor is a nearby venue used as a pricing reference.
type Competitor struct {
	PlaceID    string  `json:"place_id"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	PriceLevel int     `json:"price_level"`
}
