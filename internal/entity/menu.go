package entity

// MenuItem is a single menu item with its base (undiscounted) price.
type MenuItem struct {
	ID        int     `json:"id"`
	PlaceID   string  `json:"place_id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
}

// PriceQuote is the pricing recommendation for one menu item.
// Produced once per item per analysis, never updated afterwards.
type PriceQuote struct {
	ItemName         string  `json:"item_name"`
	BasePrice        float64 `json:"base_price"`
	RecommendedPrice float64 `json:"recommended_price"`
	PercentChange    float64 `json:"percent_change"`
}
