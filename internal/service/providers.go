package service

import (
	"context"

	"restaurant-pricing-service/internal/entity"
)

// WeatherProvider abstracts the current-weather source (e.g. OpenWeather).
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, lat, lng float64) (entity.WeatherSnapshot, error)
}

// PlacesProvider abstracts the restaurant directory (e.g. Google Places).
type PlacesProvider interface {
	SearchPlace(ctx context.Context, query, lat, lng string) ([]entity.Restaurant, error)
	PlaceDetails(ctx context.Context, placeID string) (entity.Restaurant, error)
	NearbyCompetitors(ctx context.Context, lat, lng float64) ([]entity.Competitor, error)
}

// BusyLevelProvider reports how crowded a venue currently is, as a
// percentage in [0, 100].
type BusyLevelProvider interface {
	BusyLevel(ctx context.Context, placeID string) (int, error)
}
