package repository

import (
	"context"
	"sync"

	"restaurant-pricing-service/internal/entity"
)

// InMemoryRepository backs tests and local runs without MySQL.
type InMemoryRepository struct {
	mu           sync.Mutex
	nextID       int
	Restaurants  map[string]*entity.Restaurant
	MenuItems    map[string][]entity.MenuItem
	Observations []entity.WeatherObservation
	Quotes       map[string][]entity.PriceQuote // keyed by analysis ID
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		nextID:      1,
		Restaurants: make(map[string]*entity.Restaurant),
		MenuItems:   make(map[string][]entity.MenuItem),
		Quotes:      make(map[string][]entity.PriceQuote),
	}
}

func (r *InMemoryRepository) UpsertRestaurant(ctx context.Context, restaurant *entity.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *restaurant
	r.Restaurants[restaurant.PlaceID] = &copied
	return nil
}

func (r *InMemoryRepository) SaveWeatherObservation(ctx context.Context, obs *entity.WeatherObservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	obs.ID = r.nextID
	r.nextID++
	r.Observations = append(r.Observations, *obs)
	return nil
}

func (r *InMemoryRepository) SaveQuotes(ctx context.Context, analysisID, placeID string, quotes []entity.PriceQuote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Quotes[analysisID] = append(r.Quotes[analysisID], quotes...)
	return nil
}

func (r *InMemoryRepository) ListMenuItems(ctx context.Context, placeID string) ([]entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]entity.MenuItem, len(r.MenuItems[placeID]))
	copy(items, r.MenuItems[placeID])
	return items, nil
}

func (r *InMemoryRepository) CreateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	r.MenuItems[item.PlaceID] = append(r.MenuItems[item.PlaceID], *item)
	return nil
}

func (r *InMemoryRepository) DeleteMenuItem(ctx context.Context, placeID string, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.MenuItems[placeID]
	for i, item := range items {
		if item.ID == id {
			r.MenuItems[placeID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrMenuItemNotFound
}
