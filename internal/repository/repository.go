package repository

import (
	"context"
	"database/sql"
	"errors"

	"restaurant-pricing-service/internal/entity"
)

// AnalysisRepository defines the data-access contract. The service
// depends only on this interface.
type AnalysisRepository interface {
	UpsertRestaurant(ctx context.Context, restaurant *entity.Restaurant) error
	SaveWeatherObservation(ctx context.Context, obs *entity.WeatherObservation) error
	SaveQuotes(ctx context.Context, analysisID, placeID string, quotes []entity.PriceQuote) error
	ListMenuItems(ctx context.Context, placeID string) ([]entity.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *entity.MenuItem) error
	DeleteMenuItem(ctx context.Context, placeID string, id int) error
}

var ErrMenuItemNotFound = errors.New("menu item not found")

// MySQLRepository is the production implementation backed by MySQL.
type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db}
}

func (r *MySQLRepository) UpsertRestaurant(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `INSERT INTO restaurants (place_id, name, address, rating, user_ratings_total, price_level, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE name = VALUES(name), address = VALUES(address), rating = VALUES(rating),
			user_ratings_total = VALUES(user_ratings_total), price_level = VALUES(price_level),
			latitude = VALUES(latitude), longitude = VALUES(longitude)`
	_, err := r.db.ExecContext(ctx, query, restaurant.PlaceID, restaurant.Name, restaurant.Address,
		restaurant.Rating, restaurant.UserRatingsTotal, restaurant.PriceLevel, restaurant.Latitude, restaurant.Longitude)
	return err
}

func (r *MySQLRepository) SaveWeatherObservation(ctx context.Context, obs *entity.WeatherObservation) error {
	query := `INSERT INTO weather_observations (observed_at, latitude, longitude, temperature_kelvin, weather_condition)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, obs.ObservedAt, obs.Latitude, obs.Longitude, obs.TemperatureKelvin, obs.Condition)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	obs.ID = int(id)
	return nil
}

func (r *MySQLRepository) SaveQuotes(ctx context.Context, analysisID, placeID string, quotes []entity.PriceQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	// Batch insert
	query := `INSERT INTO price_quotes (analysis_id, place_id, item_name, base_price, recommended_price, percent_change)
		VALUES `

	var values []interface{}
	for _, quote := range quotes {
		query += "(?, ?, ?, ?, ?, ?),"
		values = append(values, analysisID, placeID, quote.ItemName, quote.BasePrice, quote.RecommendedPrice, quote.PercentChange)
	}

	// Remove the trailing comma
	query = query[:len(query)-1]

	_, err := r.db.ExecContext(ctx, query, values...)
	return err
}

func (r *MySQLRepository) ListMenuItems(ctx context.Context, placeID string) ([]entity.MenuItem, error) {
	query := `SELECT id, place_id, name, base_price FROM menu_items WHERE place_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.MenuItem
	for rows.Next() {
		item := entity.MenuItem{}
		if err := rows.Scan(&item.ID, &item.PlaceID, &item.Name, &item.BasePrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *MySQLRepository) CreateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	query := `INSERT INTO menu_items (place_id, name, base_price) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, item.PlaceID, item.Name, item.BasePrice)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	item.ID = int(id)
	return nil
}

func (r *MySQLRepository) DeleteMenuItem(ctx context.Context, placeID string, id int) error {
	query := `DELETE FROM menu_items WHERE place_id = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query, placeID, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}

	return nil
}
