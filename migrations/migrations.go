package migrations

import (
	"database/sql"
	"time"
)

// AutoMigrate creates the service tables if they do not exist.
func AutoMigrate(retries int, db *sql.DB) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS restaurants (
			id INT AUTO_INCREMENT PRIMARY KEY,
			place_id VARCHAR(255) NOT NULL UNIQUE,
			name VARCHAR(255) NOT NULL,
			address TEXT,
			rating DOUBLE,
			user_ratings_total INT,
			price_level INT,
			latitude DOUBLE,
			longitude DOUBLE
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS menu_items (
			id INT AUTO_INCREMENT PRIMARY KEY,
			place_id VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			base_price DOUBLE NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS weather_observations (
			id INT AUTO_INCREMENT PRIMARY KEY,
			observed_at DATETIME NOT NULL,
			latitude DOUBLE NOT NULL,
			longitude DOUBLE NOT NULL,
			temperature_kelvin DOUBLE NOT NULL,
			weather_condition VARCHAR(100) NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS price_quotes (
			id INT AUTO_INCREMENT PRIMARY KEY,
			analysis_id VARCHAR(36) NOT NULL,
			place_id VARCHAR(255) NOT NULL,
			item_name VARCHAR(255) NOT NULL,
			base_price DOUBLE NOT NULL,
			recommended_price DOUBLE NOT NULL,
			percent_change DOUBLE NOT NULL
		);
		`,
	}

	for _, query := range queries {
		_, err := db.Exec(query)
		if err != nil {
			// Retry creating the table
			for i := 0; i < retries; i++ {
				time.Sleep(1 * time.Second)
				_, err = db.Exec(query)
				if err == nil {
					break
				}
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
