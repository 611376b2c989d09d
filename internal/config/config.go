package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the service needs from the environment.
// API keys are passed down explicitly so the clients never read env
// vars themselves.
type Config struct {
	Port string

	MySQLDSN  string
	RedisAddr string

	GoogleMapsAPIKey  string
	OpenWeatherAPIKey string

	// Overridable in tests to point the clients at a local server.
	PlacesBaseURL  string
	WeatherBaseURL string

	JWTSecret string
	OwnerKey  string

	// Default coordinates used when a search request omits lat/lng.
	DefaultLatitude  string
	DefaultLongitude string
}

// Load reads .env (if present) and builds the config from the
// environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "8084"),
		MySQLDSN:          getEnv("MYSQL_DSN", "root:@tcp(127.0.0.1:3306)/restaurant-pricing-db"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		GoogleMapsAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		PlacesBaseURL:     getEnv("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		WeatherBaseURL:    getEnv("WEATHER_BASE_URL", "http://api.openweathermap.org/data/2.5/weather"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		OwnerKey:          getEnv("OWNER_KEY", ""),
		DefaultLatitude:   getEnv("DEFAULT_LATITUDE", "40.7631"),
		DefaultLongitude:  getEnv("DEFAULT_LONGITUDE", "-73.5267"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
