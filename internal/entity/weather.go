package entity

import "time"

// WeatherSnapshot is the current weather at a restaurant's location,
// as reported by the weather provider. Temperature stays in Kelvin
// until pricing converts it.
type WeatherSnapshot struct {
	TemperatureKelvin float64 `json:"temperature_kelvin"`
	Condition         string  `json:"condition"` // e.g. "Clear", "Rain", "Snow"
	Description       string  `json:"description"`
}

// WeatherReport is the weather block returned to API clients, with
// the temperature already converted for display.
type WeatherReport struct {
	TemperatureF float64 `json:"temperature_f"`
	Condition    string  `json:"condition"`
	Description  string  `json:"description"`
}

// WeatherObservation is a persisted weather reading, one row per
// analysis run.
type WeatherObservation struct {
	ID                int       `json:"id"`
	ObservedAt        time.Time `json:"observed_at"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	TemperatureKelvin float64   `json:"temperature_kelvin"`
	Condition         string    `json:"condition"`
}
