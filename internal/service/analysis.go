package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"restaurant-pricing-service/internal/entity"
	"restaurant-pricing-service/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// ErrDataUnavailable marks upstream data that could not be fetched.
// The API layer maps it to 502 so an upstream outage is not mistaken
// for a bad request or a bug in the pricing logic.
var ErrDataUnavailable = errors.New("upstream data unavailable")

const (
	weatherCacheTTL = 10 * time.Minute
	busyCacheTTL    = 5 * time.Minute

	// How many nearby venues contribute competitor prices per item.
	maxCompetitors = 5
)

// AnalysisService runs the full pricing analysis for a restaurant.
type AnalysisService struct {
	places      PlacesProvider
	weather     WeatherProvider
	busy        BusyLevelProvider
	repo        repository.AnalysisRepository
	rdb         *redis.Client
	kafkaWriter *kafka.Writer
}

// NewAnalysisService creates a new instance of AnalysisService. rdb
// and kafkaWriter may be nil, which disables caching and events.
func NewAnalysisService(
	places PlacesProvider,
	weather WeatherProvider,
	busy BusyLevelProvider,
	repo repository.AnalysisRepository,
	rdb *redis.Client,
	kafkaWriter *kafka.Writer,
) *AnalysisService {
	return &AnalysisService{
		places:      places,
		weather:     weather,
		busy:        busy,
		repo:        repo,
		rdb:         rdb,
		kafkaWriter: kafkaWriter,
	}
}

// SearchRestaurants looks up candidate restaurants by name around the
// given coordinates.
func (s *AnalysisService) SearchRestaurants(ctx context.Context, query, lat, lng string) ([]entity.Restaurant, error) {
	restaurants, err := s.places.SearchPlace(ctx, query, lat, lng)
	if err != nil {
		logger.Error().Err(err).Msgf("Error searching places for %q", query)
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return restaurants, nil
}

// AnalyzeRestaurant fetches everything needed for one pricing run and
// computes the adjusted menu prices.
func (s *AnalysisService) AnalyzeRestaurant(ctx context.Context, placeID string) (*entity.Analysis, error) {
	restaurant, err := s.places.PlaceDetails(ctx, placeID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching details for place %s", placeID)
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	competitors, err := s.places.NearbyCompetitors(ctx, restaurant.Latitude, restaurant.Longitude)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching competitors for place %s", placeID)
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	weather, err := s.currentWeather(ctx, restaurant.Latitude, restaurant.Longitude)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching weather for place %s", placeID)
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	busyLevel, err := s.busyLevel(ctx, placeID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching busy level for place %s", placeID)
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	items, err := s.repo.ListMenuItems(ctx, placeID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing menu items for place %s", placeID)
		return nil, err
	}
	if len(items) == 0 {
		items = SampleMenu(placeID)
	}

	quotes := PriceMenu(items, weather, busyLevel, func(item entity.MenuItem) []float64 {
		return CompetitorPricesForItem(item, competitors, maxCompetitors)
	})

	analysis := &entity.Analysis{
		AnalysisID:  uuid.NewString(),
		Restaurant:  restaurant,
		Competitors: competitors,
		Weather: entity.WeatherReport{
			TemperatureF: ToFahrenheit(weather.TemperatureKelvin),
			Condition:    weather.Condition,
			Description:  weather.Description,
		},
		BusyLevel: busyLevel,
		Quotes:    quotes,
	}

	if err := s.persistAnalysis(ctx, analysis, weather); err != nil {
		logger.Error().Err(err).Msgf("Error persisting analysis %s", analysis.AnalysisID)
		return nil, err
	}

	// if env is set to test, skip event publishing
	if os.Getenv("ENV") != "test" {
		if err := s.publishAnalysisEvent(ctx, analysis); err != nil {
			logger.Error().Err(err).Msgf("Error publishing analysis event %s", analysis.AnalysisID)
			return nil, err
		}
	}

	return analysis, nil
}

// ListMenu returns the stored menu for a place, falling back to the
// sample menu when nothing is stored yet.
func (s *AnalysisService) ListMenu(ctx context.Context, placeID string) ([]entity.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return SampleMenu(placeID), nil
	}
	return items, nil
}

// AddMenuItem stores a new menu item for a place.
func (s *AnalysisService) AddMenuItem(ctx context.Context, item *entity.MenuItem) error {
	if item.Name == "" || item.BasePrice <= 0 {
		return errors.New("menu item needs a name and a positive base price")
	}
	return s.repo.CreateMenuItem(ctx, item)
}

// RemoveMenuItem deletes a stored menu item.
func (s *AnalysisService) RemoveMenuItem(ctx context.Context, placeID string, id int) error {
	return s.repo.DeleteMenuItem(ctx, placeID, id)
}

func (s *AnalysisService) currentWeather(ctx context.Context, lat, lng float64) (entity.WeatherSnapshot, error) {
	cacheKey := fmt.Sprintf("weather:%.3f:%.3f", lat, lng)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return entity.WeatherSnapshot{}, err
		}
		if cached != "" {
			var snapshot entity.WeatherSnapshot
			if err := json.Unmarshal([]byte(cached), &snapshot); err != nil {
				return entity.WeatherSnapshot{}, fmt.Errorf("could not unmarshal cached weather: %v", err)
			}
			return snapshot, nil
		}
	}

	snapshot, err := s.weather.CurrentWeather(ctx, lat, lng)
	if err != nil {
		return entity.WeatherSnapshot{}, err
	}

	if s.rdb != nil {
		payload, err := json.Marshal(snapshot)
		if err != nil {
			return entity.WeatherSnapshot{}, err
		}
		if err := s.rdb.Set(ctx, cacheKey, payload, weatherCacheTTL).Err(); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache weather snapshot")
		}
	}

	return snapshot, nil
}

func (s *AnalysisService) busyLevel(ctx context.Context, placeID string) (int, error) {
	cacheKey := fmt.Sprintf("busy:%s", placeID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			return 0, err
		}
		if err == nil {
			return cached, nil
		}
	}

	level, err := s.busy.BusyLevel(ctx, placeID)
	if err != nil {
		return 0, err
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, cacheKey, level, busyCacheTTL).Err(); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache busy level")
		}
	}

	return level, nil
}

func (s *AnalysisService) persistAnalysis(ctx context.Context, analysis *entity.Analysis, weather entity.WeatherSnapshot) error {
	if err := s.repo.UpsertRestaurant(ctx, &analysis.Restaurant); err != nil {
		return err
	}

	obs := &entity.WeatherObservation{
		ObservedAt:        time.Now(),
		Latitude:          analysis.Restaurant.Latitude,
		Longitude:         analysis.Restaurant.Longitude,
		TemperatureKelvin: weather.TemperatureKelvin,
		Condition:         weather.Condition,
	}
	if err := s.repo.SaveWeatherObservation(ctx, obs); err != nil {
		return err
	}

	return s.repo.SaveQuotes(ctx, analysis.AnalysisID, analysis.Restaurant.PlaceID, analysis.Quotes)
}

func (s *AnalysisService) publishAnalysisEvent(ctx context.Context, analysis *entity.Analysis) error {
	if s.kafkaWriter == nil {
		return nil
	}

	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("analysis-%s", analysis.AnalysisID)),
		Value: analysisJSON,
	}

	return s.kafkaWriter.WriteMessages(ctx, msg)
}

// SampleMenu is the built-in menu used when a restaurant has no stored
// items yet.
func SampleMenu(placeID string) []entity.MenuItem {
	return []entity.MenuItem{
		{PlaceID: placeID, Name: "Butter Chicken", BasePrice: 16.99},
		{PlaceID: placeID, Name: "Chicken Tikka Masala", BasePrice: 15.99},
		{PlaceID: placeID, Name: "Vegetable Biryani", BasePrice: 14.99},
		{PlaceID: placeID, Name: "Naan", BasePrice: 3.99},
	}
}
