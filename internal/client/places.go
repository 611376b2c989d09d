package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"restaurant-pricing-service/internal/entity"
)

// PlacesClient talks to the Google Places API.
type PlacesClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewPlacesClient builds a client. baseURL is configurable so tests
// can point it at a local server.
func NewPlacesClient(baseURL, apiKey string) *PlacesClient {
	return &PlacesClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

type placeResult struct {
	Name             string  `json:"name"`
	PlaceID          string  `json:"place_id"`
	FormattedAddress string  `json:"formatted_address"`
	Vicinity         string  `json:"vicinity"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"user_ratings_total"`
	PriceLevel       int     `json:"price_level"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type placesSearchResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Results      []placeResult `json:"results"`
}

type placeDetailsResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
	Result       *placeResult `json:"result"`
}

// SearchPlace runs a text search for restaurants around the given
// coordinates (5km radius).
func (c *PlacesClient) SearchPlace(ctx context.Context, query, lat, lng string) ([]entity.Restaurant, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("location", fmt.Sprintf("%s,%s", lat, lng))
	params.Set("radius", "5000")
	params.Set("type", "restaurant")
	params.Set("key", c.apiKey)

	var searchResp placesSearchResponse
	if err := c.get(ctx, "/textsearch/json", params, &searchResp); err != nil {
		return nil, err
	}
	if err := checkStatus(searchResp.Status, searchResp.ErrorMessage); err != nil {
		return nil, err
	}

	restaurants := make([]entity.Restaurant, 0, len(searchResp.Results))
	for _, result := range searchResp.Results {
		restaurants = append(restaurants, toRestaurant(result))
	}
	return restaurants, nil
}

// PlaceDetails fetches a single restaurant by place ID.
func (c *PlacesClient) PlaceDetails(ctx context.Context, placeID string) (entity.Restaurant, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,rating,user_ratings_total,formatted_address,price_level,geometry")
	params.Set("key", c.apiKey)

	var detailsResp placeDetailsResponse
	if err := c.get(ctx, "/details/json", params, &detailsResp); err != nil {
		return entity.Restaurant{}, err
	}
	if err := checkStatus(detailsResp.Status, detailsResp.ErrorMessage); err != nil {
		return entity.Restaurant{}, err
	}
	if detailsResp.Result == nil {
		return entity.Restaurant{}, fmt.Errorf("no details for place %s", placeID)
	}

	restaurant := toRestaurant(*detailsResp.Result)
	restaurant.PlaceID = placeID
	return restaurant, nil
}

// NearbyCompetitors lists restaurants within 1km of the location.
func (c *PlacesClient) NearbyCompetitors(ctx context.Context, lat, lng float64) ([]entity.Competitor, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%s,%s",
		strconv.FormatFloat(lat, 'f', -1, 64), strconv.FormatFloat(lng, 'f', -1, 64)))
	params.Set("radius", "1000")
	params.Set("type", "restaurant")
	params.Set("key", c.apiKey)

	var searchResp placesSearchResponse
	if err := c.get(ctx, "/nearbysearch/json", params, &searchResp); err != nil {
		return nil, err
	}
	if err := checkStatus(searchResp.Status, searchResp.ErrorMessage); err != nil {
		return nil, err
	}

	competitors := make([]entity.Competitor, 0, len(searchResp.Results))
	for _, result := range searchResp.Results {
		competitors = append(competitors, entity.Competitor{
			PlaceID:    result.PlaceID,
			Name:       result.Name,
			Rating:     result.Rating,
			PriceLevel: result.PriceLevel,
		})
	}
	return competitors, nil
}

func (c *PlacesClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places API returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func checkStatus(status, errorMessage string) error {
	if status == "OK" || status == "ZERO_RESULTS" {
		return nil
	}
	if errorMessage != "" {
		return fmt.Errorf("places API error: %s (%s)", errorMessage, status)
	}
	return fmt.Errorf("places API error: %s", status)
}

func toRestaurant(result placeResult) entity.Restaurant {
	address := result.FormattedAddress
	if address == "" {
		address = result.Vicinity
	}
	return entity.Restaurant{
		PlaceID:          result.PlaceID,
		Name:             result.Name,
		Address:          address,
		Rating:           result.Rating,
		UserRatingsTotal: result.UserRatingsTotal,
		PriceLevel:       result.PriceLevel,
		Latitude:         result.Geometry.Location.Lat,
		Longitude:        result.Geometry.Location.Lng,
	}
}
