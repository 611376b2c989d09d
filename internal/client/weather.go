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

// WeatherClient talks to the OpenWeather current-weather API.
type WeatherClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewWeatherClient(baseURL, apiKey string) *WeatherClient {
	return &WeatherClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

type weatherResponse struct {
	Main *struct {
		Temp *float64 `json:"temp"` // Kelvin
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

// CurrentWeather fetches the weather at the given coordinates. A
// response missing the temperature or condition is an error, never a
// placeholder value.
func (c *WeatherClient) CurrentWeather(ctx context.Context, lat, lng float64) (entity.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return entity.WeatherSnapshot{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.WeatherSnapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.WeatherSnapshot{}, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var weatherResp weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&weatherResp); err != nil {
		return entity.WeatherSnapshot{}, err
	}

	if weatherResp.Main == nil || weatherResp.Main.Temp == nil {
		return entity.WeatherSnapshot{}, fmt.Errorf("weather response missing temperature")
	}
	if len(weatherResp.Weather) == 0 {
		return entity.WeatherSnapshot{}, fmt.Errorf("weather response missing condition")
	}

	return entity.WeatherSnapshot{
		TemperatureKelvin: *weatherResp.Main.Temp,
		Condition:         weatherResp.Weather[0].Main,
		Description:       weatherResp.Weather[0].Description,
	}, nil
}
