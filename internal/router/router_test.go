package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"restaurant-pricing-service/internal/api"
	"restaurant-pricing-service/internal/auth"
	"restaurant-pricing-service/internal/entity"
	"restaurant-pricing-service/internal/repository"
	"restaurant-pricing-service/internal/service"
)

const (
	testSecret   = "test-secret"
	testOwnerKey = "owner-key"
)

type fakePlaces struct {
	err error
}

func (f *fakePlaces) SearchPlace(ctx context.Context, query, lat, lng string) ([]entity.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []entity.Restaurant{{PlaceID: "place-1", Name: "Spice Route"}}, nil
}

func (f *fakePlaces) PlaceDetails(ctx context.Context, placeID string) (entity.Restaurant, error) {
	if f.err != nil {
		return entity.Restaurant{}, f.err
	}
	return entity.Restaurant{PlaceID: placeID, Name: "Spice Route", Latitude: 40.7631, Longitude: -73.5267}, nil
}

func (f *fakePlaces) NearbyCompetitors(ctx context.Context, lat, lng float64) ([]entity.Competitor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []entity.Competitor{{Name: "Curry Corner", PriceLevel: 2}}, nil
}

type fakeWeather struct{}

func (f *fakeWeather) CurrentWeather(ctx context.Context, lat, lng float64) (entity.WeatherSnapshot, error) {
	return entity.WeatherSnapshot{TemperatureKelvin: 293.15, Condition: "Clear", Description: "clear sky"}, nil
}

type fakeBusy struct{}

func (f *fakeBusy) BusyLevel(ctx context.Context, placeID string) (int, error) {
	return 75, nil
}

// newTestRouter builds a fresh router per test so each gets its own
// rate-limiter store.
func newTestRouter(t *testing.T, places *fakePlaces) (*echo.Echo, *repository.InMemoryRepository) {
	t.Helper()
	t.Setenv("ENV", "test")

	repo := repository.NewInMemoryRepository()
	svc := service.NewAnalysisService(places, &fakeWeather{}, &fakeBusy{}, repo, nil, nil)
	handler := api.NewAnalysisHandler(svc, []byte(testSecret), testOwnerKey, "40.7631", "-73.5267")
	return New(handler, []byte(testSecret)), repo
}

func TestHealth(t *testing.T) {
	e, _ := newTestRouter(t, &fakePlaces{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestAnalyzeRestaurantEndpoint(t *testing.T) {
	e, _ := newTestRouter(t, &fakePlaces{})

	req := httptest.NewRequest(http.MethodGet, "/restaurants/place-1/analysis", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var analysis entity.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if analysis.Restaurant.PlaceID != "place-1" {
		t.Fatalf("unexpected restaurant: %+v", analysis.Restaurant)
	}
	if analysis.BusyLevel != 75 {
		t.Fatalf("expected busy level 75, got %d", analysis.BusyLevel)
	}
	if len(analysis.Quotes) == 0 {
		t.Fatalf("expected quotes in the analysis")
	}
}

func TestSearchMissingQuery(t *testing.T) {
	e, _ := newTestRouter(t, &fakePlaces{})

	req := httptest.NewRequest(http.MethodGet, "/restaurants/search", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestUpstreamFailureMapsTo502(t *testing.T) {
	e, _ := newTestRouter(t, &fakePlaces{err: errors.New("quota exceeded")})

	req := httptest.NewRequest(http.MethodGet, "/restaurants/search?q=spice", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}
}

func TestMenuRequiresToken(t *testing.T) {
	e, _ := newTestRouter(t, &fakePlaces{})

	req := httptest.NewRequest(http.MethodGet, "/restaurants/place-1/menu", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest && w.Code != http.StatusUnauthorized {
		t.Fatalf("expected request to be rejected, got %d", w.Code)
	}
}

func TestMenuWithToken(t *testing.T) {
	e, repo := newTestRouter(t, &fakePlaces{})

	token, err := auth.GenerateToken([]byte(testSecret), "owner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := strings.NewReader(`{"name": "Dal Makhani", "base_price": 12.99}`)
	req := httptest.NewRequest(http.MethodPost, "/restaurants/place-1/menu", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	items, err := repo.ListMenuItems(context.Background(), "place-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Dal Makhani" {
		t.Fatalf("menu item not stored: %+v", items)
	}
}

func TestIssueToken(t *testing.T) {
	e, _ := newTestRouter(t, &fakePlaces{})

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"owner_key": "wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"owner_key": "owner-key"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var tokenResp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &tokenResp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if tokenResp["token"] == "" {
		t.Fatalf("expected a token in the response")
	}
}
