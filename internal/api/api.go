package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"restaurant-pricing-service/internal/auth"
	"restaurant-pricing-service/internal/entity"
	"restaurant-pricing-service/internal/repository"
	"restaurant-pricing-service/internal/service"
)

// AnalysisHandler handles pricing-analysis requests.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
	jwtSecret       []byte
	ownerKey        string
	defaultLat      string
	defaultLng      string
}

func NewAnalysisHandler(analysisService *service.AnalysisService, jwtSecret []byte, ownerKey, defaultLat, defaultLng string) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		jwtSecret:       jwtSecret,
		ownerKey:        ownerKey,
		defaultLat:      defaultLat,
		defaultLng:      defaultLng,
	}
}

// SearchRestaurants handles GET /restaurants/search?q=&lat=&lng=
func (h *AnalysisHandler) SearchRestaurants(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(400, map[string]string{"error": "missing query parameter q"})
	}

	lat := c.QueryParam("lat")
	if lat == "" {
		lat = h.defaultLat
	}
	lng := c.QueryParam("lng")
	if lng == "" {
		lng = h.defaultLng
	}

	restaurants, err := h.analysisService.SearchRestaurants(c.Request().Context(), query, lat, lng)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(200, map[string]interface{}{"restaurants": restaurants})
}

// AnalyzeRestaurant handles GET /restaurants/:place_id/analysis
func (h *AnalysisHandler) AnalyzeRestaurant(c echo.Context) error {
	placeID := c.Param("place_id")

	analysis, err := h.analysisService.AnalyzeRestaurant(c.Request().Context(), placeID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(200, analysis)
}

// IssueToken handles POST /auth/token. The owner key comes from config;
// a matching key gets a signed token for the menu routes.
func (h *AnalysisHandler) IssueToken(c echo.Context) error {
	var tokenRequest struct {
		OwnerKey string `json:"owner_key"`
	}
	if err := c.Bind(&tokenRequest); err != nil {
		return c.JSON(400, map[string]string{"error": "invalid request payload"})
	}

	if h.ownerKey == "" || tokenRequest.OwnerKey != h.ownerKey {
		return c.JSON(401, map[string]string{"error": "invalid owner key"})
	}

	token, err := auth.GenerateToken(h.jwtSecret, "owner")
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]string{"token": token})
}

// ListMenu handles GET /restaurants/:place_id/menu
func (h *AnalysisHandler) ListMenu(c echo.Context) error {
	items, err := h.analysisService.ListMenu(c.Request().Context(), c.Param("place_id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(200, map[string]interface{}{"items": items})
}

// AddMenuItem handles POST /restaurants/:place_id/menu
func (h *AnalysisHandler) AddMenuItem(c echo.Context) error {
	item := entity.MenuItem{}
	if err := c.Bind(&item); err != nil {
		return c.JSON(400, map[string]string{"error": "invalid request payload"})
	}
	item.PlaceID = c.Param("place_id")

	if err := h.analysisService.AddMenuItem(c.Request().Context(), &item); err != nil {
		return c.JSON(400, map[string]string{"error": err.Error()})
	}

	return c.JSON(201, item)
}

// DeleteMenuItem handles DELETE /restaurants/:place_id/menu/:id
func (h *AnalysisHandler) DeleteMenuItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "invalid ID"})
	}

	if err := h.analysisService.RemoveMenuItem(c.Request().Context(), c.Param("place_id"), id); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return c.JSON(404, map[string]string{"error": err.Error()})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.NoContent(204)
}

func errorResponse(c echo.Context, err error) error {
	if errors.Is(err, service.ErrDataUnavailable) {
		return c.JSON(502, map[string]string{"error": err.Error()})
	}
	return c.JSON(500, map[string]string{"error": err.Error()})
}
