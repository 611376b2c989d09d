package router

import (
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"restaurant-pricing-service/internal/api"
)

// New builds the echo instance with middleware and routes.
func New(handler *api.AnalysisHandler, jwtSecret []byte) *echo.Echo {
	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(1),
				Burst:     3,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	e.GET("/restaurants/search", handler.SearchRestaurants)
	e.GET("/restaurants/:place_id/analysis", handler.AnalyzeRestaurant)
	e.POST("/auth/token", handler.IssueToken)

	// Menu management is owner-only
	menu := e.Group("/restaurants/:place_id/menu", echojwt.JWT(jwtSecret))
	menu.GET("", handler.ListMenu)
	menu.POST("", handler.AddMenuItem)
	menu.DELETE("/:id", handler.DeleteMenuItem)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "restaurant-pricing-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	return e
}
