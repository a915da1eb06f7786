package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/nasrallahilyass/Personal-Diary-APP/docs"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/handler"
)

// NewRouter wires the JSON API. rateLimit is the per-client request rate in
// requests per second; zero or less disables limiting.
func NewRouter(entryHandler *handler.EntryHandler, rateLimit int) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLoggerMiddleware())
	if rateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(rateLimit))))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	entryHandler.RegisterRoutes(api)

	return e
}
