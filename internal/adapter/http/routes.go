package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *FlightHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)
	flights.GET("/upcoming", h.UpcomingFlights)
	flights.GET("/offer/:offerId", h.GetOffer)

	locations := api.Group("/locations")
	locations.GET("/search", h.SearchLocations)
}
