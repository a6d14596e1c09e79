package http

import (
	"github.com/labstack/echo/v4"

	"github.com/skybooker/flight-booking-service/internal/adapter/http/middleware"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/token"
)

// RegisterRoutes registers the booking API routes. Login endpoints are rate
// limited per client IP; everything past the auth pages requires a session
// token.
func RegisterRoutes(e *echo.Echo, h *Handler, tokens *token.Manager, loginLimiter *middleware.LoginLimiter) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	// Public auth endpoints
	auth := api.Group("/auth")
	auth.POST("/login", h.Login, loginLimiter.Middleware())
	auth.POST("/signup", h.Signup, loginLimiter.Middleware())
	auth.POST("/guest", h.Guest)

	// Cities feed the search form before login state matters
	api.GET("/cities", h.Cities)

	// Everything below requires a session
	authed := api.Group("", middleware.SessionAuth(tokens))
	authed.POST("/auth/logout", h.Logout)

	flights := authed.Group("/flights")
	flights.POST("/search", h.SearchFlights)
	flights.GET("/results", h.Results)
	flights.POST("/select", h.SelectFlight)

	booking := authed.Group("/booking")
	booking.GET("", h.BookingPage)
	booking.POST("", h.SubmitBooking)
	booking.POST("/seats", h.ToggleSeat)

	authed.POST("/payment", h.Pay)
}
