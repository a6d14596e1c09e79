package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the global middleware on the Echo instance in the correct
// order:
//  1. RequestID - generates/propagates the request ID for all later logging
//  2. RequestLogger - logs every request with the request ID
//  3. Recover - catches panics and returns 500
//
// Call this before registering routes. SessionAuth and login rate limiting
// are route-group middleware and are attached where routes are registered.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
