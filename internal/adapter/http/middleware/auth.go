package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skybooker/flight-booking-service/internal/infrastructure/token"
)

// sessionIDKey is the context key for the authenticated session ID.
const sessionIDKey = "session_id"

// SessionAuth returns middleware that requires a valid session token in the
// Authorization header (Bearer scheme). The session ID is stored in the
// context for handlers; session lookup stays with the use cases so expired
// sessions surface as their own error.
func SessionAuth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				return unauthorized(c)
			}

			sessionID, err := tokens.Parse(raw)
			if err != nil {
				return unauthorized(c)
			}

			c.Set(sessionIDKey, sessionID)
			return next(c)
		}
	}
}

// GetSessionID retrieves the authenticated session ID from the context.
// Returns an empty string outside of SessionAuth-protected routes.
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]interface{}{
		"success": false,
		"error": map[string]string{
			"code":    "unauthorized",
			"message": "Authentication required",
		},
	})
}
