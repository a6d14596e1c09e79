// Package response provides standardized HTTP response builders for the
// booking API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Failure(CodeInvalidRequest, message, nil))
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, Failure(CodeInvalidRequest, MsgInvalidRequestBody, nil))
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, Failure(CodeValidationError, MsgValidationFailed, details))
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Failure(CodeValidationError, message, nil))
}

// Unauthorized writes a 401 Unauthorized response.
func Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, Failure(CodeUnauthorized, MsgUnauthorized, nil))
}

// InvalidCredentials writes a 401 Unauthorized response for failed logins.
func InvalidCredentials(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, Failure(CodeInvalidCredentials, message, nil))
}

// NotFound writes a 404 Not Found response with a custom message.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, Failure(CodeNotFound, message, nil))
}

// Conflict writes a 409 Conflict response with a custom message.
func Conflict(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, Failure(CodeConflict, message, nil))
}

// TooManyRequests writes a 429 Too Many Requests response.
func TooManyRequests(c echo.Context) error {
	return c.JSON(http.StatusTooManyRequests, Failure(CodeTooManyRequests, MsgTooManyRequests, nil))
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, Failure(CodeInternalError, MsgInternalError, nil))
}
