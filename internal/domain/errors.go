// Package domain contains the core business entities and rules for the
// SkyBooker booking flow. These entities are transport-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the booking flow.
// Handlers map these to HTTP status codes; use errors.Is to check them.
var (
	// ErrInvalidRequest indicates the request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated indicates the caller has no valid session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionNotFound indicates the session ID resolves to nothing,
	// typically because it expired or was cleared at payment completion.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoFlightsFound indicates the search produced no results for the route.
	ErrNoFlightsFound = errors.New("no flights found")

	// ErrNoFlightSelected indicates a booking step was attempted before a
	// flight was chosen from the results page.
	ErrNoFlightSelected = errors.New("no flight selected")

	// ErrSeatUnavailable indicates a toggle on a seat marked occupied in the
	// generated seat map. Occupancy is checked before the selection policy
	// ever sees the seat.
	ErrSeatUnavailable = errors.New("seat unavailable")

	// ErrBookingNotFound indicates payment was attempted with no booking in
	// the session.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyPaid indicates a second payment attempt on a booking that was
	// already confirmed. Payment is at-most-once.
	ErrAlreadyPaid = errors.New("booking already paid")
)

// Search form validation failures. Checks are ordered and short-circuit, so a
// request is always reported with the first reason that applies. Each reason
// wraps ErrInvalidRequest so callers can match either the specific reason or
// the general class.
var (
	ErrMissingCities         = fmt.Errorf("%w: departure and destination cities are required", ErrInvalidRequest)
	ErrSameCity              = fmt.Errorf("%w: departure and destination cities cannot be the same", ErrInvalidRequest)
	ErrMissingDepartureDate  = fmt.Errorf("%w: departure date is required", ErrInvalidRequest)
	ErrPastDepartureDate     = fmt.Errorf("%w: departure date cannot be in the past", ErrInvalidRequest)
	ErrReturnBeforeDeparture = fmt.Errorf("%w: return date must be after departure date", ErrInvalidRequest)
)

// SelectionLimitExceededError is returned by SeatSelection.Toggle when adding
// a new seat would exceed the passenger count. The selection is unchanged.
type SelectionLimitExceededError struct {
	// PassengerCount is the maximum number of seats that may be selected.
	PassengerCount int
}

// Error implements the error interface.
func (e *SelectionLimitExceededError) Error() string {
	return fmt.Sprintf("seat selection limit exceeded: at most %d seat(s) may be selected", e.PassengerCount)
}

// SeatCountMismatchError is returned when booking submission is attempted
// with a seat selection that is not complete.
type SeatCountMismatchError struct {
	// Selected is the number of seats currently selected.
	Selected int

	// Required is the passenger count the selection must reach.
	Required int
}

// Error implements the error interface.
func (e *SeatCountMismatchError) Error() string {
	return fmt.Sprintf("seat count mismatch: %d of %d seat(s) selected", e.Selected, e.Required)
}
