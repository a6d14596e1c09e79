// Package http provides the HTTP handler layer for the booking API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"regexp"
	"strings"

	"github.com/skybooker/flight-booking-service/internal/domain"
	"github.com/skybooker/flight-booking-service/internal/usecase"
)

// Validation regex patterns.
var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	// Email is the account email (demo accounts accepted)
	Email string `json:"email" example:"demo@skybooker.com"`

	// Password is the account password
	Password string `json:"password" example:"demo123"`
}

// Validate checks the login request fields.
func (r *LoginRequest) Validate() error {
	errs := &ValidationErrors{}
	if strings.TrimSpace(r.Email) == "" {
		errs.Add("email", "email is required")
	}
	if r.Password == "" {
		errs.Add("password", "password is required")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// SignupRequest is the request body for POST /auth/signup.
type SignupRequest struct {
	// FirstName is the new account's first name
	FirstName string `json:"firstName" example:"Ada"`

	// LastName is the new account's last name
	LastName string `json:"lastName" example:"Lovelace"`

	// Email is the new account email
	Email string `json:"email" example:"ada@example.com"`

	// Password is the new account password (at least 6 characters)
	Password string `json:"password" example:"s3cret!"`
}

// Validate checks the signup request fields.
func (r *SignupRequest) Validate() error {
	errs := &ValidationErrors{}
	if strings.TrimSpace(r.FirstName) == "" {
		errs.Add("firstName", "firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs.Add("lastName", "lastName is required")
	}

	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs.Add("email", "email is required")
	} else if !emailPattern.MatchString(email) {
		errs.Add("email", "email is not a valid address")
	}

	if len(r.Password) < usecase.MinPasswordLength {
		errs.Add("password", "password must be at least 6 characters")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Name returns the account display name assembled from the form fields.
func (r *SignupRequest) Name() string {
	return strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
}

// SearchRequest is the request body for POST /flights/search.
type SearchRequest struct {
	// From is the departure city
	From string `json:"from" example:"Delhi"`

	// To is the destination city
	To string `json:"to" example:"Mumbai"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2025-07-01"`

	// ReturnDate is the return date for round trips (optional)
	ReturnDate string `json:"returnDate,omitempty" example:"2025-07-08"`

	// Passengers is the number of travellers (defaults to 1)
	Passengers int `json:"passengers" example:"2"`

	// Class is the fare class (defaults to Economy)
	Class string `json:"class,omitempty" example:"Economy"`

	// TripType is oneway or roundtrip (defaults to roundtrip)
	TripType string `json:"tripType,omitempty" example:"oneway"`
}

// Validate shape-checks the search request. Business rules (same city, past
// dates, return ordering) live in the domain validator; only wire-format
// concerns are checked here.
func (r *SearchRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.DepartureDate != "" && !datePattern.MatchString(r.DepartureDate) {
		errs.Add("departureDate", "departureDate must be in YYYY-MM-DD format")
	}
	if r.ReturnDate != "" && !datePattern.MatchString(r.ReturnDate) {
		errs.Add("returnDate", "returnDate must be in YYYY-MM-DD format")
	}
	if r.Passengers < 0 {
		errs.Add("passengers", "passengers must be a positive number")
	}
	if t := domain.TripType(r.TripType); r.TripType != "" && !t.IsValid() {
		errs.Add("tripType", "tripType must be oneway or roundtrip")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToDomain converts the request to the domain search request.
func (r *SearchRequest) ToDomain() domain.SearchRequest {
	return domain.SearchRequest{
		From:          strings.TrimSpace(r.From),
		To:            strings.TrimSpace(r.To),
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Passengers:    r.Passengers,
		Class:         r.Class,
		TripType:      domain.TripType(r.TripType),
	}
}

// SelectFlightRequest is the request body for POST /flights/select.
type SelectFlightRequest struct {
	// FlightID identifies the flight from the current search results
	FlightID string `json:"flightId" example:"flight_1"`
}

// Validate checks the select flight request fields.
func (r *SelectFlightRequest) Validate() error {
	errs := &ValidationErrors{}
	if r.FlightID == "" {
		errs.Add("flightId", "flightId is required")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToggleSeatRequest is the request body for POST /booking/seats.
type ToggleSeatRequest struct {
	// SeatID is the seat to select or deselect (e.g., "3C")
	SeatID string `json:"seatId" example:"3C"`
}

// Validate checks the toggle seat request fields.
func (r *ToggleSeatRequest) Validate() error {
	errs := &ValidationErrors{}
	if r.SeatID == "" {
		errs.Add("seatId", "seatId is required")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// PassengerDTO is one traveller on the booking form.
type PassengerDTO struct {
	FirstName   string `json:"firstName" example:"Pat"`
	LastName    string `json:"lastName" example:"Traveller"`
	Email       string `json:"email,omitempty" example:"pat@example.com"`
	Phone       string `json:"phone,omitempty" example:"+91 98765 43210"`
	DateOfBirth string `json:"dateOfBirth,omitempty" example:"1990-04-12"`
	Gender      string `json:"gender,omitempty" example:"female"`
}

// SubmitBookingRequest is the request body for POST /booking.
type SubmitBookingRequest struct {
	// Passengers are the travellers, one per selected seat
	Passengers []PassengerDTO `json:"passengers"`
}

// Validate checks the booking submission fields.
func (r *SubmitBookingRequest) Validate() error {
	errs := &ValidationErrors{}
	if len(r.Passengers) == 0 {
		errs.Add("passengers", "at least one passenger is required")
	}
	for _, p := range r.Passengers {
		if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
			errs.Add("passengers", "every passenger needs a first and last name")
			break
		}
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToDomain converts the passenger list to domain passengers.
func (r *SubmitBookingRequest) ToDomain() []domain.Passenger {
	out := make([]domain.Passenger, len(r.Passengers))
	for i, p := range r.Passengers {
		out[i] = domain.Passenger{
			FirstName:   strings.TrimSpace(p.FirstName),
			LastName:    strings.TrimSpace(p.LastName),
			Email:       strings.TrimSpace(p.Email),
			Phone:       strings.TrimSpace(p.Phone),
			DateOfBirth: p.DateOfBirth,
			Gender:      p.Gender,
		}
	}
	return out
}

// PaymentRequest is the request body for POST /payment.
type PaymentRequest struct {
	// CardNumber is the card number, spaces allowed
	CardNumber string `json:"cardNumber" example:"4111 1111 1111 1111"`

	// ExpiryDate is the expiry in MM/YY format
	ExpiryDate string `json:"expiryDate" example:"09/27"`

	// CVV is the 3 or 4 digit security code
	CVV string `json:"cvv" example:"123"`

	// CardName is the name on the card
	CardName string `json:"cardName" example:"Pat Traveller"`
}

// Validate checks that all card fields are present. Shape checks happen in
// the payment use case.
func (r *PaymentRequest) Validate() error {
	errs := &ValidationErrors{}
	if r.CardNumber == "" {
		errs.Add("cardNumber", "cardNumber is required")
	}
	if r.ExpiryDate == "" {
		errs.Add("expiryDate", "expiryDate is required")
	}
	if r.CVV == "" {
		errs.Add("cvv", "cvv is required")
	}
	if strings.TrimSpace(r.CardName) == "" {
		errs.Add("cardName", "cardName is required")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToDomain converts the request to the card details the payment use case
// expects.
func (r *PaymentRequest) ToDomain() usecase.CardDetails {
	return usecase.CardDetails{
		Number:     r.CardNumber,
		Expiry:     r.ExpiryDate,
		CVV:        r.CVV,
		HolderName: r.CardName,
	}
}
