package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/skybooker/flight-booking-service/internal/adapter/http/middleware"
	"github.com/skybooker/flight-booking-service/internal/adapter/http/response"
	"github.com/skybooker/flight-booking-service/internal/domain"
	"github.com/skybooker/flight-booking-service/internal/usecase"
)

// Handler handles HTTP requests for the booking flow.
type Handler struct {
	auth    usecase.AuthUseCase
	search  usecase.SearchUseCase
	booking usecase.BookingUseCase
	payment usecase.PaymentUseCase
}

// NewHandler creates a Handler wired to the given use cases.
func NewHandler(auth usecase.AuthUseCase, search usecase.SearchUseCase, booking usecase.BookingUseCase, payment usecase.PaymentUseCase) *Handler {
	return &Handler{
		auth:    auth,
		search:  search,
		booking: booking,
		payment: payment,
	}
}

// Login handles POST /api/v1/auth/login
//
// @Summary Log in with a demo or registered account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=AuthResponse}
// @Failure 400 {object} response.Response "Validation error"
// @Failure 401 {object} response.Response "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, toAuthResponse(result))
}

// Signup handles POST /api/v1/auth/signup
//
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "New account details"
// @Success 201 {object} response.Response{data=AuthResponse}
// @Failure 400 {object} response.Response "Validation error"
// @Router /auth/signup [post]
func (h *Handler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.auth.Signup(c.Request().Context(), req.Name(), req.Email, req.Password)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, toAuthResponse(result))
}

// Guest handles POST /api/v1/auth/guest
//
// @Summary Continue as guest
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response{data=AuthResponse}
// @Router /auth/guest [post]
func (h *Handler) Guest(c echo.Context) error {
	result, err := h.auth.GuestLogin(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, toAuthResponse(result))
}

// Logout handles POST /api/v1/auth/logout
//
// @Summary End the session
// @Tags auth
// @Security BearerAuth
// @Success 204 "Session ended"
// @Failure 401 {object} response.Response "Not authenticated"
// @Router /auth/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), middleware.GetSessionID(c)); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// Cities handles GET /api/v1/cities
//
// @Summary List cities available in the search form
// @Tags search
// @Produce json
// @Success 200 {object} response.Response{data=CitiesResponse}
// @Router /cities [get]
func (h *Handler) Cities(c echo.Context) error {
	return response.OK(c, &CitiesResponse{Cities: h.search.Cities()})
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Tags search
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SearchRequest true "Search parameters"
// @Success 200 {object} response.Response{data=SearchResultsResponse}
// @Failure 400 {object} response.Response "Validation error"
// @Failure 401 {object} response.Response "Not authenticated"
// @Failure 404 {object} response.Response "No flights found"
// @Router /flights/search [post]
func (h *Handler) SearchFlights(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.search.Search(c.Request().Context(), middleware.GetSessionID(c), req.ToDomain())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, toSearchResultsResponse(result))
}

// Results handles GET /api/v1/flights/results
//
// @Summary Get the stored search results, sorted
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param sortBy query string false "Sort key: price, duration, departure, safety"
// @Success 200 {object} response.Response{data=[]FlightDTO}
// @Failure 401 {object} response.Response "Not authenticated"
// @Failure 404 {object} response.Response "No search performed"
// @Router /flights/results [get]
func (h *Handler) Results(c echo.Context) error {
	sortBy := domain.SortOption(c.QueryParam("sortBy"))

	flights, err := h.search.Results(c.Request().Context(), middleware.GetSessionID(c), sortBy)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, toFlightDTOs(flights))
}

// SelectFlight handles POST /api/v1/flights/select
//
// @Summary Choose a flight from the search results
// @Tags search
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SelectFlightRequest true "Flight choice"
// @Success 200 {object} response.Response{data=FlightDTO}
// @Failure 400 {object} response.Response "Validation error"
// @Failure 401 {object} response.Response "Not authenticated"
// @Failure 404 {object} response.Response "Flight not in results"
// @Router /flights/select [post]
func (h *Handler) SelectFlight(c echo.Context) error {
	var req SelectFlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	flight, err := h.search.SelectFlight(c.Request().Context(), middleware.GetSessionID(c), req.FlightID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, toFlightDTO(*flight))
}

// BookingPage handles GET /api/v1/booking
//
// @Summary Get the booking page state
// @Description Returns the selected flight, seat map, current selection, and pricing. The seat map is generated on first open.
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=BookingPageResponse}
// @Failure 401 {object} response.Response "Not authenticated"
// @Failure 404 {object} response.Response "No flight selected"
// @Router /booking [get]
func (h *Handler) BookingPage(c echo.Context) error {
	view, err := h.booking.Open(c.Request().Context(), middleware.GetSessionID(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, toBookingPageResponse(view))
}

// ToggleSeat handles POST /api/v1/booking/seats
//
// @Summary Select or deselect a seat
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ToggleSeatRequest true "Seat to toggle"
// @Success 200 {object} response.Response{data=BookingPageResponse}
// @Failure 400 {object} response.Response "Invalid seat or selection limit reached"
// @Failure 401 {object} response.Response "Not authenticated"
// @Failure 409 {object} response.Response "Seat occupied"
// @Router /booking/seats [post]
func (h *Handler) ToggleSeat(c echo.Context) error {
	var req ToggleSeatRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	view, err := h.booking.ToggleSeat(c.Request().Context(), middleware.GetSessionID(c), domain.SeatID(req.SeatID))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, toBookingPageResponse(view))
}

// SubmitBooking handles POST /api/v1/booking
//
// @Summary Submit the booking
// @Description Requires a complete seat selection and one passenger per seat.
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitBookingRequest true "Passenger details"
// @Success 201 {object} response.Response{data=BookingResponse}
// @Failure 400 {object} response.Response "Incomplete selection or bad passenger data"
// @Failure 401 {object} response.Response "Not authenticated"
// @Failure 404 {object} response.Response "No flight selected"
// @Router /booking [post]
func (h *Handler) SubmitBooking(c echo.Context) error {
	var req SubmitBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	b, err := h.booking.Submit(c.Request().Context(), middleware.GetSessionID(c), req.ToDomain())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, toBookingResponse(b))
}

// Pay handles POST /api/v1/payment
//
// @Summary Pay for the submitted booking
// @Description Simulated payment. At most one payment per booking.
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "Card details"
// @Success 200 {object} response.Response{data=PaymentResponse}
// @Failure 400 {object} response.Response "Invalid card details"
// @Failure 401 {object} response.Response "Not authenticated"
// @Failure 404 {object} response.Response "No booking to pay"
// @Failure 409 {object} response.Response "Booking already paid"
// @Router /payment [post]
func (h *Handler) Pay(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	receipt, err := h.payment.Pay(c.Request().Context(), middleware.GetSessionID(c), req.ToDomain())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &PaymentResponse{
		ConfirmationNumber: receipt.ConfirmationNumber,
		Booking:            *toBookingResponse(&receipt.Booking),
	})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles request-shape validation errors and returns
// a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	var limitErr *domain.SelectionLimitExceededError
	var mismatchErr *domain.SeatCountMismatchError

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.InvalidCredentials(c, err.Error())
	case errors.Is(err, domain.ErrNotAuthenticated), errors.Is(err, domain.ErrSessionNotFound):
		return response.Unauthorized(c)
	case errors.Is(err, domain.ErrNoFlightsFound),
		errors.Is(err, domain.ErrNoFlightSelected),
		errors.Is(err, domain.ErrBookingNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrSeatUnavailable), errors.Is(err, domain.ErrAlreadyPaid):
		return response.Conflict(c, err.Error())
	case errors.As(err, &limitErr), errors.As(err, &mismatchErr):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	default:
		return response.InternalServerError(c)
	}
}
