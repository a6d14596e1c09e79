package integration

import (
	"fmt"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skybooker/flight-booking-service/internal/domain"
	"github.com/skybooker/flight-booking-service/test/mock"
	"github.com/skybooker/flight-booking-service/test/testutil"
)

var confirmationPattern = regexp.MustCompile(`^SKY[A-Z0-9]{6}$`)

func searchBody(passengers int) map[string]interface{} {
	return map[string]interface{}{
		"from":          "Delhi",
		"to":            "Mumbai",
		"departureDate": "2025-06-20",
		"passengers":    passengers,
		"class":         "Economy",
		"tripType":      "oneway",
	}
}

func stubFlights() []domain.Flight {
	cheap := testutil.Flight("flight_1", "IndiGo", 4500)
	pricey := testutil.Flight("flight_2", "Vistara", 6100)
	pricey.SafetyScore = 9.1
	return []domain.Flight{cheap, pricey}
}

// TestBookingFlow walks the whole site flow over HTTP: login, search,
// results, select, seat selection, submit, and payment.
func TestBookingFlow(t *testing.T) {
	provider := mock.NewProvider("skyair").WithFlights(stubFlights())
	ts := NewTestServer(t, provider)
	token := ts.Login(t)

	// Search
	resp := ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/flights/search", Token: token, Body: searchBody(2)})
	require.Equal(t, http.StatusOK, resp.Code)

	var results struct {
		Results []struct {
			ID    string `json:"id"`
			Price int    `json:"price"`
		} `json:"results"`
	}
	Decode(t, resp, &results)
	require.Len(t, results.Results, 2)
	assert.Equal(t, 1, provider.CallCount())
	assert.Equal(t, "Delhi", provider.LastRequest().From)

	// Select the cheaper flight
	resp = ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/flights/select", Token: token, Body: map[string]string{"flightId": "flight_1"}})
	require.Equal(t, http.StatusOK, resp.Code)

	// Open the booking page and pick two free seats
	resp = ts.Do(t, Request{Method: http.MethodGet, Path: "/api/v1/booking", Token: token})
	require.Equal(t, http.StatusOK, resp.Code)

	var page struct {
		SeatMap []struct {
			ID       string `json:"id"`
			Occupied bool   `json:"occupied"`
		} `json:"seatMap"`
		SelectionState string `json:"selectionState"`
	}
	Decode(t, resp, &page)
	require.Len(t, page.SeatMap, 72)
	assert.Equal(t, "empty", page.SelectionState)

	var seats []string
	for _, s := range page.SeatMap {
		if !s.Occupied {
			seats = append(seats, s.ID)
		}
		if len(seats) == 2 {
			break
		}
	}
	require.Len(t, seats, 2)

	for i, id := range seats {
		resp = ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/booking/seats", Token: token, Body: map[string]string{"seatId": id}})
		require.Equal(t, http.StatusOK, resp.Code)

		var toggled struct {
			SelectedSeats  []string `json:"selectedSeats"`
			SelectionState string   `json:"selectionState"`
		}
		Decode(t, resp, &toggled)
		assert.Len(t, toggled.SelectedSeats, i+1)
	}

	// Submit the booking
	resp = ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/booking", Token: token, Body: map[string]interface{}{
		"passengers": []interface{}{
			testutil.Passenger("Asha", "Verma"),
			testutil.Passenger("Ravi", "Verma"),
		},
	}})
	require.Equal(t, http.StatusCreated, resp.Code)

	var booked struct {
		ConfirmationNumber string `json:"confirmation_number"`
		Status             string `json:"status"`
		Pricing            struct {
			TotalBaseFare int `json:"totalBaseFare"`
			TotalTaxes    int `json:"totalTaxes"`
			Total         int `json:"total"`
		} `json:"pricing"`
	}
	Decode(t, resp, &booked)
	assert.Regexp(t, confirmationPattern, booked.ConfirmationNumber)
	assert.Equal(t, "confirmed", booked.Status)
	assert.Equal(t, 9000, booked.Pricing.TotalBaseFare)
	assert.Equal(t, 1620, booked.Pricing.TotalTaxes)

	// Pay
	resp = ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/payment", Token: token, Body: map[string]string{
		"cardNumber": "4111 1111 1111 1111",
		"expiryDate": "12/27",
		"cvv":        "123",
		"cardName":   "Asha Verma",
	}})
	require.Equal(t, http.StatusOK, resp.Code)

	var paid struct {
		ConfirmationNumber string `json:"confirmation_number"`
		Booking            struct {
			Status string `json:"status"`
		} `json:"booking"`
	}
	Decode(t, resp, &paid)
	assert.Equal(t, booked.ConfirmationNumber, paid.ConfirmationNumber)
	assert.Equal(t, "paid", paid.Booking.Status)

	// Paying again conflicts
	resp = ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/payment", Token: token, Body: map[string]string{
		"cardNumber": "4111 1111 1111 1111",
		"expiryDate": "12/27",
		"cvv":        "123",
		"cardName":   "Asha Verma",
	}})
	require.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "conflict", ErrorCode(t, resp))
}

func TestProviderErrorSurfacesAsNotFound(t *testing.T) {
	provider := mock.NewProvider("skyair").WithError(domain.ErrNoFlightsFound)
	ts := NewTestServer(t, provider)
	token := ts.Login(t)

	resp := ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/flights/search", Token: token, Body: searchBody(1)})
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "not_found", ErrorCode(t, resp))

	// Nothing was stored, so the results page also has nothing to show.
	resp = ts.Do(t, Request{Method: http.MethodGet, Path: "/api/v1/flights/results", Token: token})
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestNewSearchResetsBookingProgress(t *testing.T) {
	provider := mock.NewProvider("skyair").WithFlights(stubFlights())
	ts := NewTestServer(t, provider)
	token := ts.Login(t)

	resp := ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/flights/search", Token: token, Body: searchBody(1)})
	require.Equal(t, http.StatusOK, resp.Code)
	resp = ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/flights/select", Token: token, Body: map[string]string{"flightId": "flight_1"}})
	require.Equal(t, http.StatusOK, resp.Code)
	resp = ts.Do(t, Request{Method: http.MethodGet, Path: "/api/v1/booking", Token: token})
	require.Equal(t, http.StatusOK, resp.Code)

	// A fresh search drops the selected flight.
	resp = ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/flights/search", Token: token, Body: searchBody(1)})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.Do(t, Request{Method: http.MethodGet, Path: "/api/v1/booking", Token: token})
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "not_found", ErrorCode(t, resp))
}

func TestSessionsAreIsolated(t *testing.T) {
	provider := mock.NewProvider("skyair").WithFlights(stubFlights())
	ts := NewTestServer(t, provider)

	first := ts.Login(t)

	resp := ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/auth/guest", Token: ""})
	require.Equal(t, http.StatusOK, resp.Code)
	var guest struct {
		Token string `json:"token"`
		User  struct {
			IsGuest bool `json:"isGuest"`
		} `json:"user"`
	}
	Decode(t, resp, &guest)
	require.True(t, guest.User.IsGuest)

	resp = ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/flights/search", Token: first, Body: searchBody(1)})
	require.Equal(t, http.StatusOK, resp.Code)

	// The guest session has no search of its own.
	resp = ts.Do(t, Request{Method: http.MethodGet, Path: "/api/v1/flights/results", Token: guest.Token})
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestLogoutEndsSession(t *testing.T) {
	provider := mock.NewProvider("skyair").WithFlights(stubFlights())
	ts := NewTestServer(t, provider)
	token := ts.Login(t)

	resp := ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/auth/logout", Token: token})
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/flights/search", Token: token, Body: searchBody(1)})
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "unauthorized", ErrorCode(t, resp))
}

func TestSessionExpiresWithClock(t *testing.T) {
	provider := mock.NewProvider("skyair").WithFlights(stubFlights())
	ts := NewTestServer(t, provider)
	token := ts.Login(t)

	// The memory store judges expiry by wall clock TTL, so force it by
	// deleting the session the way an expired entry would disappear.
	resp := ts.Do(t, Request{Method: http.MethodPost, Path: "/api/v1/auth/logout", Token: token})
	require.Equal(t, http.StatusNoContent, resp.Code)

	for _, path := range []string{"/api/v1/flights/results", "/api/v1/booking"} {
		resp = ts.Do(t, Request{Method: http.MethodGet, Path: path, Token: token})
		assert.Equal(t, http.StatusUnauthorized, resp.Code, fmt.Sprintf("path %s", path))
	}
}
