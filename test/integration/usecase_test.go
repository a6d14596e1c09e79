package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skybooker/flight-booking-service/internal/domain"
	"github.com/skybooker/flight-booking-service/internal/usecase"
	"github.com/skybooker/flight-booking-service/test/mock"
	"github.com/skybooker/flight-booking-service/test/testutil"
)

func validCard() usecase.CardDetails {
	return usecase.CardDetails{
		Number:     "4111111111111111",
		Expiry:     "12/27",
		CVV:        "123",
		HolderName: "Asha Verma",
	}
}

// TestUseCaseFlowSessionState drives the whole flow through the use cases
// and asserts the session state after each step.
func TestUseCaseFlowSessionState(t *testing.T) {
	ctx := context.Background()
	provider := mock.NewProvider("skyair").WithFlights([]domain.Flight{
		testutil.Flight("flight_1", "IndiGo", 4500),
	})
	ts := NewTestServer(t, provider)

	login, err := ts.Auth.Login(ctx, "demo@skybooker.com", "demo123")
	require.NoError(t, err)
	sid := login.Session.ID
	assert.Equal(t, "Demo User", login.Session.User.Name)

	req := testutil.SearchRequest("2025-06-20")
	_, err = ts.Search.Search(ctx, sid, req)
	require.NoError(t, err)

	sess, err := ts.Store.Get(ctx, sid)
	require.NoError(t, err)
	require.NotNil(t, sess.SearchData)
	assert.Len(t, sess.SearchResults, 1)
	assert.Nil(t, sess.SelectedFlight)

	_, err = ts.Search.SelectFlight(ctx, sid, "flight_1")
	require.NoError(t, err)

	sess, err = ts.Store.Get(ctx, sid)
	require.NoError(t, err)
	require.NotNil(t, sess.SelectedFlight)
	assert.Equal(t, "flight_1", sess.SelectedFlight.ID)

	view, err := ts.Booking.Open(ctx, sid)
	require.NoError(t, err)
	require.Len(t, view.SeatMap, 72)

	seat := testutil.FreeSeats(t, view.SeatMap, 1)[0]
	view, err = ts.Booking.ToggleSeat(ctx, sid, seat)
	require.NoError(t, err)
	assert.Equal(t, []domain.SeatID{seat}, view.SelectedSeats)

	booked, err := ts.Booking.Submit(ctx, sid, []domain.Passenger{testutil.Passenger("Asha", "Verma")})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, booked.Status)

	receipt, err := ts.Payment.Pay(ctx, sid, validCard())
	require.NoError(t, err)
	assert.Equal(t, booked.ConfirmationNumber, receipt.ConfirmationNumber)

	// Payment clears everything except the paid booking.
	sess, err = ts.Store.Get(ctx, sid)
	require.NoError(t, err)
	assert.Nil(t, sess.SearchData)
	assert.Nil(t, sess.SearchResults)
	assert.Nil(t, sess.SelectedFlight)
	assert.Nil(t, sess.SeatMap)
	assert.Nil(t, sess.SelectedSeats)
	require.NotNil(t, sess.Booking)
	assert.Equal(t, domain.BookingPaid, sess.Booking.Status)
}

func TestSelectFlightResetsSeatProgress(t *testing.T) {
	ctx := context.Background()
	provider := mock.NewProvider("skyair").WithFlights([]domain.Flight{
		testutil.Flight("flight_1", "IndiGo", 4500),
		testutil.Flight("flight_2", "Vistara", 6100),
	})
	ts := NewTestServer(t, provider)

	login, err := ts.Auth.GuestLogin(ctx)
	require.NoError(t, err)
	sid := login.Session.ID

	_, err = ts.Search.Search(ctx, sid, testutil.SearchRequest("2025-06-20"))
	require.NoError(t, err)
	_, err = ts.Search.SelectFlight(ctx, sid, "flight_1")
	require.NoError(t, err)

	view, err := ts.Booking.Open(ctx, sid)
	require.NoError(t, err)
	seat := testutil.FreeSeats(t, view.SeatMap, 1)[0]
	_, err = ts.Booking.ToggleSeat(ctx, sid, seat)
	require.NoError(t, err)

	// Picking a different flight discards the seat map and selection.
	_, err = ts.Search.SelectFlight(ctx, sid, "flight_2")
	require.NoError(t, err)

	sess, err := ts.Store.Get(ctx, sid)
	require.NoError(t, err)
	assert.Nil(t, sess.SeatMap)
	assert.Nil(t, sess.SelectedSeats)

	view, err = ts.Booking.Open(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, view.SelectedSeats)
}

func TestPaymentRequiresBooking(t *testing.T) {
	ctx := context.Background()
	ts := NewTestServer(t, mock.NewProvider("skyair"))

	login, err := ts.Auth.GuestLogin(ctx)
	require.NoError(t, err)

	_, err = ts.Payment.Pay(ctx, login.Session.ID, validCard())
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestSearchAfterPaymentStartsFresh(t *testing.T) {
	ctx := context.Background()
	provider := mock.NewProvider("skyair").WithFlights([]domain.Flight{
		testutil.Flight("flight_1", "IndiGo", 4500),
	})
	ts := NewTestServer(t, provider)

	login, err := ts.Auth.Login(ctx, "demo", "demo")
	require.NoError(t, err)
	sid := login.Session.ID

	_, err = ts.Search.Search(ctx, sid, testutil.SearchRequest("2025-06-20"))
	require.NoError(t, err)
	_, err = ts.Search.SelectFlight(ctx, sid, "flight_1")
	require.NoError(t, err)
	view, err := ts.Booking.Open(ctx, sid)
	require.NoError(t, err)
	seat := testutil.FreeSeats(t, view.SeatMap, 1)[0]
	_, err = ts.Booking.ToggleSeat(ctx, sid, seat)
	require.NoError(t, err)
	_, err = ts.Booking.Submit(ctx, sid, []domain.Passenger{testutil.Passenger("Asha", "Verma")})
	require.NoError(t, err)
	_, err = ts.Payment.Pay(ctx, sid, validCard())
	require.NoError(t, err)

	// A new search works and replaces the completed flow.
	_, err = ts.Search.Search(ctx, sid, testutil.SearchRequest("2025-06-22"))
	require.NoError(t, err)

	sess, err := ts.Store.Get(ctx, sid)
	require.NoError(t, err)
	require.NotNil(t, sess.SearchData)
	assert.Equal(t, "2025-06-22", sess.SearchData.DepartureDate)
	assert.Nil(t, sess.Booking)
}
