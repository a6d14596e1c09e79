package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skybooker/flight-booking-service/internal/booking"
	"github.com/skybooker/flight-booking-service/internal/domain"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/logger"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/session"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/timeutil"
)

func newBookingFixture(t *testing.T, seed int64) (BookingUseCase, session.Store) {
	t.Helper()
	store := session.NewMemoryStore(time.Hour)
	uc := NewBookingUseCase(store, timeutil.NewFixedClock(testNow), rand.New(rand.NewSource(seed)), logger.Nop())
	return uc, store
}

// seedBookingSession stores a session with a selected flight for the given
// passenger count.
func seedBookingSession(t *testing.T, store session.Store, passengers int) string {
	t.Helper()
	flight := domain.Flight{
		ID:      "flight_1",
		Airline: "IndiGo",
		From:    "Delhi",
		To:      "Mumbai",
		Price:   1000,
		Class:   "Economy",
		Stops:   domain.StopsZero,
	}
	req := validSearchRequest()
	req.Passengers = passengers

	sess := &domain.Session{
		ID:             "sess-booking",
		User:           domain.User{Email: "demo@skybooker.com", Name: "Demo User", LoginTime: testNow},
		SearchData:     &req,
		SearchResults:  []domain.Flight{flight},
		SelectedFlight: &flight,
	}
	require.NoError(t, store.Put(context.Background(), sess))
	return sess.ID
}

// freeSeats returns n selectable seats from the view's seat map.
func freeSeats(t *testing.T, view *BookingView, n int) []domain.SeatID {
	t.Helper()
	out := make([]domain.SeatID, 0, n)
	for _, seat := range view.SeatMap {
		if !seat.Occupied {
			out = append(out, seat.ID)
			if len(out) == n {
				return out
			}
		}
	}
	t.Fatalf("seat map has fewer than %d free seats", n)
	return nil
}

// occupiedSeat returns one occupied seat from the view's seat map.
func occupiedSeat(t *testing.T, view *BookingView) domain.SeatID {
	t.Helper()
	for _, seat := range view.SeatMap {
		if seat.Occupied {
			return seat.ID
		}
	}
	t.Fatal("seat map has no occupied seats")
	return ""
}

func testPassengers(n int) []domain.Passenger {
	out := make([]domain.Passenger, n)
	for i := range out {
		out[i] = domain.Passenger{
			FirstName: "Pat",
			LastName:  "Traveller",
			Email:     "pat@example.com",
		}
	}
	return out
}

func TestOpen_GeneratesSeatMapOnce(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sid := seedBookingSession(t, store, 2)

	view, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)

	assert.Len(t, view.SeatMap, domain.SeatRows*len(domain.SeatColumns))
	assert.Equal(t, booking.SelectionEmpty, view.SelectionState)
	assert.Empty(t, view.SelectedSeats)
	assert.Equal(t, "IndiGo", view.Flight.Airline)

	// Reopening keeps the same map.
	again, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, view.SeatMap, again.SeatMap)
}

func TestOpen_PricingReflectsPassengerCount(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sid := seedBookingSession(t, store, 2)

	view, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)

	assert.Equal(t, 1000, view.Pricing.BaseFare)
	assert.Equal(t, 2000, view.Pricing.TotalBaseFare)
	assert.Equal(t, 180, view.Pricing.Taxes)
	assert.Equal(t, 360, view.Pricing.TotalTaxes)
	assert.Equal(t, 0, view.Pricing.SeatFee)
	assert.Equal(t, 2360, view.Pricing.Total)
}

func TestOpen_NoFlightSelected(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sess := &domain.Session{ID: "sess-empty", User: domain.User{Email: "demo@skybooker.com"}}
	require.NoError(t, store.Put(context.Background(), sess))

	_, err := uc.Open(context.Background(), sess.ID)

	assert.ErrorIs(t, err, domain.ErrNoFlightSelected)
}

func TestToggleSeat_SelectAndDeselect(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sid := seedBookingSession(t, store, 2)

	view, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)
	seats := freeSeats(t, view, 2)

	view, err = uc.ToggleSeat(context.Background(), sid, seats[0])
	require.NoError(t, err)
	assert.Equal(t, booking.SelectionPartial, view.SelectionState)
	assert.Equal(t, []domain.SeatID{seats[0]}, view.SelectedSeats)

	view, err = uc.ToggleSeat(context.Background(), sid, seats[1])
	require.NoError(t, err)
	assert.Equal(t, booking.SelectionComplete, view.SelectionState)
	assert.Equal(t, seats, view.SelectedSeats)

	// Toggling a selected seat removes it.
	view, err = uc.ToggleSeat(context.Background(), sid, seats[0])
	require.NoError(t, err)
	assert.Equal(t, booking.SelectionPartial, view.SelectionState)
	assert.Equal(t, []domain.SeatID{seats[1]}, view.SelectedSeats)
}

func TestToggleSeat_LimitExceeded(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sid := seedBookingSession(t, store, 1)

	view, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)
	seats := freeSeats(t, view, 2)

	_, err = uc.ToggleSeat(context.Background(), sid, seats[0])
	require.NoError(t, err)

	_, err = uc.ToggleSeat(context.Background(), sid, seats[1])

	var limitErr *domain.SelectionLimitExceededError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 1, limitErr.PassengerCount)

	// The selection is unchanged after the rejected toggle.
	after, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, []domain.SeatID{seats[0]}, after.SelectedSeats)
}

func TestToggleSeat_Occupied(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sid := seedBookingSession(t, store, 1)

	view, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)

	_, err = uc.ToggleSeat(context.Background(), sid, occupiedSeat(t, view))

	assert.ErrorIs(t, err, domain.ErrSeatUnavailable)
}

func TestToggleSeat_MalformedSeatID(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sid := seedBookingSession(t, store, 1)

	_, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)

	for _, id := range []domain.SeatID{"", "Z", "13A", "0A", "5G"} {
		_, err = uc.ToggleSeat(context.Background(), sid, id)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest, "seat %q", id)
	}
}

func TestToggleSeat_BeforeOpen(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sid := seedBookingSession(t, store, 1)

	_, err := uc.ToggleSeat(context.Background(), sid, "1A")

	assert.ErrorIs(t, err, domain.ErrNoFlightSelected)
}

func TestToggleSeat_UpdatesPricing(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sid := seedBookingSession(t, store, 2)

	view, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)
	seats := freeSeats(t, view, 2)

	view, err = uc.ToggleSeat(context.Background(), sid, seats[0])
	require.NoError(t, err)

	wantFee := seats[0].Fee()
	assert.Equal(t, wantFee, view.Pricing.SeatFee)
	assert.Equal(t, wantFee, view.Pricing.TotalSeatFee)
	assert.Equal(t, view.Pricing.TotalBaseFare+view.Pricing.TotalTaxes+wantFee, view.Pricing.Total)
}

func TestSubmit_RequiresCompleteSelection(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sid := seedBookingSession(t, store, 2)

	view, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)
	seats := freeSeats(t, view, 1)

	_, err = uc.ToggleSeat(context.Background(), sid, seats[0])
	require.NoError(t, err)

	_, err = uc.Submit(context.Background(), sid, testPassengers(2))

	var mismatch *domain.SeatCountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 1, mismatch.Selected)
	assert.Equal(t, 2, mismatch.Required)
}

func TestSubmit_PassengerCountMismatch(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sid := seedBookingSession(t, store, 2)

	view, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)
	for _, seat := range freeSeats(t, view, 2) {
		_, err = uc.ToggleSeat(context.Background(), sid, seat)
		require.NoError(t, err)
	}

	_, err = uc.Submit(context.Background(), sid, testPassengers(1))

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSubmit_MissingPassengerName(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sid := seedBookingSession(t, store, 1)

	view, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)
	_, err = uc.ToggleSeat(context.Background(), sid, freeSeats(t, view, 1)[0])
	require.NoError(t, err)

	passengers := testPassengers(1)
	passengers[0].LastName = ""

	_, err = uc.Submit(context.Background(), sid, passengers)

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSubmit_CreatesBooking(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sid := seedBookingSession(t, store, 2)

	view, err := uc.Open(context.Background(), sid)
	require.NoError(t, err)
	seats := freeSeats(t, view, 2)
	for _, seat := range seats {
		_, err = uc.ToggleSeat(context.Background(), sid, seat)
		require.NoError(t, err)
	}

	b, err := uc.Submit(context.Background(), sid, testPassengers(2))
	require.NoError(t, err)

	assert.Regexp(t, `^SKY[A-Z0-9]{6}$`, b.ConfirmationNumber)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, testNow, b.BookingTime)
	assert.Equal(t, seats, b.Seats)
	assert.Len(t, b.Passengers, 2)

	wantSeatFee := seats[0].Fee() + seats[1].Fee()
	assert.Equal(t, 2000+360+wantSeatFee, b.Pricing.Total)

	stored, err := store.Get(context.Background(), sid)
	require.NoError(t, err)
	require.NotNil(t, stored.Booking)
	assert.Equal(t, b.ConfirmationNumber, stored.Booking.ConfirmationNumber)
}

func TestSubmit_NoFlightSelected(t *testing.T) {
	uc, store := newBookingFixture(t, 1)
	sess := &domain.Session{ID: "sess-empty", User: domain.User{Email: "demo@skybooker.com"}}
	require.NoError(t, store.Put(context.Background(), sess))

	_, err := uc.Submit(context.Background(), sess.ID, testPassengers(1))

	assert.ErrorIs(t, err, domain.ErrNoFlightSelected)
}
