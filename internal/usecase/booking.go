package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/skybooker/flight-booking-service/internal/booking"
	"github.com/skybooker/flight-booking-service/internal/domain"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/logger"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/session"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/timeutil"
)

// confirmationAlphabet is the character set for confirmation numbers.
const (
	confirmationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	confirmationPrefix   = "SKY"
	confirmationLength   = 6
)

// BookingView is the state of the booking page: the chosen flight, the
// cabin map, the current seat selection, and the live fare breakdown.
type BookingView struct {
	// Flight is the flight being booked
	Flight domain.Flight `json:"flight"`

	// SearchData is the search the flight was chosen for
	SearchData domain.SearchRequest `json:"searchData"`

	// SeatMap is the generated cabin map
	SeatMap []domain.SeatMapSeat `json:"seatMap"`

	// SelectedSeats are the toggled seats in selection order
	SelectedSeats []domain.SeatID `json:"selectedSeats"`

	// SelectionState is empty, partial, or complete
	SelectionState booking.SelectionState `json:"selectionState"`

	// Pricing is the fare breakdown for the current selection
	Pricing domain.PricingBreakdown `json:"pricing"`
}

// BookingUseCase handles the booking page: seat map, seat selection, and
// booking submission.
type BookingUseCase interface {
	// Open prepares the booking page for the selected flight, generating
	// the seat map on first open. Returns domain.ErrNoFlightSelected when
	// no flight has been chosen.
	Open(ctx context.Context, sessionID string) (*BookingView, error)

	// ToggleSeat selects or deselects a seat and returns the updated view.
	// Occupied seats are rejected with domain.ErrSeatUnavailable.
	ToggleSeat(ctx context.Context, sessionID string, seat domain.SeatID) (*BookingView, error)

	// Submit freezes the booking. The seat selection must be complete and
	// the passenger list must match the passenger count.
	Submit(ctx context.Context, sessionID string, passengers []domain.Passenger) (*domain.Booking, error)
}

type bookingUseCase struct {
	store session.Store
	clock timeutil.Clock
	log   *logger.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBookingUseCase creates a BookingUseCase. The random source drives seat
// map occupancy and confirmation numbers; tests seed it.
func NewBookingUseCase(store session.Store, clock timeutil.Clock, rng *rand.Rand, log *logger.Logger) BookingUseCase {
	return &bookingUseCase{
		store: store,
		clock: clock,
		rng:   rng,
		log:   log,
	}
}

// Open implements BookingUseCase.Open.
func (uc *bookingUseCase) Open(ctx context.Context, sessionID string) (*BookingView, error) {
	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.SelectedFlight == nil {
		return nil, domain.ErrNoFlightSelected
	}

	if sess.SeatMap == nil {
		uc.mu.Lock()
		sess.SeatMap = booking.GenerateSeatMap(uc.rng)
		uc.mu.Unlock()
		sess.SelectedSeats = nil

		if err := uc.store.Put(ctx, sess); err != nil {
			return nil, fmt.Errorf("store session: %w", err)
		}
	}

	return viewOf(sess), nil
}

// ToggleSeat implements BookingUseCase.ToggleSeat.
func (uc *bookingUseCase) ToggleSeat(ctx context.Context, sessionID string, seat domain.SeatID) (*BookingView, error) {
	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.SelectedFlight == nil || sess.SeatMap == nil {
		return nil, domain.ErrNoFlightSelected
	}

	if _, _, err := domain.ParseSeatID(seat); err != nil {
		return nil, err
	}
	if sess.SeatOccupied(seat) {
		return nil, fmt.Errorf("%w: seat %s", domain.ErrSeatUnavailable, seat)
	}

	sel := booking.Restore(passengerCount(sess), sess.SelectedSeats)
	if err := sel.Toggle(seat); err != nil {
		return nil, err
	}
	sess.SelectedSeats = sel.Seats()

	if err := uc.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return viewOf(sess), nil
}

// Submit implements BookingUseCase.Submit.
func (uc *bookingUseCase) Submit(ctx context.Context, sessionID string, passengers []domain.Passenger) (*domain.Booking, error) {
	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.SelectedFlight == nil {
		return nil, domain.ErrNoFlightSelected
	}

	pax := passengerCount(sess)
	sel := booking.Restore(pax, sess.SelectedSeats)
	if err := sel.RequireComplete(); err != nil {
		return nil, err
	}

	if len(passengers) != pax {
		return nil, fmt.Errorf("%w: %d passenger(s) provided, %d required",
			domain.ErrInvalidRequest, len(passengers), pax)
	}
	for i, p := range passengers {
		if p.FirstName == "" || p.LastName == "" {
			return nil, fmt.Errorf("%w: passenger %d is missing a name", domain.ErrInvalidRequest, i+1)
		}
	}

	var searchData domain.SearchRequest
	if sess.SearchData != nil {
		searchData = *sess.SearchData
	}

	b := &domain.Booking{
		ID:                 uuid.NewString(),
		ConfirmationNumber: uc.confirmationNumber(),
		Flight:             *sess.SelectedFlight,
		SearchData:         searchData,
		Passengers:         passengers,
		Seats:              sel.Seats(),
		Pricing:            booking.ComputeFees(sess.SelectedFlight.Price, pax, sel.Seats()),
		BookingTime:        uc.clock.Now(),
		Status:             domain.BookingConfirmed,
	}

	sess.Booking = b
	if err := uc.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	uc.log.Info().
		Str("session_id", sessionID).
		Str("booking_id", b.ID).
		Str("confirmation", b.ConfirmationNumber).
		Int("total", b.Pricing.Total).
		Msg("booking submitted")

	return b, nil
}

// confirmationNumber generates a customer-facing booking reference.
func (uc *bookingUseCase) confirmationNumber() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]byte, confirmationLength)
	for i := range out {
		out[i] = confirmationAlphabet[uc.rng.Intn(len(confirmationAlphabet))]
	}
	return confirmationPrefix + string(out)
}

// passengerCount reads the passenger count from the stored search, defaulting
// to a single traveller.
func passengerCount(sess *domain.Session) int {
	if sess.SearchData == nil || sess.SearchData.Passengers < 1 {
		return 1
	}
	return sess.SearchData.Passengers
}

// viewOf assembles the booking page view from session state.
func viewOf(sess *domain.Session) *BookingView {
	pax := passengerCount(sess)
	sel := booking.Restore(pax, sess.SelectedSeats)

	return &BookingView{
		Flight:         *sess.SelectedFlight,
		SearchData:     derefSearch(sess.SearchData),
		SeatMap:        sess.SeatMap,
		SelectedSeats:  sel.Seats(),
		SelectionState: sel.State(),
		Pricing:        booking.ComputeFees(sess.SelectedFlight.Price, pax, sel.Seats()),
	}
}

func derefSearch(req *domain.SearchRequest) domain.SearchRequest {
	if req == nil {
		return domain.SearchRequest{}
	}
	return *req
}

var _ BookingUseCase = (*bookingUseCase)(nil)
