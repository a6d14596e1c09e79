package usecase

import (
	"context"
	"fmt"

	"github.com/skybooker/flight-booking-service/internal/domain"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/logger"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/session"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/timeutil"
)

// SearchUseCase handles the search form submission and the results page.
type SearchUseCase interface {
	// Search validates the request, queries the provider, and stores the
	// request and results in the session.
	Search(ctx context.Context, sessionID string, req domain.SearchRequest) (*domain.SearchResponse, error)

	// Results returns the stored search results sorted by the given key.
	// Unknown keys leave the provider order untouched.
	Results(ctx context.Context, sessionID string, sortBy domain.SortOption) ([]domain.Flight, error)

	// SelectFlight chooses a flight from the stored results and resets any
	// in-progress booking state.
	SelectFlight(ctx context.Context, sessionID, flightID string) (*domain.Flight, error)

	// Cities returns the cities available in the search form.
	Cities() []string
}

type searchUseCase struct {
	store    session.Store
	provider domain.SearchProvider
	cities   []string
	clock    timeutil.Clock
	log      *logger.Logger
}

// NewSearchUseCase creates a SearchUseCase querying the given provider.
func NewSearchUseCase(store session.Store, provider domain.SearchProvider, cities []string, clock timeutil.Clock, log *logger.Logger) SearchUseCase {
	return &searchUseCase{
		store:    store,
		provider: provider,
		cities:   cities,
		clock:    clock,
		log:      log,
	}
}

// Search implements SearchUseCase.Search.
func (uc *searchUseCase) Search(ctx context.Context, sessionID string, req domain.SearchRequest) (*domain.SearchResponse, error) {
	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	req.SetDefaults()
	if err := req.Validate(uc.clock.Now()); err != nil {
		return nil, err
	}

	flights, err := uc.provider.Search(ctx, req)
	if err != nil {
		uc.log.Warn().
			Err(err).
			Str("provider", uc.provider.Name()).
			Str("from", req.From).
			Str("to", req.To).
			Msg("provider search failed")
		return nil, err
	}

	// A new search invalidates whatever booking was in flight.
	sess.SearchData = &req
	sess.SearchResults = flights
	sess.SelectedFlight = nil
	sess.SeatMap = nil
	sess.SelectedSeats = nil
	sess.Booking = nil

	if err := uc.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	uc.log.Info().
		Str("session_id", sessionID).
		Str("from", req.From).
		Str("to", req.To).
		Int("results", len(flights)).
		Msg("search completed")

	return domain.NewSearchResponse(&req, flights), nil
}

// Results implements SearchUseCase.Results.
func (uc *searchUseCase) Results(ctx context.Context, sessionID string, sortBy domain.SortOption) ([]domain.Flight, error) {
	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.SearchData == nil {
		return nil, fmt.Errorf("%w: no search has been performed", domain.ErrNoFlightsFound)
	}

	return domain.SortFlights(sess.SearchResults, sortBy), nil
}

// SelectFlight implements SearchUseCase.SelectFlight.
func (uc *searchUseCase) SelectFlight(ctx context.Context, sessionID, flightID string) (*domain.Flight, error) {
	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var selected *domain.Flight
	for i := range sess.SearchResults {
		if sess.SearchResults[i].ID == flightID {
			selected = &sess.SearchResults[i]
			break
		}
	}
	if selected == nil {
		return nil, fmt.Errorf("%w: flight %q is not in the search results", domain.ErrNoFlightSelected, flightID)
	}

	flight := *selected
	sess.SelectedFlight = &flight
	sess.SeatMap = nil
	sess.SelectedSeats = nil
	sess.Booking = nil

	if err := uc.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	uc.log.Info().
		Str("session_id", sessionID).
		Str("flight_id", flight.ID).
		Str("airline", flight.Airline).
		Msg("flight selected")

	return &flight, nil
}

// Cities implements SearchUseCase.Cities.
func (uc *searchUseCase) Cities() []string {
	out := make([]string, len(uc.cities))
	copy(out, uc.cities)
	return out
}

var _ SearchUseCase = (*searchUseCase)(nil)
