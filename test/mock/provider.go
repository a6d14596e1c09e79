// Package mock provides test doubles for the booking service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/skybooker/flight-booking-service/internal/domain"
)

// Provider is a configurable test implementation of domain.SearchProvider.
// It supports configurable delays, errors, and responses for testing
// scenarios the seeded generator cannot produce on demand.
type Provider struct {
	name      string
	flights   []domain.Flight
	err       error
	delay     time.Duration
	callCount int
	lastReq   domain.SearchRequest
	mu        sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

// WithFlights configures the provider to return the given flights.
func (p *Provider) WithFlights(flights []domain.Flight) *Provider {
	p.flights = flights
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. This is useful for testing context cancellation.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.SearchProvider. It respects context cancellation,
// applies the configured delay, and returns the configured flights or error.
func (p *Provider) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Flight, error) {
	p.mu.Lock()
	p.callCount++
	p.lastReq = req
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	// Return a copy so callers cannot mutate the configured flights.
	out := make([]domain.Flight, len(p.flights))
	copy(out, p.flights)
	return out, nil
}

// CallCount returns how many times Search has been called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// LastRequest returns the request passed to the most recent Search call.
func (p *Provider) LastRequest() domain.SearchRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastReq
}

var _ domain.SearchProvider = (*Provider)(nil)
