// Package session provides the server-side session store for the booking
// flow. A Redis-backed store is used when configured; an in-memory store
// serves development and tests.
package session

import (
	"context"

	"github.com/skybooker/flight-booking-service/internal/domain"
)

// Store persists booking-flow sessions keyed by session ID.
type Store interface {
	// Get loads a session. Returns domain.ErrSessionNotFound when the ID is
	// unknown or the session expired.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Put saves a session, resetting its TTL.
	Put(ctx context.Context, s *domain.Session) error

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases store resources.
	Close() error
}
