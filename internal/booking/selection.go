package booking

import "github.com/skybooker/flight-booking-service/internal/domain"

// SelectionState describes how far the seat selection has progressed
// relative to the passenger count.
type SelectionState string

// Selection states.
const (
	// SelectionEmpty means no seats are selected yet
	SelectionEmpty SelectionState = "empty"

	// SelectionPartial means some but not all required seats are selected
	SelectionPartial SelectionState = "partial"

	// SelectionComplete means exactly one seat per passenger is selected
	SelectionComplete SelectionState = "complete"
)

// SeatSelection tracks which seats the user has toggled for a booking.
// It enforces a single invariant: the number of selected seats never
// exceeds the passenger count. Selection order is preserved for display.
//
// Occupied seats are the caller's concern; the selection only ever sees
// seats the seat map offered as selectable.
type SeatSelection struct {
	passengerCount int
	seats          []domain.SeatID
}

// NewSeatSelection creates an empty selection for the given passenger count.
// Passenger counts below 1 are clamped to 1.
func NewSeatSelection(passengerCount int) *SeatSelection {
	if passengerCount < 1 {
		passengerCount = 1
	}
	return &SeatSelection{passengerCount: passengerCount}
}

// Restore rebuilds a selection from a stored seat list, e.g. when a session
// snapshot is loaded. Seats beyond the passenger count are dropped.
func Restore(passengerCount int, seats []domain.SeatID) *SeatSelection {
	sel := NewSeatSelection(passengerCount)
	for _, seat := range seats {
		if len(sel.seats) == sel.passengerCount {
			break
		}
		sel.seats = append(sel.seats, seat)
	}
	return sel
}

// Toggle selects the seat if it is not selected, or deselects it if it is.
// Deselection is always allowed. Selection of a new seat is rejected with a
// SelectionLimitExceededError once the passenger count is reached; the
// selection is unchanged in that case.
func (s *SeatSelection) Toggle(seat domain.SeatID) error {
	for i, selected := range s.seats {
		if selected == seat {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return nil
		}
	}

	if len(s.seats) >= s.passengerCount {
		return &domain.SelectionLimitExceededError{PassengerCount: s.passengerCount}
	}

	s.seats = append(s.seats, seat)
	return nil
}

// State reports how complete the selection is.
func (s *SeatSelection) State() SelectionState {
	switch {
	case len(s.seats) == 0:
		return SelectionEmpty
	case len(s.seats) < s.passengerCount:
		return SelectionPartial
	default:
		return SelectionComplete
	}
}

// Seats returns the selected seats in selection order.
// The returned slice is a copy; mutating it does not affect the selection.
func (s *SeatSelection) Seats() []domain.SeatID {
	out := make([]domain.SeatID, len(s.seats))
	copy(out, s.seats)
	return out
}

// Count returns the number of selected seats.
func (s *SeatSelection) Count() int {
	return len(s.seats)
}

// PassengerCount returns the required number of seats.
func (s *SeatSelection) PassengerCount() int {
	return s.passengerCount
}

// RequireComplete returns nil when the selection is complete, or a
// SeatCountMismatchError carrying the selected and required counts.
// Booking submission is only permitted on a nil return.
func (s *SeatSelection) RequireComplete() error {
	if s.State() != SelectionComplete {
		return &domain.SeatCountMismatchError{
			Selected: len(s.seats),
			Required: s.passengerCount,
		}
	}
	return nil
}
