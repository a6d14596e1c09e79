package domain

import "time"

// TripType distinguishes one-way from round-trip searches.
type TripType string

// Valid trip types.
const (
	TripOneWay    TripType = "oneway"
	TripRoundTrip TripType = "roundtrip"
)

// IsValid checks if the trip type is a known value.
func (t TripType) IsValid() bool {
	return t == TripOneWay || t == TripRoundTrip
}

// dateLayout is the calendar date format used throughout the search flow.
const dateLayout = "2006-01-02"

// SearchRequest defines the parameters for a flight search submission.
type SearchRequest struct {
	// From is the departure city name (e.g., "Delhi")
	From string `json:"from"`

	// To is the destination city name
	To string `json:"to"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date for round trips, empty for one-way
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of travellers (at least 1)
	Passengers int `json:"passengers"`

	// Class is the fare class (Economy, Premium_Economy, Business, First)
	Class string `json:"class"`

	// TripType is oneway or roundtrip
	TripType TripType `json:"tripType"`
}

// Validate checks the search request against an injected current date.
// Checks are ordered and short-circuit: the first failing check is the one
// reported. Date comparisons are date-only; the time-of-day of now is
// truncated before comparing.
func (r *SearchRequest) Validate(now time.Time) error {
	if r.From == "" || r.To == "" {
		return ErrMissingCities
	}
	if r.From == r.To {
		return ErrSameCity
	}
	if r.DepartureDate == "" {
		return ErrMissingDepartureDate
	}

	departure, err := time.Parse(dateLayout, r.DepartureDate)
	if err != nil {
		return ErrMissingDepartureDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if departure.Before(today) {
		return ErrPastDepartureDate
	}

	if r.TripType == TripRoundTrip && r.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, r.ReturnDate)
		if err != nil {
			return ErrReturnBeforeDeparture
		}
		if !ret.After(departure) {
			return ErrReturnBeforeDeparture
		}
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (r *SearchRequest) SetDefaults() {
	if r.Passengers < 1 {
		r.Passengers = 1
	}
	if r.Class == "" {
		r.Class = "Economy"
	}
	if r.TripType == "" {
		r.TripType = TripRoundTrip
	}
}
