package domain

import "strings"

// Stops enumerates the number of stops on a flight.
// The wire values come from the flight dataset and are kept as-is.
type Stops string

// Valid stop counts.
const (
	StopsZero    Stops = "zero"
	StopsOne     Stops = "one"
	StopsTwoPlus Stops = "two_or_more"
)

// Text returns the display label for the stop count.
func (s Stops) Text() string {
	switch s {
	case StopsZero:
		return "Nonstop"
	case StopsOne:
		return "1 Stop"
	default:
		return "2+ Stops"
	}
}

// Flight represents a single flight offering returned by the search provider.
// It is immutable once produced; the booking flow only reads from it.
type Flight struct {
	// ID is a unique identifier for this flight result (generated by the provider)
	ID string `json:"id"`

	// Airline is the operating airline name (e.g., "IndiGo")
	Airline string `json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "6E482").
	// May be empty; use DisplayFlightNumber for rendering.
	FlightNumber string `json:"flight_number,omitempty"`

	// From and To are the route city names
	From string `json:"from"`
	To   string `json:"to"`

	// DepartureTime is the local time of departure in HH:MM 24-hour format
	DepartureTime string `json:"departure_time"`

	// ArrivalTime is the derived local time of arrival in HH:MM format.
	// The arrival may fall on a later calendar day; only the time-of-day is kept.
	ArrivalTime string `json:"arrival_time"`

	// DurationHours is the flight duration in hours (fractional hours allowed)
	DurationHours float64 `json:"duration"`

	// Stops is the number of stops
	Stops Stops `json:"stops"`

	// Price is the per-passenger fare in whole rupees
	Price int `json:"price"`

	// Class is the fare class the price was computed for
	Class string `json:"class"`

	// SafetyScore and ValueScore are 0-10 ratings from the dataset
	SafetyScore float64 `json:"safety_score"`
	ValueScore  float64 `json:"value_score"`

	// Aircraft is the aircraft type (display only)
	Aircraft string `json:"aircraft,omitempty"`

	// Amenities is an ordered list of amenity labels (possibly empty)
	Amenities []string `json:"amenities,omitempty"`
}

// DisplayFlightNumber returns the flight number for rendering. When the
// provider did not supply one, it is derived from the airline initials
// followed by "123". The derived value is a display convention, never stored.
func (f *Flight) DisplayFlightNumber() string {
	if f.FlightNumber != "" {
		return f.FlightNumber
	}
	initials := f.Airline
	if len(initials) > 2 {
		initials = initials[:2]
	}
	return strings.ToUpper(initials) + "123"
}

// SafetyRating buckets a numeric safety score into a descriptive label.
func SafetyRating(score float64) string {
	switch {
	case score >= 9:
		return "Excellent"
	case score >= 8:
		return "Very Good"
	case score >= 7:
		return "Good"
	case score >= 6:
		return "Fair"
	default:
		return "Basic"
	}
}
