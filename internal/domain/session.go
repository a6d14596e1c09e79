package domain

import "time"

// User identifies the authenticated (or guest) traveller for a session.
type User struct {
	// Email is the account email, or the fixed guest address
	Email string `json:"email"`

	// Name is the display name
	Name string `json:"name"`

	// IsGuest marks sessions created without credentials
	IsGuest bool `json:"isGuest,omitempty"`

	// LoginTime is when the session was created
	LoginTime time.Time `json:"loginTime"`
}

// Passenger holds the details entered on the booking form for one traveller.
type Passenger struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

// SeatMapSeat is one position in the generated cabin map.
type SeatMapSeat struct {
	// ID is the seat identifier (row + column letter)
	ID SeatID `json:"id"`

	// Occupied marks seats that cannot be selected. Occupancy is generated
	// once per booking session; it is not shared inventory.
	Occupied bool `json:"occupied"`
}

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// Booking lifecycle states.
const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPaid      BookingStatus = "paid"
)

// Booking is the frozen result of a submitted booking flow. Once created the
// seat selection and pricing are no longer recomputed.
type Booking struct {
	// ID is the internal booking identifier
	ID string `json:"id"`

	// ConfirmationNumber is the customer-facing reference (e.g., "SKY4F7Q2A")
	ConfirmationNumber string `json:"confirmation_number"`

	// Flight is the booked flight snapshot
	Flight Flight `json:"flight"`

	// SearchData is the search request the flight was chosen for
	SearchData SearchRequest `json:"searchData"`

	// Passengers are the travellers, index-aligned with Seats
	Passengers []Passenger `json:"passengers"`

	// Seats are the selected seat identifiers in selection order
	Seats []SeatID `json:"seats"`

	// Pricing is the final fare breakdown
	Pricing PricingBreakdown `json:"pricing"`

	// BookingTime is when the booking was submitted
	BookingTime time.Time `json:"bookingTime"`

	// Status is confirmed until payment completes, then paid
	Status BookingStatus `json:"status"`
}

// Session is the server-side state of one booking flow. Fields are populated
// as the user progresses and cleared when payment completes.
type Session struct {
	// ID is the session identifier carried in the session token
	ID string `json:"id"`

	// User is the authenticated or guest traveller
	User User `json:"user"`

	// SearchData is the last validated search submission, if any
	SearchData *SearchRequest `json:"searchData,omitempty"`

	// SearchResults are the flights returned for SearchData, in provider order
	SearchResults []Flight `json:"searchResults,omitempty"`

	// SelectedFlight is the flight chosen from the results page, if any
	SelectedFlight *Flight `json:"selectedFlight,omitempty"`

	// SeatMap is the cabin map generated when the booking page was opened
	SeatMap []SeatMapSeat `json:"seatMap,omitempty"`

	// SelectedSeats are the currently toggled seats in selection order
	SelectedSeats []SeatID `json:"selectedSeats,omitempty"`

	// Booking is the submitted booking awaiting (or past) payment
	Booking *Booking `json:"booking,omitempty"`
}

// SeatOccupied reports whether the given seat is marked occupied in the
// session's seat map. Unknown seats are treated as occupied so they can
// never be selected.
func (s *Session) SeatOccupied(id SeatID) bool {
	for _, seat := range s.SeatMap {
		if seat.ID == id {
			return seat.Occupied
		}
	}
	return true
}
