package domain

// PricingBreakdown is the derived fare summary for a booking. It has no
// identity of its own: it is recomputed from the selected flight, passenger
// count, and seat selection on every change, and only persisted as part of
// the session snapshot.
//
// Invariant: Total = PassengerCount × (BaseFare + Taxes) + TotalSeatFee.
//
// The JSON field names match the session payload shape used across the
// booking and payment pages.
type PricingBreakdown struct {
	// BaseFare is the per-passenger fare in whole rupees
	BaseFare int `json:"baseFare"`

	// TotalBaseFare is BaseFare multiplied by PassengerCount
	TotalBaseFare int `json:"totalBaseFare"`

	// Taxes is the per-passenger tax, 18% of BaseFare rounded half-up
	Taxes int `json:"taxes"`

	// TotalTaxes is Taxes multiplied by PassengerCount
	TotalTaxes int `json:"totalTaxes"`

	// SeatFee is the sum of the per-seat fees of the selected seats
	SeatFee int `json:"seatFee"`

	// TotalSeatFee equals SeatFee: the fee is charged once per physically
	// selected seat and is not multiplied by the passenger count. Both
	// fields are kept because the session payload carries both.
	TotalSeatFee int `json:"totalSeatFee"`

	// Total is the grand total payable
	Total int `json:"total"`

	// PassengerCount is the number of passengers the fare covers
	PassengerCount int `json:"passengerCount"`
}
