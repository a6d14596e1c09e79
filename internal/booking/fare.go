// Package booking contains the pricing and seat-selection logic for the
// booking step. Everything here is pure: the enclosing use case supplies the
// flight, passenger count, and seat selection, and renders the results.
package booking

import (
	"math"

	"github.com/skybooker/flight-booking-service/internal/domain"
)

// TaxRate is the tax applied to the per-passenger base fare.
const TaxRate = 0.18

// TaxPerPerson computes the per-passenger tax on a base fare, rounded
// half-up to a whole rupee.
func TaxPerPerson(baseFare int) int {
	return int(math.Floor(float64(baseFare)*TaxRate + 0.5))
}

// SeatFeeTotal sums the tier fee of every selected seat. The fee is charged
// once per physically selected seat regardless of passenger count.
func SeatFeeTotal(seats []domain.SeatID) int {
	total := 0
	for _, seat := range seats {
		total += seat.Fee()
	}
	return total
}

// ComputeFees derives the full pricing breakdown from a flight price, a
// passenger count, and the currently selected seats.
//
// All inputs are assumed validated upstream; a negative or zero flight price
// is passed through arithmetically rather than rejected.
func ComputeFees(flightPrice, passengerCount int, seats []domain.SeatID) domain.PricingBreakdown {
	tax := TaxPerPerson(flightPrice)
	seatFee := SeatFeeTotal(seats)

	return domain.PricingBreakdown{
		BaseFare:       flightPrice,
		TotalBaseFare:  flightPrice * passengerCount,
		Taxes:          tax,
		TotalTaxes:     tax * passengerCount,
		SeatFee:        seatFee,
		TotalSeatFee:   seatFee,
		Total:          flightPrice*passengerCount + tax*passengerCount + seatFee,
		PassengerCount: passengerCount,
	}
}
