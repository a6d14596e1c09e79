package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Cabin dimensions for the demo aircraft.
const (
	// SeatRows is the number of rows in the cabin (1..SeatRows).
	SeatRows = 12

	// SeatColumns are the seat letters within a row, aisle order preserved.
	SeatColumns = "ABCDEF"
)

// Seat fee tiers, derived solely from the row number.
const (
	// PremiumSeatFee applies to rows 1-3.
	PremiumSeatFee = 500

	// StandardSeatFee applies to rows 4-6.
	StandardSeatFee = 200

	// EconomySeatFee applies to rows 7 and beyond.
	EconomySeatFee = 0
)

// SeatTier is the fee category of a seat.
type SeatTier string

// Seat tiers.
const (
	TierPremium  SeatTier = "premium"
	TierStandard SeatTier = "standard"
	TierEconomy  SeatTier = "economy"
)

// SeatID identifies a seat by row number and column letter, e.g. "3C".
type SeatID string

// ParseSeatID validates a seat identifier and decomposes it into row and
// column. Returns a wrapped ErrInvalidRequest error for malformed
// identifiers or positions outside the cabin.
func ParseSeatID(id SeatID) (row int, column byte, err error) {
	s := string(id)
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("%w: seat id %q is malformed", ErrInvalidRequest, s)
	}

	column = s[len(s)-1]
	row, convErr := strconv.Atoi(s[:len(s)-1])
	if convErr != nil {
		return 0, 0, fmt.Errorf("%w: seat id %q has a non-numeric row", ErrInvalidRequest, s)
	}

	if row < 1 || row > SeatRows {
		return 0, 0, fmt.Errorf("%w: seat row %d is outside the cabin", ErrInvalidRequest, row)
	}
	if !strings.ContainsRune(SeatColumns, rune(column)) {
		return 0, 0, fmt.Errorf("%w: seat column %q is outside the cabin", ErrInvalidRequest, string(column))
	}

	return row, column, nil
}

// Row returns the row number of the seat. Zero for malformed identifiers.
func (id SeatID) Row() int {
	row, _, err := ParseSeatID(id)
	if err != nil {
		return 0
	}
	return row
}

// Tier returns the fee tier of the seat, a pure function of the row.
func (id SeatID) Tier() SeatTier {
	return TierForRow(id.Row())
}

// Fee returns the selection fee for the seat in whole rupees.
func (id SeatID) Fee() int {
	switch id.Tier() {
	case TierPremium:
		return PremiumSeatFee
	case TierStandard:
		return StandardSeatFee
	default:
		return EconomySeatFee
	}
}

// TierForRow maps a row number to its fee tier.
func TierForRow(row int) SeatTier {
	switch {
	case row >= 1 && row <= 3:
		return TierPremium
	case row >= 4 && row <= 6:
		return TierStandard
	default:
		return TierEconomy
	}
}
