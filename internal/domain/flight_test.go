package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopsText(t *testing.T) {
	assert.Equal(t, "Nonstop", StopsZero.Text())
	assert.Equal(t, "1 Stop", StopsOne.Text())
	assert.Equal(t, "2+ Stops", StopsTwoPlus.Text())
	assert.Equal(t, "2+ Stops", Stops("three").Text())
}

func TestDisplayFlightNumber(t *testing.T) {
	tests := []struct {
		name   string
		flight Flight
		want   string
	}{
		{
			name:   "explicit flight number wins",
			flight: Flight{Airline: "IndiGo", FlightNumber: "6E482"},
			want:   "6E482",
		},
		{
			name:   "derived from airline initials",
			flight: Flight{Airline: "IndiGo"},
			want:   "IN123",
		},
		{
			name:   "short airline name used whole",
			flight: Flight{Airline: "AI"},
			want:   "AI123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flight.DisplayFlightNumber())
		})
	}
}

func TestSafetyRating(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{9.5, "Excellent"},
		{9.0, "Excellent"},
		{8.2, "Very Good"},
		{7.0, "Good"},
		{6.4, "Fair"},
		{5.9, "Basic"},
		{0, "Basic"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SafetyRating(tt.score), "score %.1f", tt.score)
	}
}

func TestPricingBreakdownJSONRoundTrip(t *testing.T) {
	original := PricingBreakdown{
		BaseFare:       1000,
		TotalBaseFare:  2000,
		Taxes:          180,
		TotalTaxes:     360,
		SeatFee:        700,
		TotalSeatFee:   700,
		Total:          3060,
		PassengerCount: 2,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	// Field names must match the session payload shape.
	for _, key := range []string{
		"baseFare", "totalBaseFare", "taxes", "totalTaxes",
		"seatFee", "totalSeatFee", "total", "passengerCount",
	} {
		assert.Contains(t, string(data), `"`+key+`"`)
	}

	var decoded PricingBreakdown
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestSessionSeatOccupied(t *testing.T) {
	s := &Session{
		SeatMap: []SeatMapSeat{
			{ID: "1A", Occupied: true},
			{ID: "1B", Occupied: false},
		},
	}

	assert.True(t, s.SeatOccupied("1A"))
	assert.False(t, s.SeatOccupied("1B"))
	assert.True(t, s.SeatOccupied("9Z"), "unknown seats are treated as occupied")
}
