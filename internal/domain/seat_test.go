package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeatID(t *testing.T) {
	tests := []struct {
		name    string
		id      SeatID
		wantRow int
		wantCol byte
		wantErr bool
	}{
		{name: "first row aisle", id: "1A", wantRow: 1, wantCol: 'A'},
		{name: "middle of cabin", id: "3C", wantRow: 3, wantCol: 'C'},
		{name: "double digit row", id: "12F", wantRow: 12, wantCol: 'F'},
		{name: "empty", id: "", wantErr: true},
		{name: "single character", id: "A", wantErr: true},
		{name: "non numeric row", id: "xA", wantErr: true},
		{name: "row zero", id: "0A", wantErr: true},
		{name: "row beyond cabin", id: "13A", wantErr: true},
		{name: "column beyond cabin", id: "3G", wantErr: true},
		{name: "lowercase column", id: "3c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, err := ParseSeatID(tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestSeatTierAndFee(t *testing.T) {
	tests := []struct {
		id       SeatID
		wantTier SeatTier
		wantFee  int
	}{
		{"1A", TierPremium, 500},
		{"3F", TierPremium, 500},
		{"4A", TierStandard, 200},
		{"6D", TierStandard, 200},
		{"7A", TierEconomy, 0},
		{"12F", TierEconomy, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			assert.Equal(t, tt.wantTier, tt.id.Tier())
			assert.Equal(t, tt.wantFee, tt.id.Fee())
		})
	}
}

func TestTierForRowBoundaries(t *testing.T) {
	assert.Equal(t, TierPremium, TierForRow(3))
	assert.Equal(t, TierStandard, TierForRow(4))
	assert.Equal(t, TierStandard, TierForRow(6))
	assert.Equal(t, TierEconomy, TierForRow(7))
}
