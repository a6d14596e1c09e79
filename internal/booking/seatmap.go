package booking

import (
	"math/rand"
	"strconv"

	"github.com/skybooker/flight-booking-service/internal/domain"
)

// OccupiedProbability is the chance that any given seat is already taken
// when the seat map is generated. Occupancy is rolled once per booking
// session and is not shared inventory.
const OccupiedProbability = 0.25

// GenerateSeatMap produces the cabin map for a booking session: 12 rows of
// 6 seats in row-major order, each independently occupied with
// OccupiedProbability. The random source is injected so tests can seed it.
func GenerateSeatMap(rng *rand.Rand) []domain.SeatMapSeat {
	seats := make([]domain.SeatMapSeat, 0, domain.SeatRows*len(domain.SeatColumns))

	for row := 1; row <= domain.SeatRows; row++ {
		for col := 0; col < len(domain.SeatColumns); col++ {
			id := domain.SeatID(strconv.Itoa(row) + string(domain.SeatColumns[col]))
			seats = append(seats, domain.SeatMapSeat{
				ID:       id,
				Occupied: rng.Float64() < OccupiedProbability,
			})
		}
	}

	return seats
}

// AvailableSeats filters a seat map down to the selectable seats.
func AvailableSeats(seatMap []domain.SeatMapSeat) []domain.SeatID {
	out := make([]domain.SeatID, 0, len(seatMap))
	for _, seat := range seatMap {
		if !seat.Occupied {
			out = append(out, seat.ID)
		}
	}
	return out
}
