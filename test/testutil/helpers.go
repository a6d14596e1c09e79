// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/skybooker/flight-booking-service/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// Flight returns a flight fixture with sensible defaults. Override fields
// in the returned value as needed.
func Flight(id, airline string, price int) domain.Flight {
	return domain.Flight{
		ID:            id,
		Airline:       airline,
		From:          "Delhi",
		To:            "Mumbai",
		DepartureTime: "08:00",
		ArrivalTime:   "10:15",
		DurationHours: 2.25,
		Stops:         domain.StopsZero,
		Price:         price,
		Class:         "Economy",
		SafetyScore:   8.5,
		ValueScore:    8.0,
		Aircraft:      "A320neo",
	}
}

// SearchRequest returns a valid one-way search fixture for the given
// departure date.
func SearchRequest(date string) domain.SearchRequest {
	return domain.SearchRequest{
		From:          "Delhi",
		To:            "Mumbai",
		DepartureDate: date,
		Passengers:    1,
		Class:         "Economy",
		TripType:      domain.TripOneWay,
	}
}

// Passenger returns a passenger fixture with the given name.
func Passenger(first, last string) domain.Passenger {
	return domain.Passenger{
		FirstName:   first,
		LastName:    last,
		Email:       "traveller@example.com",
		Phone:       "9876543210",
		DateOfBirth: "1990-01-15",
		Gender:      "female",
	}
}

// FreeSeats returns the IDs of up to n unoccupied seats from the seat map,
// in map order.
func FreeSeats(t *testing.T, seatMap []domain.SeatMapSeat, n int) []domain.SeatID {
	t.Helper()
	var ids []domain.SeatID
	for _, s := range seatMap {
		if s.Occupied {
			continue
		}
		ids = append(ids, s.ID)
		if len(ids) == n {
			return ids
		}
	}
	t.Fatalf("seat map has only %d free seats, wanted %d", len(ids), n)
	return nil
}
