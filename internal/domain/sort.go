package domain

import "sort"

// SortOption defines the available sorting options for flight results.
type SortOption string

// Available sort options.
const (
	// SortByPrice sorts by price ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by flight duration ascending (shortest first)
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by departure time ascending (earliest first).
	// Comparison is lexical on the HH:MM string, which is chronological
	// because the format is zero-padded 24-hour.
	SortByDeparture SortOption = "departure"

	// SortBySafety sorts by safety score descending (safest first)
	SortBySafety SortOption = "safety"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture, SortBySafety:
		return true
	default:
		return false
	}
}

// SortFlights sorts flights according to the specified sort option.
// Uses stable sorting so flights with equal keys keep their original
// relative order.
//
// Behavior:
//   - Returns empty slice for empty input
//   - Unknown or empty sort option returns the original order (not an error)
//   - Does NOT mutate the original flights slice
func SortFlights(flights []Flight, sortBy SortOption) []Flight {
	if len(flights) == 0 {
		return flights
	}

	// Copy to avoid mutating input
	result := make([]Flight, len(flights))
	copy(result, flights)

	if len(result) == 1 {
		return result
	}

	switch sortBy {
	case SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DurationHours < result[j].DurationHours
		})
	case SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DepartureTime < result[j].DepartureTime
		})
	case SortBySafety:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].SafetyScore > result[j].SafetyScore
		})
	}

	return result
}
