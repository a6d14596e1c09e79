package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// minutesPerDay is the modulus for wrapping a time-of-day past midnight.
const minutesPerDay = 24 * 60

// ArrivalTime derives an arrival time-of-day from a departure time and a
// flight duration in hours. The departure is converted to minutes since
// midnight, the duration (floored to whole minutes) is added, and the sum is
// reduced modulo one day, so arrivals past midnight wrap around. The day
// count is discarded: the result is purely a time-of-day, matching the
// simplification that arrival dates are not surfaced.
//
// A zero duration returns the departure unchanged. The output is always a
// zero-padded HH:MM string.
func ArrivalTime(departure string, durationHours float64) (string, error) {
	depMinutes, err := parseHHMM(departure)
	if err != nil {
		return "", err
	}

	total := (depMinutes + int(durationHours*60)) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}

	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// parseHHMM converts an HH:MM 24-hour string to minutes since midnight.
func parseHHMM(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("time %q is not in HH:MM format", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("time %q has a non-numeric hour", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("time %q has a non-numeric minute", s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q is out of range", s)
	}

	return hour*60 + minute, nil
}
