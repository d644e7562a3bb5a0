package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts an HH:MM wall-clock string to minutes since
// midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", clock)
	}
	return h*60 + m, nil
}

// Overlaps reports whether two same-day slots share any minute. Slots
// are half-open [start, start+duration), so back-to-back bookings do
// not collide.
func Overlaps(startA string, durA int, startB string, durB int) (bool, error) {
	a, err := ParseClock(startA)
	if err != nil {
		return false, err
	}
	b, err := ParseClock(startB)
	if err != nil {
		return false, err
	}
	return a < b+durB && b < a+durA, nil
}
