package booking

import (
	"math"
	"time"
)

// Nights returns the billable night count for a stay: the day span
// between check-in and check-out rounded up, never less than one.
// Validation rejects checkOut <= checkIn before pricing runs, so the
// clamp only covers sub-day spans produced by time-of-day noise.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return n
}

// TotalPrice computes the stay total: nightly price times the billable
// night count.  No taxes, discounts or currency conversion.
func TotalPrice(nightly int64, checkIn, checkOut time.Time) int64 {
	return nightly * int64(Nights(checkIn, checkOut))
}
