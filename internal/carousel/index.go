package carousel

import "math"

// Round rounds half toward positive infinity. It is the single rounding
// rule used for slot derivation and tap targeting.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// IndexAt returns the physical slot centred at offset.
func IndexAt(offset, extent float64) int {
	return Round((-offset - extent/2) / extent)
}

// OffsetAt returns the offset that centres physical slot index.
func OffsetAt(index int, extent float64) float64 {
	return -(float64(index)*extent + extent/2)
}

// Logical maps a physical slot onto the logical item set of size n.
func Logical(physical, n int) int {
	return ((physical % n) + n) % n
}

// Nearest returns the slot-aligned offset closest to offset.
func Nearest(offset, extent float64) float64 {
	return OffsetAt(IndexAt(offset, extent), extent)
}
