// Package overflow provides overflow-safe integer arithmetic for slot and
// byte-size calculations. Capacity math (size + n, slots * elemSize) must
// never wrap silently; every growth decision goes through these helpers.
package overflow

import "math"

// Add adds a and b, returning ok = false when the result would overflow int.
func Add(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Mul multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for slots * elementSize calculations in allocators.
func Mul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// For positive numbers, check if result would overflow
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	// For negative numbers
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// Double doubles n, saturating at math.MaxInt instead of wrapping.
func Double(n int) int {
	if n > math.MaxInt/2 {
		return math.MaxInt
	}
	return n * 2
}
