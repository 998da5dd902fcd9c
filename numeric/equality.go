package numeric

import "math"

type category uint8

const (
	catInt category = iota
	catRational
	catFloat
)

func categoryOf(alloc Allocator, n Number) category {
	if IsImmediate(n) {
		return catInt
	}
	switch boxedTag(alloc, n) {
	case TagInt32, TagInt64:
		return catInt
	case TagRational:
		return catRational
	default: // TagFloat32, TagFloat64
		return catFloat
	}
}

// isSafeInteger reports whether f has no fractional part and lies
// within the 53-bit contiguous integer range float64 represents
// exactly, returning the integer value when it does.
func isSafeInteger(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	const maxSafe = int64(1) << 53
	i := int64(f)
	if float64(i) != f || i > maxSafe || i < -maxSafe {
		return 0, false
	}
	return i, true
}

// eq implements cross-representation numeric equality. Canonical form
// drives the shortcuts: equal words are equal, rationals compare
// component-wise, and an int never equals a rational.
func eq(alloc Allocator, x, y Number) bool {
	if x == y {
		return true
	}
	if !IsNumber(x) || !IsNumber(y) {
		return false
	}

	cx, cy := categoryOf(alloc, x), categoryOf(alloc, y)

	switch {
	case cx == catInt && cy == catInt:
		return toI64(alloc, PanicReporter{}, x) == toI64(alloc, PanicReporter{}, y)

	case cx == catRational && cy == catRational:
		return rationalNum(alloc, x) == rationalNum(alloc, y) && rationalDen(alloc, x) == rationalDen(alloc, y)

	case cx == catFloat && cy == catFloat:
		return toF64(alloc, x) == toF64(alloc, y)

	case cx == catRational && cy == catFloat:
		return float64(rationalNum(alloc, x))/float64(rationalDen(alloc, x)) == toF64(alloc, y)
	case cx == catFloat && cy == catRational:
		return toF64(alloc, x) == float64(rationalNum(alloc, y))/float64(rationalDen(alloc, y))

	case cx == catInt && cy == catFloat:
		return intEqualsFloat(alloc, x, y)
	case cx == catFloat && cy == catInt:
		return intEqualsFloat(alloc, y, x)

	default:
		// int vs rational, in either order: a canonical rational is
		// never an integer value, so always false.
		return false
	}
}

func intEqualsFloat(alloc Allocator, intSide, floatSide Number) bool {
	iv, safe := isSafeInteger(toF64(alloc, floatSide))
	if !safe {
		return false
	}
	return toI64(alloc, PanicReporter{}, intSide) == iv
}
