package numeric

import (
	"strconv"
)

// formatNumber renders a Number for diagnostics: shortest
// round-tripping precision for floats, plain decimal for integers,
// "num/den" for rationals.
func formatNumber(alloc Allocator, n Number) string {
	if IsImmediate(n) {
		return strconv.FormatInt(unboxImmediate(n), 10)
	}
	if !IsBoxedNumber(n) {
		return "<not-a-number>"
	}

	switch boxedTag(alloc, n) {
	case TagInt32:
		return strconv.FormatInt(int64(i32Of(alloc, n)), 10)
	case TagInt64:
		return strconv.FormatInt(i64Of(alloc, n), 10)
	case TagFloat32:
		return strconv.FormatFloat(float64(f32Of(alloc, n)), 'g', -1, 32)
	case TagFloat64:
		return strconv.FormatFloat(f64Of(alloc, n), 'g', -1, 64)
	case TagRational:
		return strconv.FormatInt(int64(rationalNum(alloc, n)), 10) + "/" + strconv.FormatUint(uint64(rationalDen(alloc, n)), 10)
	default:
		return "<unknown>"
	}
}
