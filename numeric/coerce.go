package numeric

// toF64 widens any Number to float64. Rationals convert by the single
// division num/den. An intentionally lossy coercion, used only by
// comparisons and float-promotion paths; the arithmetic operators keep
// exactness through the rational paths instead.
func toF64(alloc Allocator, n Number) float64 {
	if IsImmediate(n) {
		return float64(unboxImmediate(n))
	}

	switch boxedTag(alloc, n) {
	case TagInt32:
		return float64(i32Of(alloc, n))
	case TagInt64:
		return float64(i64Of(alloc, n))
	case TagRational:
		return float64(rationalNum(alloc, n)) / float64(rationalDen(alloc, n))
	case TagFloat32:
		return float64(f32Of(alloc, n))
	case TagFloat64:
		return f64Of(alloc, n)
	default:
		panic("numeric: toF64 on non-number")
	}
}

// toF32 narrows any Number to float32. The rational case divides
// num/den with both sides cast to float32 up front; this loses
// precision for large rationals, which is why comparisons go through
// toF64 instead.
func toF32(alloc Allocator, n Number) float32 {
	if IsImmediate(n) {
		return float32(unboxImmediate(n))
	}

	switch boxedTag(alloc, n) {
	case TagInt32:
		return float32(i32Of(alloc, n))
	case TagInt64:
		return float32(i64Of(alloc, n))
	case TagRational:
		return float32(rationalNum(alloc, n)) / float32(rationalDen(alloc, n))
	case TagFloat32:
		return f32Of(alloc, n)
	case TagFloat64:
		return float32(f64Of(alloc, n))
	default:
		panic("numeric: toF32 on non-number")
	}
}

// toI64 widens an integer-represented Number to int64, or faults
// NotIntLike with n as the offending operand.
func toI64(alloc Allocator, reporter FaultReporter, n Number) int64 {
	if IsImmediate(n) {
		return unboxImmediate(n)
	}

	switch boxedTag(alloc, n) {
	case TagInt32:
		return int64(i32Of(alloc, n))
	case TagInt64:
		return i64Of(alloc, n)
	default:
		raiseOperand(reporter, NotIntLike, n)
		panic("unreachable")
	}
}
