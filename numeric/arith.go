package numeric

// safeAddI64 adds x and y, faulting Overflow if the signed sum wraps.
// The carry test is the classic two's-complement overflow check: a sum
// that moved the wrong way relative to y's sign indicates a wrap.
func safeAddI64(reporter FaultReporter, x, y int64) int64 {
	sum := x + y
	if (y >= 0 && sum < x) || (y < 0 && sum > x) {
		raise(reporter, Overflow, Number{})
	}
	return sum
}

// safeSubI64 subtracts y from x, faulting Overflow on wrap. Written as
// a direct carry check rather than safeAddI64(x, -y) because y == MinInt64
// cannot be negated without itself overflowing.
func safeSubI64(reporter FaultReporter, x, y int64) int64 {
	diff := x - y
	if (y >= 0 && diff > x) || (y < 0 && diff < x) {
		raise(reporter, Overflow, Number{})
	}
	return diff
}

// safeMulI64 multiplies x and y, faulting Overflow on wrap: a nonzero
// x whose product does not divide back out to y signals one.
func safeMulI64(reporter FaultReporter, x, y int64) int64 {
	product := x * y
	if x != 0 && product/x != y {
		raise(reporter, Overflow, Number{})
	}
	return product
}

// floatWidthIsF64 reports whether a catFloat Number is boxed FLOAT64
// rather than FLOAT32.
func floatWidthIsF64(alloc Allocator, n Number) bool {
	return boxedTag(alloc, n) == TagFloat64
}

// plus implements the + operator over every representation pairing.
func plus(alloc Allocator, reporter FaultReporter, x, y Number) Number {
	cx, cy := categoryOf(alloc, x), categoryOf(alloc, y)

	switch {
	case cx == catInt && cy == catInt:
		xi := toI64(alloc, reporter, x)
		yi := toI64(alloc, reporter, y)
		return reduceToInteger(alloc, safeAddI64(reporter, xi, yi))

	case cx == catInt && cy == catRational:
		a, b := rationalParts(alloc, y)
		return intPlusRational(alloc, reporter, toI64(alloc, reporter, x), a, b)
	case cx == catRational && cy == catInt:
		a, b := rationalParts(alloc, x)
		return intPlusRational(alloc, reporter, toI64(alloc, reporter, y), a, b)

	case cx == catRational && cy == catRational:
		ax, bx := rationalParts(alloc, x)
		ay, by := rationalParts(alloc, y)
		return rationalPlus(alloc, reporter, ax, bx, ay, by)

	default:
		return floatBinOp(alloc, x, y, cx, cy, func(a, b float64) float64 { return a + b },
			func(a, b float32) float32 { return a + b })
	}
}

// minus implements the - operator. Order matters, so
// the rational/integer mixed cases are not simply a commuted call into
// plus's helpers.
func minus(alloc Allocator, reporter FaultReporter, x, y Number) Number {
	cx, cy := categoryOf(alloc, x), categoryOf(alloc, y)

	switch {
	case cx == catInt && cy == catInt:
		xi := toI64(alloc, reporter, x)
		yi := toI64(alloc, reporter, y)
		return reduceToInteger(alloc, safeSubI64(reporter, xi, yi))

	case cx == catInt && cy == catRational:
		xi := toI64(alloc, reporter, x)
		a, b := rationalParts(alloc, y)
		expanded := safeMulI64(reporter, xi, b)
		return reduceFraction(alloc, reporter, safeSubI64(reporter, expanded, a), b)

	case cx == catRational && cy == catInt:
		yi := toI64(alloc, reporter, y)
		a, b := rationalParts(alloc, x)
		expanded := safeMulI64(reporter, yi, b)
		return reduceFraction(alloc, reporter, safeSubI64(reporter, a, expanded), b)

	case cx == catRational && cy == catRational:
		ax, bx := rationalParts(alloc, x)
		ay, by := rationalParts(alloc, y)
		if bx == by {
			return reduceFraction(alloc, reporter, safeSubI64(reporter, ax, ay), bx)
		}
		num := safeSubI64(reporter, safeMulI64(reporter, ax, by), safeMulI64(reporter, ay, bx))
		den := safeMulI64(reporter, bx, by)
		return reduceFraction(alloc, reporter, num, den)

	default:
		return floatBinOp(alloc, x, y, cx, cy, func(a, b float64) float64 { return a - b },
			func(a, b float32) float32 { return a - b })
	}
}

// times implements the * operator.
func times(alloc Allocator, reporter FaultReporter, x, y Number) Number {
	cx, cy := categoryOf(alloc, x), categoryOf(alloc, y)

	switch {
	case cx == catInt && cy == catInt:
		xi := toI64(alloc, reporter, x)
		yi := toI64(alloc, reporter, y)
		return reduceToInteger(alloc, safeMulI64(reporter, xi, yi))

	case cx == catInt && cy == catRational:
		xi := toI64(alloc, reporter, x)
		a, b := rationalParts(alloc, y)
		return reduceFraction(alloc, reporter, safeMulI64(reporter, xi, a), b)
	case cx == catRational && cy == catInt:
		yi := toI64(alloc, reporter, y)
		a, b := rationalParts(alloc, x)
		return reduceFraction(alloc, reporter, safeMulI64(reporter, a, yi), b)

	case cx == catRational && cy == catRational:
		ax, bx := rationalParts(alloc, x)
		ay, by := rationalParts(alloc, y)
		return reduceFraction(alloc, reporter, safeMulI64(reporter, ax, ay), safeMulI64(reporter, bx, by))

	default:
		return floatBinOp(alloc, x, y, cx, cy, func(a, b float64) float64 { return a * b },
			func(a, b float32) float32 { return a * b })
	}
}

// divide implements the / operator. Integer and rational division by
// zero faults DivisionByZero; float division never faults, returning
// IEEE inf/NaN as appropriate. Integers that don't divide evenly
// produce an exact rational, never a rounded float.
func divide(alloc Allocator, reporter FaultReporter, x, y Number) Number {
	cx, cy := categoryOf(alloc, x), categoryOf(alloc, y)

	switch {
	case cx == catInt && cy == catInt:
		xi := toI64(alloc, reporter, x)
		yi := toI64(alloc, reporter, y)
		return reduceFraction(alloc, reporter, xi, yi)

	case cx == catInt && cy == catRational:
		xi := toI64(alloc, reporter, x)
		a, b := rationalParts(alloc, y)
		return reduceFraction(alloc, reporter, safeMulI64(reporter, xi, b), a)
	case cx == catRational && cy == catInt:
		yi := toI64(alloc, reporter, y)
		a, b := rationalParts(alloc, x)
		return reduceFraction(alloc, reporter, a, safeMulI64(reporter, b, yi))

	case cx == catRational && cy == catRational:
		ax, bx := rationalParts(alloc, x)
		ay, by := rationalParts(alloc, y)
		return reduceFraction(alloc, reporter, safeMulI64(reporter, ax, by), safeMulI64(reporter, bx, ay))

	default:
		return floatBinOp(alloc, x, y, cx, cy, func(a, b float64) float64 { return a / b },
			func(a, b float32) float32 { return a / b })
	}
}

// rationalParts returns a rational Number's numerator and denominator
// widened to int64 for use in the overflow-checked helpers above.
func rationalParts(alloc Allocator, n Number) (int64, int64) {
	return int64(rationalNum(alloc, n)), int64(rationalDen(alloc, n))
}

// intPlusRational implements x + a/b: commutative, so both dispatch
// orders (int+rational, rational+int) share it.
func intPlusRational(alloc Allocator, reporter FaultReporter, x, a, b int64) Number {
	expanded := safeMulI64(reporter, x, b)
	return reduceFraction(alloc, reporter, safeAddI64(reporter, expanded, a), b)
}

// rationalPlus adds two rationals, taking the common-denominator
// shortcut when both denominators already match.
func rationalPlus(alloc Allocator, reporter FaultReporter, ax, bx, ay, by int64) Number {
	if bx == by {
		return reduceFraction(alloc, reporter, safeAddI64(reporter, ax, ay), bx)
	}
	num := safeAddI64(reporter, safeMulI64(reporter, ax, by), safeMulI64(reporter, ay, bx))
	den := safeMulI64(reporter, bx, by)
	return reduceFraction(alloc, reporter, num, den)
}

// floatBinOp implements the promotion rules shared by +, -, *, / once
// at least one operand is a float: the non-float side is cast to the
// float side's width, and the result is boxed float64 if either
// original operand was float64, else float32.
func floatBinOp(
	alloc Allocator,
	x, y Number, cx, cy category,
	op64 func(a, b float64) float64,
	op32 func(a, b float32) float32,
) Number {
	wide := (cx == catFloat && floatWidthIsF64(alloc, x)) || (cy == catFloat && floatWidthIsF64(alloc, y))

	if wide {
		return newF64(alloc, op64(toF64(alloc, x), toF64(alloc, y)))
	}
	return newF32(alloc, op32(toF32(alloc, x), toF32(alloc, y)))
}
