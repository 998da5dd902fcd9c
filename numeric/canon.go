package numeric

import "fortio.org/safecast"

// reduceToInteger returns the canonical Number for the integer value
// v: an immediate if it fits, else the smallest boxed integer width
// that does. Every arithmetic result construction site in this package
// funnels integer results through here so the canonical-form
// invariants hold everywhere a Number crosses a public boundary.
func reduceToInteger(alloc Allocator, v int64) Number {
	if fitsImmediate(v) {
		return boxImmediate(v)
	}
	if v32, err := safecast.Conv[int32](v); err == nil {
		return newI32(alloc, v32)
	}
	return newI64(alloc, v)
}

// reduceFraction normalises and reduces n/d to canonical form: sign
// moved onto the numerator, reduced by gcd, and collapsed to an
// integer Number when the denominator divides out evenly. It faults
// with DivisionByZero if d == 0 and Overflow if the reduced numerator or
// denominator no longer fits in signed 32-bit range.
func reduceFraction(alloc Allocator, reporter FaultReporter, n, d int64) Number {
	if d == 0 {
		return raise(reporter, DivisionByZero, Number{})
	}
	if n == 0 {
		return boxImmediate(0)
	}

	// Moves any negative sign onto the numerator, leaving d > 0. This
	// single check covers both "n<0 and d<0" (negate both) and
	// "d<0 alone" (move sign to n): negating both operands when only d
	// is negative is exactly moving the sign onto n.
	if d < 0 {
		n, d = -n, -d
	}

	if n%d == 0 {
		return reduceToInteger(alloc, n/d)
	}

	g := binaryGCD(absInt64(n), uint64(d))
	rn := n / int64(g)
	rd := d / int64(g)

	num32, errN := safecast.Conv[int32](rn)
	den32, errD := safecast.Conv[int32](rd)
	if errN != nil || errD != nil {
		return raise(reporter, Overflow, Number{})
	}

	return newRational(alloc, num32, uint32(den32))
}

// absInt64 returns the unsigned magnitude of v. The negation wraps in
// two's complement, so v == math.MinInt64 still converts to the
// correct magnitude 1<<63.
func absInt64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// binaryGCD computes gcd(a, b) with Stein's algorithm.
func binaryGCD(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	shift := 0
	for (a|b)&1 == 0 {
		a >>= 1
		b >>= 1
		shift++
	}
	for a&1 == 0 {
		a >>= 1
	}

	for b != 0 {
		for b&1 == 0 {
			b >>= 1
		}
		if a > b {
			a, b = b, a
		}
		b -= a
	}

	return a << shift
}
