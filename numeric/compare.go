package numeric

// lt, gt, le, ge implement the ordering operators. Order compares
// numerically across representations by widening both sides to
// float64, except le/ge check exact equality first so that two numbers
// considered equal by eq are never simultaneously "not <=" and
// "not >=" because of float64 rounding.
func lt(alloc Allocator, x, y Number) bool {
	return toF64(alloc, x) < toF64(alloc, y)
}

func gt(alloc Allocator, x, y Number) bool {
	return toF64(alloc, x) > toF64(alloc, y)
}

func le(alloc Allocator, x, y Number) bool {
	if eq(alloc, x, y) {
		return true
	}
	return toF64(alloc, x) < toF64(alloc, y)
}

func ge(alloc Allocator, x, y Number) bool {
	if eq(alloc, x, y) {
		return true
	}
	return toF64(alloc, x) > toF64(alloc, y)
}

// mod implements the % operator: both operands coerce to int64
// (faulting NotIntLike on a float or rational operand), and the
// remainder is Go's truncated-toward-zero %, then reduced to canonical
// integer form. A zero divisor faults DivisionByZero.
func mod(alloc Allocator, reporter FaultReporter, x, y Number) Number {
	xi := toI64(alloc, reporter, x)
	yi := toI64(alloc, reporter, y)
	if yi == 0 {
		return raise(reporter, DivisionByZero, Number{})
	}
	return reduceToInteger(alloc, xi%yi)
}

// shiftCount reduces a shift-count operand to the low 6 bits:
// out-of-range counts wrap modulo 64 rather than being host-dependent.
func shiftCount(alloc Allocator, reporter FaultReporter, n Number) uint {
	return uint(toI64(alloc, reporter, n)) & 63
}

// shl implements <<: both operands coerce to int64, the shift count is
// taken mod 64, and the result reduces to canonical integer form. Bits
// shifted out the top are discarded, not a fault.
func shl(alloc Allocator, reporter FaultReporter, x, y Number) Number {
	xi := toI64(alloc, reporter, x)
	count := shiftCount(alloc, reporter, y)
	return reduceToInteger(alloc, xi<<count)
}

// shrLogical implements >>>: shifts the bit pattern without sign
// extension, operating on the unsigned view of the coerced int64
// value.
func shrLogical(alloc Allocator, reporter FaultReporter, x, y Number) Number {
	xi := toI64(alloc, reporter, x)
	count := shiftCount(alloc, reporter, y)
	return reduceToInteger(alloc, int64(uint64(xi)>>count))
}

// shrArith implements >>: an arithmetic (sign-extending) right shift
// on the coerced int64 value.
func shrArith(alloc Allocator, reporter FaultReporter, x, y Number) Number {
	xi := toI64(alloc, reporter, x)
	count := shiftCount(alloc, reporter, y)
	return reduceToInteger(alloc, xi>>count)
}

// bitAnd, bitOr, bitXor implement &, |, ^. Each coerces both operands
// to int64 first and operates on those coerced values, never the raw
// tagged words.
func bitAnd(alloc Allocator, reporter FaultReporter, x, y Number) Number {
	xi := toI64(alloc, reporter, x)
	yi := toI64(alloc, reporter, y)
	return reduceToInteger(alloc, xi&yi)
}

func bitOr(alloc Allocator, reporter FaultReporter, x, y Number) Number {
	xi := toI64(alloc, reporter, x)
	yi := toI64(alloc, reporter, y)
	return reduceToInteger(alloc, xi|yi)
}

func bitXor(alloc Allocator, reporter FaultReporter, x, y Number) Number {
	xi := toI64(alloc, reporter, x)
	yi := toI64(alloc, reporter, y)
	return reduceToInteger(alloc, xi^yi)
}
