package numeric

// This file gathers the public operator surface as methods on
// *Runtime.

// Plus returns x + y.
func (rt *Runtime) Plus(x, y Number) Number { return plus(rt.Alloc, rt.Fault, x, y) }

// Minus returns x - y.
func (rt *Runtime) Minus(x, y Number) Number { return minus(rt.Alloc, rt.Fault, x, y) }

// Times returns x * y.
func (rt *Runtime) Times(x, y Number) Number { return times(rt.Alloc, rt.Fault, x, y) }

// Divide returns x / y.
func (rt *Runtime) Divide(x, y Number) Number { return divide(rt.Alloc, rt.Fault, x, y) }

// Mod returns x % y; both operands must be integer-represented.
func (rt *Runtime) Mod(x, y Number) Number { return mod(rt.Alloc, rt.Fault, x, y) }

// Eq reports whether x and y denote the same mathematical value,
// across representations.
func (rt *Runtime) Eq(x, y Number) bool { return eq(rt.Alloc, x, y) }

// Lt reports whether x < y.
func (rt *Runtime) Lt(x, y Number) bool { return lt(rt.Alloc, x, y) }

// Gt reports whether x > y.
func (rt *Runtime) Gt(x, y Number) bool { return gt(rt.Alloc, x, y) }

// Le reports whether x <= y.
func (rt *Runtime) Le(x, y Number) bool { return le(rt.Alloc, x, y) }

// Ge reports whether x >= y.
func (rt *Runtime) Ge(x, y Number) bool { return ge(rt.Alloc, x, y) }

// Shl returns x << y.
func (rt *Runtime) Shl(x, y Number) Number { return shl(rt.Alloc, rt.Fault, x, y) }

// ShrLogical returns x >>> y (unsigned shift).
func (rt *Runtime) ShrLogical(x, y Number) Number { return shrLogical(rt.Alloc, rt.Fault, x, y) }

// ShrArith returns x >> y (sign-extending shift).
func (rt *Runtime) ShrArith(x, y Number) Number { return shrArith(rt.Alloc, rt.Fault, x, y) }

// BitAnd returns x & y.
func (rt *Runtime) BitAnd(x, y Number) Number { return bitAnd(rt.Alloc, rt.Fault, x, y) }

// BitOr returns x | y.
func (rt *Runtime) BitOr(x, y Number) Number { return bitOr(rt.Alloc, rt.Fault, x, y) }

// BitXor returns x ^ y.
func (rt *Runtime) BitXor(x, y Number) Number { return bitXor(rt.Alloc, rt.Fault, x, y) }

// String renders n for diagnostics. It never faults: floats print via
// Go's default float formatting, rationals as "num/den", integers as
// plain decimal.
func (rt *Runtime) String(n Number) string {
	return formatNumber(rt.Alloc, n)
}
