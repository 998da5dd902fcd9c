package numeric

// Runtime carries the collaborators every public operation needs:
// each operator (Plus, Minus, Eq, Lt, Shl, ...) is a method on
// *Runtime, taking its Allocator and FaultReporter from here instead
// of a package-level variable, so tests and hosts can substitute
// recording implementations.
type Runtime struct {
	Alloc Allocator
	Fault FaultReporter
}

// NewRuntime builds a Runtime over the given collaborators. Passing nil
// for either uses the package defaults: a fresh DefaultAllocator and a
// PanicReporter.
func NewRuntime(alloc Allocator, reporter FaultReporter) *Runtime {
	if alloc == nil {
		alloc = NewDefaultAllocator(64)
	}
	if reporter == nil {
		reporter = PanicReporter{}
	}
	return &Runtime{Alloc: alloc, Fault: reporter}
}

// BoxImmediate boxes an int64 known to fit in immediate range. Use
// ReduceToInteger for a value that might not fit.
func BoxImmediate(v int64) Number {
	if !fitsImmediate(v) {
		panic("numeric: BoxImmediate value out of immediate range")
	}
	return boxImmediate(v)
}

// ReduceToInteger returns the canonical Number for an integer value:
// an immediate when it fits, else the smallest boxed width that does.
func (rt *Runtime) ReduceToInteger(v int64) Number {
	return reduceToInteger(rt.Alloc, v)
}

// ReduceFraction returns the canonical Number for n/d: sign
// normalised, reduced by gcd, collapsed to an integer when d divides
// n. Faults DivisionByZero when d == 0.
func (rt *Runtime) ReduceFraction(n, d int64) Number {
	return reduceFraction(rt.Alloc, rt.Fault, n, d)
}

// NewFloat32 boxes a float32.
func (rt *Runtime) NewFloat32(v float32) Number { return newF32(rt.Alloc, v) }

// NewFloat64 boxes a float64.
func (rt *Runtime) NewFloat64(v float64) Number { return newF64(rt.Alloc, v) }

// ToF64 widens n to float64.
func (rt *Runtime) ToF64(n Number) float64 { return toF64(rt.Alloc, n) }

// ToF32 narrows n to float32.
func (rt *Runtime) ToF32(n Number) float32 { return toF32(rt.Alloc, n) }

// ToI64 widens an integer-represented n to int64; faults NotIntLike on
// a float or rational operand.
func (rt *Runtime) ToI64(n Number) int64 { return toI64(rt.Alloc, rt.Fault, n) }

// IsNumber reports whether n is any valid Number representation.
func (rt *Runtime) IsNumber(n Number) bool { return IsNumber(n) }

// TypeOf names a Number's representation, for a type-checker
// annotating literals with their minimal type.
func (rt *Runtime) TypeOf(n Number) string {
	if IsImmediate(n) {
		return "int"
	}
	if !IsBoxedNumber(n) {
		return "<not-a-number>"
	}
	switch boxedTag(rt.Alloc, n) {
	case TagInt32, TagInt64:
		return "int"
	case TagFloat32, TagFloat64:
		return "float"
	case TagRational:
		return "rational"
	default:
		return "<unknown>"
	}
}

// IsZero reports whether n is the canonical representation of zero.
// Zero is always an int-category Number; a zero rational numerator
// collapses to the integer zero, and a float 0.0 is not canonical
// zero.
func (rt *Runtime) IsZero(n Number) bool {
	if categoryOf(rt.Alloc, n) != catInt {
		return false
	}
	return toI64(rt.Alloc, rt.Fault, n) == 0
}
