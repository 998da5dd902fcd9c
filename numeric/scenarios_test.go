package numeric

import (
	"math"
	"testing"
)

// End-to-end scenarios over the public surface; each test name
// documents the expression it exercises.

func TestScenario_PlusThreeFour(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})
	result := rt.Plus(BoxImmediate(3), BoxImmediate(4))
	if !IsImmediate(result) || rt.ToI64(result) != 7 {
		t.Fatalf("plus(3,4): want immediate 7, got %s", rt.String(result))
	}
}

func TestScenario_DivideOneThird(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})
	result := rt.Divide(BoxImmediate(1), BoxImmediate(3))
	if rt.TypeOf(result) != "rational" || rationalNum(rt.Alloc, result) != 1 || rationalDen(rt.Alloc, result) != 3 {
		t.Fatalf("divide(1,3): want rational 1/3, got %s", rt.String(result))
	}
}

func TestScenario_PlusHalfAndThird(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})
	half := rt.Divide(BoxImmediate(1), BoxImmediate(2))
	third := rt.Divide(BoxImmediate(1), BoxImmediate(3))
	result := rt.Plus(half, third)
	if rationalNum(rt.Alloc, result) != 5 || rationalDen(rt.Alloc, result) != 6 {
		t.Fatalf("plus(1/2,1/3): want 5/6, got %s", rt.String(result))
	}
}

func TestScenario_PlusHalfAndHalf(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})
	half := rt.Divide(BoxImmediate(1), BoxImmediate(2))
	result := rt.Plus(half, half)
	if !IsImmediate(result) || rt.ToI64(result) != 1 {
		t.Fatalf("plus(1/2,1/2): want immediate 1, got %s", rt.String(result))
	}
}

func TestScenario_TimesBoxedInt32ByTwo(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})
	boxed := rt.ReduceToInteger(2_000_000_000) // forces an INT32 box
	if rt.TypeOf(boxed) != "int" || boxedTag(rt.Alloc, boxed) != TagInt32 {
		t.Fatalf("setup: want 2e9 boxed as int32, got tag %v", boxedTag(rt.Alloc, boxed))
	}

	result := rt.Times(boxed, BoxImmediate(2))
	if rt.ToI64(result) != 4_000_000_000 {
		t.Fatalf("times(2e9_i32,2): want 4e9, got %v", rt.ToI64(result))
	}
	if boxedTag(rt.Alloc, result) != TagInt64 {
		t.Fatalf("times(2e9_i32,2): want result boxed as int64, got %v", boxedTag(rt.Alloc, result))
	}
}

func TestScenario_PlusI64MaxOneFaultsOverflow(t *testing.T) {
	reporter := &RecordingReporter{}
	rt := NewRuntime(NewDefaultAllocator(8), reporter)

	i64max := rt.ReduceToInteger(math.MaxInt64)

	func() {
		defer func() { recover() }()
		rt.Plus(i64max, BoxImmediate(1))
	}()

	if !reporter.Recorded || reporter.Kind != Overflow {
		t.Fatalf("plus(I64_MAX,1): want OVERFLOW fault, got %+v", reporter)
	}
}

func TestScenario_EqFloatOneAndIntOne(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})
	if !rt.Eq(rt.NewFloat64(1.0), BoxImmediate(1)) {
		t.Fatalf("eq(1.0_f64, 1): want true")
	}
}

func TestScenario_ModFloatFaultsNotIntLike(t *testing.T) {
	reporter := &RecordingReporter{}
	rt := NewRuntime(NewDefaultAllocator(8), reporter)

	func() {
		defer func() { recover() }()
		rt.Mod(rt.NewFloat64(7.5), BoxImmediate(2))
	}()

	if !reporter.Recorded || reporter.Kind != NotIntLike {
		t.Fatalf("mod(7.5_f64, 2): want NOT_INT_LIKE fault, got %+v", reporter)
	}
}
