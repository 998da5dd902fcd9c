package numeric

import "testing"

func TestEqSameRepresentation(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})

	if !rt.Eq(BoxImmediate(3), BoxImmediate(3)) {
		t.Fatalf("3 == 3: want true")
	}
	if rt.Eq(BoxImmediate(3), BoxImmediate(4)) {
		t.Fatalf("3 == 4: want false")
	}
}

func TestEqIntAndFloatSafeInteger(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})

	if !rt.Eq(BoxImmediate(2), rt.NewFloat64(2.0)) {
		t.Fatalf("2 == 2.0: want true")
	}
	if rt.Eq(BoxImmediate(2), rt.NewFloat64(2.5)) {
		t.Fatalf("2 == 2.5: want false")
	}
}

func TestEqIntVsRationalAlwaysFalse(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})

	third := rt.Divide(BoxImmediate(1), BoxImmediate(3))
	if rt.Eq(BoxImmediate(0), third) {
		t.Fatalf("0 == 1/3: want false regardless of magnitude")
	}
}

func TestEqRationalAndFloat(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})

	half := rt.Divide(BoxImmediate(1), BoxImmediate(2))
	if !rt.Eq(half, rt.NewFloat64(0.5)) {
		t.Fatalf("1/2 == 0.5: want true")
	}
}

func TestIsSafeIntegerRejectsNaNAndInf(t *testing.T) {
	if _, ok := isSafeInteger(0.0 / zeroFloat()); ok {
		t.Fatalf("NaN should not be a safe integer")
	}
	if _, ok := isSafeInteger(1.0 / zeroFloat()); ok {
		t.Fatalf("+Inf should not be a safe integer")
	}
}

func zeroFloat() float64 { return 0.0 }
