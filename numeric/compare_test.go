package numeric

import "testing"

func TestOrderingAcrossRepresentations(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})

	half := rt.Divide(BoxImmediate(1), BoxImmediate(2))
	if !rt.Lt(half, BoxImmediate(1)) {
		t.Fatalf("1/2 < 1: want true")
	}
	if !rt.Gt(BoxImmediate(1), half) {
		t.Fatalf("1 > 1/2: want true")
	}
	if !rt.Le(half, rt.NewFloat64(0.5)) {
		t.Fatalf("1/2 <= 0.5: want true")
	}
	if !rt.Ge(rt.NewFloat64(0.5), half) {
		t.Fatalf("0.5 >= 1/2: want true")
	}
}

func TestModTruncatesTowardZero(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})

	result := rt.Mod(BoxImmediate(-7), BoxImmediate(2))
	if rt.ToI64(result) != -1 {
		t.Fatalf("-7 %% 2: want -1, got %v", rt.ToI64(result))
	}
}

func TestModByZeroFaults(t *testing.T) {
	reporter := &RecordingReporter{}
	rt := NewRuntime(NewDefaultAllocator(8), reporter)

	func() {
		defer func() { recover() }()
		rt.Mod(BoxImmediate(1), BoxImmediate(0))
	}()

	if !reporter.Recorded || reporter.Kind != DivisionByZero {
		t.Fatalf("want DivisionByZero recorded, got %+v", reporter)
	}
}

func TestModOnFloatFaultsNotIntLike(t *testing.T) {
	reporter := &RecordingReporter{}
	rt := NewRuntime(NewDefaultAllocator(8), reporter)

	func() {
		defer func() { recover() }()
		rt.Mod(rt.NewFloat64(5.5), BoxImmediate(2))
	}()

	if !reporter.Recorded || reporter.Kind != NotIntLike {
		t.Fatalf("want NotIntLike recorded, got %+v", reporter)
	}
	if !reporter.HasOperand {
		t.Fatalf("want NotIntLike fault to carry the offending operand")
	}
}

func TestShiftCountWrapsModulo64(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})

	a := rt.Shl(BoxImmediate(1), BoxImmediate(1))
	b := rt.Shl(BoxImmediate(1), BoxImmediate(65)) // 65 & 63 == 1
	if rt.ToI64(a) != rt.ToI64(b) {
		t.Fatalf("shift count should wrap mod 64: shl(1,1)=%v shl(1,65)=%v", rt.ToI64(a), rt.ToI64(b))
	}
}

func TestShrLogicalVsShrArith(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})

	neg := rt.ReduceToInteger(-8)

	arith := rt.ShrArith(neg, BoxImmediate(1))
	if rt.ToI64(arith) != -4 {
		t.Fatalf("-8 >> 1 (arith): want -4, got %v", rt.ToI64(arith))
	}

	logical := rt.ShrLogical(neg, BoxImmediate(1))
	if rt.ToI64(logical) == -4 {
		t.Fatalf("-8 >>> 1 (logical) should not sign-extend like the arithmetic shift")
	}
}

func TestBitwiseOperatorsOperateOnCoercedValues(t *testing.T) {
	rt := NewRuntime(NewDefaultAllocator(8), PanicReporter{})

	a := rt.ReduceToInteger(0b1100)
	b := rt.ReduceToInteger(0b1010)

	if rt.ToI64(rt.BitAnd(a, b)) != 0b1000 {
		t.Fatalf("0b1100 & 0b1010: got %v", rt.ToI64(rt.BitAnd(a, b)))
	}
	if rt.ToI64(rt.BitOr(a, b)) != 0b1110 {
		t.Fatalf("0b1100 | 0b1010: got %v", rt.ToI64(rt.BitOr(a, b)))
	}
	if rt.ToI64(rt.BitXor(a, b)) != 0b0110 {
		t.Fatalf("0b1100 ^ 0b1010: got %v", rt.ToI64(rt.BitXor(a, b)))
	}
}
