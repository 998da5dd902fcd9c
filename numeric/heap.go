package numeric

import "math"

// Addr is an opaque heap address assigned by an Allocator. An arena
// index rather than a raw pointer, so the core never needs
// unsafe.Pointer arithmetic.
type Addr uint64

// BoxTag identifies the concrete representation of a boxed Number.
type BoxTag uint8

const (
	TagInt32 BoxTag = iota
	TagInt64
	TagFloat32
	TagFloat64
	TagRational
)

func (t BoxTag) String() string {
	switch t {
	case TagInt32:
		return "int32"
	case TagInt64:
		return "int64"
	case TagFloat32:
		return "float32"
	case TagFloat64:
		return "float64"
	case TagRational:
		return "rational"
	default:
		return "unknown"
	}
}

// HeapCell is the payload of a boxed Number. The heap-kind word is
// implicit (every cell an Allocator in this package produces is a
// boxed number), Tag selects the concrete representation, and
// Word0/Word1 carry the payload:
//
//	INT32/FLOAT32:  Word0 holds the value, Word1 unused
//	INT64/FLOAT64:  Word0 low half, Word1 high half (here: Word0 holds
//	                the full 64-bit pattern directly; Word1 is unused -
//	                this implementation's word is natively 64 bits wide)
//	RATIONAL:       Word0 holds the signed 32-bit numerator's bit
//	                pattern, Word1 the unsigned 32-bit denominator
type HeapCell struct {
	Tag   BoxTag
	Word0 uint64
	Word1 uint64
}

// Allocator is the external collaborator heap management is delegated
// to: it hands out a fresh address for a cell's payload and later
// resolves that address back to the cell. Implementations must be safe
// for concurrent use if used from more than one goroutine.
type Allocator interface {
	// Alloc publishes a new, immutable heap cell and returns its
	// address. Implementations must never return an error; allocation
	// failure is expected to fault via the host's own mechanism.
	Alloc(cell HeapCell) Addr
	// Load resolves an address back to its cell. The address must have
	// been produced by a prior call to Alloc on the same Allocator.
	Load(addr Addr) HeapCell
}

// boxedTag returns the BoxTag of a boxed Number.
func boxedTag(alloc Allocator, n Number) BoxTag {
	return alloc.Load(addrOf(n)).Tag
}

func i32Of(alloc Allocator, n Number) int32 {
	return int32(alloc.Load(addrOf(n)).Word0)
}

func i64Of(alloc Allocator, n Number) int64 {
	return int64(alloc.Load(addrOf(n)).Word0)
}

func f32Of(alloc Allocator, n Number) float32 {
	return math.Float32frombits(uint32(alloc.Load(addrOf(n)).Word0))
}

func f64Of(alloc Allocator, n Number) float64 {
	return math.Float64frombits(alloc.Load(addrOf(n)).Word0)
}

func rationalNum(alloc Allocator, n Number) int32 {
	return int32(alloc.Load(addrOf(n)).Word0)
}

func rationalDen(alloc Allocator, n Number) uint32 {
	return uint32(alloc.Load(addrOf(n)).Word1)
}

func newI32(alloc Allocator, v int32) Number {
	return fromAddr(alloc.Alloc(HeapCell{Tag: TagInt32, Word0: uint64(uint32(v))}))
}

func newI64(alloc Allocator, v int64) Number {
	return fromAddr(alloc.Alloc(HeapCell{Tag: TagInt64, Word0: uint64(v)}))
}

func newF32(alloc Allocator, v float32) Number {
	return fromAddr(alloc.Alloc(HeapCell{Tag: TagFloat32, Word0: uint64(math.Float32bits(v))}))
}

func newF64(alloc Allocator, v float64) Number {
	return fromAddr(alloc.Alloc(HeapCell{Tag: TagFloat64, Word0: math.Float64bits(v)}))
}

// newRational allocates a rational cell. Callers must never invoke
// this with den == 0; reduceFraction (canon.go) routes every rational
// construction through sign normalisation and gcd reduction first.
func newRational(alloc Allocator, num int32, den uint32) Number {
	return fromAddr(alloc.Alloc(HeapCell{Tag: TagRational, Word0: uint64(uint32(num)), Word1: uint64(den)}))
}
