package numeric

import "sync"

// DefaultAllocator is the reference Allocator: an append-only arena of
// heap cells, safe for concurrent use. Address 0 is reserved so
// fromAddr/addrOf keep the zero-valued Number a non-number sentinel.
//
// Freed cells are kept on freed, a LIFO freelist, so a host that calls
// Free as cells die doesn't force Alloc back to the Go allocator for
// every single new Number. Reclamation itself is the host's
// responsibility; Free is an optional capability a host may call once
// it knows a cell is unreachable, returning it for reuse on the next
// Alloc.
type DefaultAllocator struct {
	mu    sync.Mutex
	cells []*HeapCell // cells[0] is the reserved sentinel slot
	freed []*HeapCell // LIFO freelist of cells released via Free
}

// NewDefaultAllocator creates an allocator with room for capacity cells
// before its arena needs to grow.
func NewDefaultAllocator(capacity int) *DefaultAllocator {
	a := &DefaultAllocator{
		cells: make([]*HeapCell, 1, capacity+1),
		freed: make([]*HeapCell, 0, capacity),
	}
	a.cells[0] = &HeapCell{}
	return a
}

// Alloc implements Allocator.
func (a *DefaultAllocator) Alloc(cell HeapCell) Addr {
	a.mu.Lock()
	defer a.mu.Unlock()

	var slot *HeapCell
	if n := len(a.freed); n > 0 {
		slot = a.freed[n-1]
		a.freed = a.freed[:n-1]
	} else {
		slot = new(HeapCell)
	}

	*slot = cell
	a.cells = append(a.cells, slot)
	return Addr(len(a.cells) - 1)
}

// Load implements Allocator.
func (a *DefaultAllocator) Load(addr Addr) HeapCell {
	a.mu.Lock()
	defer a.mu.Unlock()

	return *a.cells[addr]
}

// Free returns the cell at addr to the allocator's freelist for reuse;
// once the freelist already holds capacity cells, the cell is dropped
// instead. addr itself is never handed out again. The caller must guarantee no live Number still references addr; the
// numeric core never calls this itself.
func (a *DefaultAllocator) Free(addr Addr) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if cap(a.freed) > len(a.freed) {
		a.freed = append(a.freed, a.cells[addr])
	}
	a.cells[addr] = &HeapCell{}
}
