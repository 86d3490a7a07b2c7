// Package slot implements froth's slot table (spec.md §3, §4.4): a
// fixed-capacity, name-indexed table binding identifiers to
// implementations, filled contiguously from index 0. Names are stored
// in the heap (via Heap.AllocBytes) so a slot record is itself just a
// non-owning offset into that heap, matching the C source's char*
// pointer into the same arena. Because this repository bundles the
// heap into the Interpreter's explicit context (spec.md §9) rather than
// threading a heap parameter through every call, Table is
// constructed with the heap it stores names in and Find/Create take
// only a name, rather than spec.md §4.4's literal (name, heap) pair.
package slot

import (
	"github.com/nikokozak/froth/internal/cell"
	"github.com/nikokozak/froth/internal/ferrors"
	"github.com/nikokozak/froth/internal/heap"
)

// Primitive is a built-in operation a slot may invoke. Its signature
// mirrors the C source's froth_primitive_fn_t (a zero-argument function
// returning an error) since this spec's scope ends before an execution
// engine exists to call it with interpreter state.
type Primitive func() error

// record is one slot: a name (heap offset), an implementation cell
// (conventionally a QuoteRef, or the zero Cell meaning unset), and an
// optional primitive.
type record struct {
	nameOffset uint64
	hasName    bool
	impl       cell.Cell
	prim       Primitive
}

// Table is a fixed-capacity slot table.
type Table struct {
	heap     *heap.Heap
	records  []record
	capacity int
	pointer  int // slots [0, pointer) are populated
}

// New returns a Table with the given capacity, storing slot names in h.
func New(capacity int, h *heap.Heap) *Table {
	return &Table{heap: h, records: make([]record, capacity), capacity: capacity}
}

// Find returns the index of the slot bound to name, or
// ErrSlotNameNotFound (often benign — callers fall back to Create).
// Lookup is linear by byte-wise string comparison (invariant S-1).
func (t *Table) Find(name string) (int, error) {
	for i := 0; i < t.pointer; i++ {
		if t.heap.ReadCString(t.records[i].nameOffset) == name {
			return i, nil
		}
	}
	return 0, ferrors.ErrSlotNameNotFound
}

// Create copies name (plus a trailing zero byte) into the heap and
// appends a new, empty slot bound to it. Does not deduplicate — callers
// wanting idempotence must Find first.
func (t *Table) Create(name string) (int, error) {
	if t.pointer >= t.capacity {
		return 0, ferrors.ErrSlotTableFull
	}

	off, err := t.heap.AllocBytes(uint64(len(name) + 1))
	if err != nil {
		return 0, err
	}
	if err := t.heap.WriteBytes(off, append([]byte(name), 0)); err != nil {
		return 0, err
	}

	index := t.pointer
	t.records[index] = record{nameOffset: off, hasName: true, impl: 0, prim: nil}
	t.pointer++
	return index, nil
}

// ResolveOrCreate finds name's slot, creating it if absent. The returned
// index is a stable identity for name for the lifetime of the table.
// Shared by the top-level evaluator and the quotation builder (spec.md
// §4.7).
func (t *Table) ResolveOrCreate(name string) (int, error) {
	idx, err := t.Find(name)
	if err == nil {
		return idx, nil
	}
	if err != ferrors.ErrSlotNameNotFound {
		return 0, err
	}
	return t.Create(name)
}

func (t *Table) populated(index int) bool {
	return index >= 0 && index < t.pointer && t.records[index].hasName
}

// GetImpl returns the implementation cell bound to index.
func (t *Table) GetImpl(index int) (cell.Cell, error) {
	if !t.populated(index) {
		return 0, ferrors.ErrSlotIndexEmpty
	}
	return t.records[index].impl, nil
}

// SetImpl rebinds the implementation cell for index.
func (t *Table) SetImpl(index int, impl cell.Cell) error {
	if !t.populated(index) {
		return ferrors.ErrSlotIndexEmpty
	}
	t.records[index].impl = impl
	return nil
}

// GetPrim returns the primitive bound to index, or nil if none.
func (t *Table) GetPrim(index int) (Primitive, error) {
	if !t.populated(index) {
		return nil, ferrors.ErrSlotIndexEmpty
	}
	return t.records[index].prim, nil
}

// SetPrim rebinds the primitive for index.
func (t *Table) SetPrim(index int, prim Primitive) error {
	if !t.populated(index) {
		return ferrors.ErrSlotIndexEmpty
	}
	t.records[index].prim = prim
	return nil
}

// GetName returns the name bound to index.
func (t *Table) GetName(index int) (string, error) {
	if !t.populated(index) {
		return "", ferrors.ErrSlotIndexEmpty
	}
	return t.heap.ReadCString(t.records[index].nameOffset), nil
}

// Len returns the number of populated slots.
func (t *Table) Len() int {
	return t.pointer
}

// Capacity returns the table's fixed capacity.
func (t *Table) Capacity() int {
	return t.capacity
}
