// Package interp bundles the heap, the three stacks, and the slot
// table into one explicit context (spec.md §9: "process-wide mutable
// state should be bundled into an Interpreter value passed explicitly
// to every core operation"), rather than the package-level globals the
// C source and the teacher's own std/compiler both use.
package interp

import (
	"errors"

	"github.com/nikokozak/froth/internal/cell"
	"github.com/nikokozak/froth/internal/config"
	"github.com/nikokozak/froth/internal/heap"
	"github.com/nikokozak/froth/internal/slot"
	"github.com/nikokozak/froth/internal/stack"
)

// ErrHeapExceedsCellWidth is returned by New/NewFromConfig when the
// requested heap size cannot be addressed by a QuoteRef payload at the
// configured cell width (spec.md §9, Open Question 3).
var ErrHeapExceedsCellWidth = errors.New("froth: heap size exceeds the addressable range of a QuoteRef payload at this cell width")

// Interpreter bundles the memory substrate described in spec.md §3: the
// heap, the data/return/call stacks, and the slot table.
type Interpreter struct {
	Heap  *heap.Heap
	DS    *stack.Stack
	RS    *stack.Stack
	CS    *stack.Stack
	Slots *slot.Table
}

// maxAddressableHeap returns the largest heap size (in bytes) whose
// byte offsets all fit in a QuoteRef payload at the current cell width.
// A payload is a signed (cell.Bits-3)-bit value (cell.Make's bound), so
// the largest non-negative offset it can carry is 2^(cell.Bits-4)-1.
func maxAddressableHeap() uint64 {
	return uint64(1) << (cell.Bits - 4)
}

// New constructs an Interpreter from explicit capacities, validating the
// heap size against the configured cell width before allocating
// anything.
func New(heapSize uint64, dsCapacity, rsCapacity, csCapacity, slotTableSize int) (*Interpreter, error) {
	if heapSize > maxAddressableHeap() {
		return nil, ErrHeapExceedsCellWidth
	}

	h := heap.New(heapSize)
	return &Interpreter{
		Heap:  h,
		DS:    stack.New(dsCapacity),
		RS:    stack.New(rsCapacity),
		CS:    stack.New(csCapacity),
		Slots: slot.New(slotTableSize, h),
	}, nil
}

// NewFromConfig constructs an Interpreter from a loaded configuration.
func NewFromConfig(cfg config.Config) (*Interpreter, error) {
	return New(cfg.HeapSize, cfg.DSCapacity, cfg.RSCapacity, cfg.CSCapacity, cfg.SlotTableSize)
}
