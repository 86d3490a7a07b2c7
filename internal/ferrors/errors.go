// Package ferrors defines the sentinel errors shared by every froth core
// subsystem (cell, heap, stack, slot, reader, eval). Lower layers return
// these directly; cmd/froth is the only place that wraps them with
// github.com/pkg/errors for caller-facing context.
package ferrors

import "errors"

var (
	// ErrStackOverflow is returned by Stack.Push when the stack is at capacity.
	ErrStackOverflow = errors.New("froth: stack overflow")
	// ErrStackUnderflow is returned by Stack.Pop/Peek when the stack is empty.
	ErrStackUnderflow = errors.New("froth: stack underflow")
	// ErrValueOverflow is returned by cell.Make when the payload does not fit
	// in the cell's W-3 signed payload bits.
	ErrValueOverflow = errors.New("froth: value overflow")
	// ErrReservedTag is returned by cell.Make for the reserved tag value (7).
	ErrReservedTag = errors.New("froth: reserved tag")
	// ErrIO is returned by the platform byte I/O seam on failure or EOF.
	ErrIO = errors.New("froth: io error")
	// ErrHeapOutOfMemory is returned by the heap allocators when a request
	// would exceed the heap's fixed size.
	ErrHeapOutOfMemory = errors.New("froth: heap out of memory")
	// ErrSlotNameNotFound is returned by slot.Table.Find when no slot is bound
	// to the given name. Often benign: callers fall back to Create.
	ErrSlotNameNotFound = errors.New("froth: slot name not found")
	// ErrSlotTableFull is returned by slot.Table.Create when all slots are bound.
	ErrSlotTableFull = errors.New("froth: slot table full")
	// ErrSlotIndexEmpty is returned by slot accessors when the index has not
	// yet been populated by Create.
	ErrSlotIndexEmpty = errors.New("froth: slot index empty")
	// ErrTokenTooLong is returned by the reader when a word exceeds the
	// configured maximum identifier length.
	ErrTokenTooLong = errors.New("froth: token too long")
	// ErrUnterminatedQuotation is returned by the quotation builder when EOF
	// is reached before a matching close bracket.
	ErrUnterminatedQuotation = errors.New("froth: unterminated quotation")
)
