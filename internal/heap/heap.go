// Package heap implements froth's bump-pointer byte arena (spec.md §3,
// §4.2): a fixed-size byte buffer with a monotonically advancing
// pointer, used both for null-terminated name strings (byte-granular
// allocation) and for quotation bodies (cell-aligned allocation). There
// is no free operation — the heap grows for the lifetime of the
// Interpreter.
//
// Cell values are read and written as little-endian byte sequences via
// explicit shift loops, the same style the teacher's VM backend uses
// for its own flat memory region (std/compiler/backend_vm.go's loadN /
// storeN), rather than via unsafe pointer casts.
package heap

import (
	"github.com/nikokozak/froth/internal/cell"
	"github.com/nikokozak/froth/internal/ferrors"
)

// Heap is a fixed-size bump-pointer byte arena.
type Heap struct {
	data    []byte
	pointer uint64
}

// New allocates a Heap backed by a zeroed buffer of the given size.
func New(size uint64) *Heap {
	return &Heap{data: make([]byte, size)}
}

// Size returns the heap's fixed capacity in bytes.
func (h *Heap) Size() uint64 {
	return uint64(len(h.data))
}

// Pointer returns the current bump offset (bytes allocated so far).
func (h *Heap) Pointer() uint64 {
	return h.pointer
}

func alignUp(p, align uint64) uint64 {
	return (p + align - 1) &^ (align - 1)
}

// AllocBytes advances the bump pointer by n bytes with no alignment
// guarantee and returns the pre-advance offset. Used for null-terminated
// name strings.
func (h *Heap) AllocBytes(n uint64) (uint64, error) {
	if h.pointer+n > uint64(len(h.data)) {
		return 0, ferrors.ErrHeapOutOfMemory
	}
	start := h.pointer
	h.pointer += n
	return start, nil
}

// AllocCells aligns the bump pointer up to cell.Size, then reserves
// count cells. The returned byte offset is the aligned offset, suitable
// for use as a QuoteRef payload (invariant H-1, invariant from §8.3:
// every offset returned by AllocCells is a multiple of cell.Size).
func (h *Heap) AllocCells(count uint64) (uint64, error) {
	aligned := alignUp(h.pointer, uint64(cell.Size))
	need := aligned + count*uint64(cell.Size)
	if need > uint64(len(h.data)) {
		return 0, ferrors.ErrHeapOutOfMemory
	}
	h.pointer = need
	return aligned, nil
}

// CellAt reinterprets the bytes at offset as a cell. offset must have
// been produced by AllocCells (directly, or by walking a quotation body
// in cell.Size strides from such an offset).
func (h *Heap) CellAt(offset uint64) (cell.Cell, error) {
	if offset+uint64(cell.Size) > uint64(len(h.data)) {
		return 0, ferrors.ErrHeapOutOfMemory
	}
	return loadCell(h.data[offset : offset+uint64(cell.Size)]), nil
}

// SetCellAt writes c into the bytes at offset, previously reserved by
// AllocCells.
func (h *Heap) SetCellAt(offset uint64, c cell.Cell) error {
	if offset+uint64(cell.Size) > uint64(len(h.data)) {
		return ferrors.ErrHeapOutOfMemory
	}
	storeCell(h.data[offset:offset+uint64(cell.Size)], c)
	return nil
}

// WriteBytes copies data into the heap starting at offset, previously
// reserved by AllocBytes.
func (h *Heap) WriteBytes(offset uint64, data []byte) error {
	if offset+uint64(len(data)) > uint64(len(h.data)) {
		return ferrors.ErrHeapOutOfMemory
	}
	copy(h.data[offset:], data)
	return nil
}

// ReadCString reads a null-terminated byte string starting at offset.
// Used to recover slot names, which are stored in the heap rather than
// owned by the slot table (spec.md §4.4).
func (h *Heap) ReadCString(offset uint64) string {
	end := offset
	for end < uint64(len(h.data)) && h.data[end] != 0 {
		end++
	}
	return string(h.data[offset:end])
}

func loadCell(buf []byte) cell.Cell {
	var uval uint64
	for i := 0; i < cell.Size; i++ {
		uval |= uint64(buf[i]) << uint(i*8)
	}
	return cell.Cell(uval)
}

func storeCell(buf []byte, c cell.Cell) {
	uval := uint64(c)
	for i := 0; i < cell.Size; i++ {
		buf[i] = byte(uval >> uint(i*8))
	}
}
