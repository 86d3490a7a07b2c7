//go:build cell8

package cell

// Cell is an 8-bit froth cell: 3 tag bits, 5 payload bits.
type Cell int8

// Bits is the configured cell width in bits (FROTH_CELL_SIZE_BITS).
const Bits = 8

// Size is sizeof(cell) in bytes, used by the heap for cell alignment.
const Size = 1

// Make validates value fits in Bits-3 signed bits and packs it with tag.
func Make(value int64, tag Tag) (Cell, error) {
	return packTagged[Cell](value, tag, Bits)
}

// Tag returns the cell's 3-bit type discriminator.
func (c Cell) Tag() Tag {
	return Tag(int64(c) & tagMask)
}

// Payload returns the cell's payload via arithmetic right shift.
func (c Cell) Payload() int64 {
	return unpackPayload(c)
}
