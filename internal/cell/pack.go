package cell

import (
	"golang.org/x/exp/constraints"

	"github.com/nikokozak/froth/internal/ferrors"
)

// packTagged validates that tag is not the reserved tag and that value
// fits in the (bitWidth-3)-bit two's-complement payload field, i.e. lies
// in [-2^(bitWidth-4), 2^(bitWidth-4)-1] (spec.md §3 invariant C-1),
// then packs it as
// (value << 3) | tag. Written once as a generic over the four sized
// signed integer types selected per build tag, instead of being
// copy-pasted into each cell_*.go file.
func packTagged[T constraints.Signed](value int64, tag Tag, bitWidth int) (T, error) {
	if tag&tagMask == reservedTag {
		return 0, ferrors.ErrReservedTag
	}
	maxValue := int64(1)<<(bitWidth-4) - 1
	minValue := -(int64(1) << (bitWidth - 4))
	if value < minValue || value > maxValue {
		return 0, ferrors.ErrValueOverflow
	}
	return T((value << 3) | int64(tag&tagMask)), nil
}

// unpackPayload recovers the signed payload of a packed word via
// arithmetic right shift. The same operation applies to every tag —
// callers treating a reference tag's payload as an offset or index must
// interpret it as unsigned within its valid (non-negative) range.
func unpackPayload[T constraints.Signed](packed T) int64 {
	return int64(packed) >> 3
}
