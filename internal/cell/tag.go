// Package cell implements froth's tagged-cell value representation: a
// single machine word whose low 3 bits carry a type tag and whose
// remaining bits carry a signed payload. The word width is fixed at
// build time by one of the cell8/cell16/cell32/cell64 build tags
// (cell32 is the default when none is given), the same per-width
// build-tag-file split the teacher uses for its own word-size variants
// in std/runtime/runtime_c_8.go..runtime_c_64.go.
package cell

// Tag is the 3-bit discriminator packed into a Cell's low bits.
type Tag uint8

// Tag values are fixed and part of the ABI (spec.md §3).
const (
	Number      Tag = 0 // signed value, user-visible
	QuoteRef    Tag = 1 // heap offset of a quotation's length cell, user-visible
	SlotRef     Tag = 2 // slot-table index, literal, user-visible
	PatternRef  Tag = 3 // reserved, heap reference, user-visible
	StringRef   Tag = 4 // reserved, heap reference, user-visible
	ContractRef Tag = 5 // reserved, heap reference, user-visible
	Call        Tag = 6 // slot-table index to invoke; internal, quotation-body only
	reservedTag Tag = 7 // reserved; Make rejects it
)

// tagMask isolates the low 3 bits of a packed word.
const tagMask = 0x7

// String renders a tag the way diagnostics and tests want to see it.
func (t Tag) String() string {
	switch t {
	case Number:
		return "Number"
	case QuoteRef:
		return "QuoteRef"
	case SlotRef:
		return "SlotRef"
	case PatternRef:
		return "PatternRef"
	case StringRef:
		return "StringRef"
	case ContractRef:
		return "ContractRef"
	case Call:
		return "Call"
	default:
		return "Reserved"
	}
}
