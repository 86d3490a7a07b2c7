// Package eval implements froth's evaluator and quotation builder
// (spec.md §3, §4.6, §4.7): the component that dispatches tokens,
// resolves names to slot indices, and recursively compiles bracketed
// regions into heap-resident quotation bodies.
package eval

import (
	"errors"

	"github.com/nikokozak/froth/internal/cell"
	"github.com/nikokozak/froth/internal/ferrors"
	"github.com/nikokozak/froth/internal/interp"
	"github.com/nikokozak/froth/internal/reader"
)

// ErrUnexpectedCloseBracket is returned for a ']' encountered at top
// level with no matching '['. The C source leaves this case undefined;
// spec.md §4.6 directs implementations to treat it as a lexical error.
var ErrUnexpectedCloseBracket = errors.New("froth: unexpected ']' at top level")

// Evaluate tokenizes input and evaluates it against it, pushing results
// onto it.DS and allocating quotation bodies and slot names on it.Heap
// as needed. Evaluation order is strict left-to-right; an error aborts
// evaluation of the remainder of input but does not roll back any
// side effect already performed (spec.md §5, §7).
func Evaluate(it *interp.Interpreter, input []byte, tokenNameMax int) error {
	rd := reader.New(input, tokenNameMax)

	for {
		tok, err := rd.NextToken()
		if err != nil {
			return err
		}

		switch tok.Type {
		case reader.TokenEOF:
			return nil

		case reader.TokenNumber:
			c, err := cell.Make(tok.Number, cell.Number)
			if err != nil {
				return err
			}
			if err := it.DS.Push(c); err != nil {
				return err
			}

		case reader.TokenIdentifier:
			// Provisional (spec.md §9 Open Question 1): this core has no
			// execution engine to invoke the resolved slot immediately, so
			// a bare identifier at top level pushes a Call cell rather than
			// running the slot's implementation.
			idx, err := it.Slots.ResolveOrCreate(tok.Name)
			if err != nil {
				return err
			}
			c, err := cell.Make(int64(idx), cell.Call)
			if err != nil {
				return err
			}
			if err := it.DS.Push(c); err != nil {
				return err
			}

		case reader.TokenTickIdentifier:
			idx, err := it.Slots.ResolveOrCreate(tok.Name)
			if err != nil {
				return err
			}
			c, err := cell.Make(int64(idx), cell.SlotRef)
			if err != nil {
				return err
			}
			if err := it.DS.Push(c); err != nil {
				return err
			}

		case reader.TokenOpenBracket:
			q, err := buildQuotation(it, rd)
			if err != nil {
				return err
			}
			if err := it.DS.Push(q); err != nil {
				return err
			}

		case reader.TokenCloseBracket:
			return ErrUnexpectedCloseBracket
		}
	}
}

// buildQuotation is invoked just after a '[' is consumed. It reserves a
// length cell, then reads tokens — recursing into itself for nested
// '[' — until a matching ']' or EOF, and forward-patches the length
// cell once the body's size is known (spec.md §4.6, invariant E-1).
//
// The length cell is written as a raw, untagged integer (not packed via
// cell.Make) — only the quotation's body cells carry a tag. This
// mirrors the C source's direct assignment to the length cell and is
// what spec.md's end-to-end test E3 expects (cell_at(off) == 2, not a
// packed Number cell).
func buildQuotation(it *interp.Interpreter, rd *reader.Reader) (cell.Cell, error) {
	lengthOffset, err := it.Heap.AllocCells(1)
	if err != nil {
		return 0, err
	}

	var length int64

	for {
		tok, err := rd.NextToken()
		if err != nil {
			return 0, err
		}

		var bodyCell cell.Cell

		switch tok.Type {
		case reader.TokenNumber:
			bodyCell, err = cell.Make(tok.Number, cell.Number)
			if err != nil {
				return 0, err
			}

		case reader.TokenIdentifier:
			idx, rerr := it.Slots.ResolveOrCreate(tok.Name)
			if rerr != nil {
				return 0, rerr
			}
			bodyCell, err = cell.Make(int64(idx), cell.Call)
			if err != nil {
				return 0, err
			}

		case reader.TokenTickIdentifier:
			idx, rerr := it.Slots.ResolveOrCreate(tok.Name)
			if rerr != nil {
				return 0, rerr
			}
			bodyCell, err = cell.Make(int64(idx), cell.SlotRef)
			if err != nil {
				return 0, err
			}

		case reader.TokenOpenBracket:
			nested, nerr := buildQuotation(it, rd)
			if nerr != nil {
				return 0, nerr
			}
			bodyCell = nested

		case reader.TokenCloseBracket:
			if err := it.Heap.SetCellAt(lengthOffset, cell.Cell(length)); err != nil {
				return 0, err
			}
			return cell.Make(int64(lengthOffset), cell.QuoteRef)

		case reader.TokenEOF:
			return 0, ferrors.ErrUnterminatedQuotation
		}

		bodyOffset, err := it.Heap.AllocCells(1)
		if err != nil {
			return 0, err
		}
		if err := it.Heap.SetCellAt(bodyOffset, bodyCell); err != nil {
			return 0, err
		}
		length++
	}
}
