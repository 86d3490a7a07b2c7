// Package repl implements froth's read-eval-print loop and the
// stack-print format spec.md §6 specifies for tests. Apart from
// cmd/froth, which only picks the platform.IO adapter, it is the only
// package that talks to internal/platform — the core (cell, heap,
// stack, slot, reader, eval) never blocks on I/O.
package repl

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nikokozak/froth/internal/cell"
	"github.com/nikokozak/froth/internal/eval"
	"github.com/nikokozak/froth/internal/interp"
	"github.com/nikokozak/froth/internal/platform"
)

// REPL reads lines from an IO, evaluates them against an Interpreter,
// and prints the data stack after each line, exactly as spec.md §6 and
// §7 describe: evaluation errors are non-fatal and do not stop the
// loop. An error from the line reader ends the session with Run
// returning nil; a failure writing output is returned from Run.
type REPL struct {
	IO             platform.IO
	Logger         *zap.SugaredLogger
	TokenNameMax   int
	LineBufferSize int
	Prompt         string
}

// New returns a REPL wired to io and logger, using cfg-derived sizes.
func New(io platform.IO, logger *zap.SugaredLogger, tokenNameMax, lineBufferSize int) *REPL {
	return &REPL{
		IO:             io,
		Logger:         logger,
		TokenNameMax:   tokenNameMax,
		LineBufferSize: lineBufferSize,
		Prompt:         "froth> ",
	}
}

// LineReader is implemented by IO adapters that read a whole line
// themselves and print their own prompt (platform.LinerIO does this via
// liner.State.Prompt, which needs to own the prompt to support history
// recall and in-line editing). When r.IO implements LineReader, Run
// prefers it over the byte-at-a-time ReadLine below.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Run drives the loop until the line reader returns an error (typically
// EOF on the underlying IO), at which point it returns nil — an
// ordinary, expected end of session rather than a failure to report.
func (r *REPL) Run(it *interp.Interpreter) error {
	lr, usesLineReader := r.IO.(LineReader)

	for {
		var line string
		var err error

		if usesLineReader {
			line, err = lr.ReadLine(r.Prompt)
		} else {
			if err = platform.EmitString(r.IO, r.Prompt); err != nil {
				return err
			}
			line, err = r.ReadLine()
		}
		if err != nil {
			return nil
		}

		if err := eval.Evaluate(it, []byte(line), r.TokenNameMax); err != nil {
			if r.Logger != nil {
				r.Logger.Warnw("evaluation error", "error", err, "input", line)
			}
			if emitErr := platform.EmitString(r.IO, fmt.Sprintf("error: %v\n", err)); emitErr != nil {
				return emitErr
			}
			continue
		}

		rendered := RenderStack(it)
		if err := platform.EmitString(r.IO, rendered); err != nil {
			return err
		}
	}
}

// ReadLine reads bytes from r.IO one at a time until '\n', EOF, or
// LineBufferSize-1 bytes have been accumulated, mirroring the original
// froth_repl_read_line's fixed buffer discipline (spec.md §6
// LINE_BUFFER_SIZE).
func (r *REPL) ReadLine() (string, error) {
	limit := r.LineBufferSize - 1
	if limit < 0 {
		limit = 0
	}

	var sb strings.Builder
	for sb.Len() < limit {
		b, err := r.IO.Key()
		if err != nil {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if b == '\n' {
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
	return sb.String(), nil
}

// RenderStack renders it.DS in spec.md §6's stack-print format:
// "[" followed by space-separated cell renderings followed by "]\n".
func RenderStack(it *interp.Interpreter) string {
	depth := it.DS.Depth()
	parts := make([]string, depth)
	for i := 0; i < depth; i++ {
		c, err := it.DS.At(i)
		if err != nil {
			parts[i] = "<?>"
			continue
		}
		parts[i] = renderCell(it, c)
	}
	return "[" + strings.Join(parts, " ") + "]\n"
}

func renderCell(it *interp.Interpreter, c cell.Cell) string {
	switch c.Tag() {
	case cell.Number:
		return fmt.Sprintf("%d", c.Payload())
	case cell.QuoteRef:
		return fmt.Sprintf("Q:%d", c.Payload())
	case cell.SlotRef:
		return renderNamedRef(it, c, "S")
	case cell.Call:
		return renderNamedRef(it, c, "C")
	case cell.PatternRef:
		return fmt.Sprintf("P:%d", c.Payload())
	case cell.StringRef:
		return fmt.Sprintf("Str:%d", c.Payload())
	case cell.ContractRef:
		return fmt.Sprintf("Con:%d", c.Payload())
	default:
		return "<?>"
	}
}

// renderNamedRef renders a SlotRef or Call cell as "<prefix>:<name>",
// falling back to "<prefix>:<index>" when the slot's name can't be
// resolved (spec.md §6).
func renderNamedRef(it *interp.Interpreter, c cell.Cell, prefix string) string {
	idx := int(c.Payload())
	name, err := it.Slots.GetName(idx)
	if err != nil {
		return fmt.Sprintf("%s:%d", prefix, idx)
	}
	return fmt.Sprintf("%s:%s", prefix, name)
}
