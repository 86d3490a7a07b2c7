// Package platform is froth's byte I/O seam (spec.md §6): emit a byte,
// read a byte (blocking), and a non-blocking poll for whether a byte is
// available. It is consumed by the REPL, never by the core — the cell,
// heap, stack, slot, reader, and eval packages never touch it.
package platform

import (
	"bufio"
	"os"

	"github.com/peterh/liner"

	"github.com/nikokozak/froth/internal/ferrors"
)

// IO is the platform byte I/O contract.
type IO interface {
	Emit(b byte) error
	Key() (byte, error)
	KeyReady() bool
}

// Stdio is the default IO, reading from stdin and writing to stdout.
type Stdio struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// NewStdio returns a Stdio wrapping os.Stdin and os.Stdout.
func NewStdio() *Stdio {
	return &Stdio{in: bufio.NewReader(os.Stdin), out: bufio.NewWriter(os.Stdout)}
}

// Emit writes b to stdout, flushing immediately so prompts and stack
// renderings appear without buffering surprises in an interactive shell.
func (s *Stdio) Emit(b byte) error {
	if err := s.out.WriteByte(b); err != nil {
		return ferrors.ErrIO
	}
	if err := s.out.Flush(); err != nil {
		return ferrors.ErrIO
	}
	return nil
}

// Key blocks for the next byte from stdin.
func (s *Stdio) Key() (byte, error) {
	b, err := s.in.ReadByte()
	if err != nil {
		return 0, ferrors.ErrIO
	}
	return b, nil
}

// KeyReady reports whether a byte is already buffered, i.e. can be read
// without blocking. This is a best-effort approximation of the C
// source's poll(2)-based platform_key_ready: it only ever sees true
// once something has already been read into the buffer.
func (s *Stdio) KeyReady() bool {
	return s.in.Buffered() > 0
}

// LinerIO is an interactive IO backed by peterh/liner, giving the REPL
// history and line editing when stdin is a real terminal. It only
// implements Emit meaningfully from the plain IO contract — Key and
// KeyReady exist to satisfy the interface but are never exercised,
// because repl.REPL prefers the richer LineReader path below whenever
// it's available.
type LinerIO struct {
	state *liner.State
}

// NewLinerIO starts a liner session with Ctrl-C treated as an abort
// rather than a terminal kill signal, matching the usual REPL posture.
func NewLinerIO() *LinerIO {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &LinerIO{state: state}
}

// Close releases the underlying terminal state.
func (l *LinerIO) Close() error {
	return l.state.Close()
}

// Emit writes a single byte straight to stdout. liner only takes over
// the terminal during Prompt; writes in between are ordinary stdout.
func (l *LinerIO) Emit(b byte) error {
	if _, err := os.Stdout.Write([]byte{b}); err != nil {
		return ferrors.ErrIO
	}
	return nil
}

// Key is never called on the LineReader path; it exists only so
// LinerIO satisfies IO for callers that don't type-assert for
// LineReader support.
func (l *LinerIO) Key() (byte, error) {
	return 0, ferrors.ErrIO
}

// KeyReady always reports false; see Key.
func (l *LinerIO) KeyReady() bool {
	return false
}

// ReadLine prompts for and returns one full line, recording it in
// liner's in-memory history. Implements repl.LineReader.
func (l *LinerIO) ReadLine(prompt string) (string, error) {
	line, err := l.state.Prompt(prompt)
	if err != nil {
		return "", ferrors.ErrIO
	}
	l.state.AppendHistory(line)
	return line, nil
}

// EmitString writes each byte of s via Emit, in order.
func EmitString(io IO, s string) error {
	for i := 0; i < len(s); i++ {
		if err := io.Emit(s[i]); err != nil {
			return err
		}
	}
	return nil
}
