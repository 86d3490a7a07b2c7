package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikokozak/froth/internal/cell"
	"github.com/nikokozak/froth/internal/ferrors"
)

func TestAllocBytesUnaligned(t *testing.T) {
	h := New(64)
	off1, err := h.AllocBytes(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0), off1)

	off2, err := h.AllocBytes(5)
	require.NoError(t, err)
	require.Equal(t, uint64(3), off2)
}

func TestAllocCellsAligned(t *testing.T) {
	h := New(64)
	_, err := h.AllocBytes(1)
	require.NoError(t, err)

	off, err := h.AllocCells(2)
	require.NoError(t, err)
	require.Zero(t, off%uint64(cell.Size))
}

func TestAllocMonotonicNoOverlap(t *testing.T) {
	h := New(64)
	off1, err := h.AllocCells(1)
	require.NoError(t, err)
	off2, err := h.AllocCells(1)
	require.NoError(t, err)
	require.Greater(t, off2, off1)
	require.GreaterOrEqual(t, off2-off1, uint64(cell.Size))
}

func TestAllocOutOfMemory(t *testing.T) {
	h := New(4)
	_, err := h.AllocBytes(5)
	require.ErrorIs(t, err, ferrors.ErrHeapOutOfMemory)

	h2 := New(uint64(cell.Size))
	_, err = h2.AllocCells(2)
	require.ErrorIs(t, err, ferrors.ErrHeapOutOfMemory)
}

func TestCellRoundTrip(t *testing.T) {
	h := New(64)
	off, err := h.AllocCells(1)
	require.NoError(t, err)

	c, err := cell.Make(-7, cell.Number)
	require.NoError(t, err)

	require.NoError(t, h.SetCellAt(off, c))

	got, err := h.CellAt(off)
	require.NoError(t, err)
	require.Equal(t, c, got)
	require.Equal(t, int64(-7), got.Payload())
}

func TestWriteBytesAndReadCString(t *testing.T) {
	h := New(64)
	off, err := h.AllocBytes(uint64(len("foo") + 1))
	require.NoError(t, err)

	require.NoError(t, h.WriteBytes(off, append([]byte("foo"), 0)))
	require.Equal(t, "foo", h.ReadCString(off))
}
