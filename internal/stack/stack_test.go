package stack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikokozak/froth/internal/cell"
	"github.com/nikokozak/froth/internal/ferrors"
)

// TestPushPopPeek is adapted from the original source's main.c smoke
// test of the stack API (push/pop/peek/overflow/underflow), kept here
// as what it actually is: a unit test, not a second program entrypoint.
func TestPushPopPeek(t *testing.T) {
	s := New(3)

	mustPush := func(v int64) {
		c, err := cell.Make(v, cell.Number)
		require.NoError(t, err)
		require.NoError(t, s.Push(c))
	}
	mustPush(42)
	mustPush(69)
	mustPush(1337)

	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(1337), v.Payload())

	v, err = s.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(69), v.Payload())

	v, err = s.Peek()
	require.NoError(t, err)
	require.Equal(t, int64(42), v.Payload())

	v, err = s.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(42), v.Payload())

	_, err = s.Pop()
	require.ErrorIs(t, err, ferrors.ErrStackUnderflow)

	_, err = s.Peek()
	require.ErrorIs(t, err, ferrors.ErrStackUnderflow)
}

func TestPushOverflow(t *testing.T) {
	s := New(2)
	c, err := cell.Make(0, cell.Number)
	require.NoError(t, err)

	require.NoError(t, s.Push(c))
	require.NoError(t, s.Push(c))
	require.ErrorIs(t, s.Push(c), ferrors.ErrStackOverflow)
	require.Equal(t, 2, s.Depth())
}

func TestAtIndexing(t *testing.T) {
	s := New(4)
	for i := int64(0); i < 3; i++ {
		c, err := cell.Make(i, cell.Number)
		require.NoError(t, err)
		require.NoError(t, s.Push(c))
	}

	v, err := s.At(1)
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Payload())

	_, err = s.At(3)
	require.ErrorIs(t, err, ferrors.ErrStackUnderflow)
}
