package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikokozak/froth/internal/config"
)

func TestNewFromConfig(t *testing.T) {
	it, err := NewFromConfig(config.Default())
	require.NoError(t, err)
	require.NotNil(t, it.Heap)
	require.NotNil(t, it.DS)
	require.NotNil(t, it.RS)
	require.NotNil(t, it.CS)
	require.NotNil(t, it.Slots)
	require.Equal(t, config.Default().DSCapacity, it.DS.Capacity())
}

func TestNewRejectsHeapBeyondCellWidth(t *testing.T) {
	_, err := New(maxAddressableHeap()+1, 4, 4, 4, 4)
	require.ErrorIs(t, err, ErrHeapExceedsCellWidth)
}

func TestNewAcceptsHeapWithinBound(t *testing.T) {
	_, err := New(64, 4, 4, 4, 4)
	require.NoError(t, err)
}
