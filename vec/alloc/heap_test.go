package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_Allocate(t *testing.T) {
	h := Heap[int64]{}

	block, err := h.Allocate(16)
	require.NoError(t, err, "Allocate should succeed")
	require.Len(t, block, 16, "block should have exactly 16 slots")

	for i := range block {
		assert.Zero(t, block[i], "heap blocks come out zeroed")
	}

	// Writes stick.
	block[0] = 42
	block[15] = -1
	assert.Equal(t, int64(42), block[0])
	assert.Equal(t, int64(-1), block[15])
}

func TestHeap_AllocateZero(t *testing.T) {
	h := Heap[int]{}

	block, err := h.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, block, "zero slots should yield a nil block")
}

func TestHeap_AllocateNegative(t *testing.T) {
	h := Heap[int]{}

	_, err := h.Allocate(-1)
	require.ErrorIs(t, err, ErrNoSpace, "negative counts are unallocatable")
}

func TestHeap_MaxSlots(t *testing.T) {
	assert.Positive(t, Heap[int64]{}.MaxSlots())
	assert.Greater(t, Heap[byte]{}.MaxSlots(), Heap[int64]{}.MaxSlots(),
		"smaller elements should allow more slots")
}

func TestHeap_DeallocateNoop(t *testing.T) {
	h := Heap[int]{}
	block, err := h.Allocate(4)
	require.NoError(t, err)
	h.Deallocate(block)
	h.Deallocate(nil)
}
