package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_AllocateBasic(t *testing.T) {
	a, err := NewArena[int64](4096)
	require.NoError(t, err, "NewArena should succeed")
	defer a.Close()

	first, err := a.Allocate(4)
	require.NoError(t, err)
	require.Len(t, first, 4)

	second, err := a.Allocate(2)
	require.NoError(t, err)
	require.Len(t, second, 2)

	// Blocks must not overlap.
	for i := range first {
		first[i] = int64(100 + i)
	}
	second[0] = -1
	second[1] = -2
	assert.Equal(t, int64(100), first[0])
	assert.Equal(t, int64(103), first[3])

	assert.Equal(t, 48, a.Len(), "6 int64 slots = 48 bytes bumped")
	assert.Equal(t, 4096, a.Cap())
}

func TestArena_Exhaustion(t *testing.T) {
	a, err := NewArena[int64](64)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Allocate(8)
	require.NoError(t, err, "64 bytes hold exactly 8 int64")

	_, err = a.Allocate(1)
	require.ErrorIs(t, err, ErrNoSpace, "arena is full")
}

func TestArena_RejectsPointerElems(t *testing.T) {
	_, err := NewArena[*int](4096)
	require.ErrorIs(t, err, ErrPointerElem, "pointer elements must be rejected")

	_, err = NewArena[string](4096)
	require.ErrorIs(t, err, ErrPointerElem, "strings hold pointers")

	type holder struct {
		ID   int
		Data []byte
	}
	_, err = NewArena[holder](4096)
	require.ErrorIs(t, err, ErrPointerElem, "structs with slices hold pointers")

	type flat struct {
		A int32
		B [4]uint64
	}
	_, err2 := NewArena[flat](4096)
	require.NoError(t, err2, "pointer-free structs are fine")
}

func TestArena_Alignment(t *testing.T) {
	a, err := NewArena[uint64](4096)
	require.NoError(t, err)
	defer a.Close()

	b, err := NewArena[byte](4096)
	require.NoError(t, err)
	defer b.Close()

	// Odd byte allocation followed by a word allocation still aligns.
	_, err = b.Allocate(3)
	require.NoError(t, err)

	block, err := a.Allocate(2)
	require.NoError(t, err)
	block[0] = ^uint64(0)
	block[1] = 1
	assert.Equal(t, ^uint64(0), block[0])
}

func TestArena_Reset(t *testing.T) {
	a, err := NewArena[int32](1024)
	require.NoError(t, err)
	defer a.Close()

	block, err := a.Allocate(8)
	require.NoError(t, err)
	for i := range block {
		block[i] = -1
	}

	a.Reset()
	assert.Zero(t, a.Len(), "Reset reclaims all bytes")

	again, err := a.Allocate(8)
	require.NoError(t, err)
	for i := range again {
		assert.Zero(t, again[i], "Reset must hand back zeroed memory")
	}
}

func TestArena_Close(t *testing.T) {
	a, err := NewArena[int16](256)
	require.NoError(t, err)

	_, err = a.Allocate(4)
	require.NoError(t, err)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close(), "double Close is a no-op")

	_, err = a.Allocate(1)
	require.ErrorIs(t, err, ErrClosed)
}

func TestArena_MaxSlots(t *testing.T) {
	a, err := NewArena[int64](4096)
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, 512, a.MaxSlots())
}
