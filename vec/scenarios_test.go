package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end walks through typical container lifecycles with literal values.

func TestScenario_EmptyFootprint(t *testing.T) {
	v := New[int32]()

	assert.Zero(t, v.Len())
	assert.Zero(t, v.Cap())
	assert.Nil(t, v.Data())
}

func TestScenario_FillAndIndex(t *testing.T) {
	v, err := NewFill(3, 42)
	require.NoError(t, err)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, 42, v.Get(0))
	assert.Equal(t, 42, v.Get(1))
	assert.Equal(t, 42, v.Get(2))
	assert.Equal(t, 42, *v.Front())
	assert.Equal(t, 42, *v.Back())
}

func TestScenario_RangeConstruction(t *testing.T) {
	v, err := NewFromSlice([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, 5, v.Len())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i+1, v.Get(i))
	}
}

func TestScenario_AssignGrowing(t *testing.T) {
	v, err := NewFill(10, 5)
	require.NoError(t, err)

	require.NoError(t, v.Assign(15, 15))
	assert.Equal(t, 15, v.Len())
	for x := range v.Values() {
		assert.Equal(t, 15, x)
	}
}

func TestScenario_InsertAtBeginTriggersGrowth(t *testing.T) {
	v, err := NewFill(3, 0)
	require.NoError(t, err)
	require.Equal(t, 3, v.Cap())

	_, err = v.Insert(v.CBegin(), 42)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 6, v.Cap())
	assert.Equal(t, []int{42, 0, 0, 0}, v.Data())
}

func TestScenario_InsertCountWithPreReserve(t *testing.T) {
	v, err := NewFill(2, 10)
	require.NoError(t, err)
	require.NoError(t, v.Reserve(6))

	_, err = v.InsertN(v.CBegin(), 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, []int{5, 5, 5, 10, 10}, v.Data())
	assert.Equal(t, 6, v.Cap())
}

func TestScenario_ShrinkAndRegrow(t *testing.T) {
	v := New[int]()
	for i := 1; i <= 5; i++ {
		require.NoError(t, v.PushBack(i))
	}
	assert.Equal(t, 8, v.Cap())

	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 5, v.Cap())

	require.NoError(t, v.Resize(10))
	assert.Equal(t, 10, v.Cap())
	assert.Equal(t, 10, v.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 0, 0, 0, 0, 0}, v.Data())
}

func TestScenario_LexicographicOrder(t *testing.T) {
	a, err := NewFill(2, 5)
	require.NoError(t, err)
	b, err := NewFill(3, 10)
	require.NoError(t, err)

	assert.True(t, Less(a, b))
	assert.True(t, Greater(b, a))
	assert.True(t, LessEqual(a, b))
	assert.False(t, Equal(a, b))
}
