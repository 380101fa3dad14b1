package vec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRandomOps_GuardInvariants performs random container operations against
// a plain-slice model and validates the structural invariants after each one.
func TestRandomOps_GuardInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility

	v := New[int]()
	var model []int

	checkInvariants := func(step int) {
		t.Helper()
		require.GreaterOrEqual(t, v.Len(), 0, "step %d: negative length", step)
		require.LessOrEqual(t, v.Len(), v.Cap(), "step %d: length above capacity", step)
		if v.Cap() == 0 {
			require.Nil(t, v.Data(), "step %d: zero capacity must mean nil data", step)
		} else {
			require.NotNil(t, v.Data(), "step %d: capacity without a region", step)
		}
		require.Equal(t, model, nilIfEmpty(v.Data()), "step %d: contents diverged", step)
	}

	for step := range 2000 {
		switch op := rng.Intn(10); op {
		case 0, 1, 2: // push
			x := rng.Intn(1000)
			require.NoError(t, v.PushBack(x))
			model = append(model, x)

		case 3: // pop
			if v.Len() > 0 {
				v.PopBack()
				model = model[:len(model)-1]
				if len(model) == 0 {
					model = nil
				}
			}

		case 4: // insert at random position
			p := rng.Intn(v.Len() + 1)
			x := rng.Intn(1000)
			c, err := v.Insert(v.CursorAt(p), x)
			require.NoError(t, err)
			require.Equal(t, p, c.Index())
			require.Equal(t, x, c.Value())
			model = append(model[:p], append([]int{x}, model[p:]...)...)

		case 5: // erase at random position
			if v.Len() > 0 {
				p := rng.Intn(v.Len())
				_, err := v.Erase(v.CursorAt(p))
				require.NoError(t, err)
				model = append(model[:p], model[p+1:]...)
				if len(model) == 0 {
					model = nil
				}
			}

		case 6: // reserve
			require.NoError(t, v.Reserve(rng.Intn(64)))

		case 7: // shrink
			require.NoError(t, v.ShrinkToFit())

		case 8: // resize
			n := rng.Intn(32)
			require.NoError(t, v.Resize(n))
			for len(model) < n {
				model = append(model, 0)
			}
			model = model[:n]
			if n == 0 {
				model = nil
			}

		case 9: // occasional full clear
			if rng.Intn(10) == 0 {
				v.Clear()
				model = nil
			}
		}
		checkInvariants(step)
	}
}

// nilIfEmpty folds the empty-but-allocated slice into nil so it compares
// equal to an empty model.
func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
