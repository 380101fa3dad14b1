package alloc

import (
	"fmt"

	"github.com/joshuapare/veckit/internal/overflow"
)

// Quota wraps another Allocator and enforces a budget on outstanding slots.
// Allocations that would push the outstanding total past the budget fail with
// ErrNoSpace while the inner allocator is left untouched.
//
// Tests use a Quota around Heap to drive allocation-failure paths
// deterministically.
type Quota[T any] struct {
	inner       Allocator[T]
	budget      int
	outstanding int
}

// NewQuota wraps inner with a budget of at most budget outstanding slots.
func NewQuota[T any](inner Allocator[T], budget int) *Quota[T] {
	return &Quota[T]{inner: inner, budget: budget}
}

// Allocate obtains a block from the inner allocator if the budget allows it.
func (q *Quota[T]) Allocate(n int) ([]T, error) {
	if n > 0 {
		total, ok := overflow.Add(q.outstanding, n)
		if !ok || total > q.budget {
			return nil, fmt.Errorf("%w: quota %d, outstanding %d, requested %d",
				ErrNoSpace, q.budget, q.outstanding, n)
		}
	}
	block, err := q.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	q.outstanding += len(block)
	return block, nil
}

// Deallocate returns the block and credits its slots back to the budget.
func (q *Quota[T]) Deallocate(block []T) {
	q.outstanding -= len(block)
	if q.outstanding < 0 {
		q.outstanding = 0
	}
	q.inner.Deallocate(block)
}

// MaxSlots reports the smaller of the budget and the inner bound.
func (q *Quota[T]) MaxSlots() int {
	if inner := q.inner.MaxSlots(); inner < q.budget {
		return inner
	}
	return q.budget
}

// Outstanding returns the number of slots currently allocated and not yet
// returned.
func (q *Quota[T]) Outstanding() int {
	return q.outstanding
}

// Compile-time interface check
var _ Allocator[int] = (*Quota[int])(nil)
