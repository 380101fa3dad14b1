package alloc

import (
	"fmt"
	"math"
	"unsafe"
)

// Heap is the stateless default allocator, delegating to the Go runtime.
// Deallocate is a no-op; released blocks are reclaimed by the garbage
// collector once unreferenced.
type Heap[T any] struct{}

// Allocate obtains a raw block of n slots from the runtime.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative slot count %d", ErrNoSpace, n)
	}
	if n == 0 {
		return nil, nil
	}
	if n > (Heap[T]{}).MaxSlots() {
		return nil, fmt.Errorf("%w: %d slots requested", ErrNoSpace, n)
	}
	return make([]T, n), nil
}

// Deallocate is a no-op; the runtime reclaims unreferenced blocks.
func (Heap[T]) Deallocate([]T) {}

// MaxSlots reports the largest slot count a single block could span.
func (Heap[T]) MaxSlots() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

// Compile-time interface check
var _ Allocator[int] = Heap[int]{}
