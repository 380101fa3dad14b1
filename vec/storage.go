package vec

import (
	"github.com/joshuapare/veckit/internal/overflow"
	"github.com/joshuapare/veckit/vec/alloc"
)

// storage is the raw-block core of a Vector. It owns one contiguous block of
// slots; block[:size] holds live elements, block[size:] is raw. block is nil
// exactly when the capacity is zero.
//
// gen counts region replacements. Cursors carry a copy of it so stale ones
// can be detected after the block address may have changed.
type storage[T any] struct {
	alloc alloc.Allocator[T]
	block []T
	size  int
	gen   uint64
}

// allocator returns the bound allocator, defaulting to the shared heap.
func (s *storage[T]) allocator() alloc.Allocator[T] {
	if s.alloc == nil {
		s.alloc = alloc.Heap[T]{}
	}
	return s.alloc
}

// reallocate replaces the block with one of exactly n slots, relocating the
// first min(size, n) elements and destroying the rest. The new block is
// obtained before anything is touched, so a failed allocation leaves the
// container unchanged. n == 0 returns the container to the all-nil state.
func (s *storage[T]) reallocate(n int) error {
	if n == len(s.block) {
		return nil
	}
	var next []T
	if n > 0 {
		b, err := s.allocator().Allocate(n)
		if err != nil {
			return err
		}
		next = b
	}
	keep := min(s.size, n)
	relocate(next[:keep], s.block[:keep])
	s.destroyRange(keep, s.size)
	if s.block != nil {
		s.allocator().Deallocate(s.block)
	}
	s.block = next
	s.size = keep
	s.gen++
	return nil
}

// constructAt begins the lifetime of a single element in a raw slot.
func (s *storage[T]) constructAt(i int, value T) {
	s.block[i] = value
}

// destroyRange ends the lifetime of block[i:j], last element first. Zeroing
// releases any references held by dead slots and keeps reused arena memory
// clean.
func (s *storage[T]) destroyRange(i, j int) {
	var zero T
	for k := j - 1; k >= i; k-- {
		s.block[k] = zero
	}
}

// release destroys every element and returns the block, leaving the all-nil
// state.
func (s *storage[T]) release() {
	s.destroyRange(0, s.size)
	if s.block != nil {
		s.allocator().Deallocate(s.block)
		s.block = nil
	}
	s.size = 0
	s.gen++
}

// relocate moves live elements from src to dst and ends their lifetime in
// src. Go values are trivially relocatable, so the move is a plain copy;
// clearing src is the destruction half.
func relocate[T any](dst, src []T) {
	copy(dst, src)
	clear(src)
}

// grownCapacity applies the growth policy: double the current capacity,
// seeded with one when it is zero, until need fits. Doubling saturates
// instead of wrapping.
func grownCapacity(current, need int) int {
	c := current
	if c == 0 {
		c = 1
	}
	for c < need {
		c = overflow.Double(c)
	}
	return c
}
