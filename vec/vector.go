package vec

import (
	"fmt"
	"iter"

	"github.com/joshuapare/veckit/vec/alloc"
)

// Vector is a contiguous dynamic sequence of elements of type T.
//
// The zero value is an empty vector on the shared heap allocator. Vectors
// must not be copied by assignment once in use; use Clone, CopyFrom, Take or
// Swap instead.
type Vector[T any] struct {
	s storage[T]
}

// Constructor builds one element, reporting failure instead of a value.
// It is the fallible counterpart of plain element assignment.
type Constructor[T any] func() (T, error)

// New returns an empty vector on the shared heap allocator.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewIn returns an empty vector allocating from a. A nil a selects the heap.
func NewIn[T any](a alloc.Allocator[T]) *Vector[T] {
	return &Vector[T]{s: storage[T]{alloc: a}}
}

// NewSize returns a vector of n zero-valued elements with capacity exactly n.
func NewSize[T any](n int) (*Vector[T], error) {
	return NewSizeIn[T](nil, n)
}

// NewSizeIn is NewSize on a specific allocator.
func NewSizeIn[T any](a alloc.Allocator[T], n int) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrLength, n)
	}
	v := NewIn(a)
	if n == 0 {
		return v, nil
	}
	if err := v.s.reallocate(n); err != nil {
		return nil, err
	}
	// Default-construct every slot; allocators are not required to hand out
	// zeroed blocks.
	clear(v.s.block)
	v.s.size = n
	return v, nil
}

// NewFill returns a vector of n copies of value with capacity exactly n.
func NewFill[T any](n int, value T) (*Vector[T], error) {
	return NewFillIn(nil, n, value)
}

// NewFillIn is NewFill on a specific allocator.
func NewFillIn[T any](a alloc.Allocator[T], n int, value T) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrLength, n)
	}
	v := NewIn(a)
	if n == 0 {
		return v, nil
	}
	if err := v.s.reallocate(n); err != nil {
		return nil, err
	}
	for i := range n {
		v.s.constructAt(i, value)
	}
	v.s.size = n
	return v, nil
}

// NewGenerate returns a vector of n elements built by ctor, with capacity
// exactly n. If ctor fails, every element built so far is destroyed in
// reverse order and the block is returned before the error propagates.
func NewGenerate[T any](n int, ctor Constructor[T]) (*Vector[T], error) {
	return NewGenerateIn(nil, n, ctor)
}

// NewGenerateIn is NewGenerate on a specific allocator.
func NewGenerateIn[T any](a alloc.Allocator[T], n int, ctor Constructor[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrLength, n)
	}
	v := NewIn(a)
	if n == 0 {
		return v, nil
	}
	if err := v.s.reallocate(n); err != nil {
		return nil, err
	}
	for i := range n {
		value, err := ctor()
		if err != nil {
			v.s.release()
			return nil, err
		}
		v.s.constructAt(i, value)
		v.s.size = i + 1
	}
	return v, nil
}

// NewFromSeq returns a vector holding the elements of seq in order, appended
// one by one under the growth policy.
func NewFromSeq[T any](seq iter.Seq[T]) (*Vector[T], error) {
	return NewFromSeqIn(nil, seq)
}

// NewFromSeqIn is NewFromSeq on a specific allocator.
func NewFromSeqIn[T any](a alloc.Allocator[T], seq iter.Seq[T]) (*Vector[T], error) {
	v := NewIn(a)
	for e := range seq {
		if err := v.PushBack(e); err != nil {
			v.s.release()
			return nil, err
		}
	}
	return v, nil
}

// NewFromSlice returns a vector holding a copy of elems, appended in order.
func NewFromSlice[T any](elems []T) (*Vector[T], error) {
	return NewFromSliceIn(nil, elems)
}

// NewFromSliceIn is NewFromSlice on a specific allocator.
func NewFromSliceIn[T any](a alloc.Allocator[T], elems []T) (*Vector[T], error) {
	v := NewIn(a)
	for _, e := range elems {
		if err := v.PushBack(e); err != nil {
			v.s.release()
			return nil, err
		}
	}
	return v, nil
}

// NewFromRange returns a vector holding the elements of [first, last) in
// order. The cursors must be a valid ordered pair over one container.
func NewFromRange[T any](first, last Cursor[T]) (*Vector[T], error) {
	src, lo, hi, err := checkRange(first, last)
	if err != nil {
		return nil, err
	}
	v := NewIn(src.s.alloc)
	for i := lo; i < hi; i++ {
		if err := v.PushBack(src.s.block[i]); err != nil {
			v.s.release()
			return nil, err
		}
	}
	return v, nil
}

// Clone returns an independent copy of v on the same allocator value. The
// copy's capacity equals v.Len(), not v.Cap().
func (v *Vector[T]) Clone() (*Vector[T], error) {
	w := NewIn(v.s.alloc)
	n := v.s.size
	if n == 0 {
		return w, nil
	}
	if err := w.s.reallocate(n); err != nil {
		return nil, err
	}
	for i := range n {
		w.s.constructAt(i, v.s.block[i])
	}
	w.s.size = n
	return w, nil
}

// CopyFrom replaces v's contents with a copy of o. On failure v is untouched.
func (v *Vector[T]) CopyFrom(o *Vector[T]) error {
	tmp, err := o.Clone()
	if err != nil {
		return err
	}
	v.Swap(tmp)
	tmp.s.release()
	return nil
}

// Take moves o's region into v; o is left empty with no capacity. v adopts
// o's allocator so the region is released where it was allocated.
func (v *Vector[T]) Take(o *Vector[T]) {
	if v == o {
		return
	}
	v.s.release()
	v.s.alloc = o.s.alloc
	v.s.block, o.s.block = o.s.block, nil
	v.s.size, o.s.size = o.s.size, 0
	o.s.gen++
}

// Assign replaces the contents with n copies of value. When n exceeds the
// capacity the whole region is replaced; otherwise the elements are rebuilt
// in place and the capacity is unchanged.
func (v *Vector[T]) Assign(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrLength, n)
	}
	if n > v.Cap() {
		tmp, err := NewFillIn(v.s.alloc, n, value)
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.s.release()
		return nil
	}
	v.s.destroyRange(0, v.s.size)
	for i := range n {
		v.s.constructAt(i, value)
	}
	v.s.size = n
	return nil
}

// At returns the element at index i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.s.size {
		return nil, fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, v.s.size)
	}
	return &v.s.block[i], nil
}

// Ref returns the element at index i without bounds checking against Len.
// i < Len is the caller's precondition.
func (v *Vector[T]) Ref(i int) *T {
	return &v.s.block[i]
}

// Get returns the value at index i. i < Len is the caller's precondition.
func (v *Vector[T]) Get(i int) T {
	return v.s.block[i]
}

// Set overwrites the element at index i. i < Len is the caller's precondition.
func (v *Vector[T]) Set(i int, value T) {
	v.s.block[i] = value
}

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() *T {
	return &v.s.block[0]
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() *T {
	return &v.s.block[v.s.size-1]
}

// Data returns the live prefix of the block. It is nil exactly when the
// capacity is zero.
func (v *Vector[T]) Data() []T {
	if v.s.block == nil {
		return nil
	}
	return v.s.block[:v.s.size]
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.s.size == 0
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.s.size
}

// Cap returns the number of slots in the owned block.
func (v *Vector[T]) Cap() int {
	return len(v.s.block)
}

// MaxLen returns the allocator's informational upper bound on length.
func (v *Vector[T]) MaxLen() int {
	return v.s.allocator().MaxSlots()
}

// Reserve grows the capacity to exactly n. It is a no-op when n does not
// exceed the current capacity and fails with ErrLength beyond MaxLen.
// Len and element values are unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n > v.MaxLen() {
		return fmt.Errorf("%w: reserve %d, max %d", ErrLength, n, v.MaxLen())
	}
	if n <= v.Cap() {
		return nil
	}
	return v.s.reallocate(n)
}

// ShrinkToFit reallocates to capacity == Len when there is excess capacity.
func (v *Vector[T]) ShrinkToFit() error {
	if v.Cap() > v.s.size {
		return v.s.reallocate(v.s.size)
	}
	return nil
}

// Resize changes Len to n, zero-constructing new tail elements. The block is
// resized to exactly n slots whenever the size changes, so Cap == n
// afterwards; growth reallocates first and constructs into the final block.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrLength, n)
	}
	switch {
	case n > v.s.size:
		if err := v.s.reallocate(n); err != nil {
			return err
		}
		clear(v.s.block[v.s.size:n])
		v.s.size = n
	case n < v.s.size:
		v.s.destroyRange(n, v.s.size)
		v.s.size = n
		if err := v.s.reallocate(n); err != nil {
			return err
		}
	}
	return nil
}

// ResizeWith changes Len to n. Growth appends copies of value through the
// insert path, so the growth policy decides the new capacity; shrinking
// destroys the whole tail and leaves the capacity unchanged.
func (v *Vector[T]) ResizeWith(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrLength, n)
	}
	switch {
	case n > v.s.size:
		_, err := v.InsertN(v.CEnd(), n-v.s.size, value)
		return err
	case n < v.s.size:
		v.s.destroyRange(n, v.s.size)
		v.s.size = n
	}
	return nil
}

// Clear destroys every element and releases the block, returning to the
// zero-capacity state.
func (v *Vector[T]) Clear() {
	v.s.release()
}

// Swap exchanges the contents, capacity and allocator of v and o. It never
// fails and never allocates. Cursors of both containers are invalidated.
func (v *Vector[T]) Swap(o *Vector[T]) {
	if v == o {
		return
	}
	// The generation counters stay with their containers; exchanging them
	// could land a container back on a value a live cursor still carries.
	v.s.alloc, o.s.alloc = o.s.alloc, v.s.alloc
	v.s.block, o.s.block = o.s.block, v.s.block
	v.s.size, o.s.size = o.s.size, v.s.size
	v.s.gen++
	o.s.gen++
}

// Values yields the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.s.size; i++ {
			if !yield(v.s.block[i]) {
				return
			}
		}
	}
}

// Backward yields the elements in reverse order.
func (v *Vector[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.s.size - 1; i >= 0; i-- {
			if !yield(v.s.block[i]) {
				return
			}
		}
	}
}
