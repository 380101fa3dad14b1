package vec

import (
	"fmt"
	"iter"

	"github.com/joshuapare/veckit/internal/overflow"
)

// PushBack appends one element, doubling the capacity when the block is full.
// On allocation failure the vector is unchanged.
func (v *Vector[T]) PushBack(value T) error {
	s := &v.s
	if s.size == len(s.block) {
		if err := s.reallocate(grownCapacity(len(s.block), s.size+1)); err != nil {
			return err
		}
	}
	s.constructAt(s.size, value)
	s.size++
	return nil
}

// EmplaceBack appends an element built by ctor and returns it. A ctor
// failure propagates unchanged and leaves the length as it was; if growth
// already happened only the capacity differs from the pre-call state.
func (v *Vector[T]) EmplaceBack(ctor Constructor[T]) (*T, error) {
	s := &v.s
	if s.size == len(s.block) {
		if err := s.reallocate(grownCapacity(len(s.block), s.size+1)); err != nil {
			return nil, err
		}
	}
	value, err := ctor()
	if err != nil {
		return nil, err
	}
	s.constructAt(s.size, value)
	s.size++
	return &s.block[s.size-1], nil
}

// PopBack destroys the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	v.s.destroyRange(v.s.size-1, v.s.size)
	v.s.size--
}

// Insert places value before pos and returns a cursor to it. With spare
// capacity this either constructs at the end or shifts the suffix right by
// one; otherwise it takes the reallocating path.
func (v *Vector[T]) Insert(pos Cursor[T], value T) (MutCursor[T], error) {
	p, err := v.checkPos(pos)
	if err != nil {
		return MutCursor[T]{}, err
	}
	s := &v.s
	if s.size < len(s.block) {
		if p == s.size {
			s.constructAt(s.size, value)
		} else {
			// Open one slot: the old back moves into raw storage, the rest
			// shift by assignment, then the gap is overwritten.
			copy(s.block[p+1:s.size+1], s.block[p:s.size])
			s.block[p] = value
		}
		s.size++
		return MutCursor[T]{v.cursorAt(p)}, nil
	}
	if err := v.growInsert(p, 1, func(dst []T) {
		dst[0] = value
	}); err != nil {
		return MutCursor[T]{}, err
	}
	return MutCursor[T]{v.cursorAt(p)}, nil
}

// InsertN places n copies of value before pos and returns a cursor to the
// first one. n == 0 is a no-op.
func (v *Vector[T]) InsertN(pos Cursor[T], n int, value T) (MutCursor[T], error) {
	p, err := v.checkPos(pos)
	if err != nil {
		return MutCursor[T]{}, err
	}
	if n < 0 {
		return MutCursor[T]{}, fmt.Errorf("%w: negative count %d", ErrLength, n)
	}
	if n == 0 {
		return MutCursor[T]{v.cursorAt(p)}, nil
	}
	if err := v.insertSpan(p, n, func(dst []T) {
		for i := range dst {
			dst[i] = value
		}
	}); err != nil {
		return MutCursor[T]{}, err
	}
	return MutCursor[T]{v.cursorAt(p)}, nil
}

// InsertSlice places a copy of elems before pos, in order, and returns a
// cursor to the first inserted element.
func (v *Vector[T]) InsertSlice(pos Cursor[T], elems []T) (MutCursor[T], error) {
	p, err := v.checkPos(pos)
	if err != nil {
		return MutCursor[T]{}, err
	}
	if len(elems) == 0 {
		return MutCursor[T]{v.cursorAt(p)}, nil
	}
	// Snapshot elems; the slice may alias v's own block, whose slots move
	// before the gap is filled.
	tmp := make([]T, len(elems))
	copy(tmp, elems)
	if err := v.insertSpan(p, len(tmp), func(dst []T) {
		copy(dst, tmp)
	}); err != nil {
		return MutCursor[T]{}, err
	}
	return MutCursor[T]{v.cursorAt(p)}, nil
}

// InsertRange places the elements of [first, last) before pos, in order. The
// source pair may range over v itself; the elements are captured before the
// suffix moves.
func (v *Vector[T]) InsertRange(pos Cursor[T], first, last Cursor[T]) (MutCursor[T], error) {
	src, lo, hi, err := checkRange(first, last)
	if err != nil {
		return MutCursor[T]{}, err
	}
	p, err := v.checkPos(pos)
	if err != nil {
		return MutCursor[T]{}, err
	}
	if lo == hi {
		return MutCursor[T]{v.cursorAt(p)}, nil
	}
	// Snapshot the source window; inserting into the source container would
	// otherwise read half-shifted slots.
	elems := make([]T, hi-lo)
	copy(elems, src.s.block[lo:hi])
	if err := v.insertSpan(p, len(elems), func(dst []T) {
		copy(dst, elems)
	}); err != nil {
		return MutCursor[T]{}, err
	}
	return MutCursor[T]{v.cursorAt(p)}, nil
}

// InsertSeq places the elements of seq before pos, in order.
func (v *Vector[T]) InsertSeq(pos Cursor[T], seq iter.Seq[T]) (MutCursor[T], error) {
	var elems []T
	for e := range seq {
		elems = append(elems, e)
	}
	return v.InsertSlice(pos, elems)
}

// Erase destroys the element at pos, shifts the suffix left by one and
// returns a cursor to the element that now occupies the position.
func (v *Vector[T]) Erase(pos Cursor[T]) (MutCursor[T], error) {
	p, err := v.checkPos(pos)
	if err != nil {
		return MutCursor[T]{}, err
	}
	s := &v.s
	if p == s.size {
		return MutCursor[T]{}, fmt.Errorf("%w: erase at end", ErrInvalidCursor)
	}
	copy(s.block[p:s.size-1], s.block[p+1:s.size])
	s.destroyRange(s.size-1, s.size)
	s.size--
	return MutCursor[T]{v.cursorAt(p)}, nil
}

// insertSpan opens a gap of n slots at p and fills it via fill. It picks the
// in-place path when the new size fits and the reallocating path otherwise.
func (v *Vector[T]) insertSpan(p, n int, fill func(dst []T)) error {
	s := &v.s
	newSize, ok := overflow.Add(s.size, n)
	if !ok {
		return fmt.Errorf("%w: size %d + %d overflows", ErrLength, s.size, n)
	}
	if newSize > len(s.block) {
		return v.growInsert(p, n, fill)
	}
	// Shift the suffix right. copy handles the overlap like memmove; targets
	// past the old end are raw slots receiving their first value.
	copy(s.block[p+n:newSize], s.block[p:s.size])
	fill(s.block[p : p+n])
	s.size = newSize
	return nil
}

// growInsert is the reallocating insert path: allocate a block sized by the
// growth policy, relocate the prefix, fill the gap, relocate the suffix, then
// retire the old block. A failed allocation leaves the container unchanged.
func (v *Vector[T]) growInsert(p, n int, fill func(dst []T)) error {
	s := &v.s
	newSize, ok := overflow.Add(s.size, n)
	if !ok {
		return fmt.Errorf("%w: size %d + %d overflows", ErrLength, s.size, n)
	}
	next, err := s.allocator().Allocate(grownCapacity(len(s.block), newSize))
	if err != nil {
		return err
	}
	relocate(next[:p], s.block[:p])
	fill(next[p : p+n])
	relocate(next[p+n:newSize], s.block[p:s.size])
	if s.block != nil {
		s.allocator().Deallocate(s.block)
	}
	s.block = next
	s.size = newSize
	s.gen++
	return nil
}
