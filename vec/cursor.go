package vec

import "fmt"

// Cursor is a read-only random-access position over one vector's storage.
// It is a small value: (container, index, generation stamp). See the package
// documentation for the invalidation model.
type Cursor[T any] struct {
	vec *Vector[T]
	idx int
	gen uint64
}

// Value returns the element at the cursor. The cursor must address a live
// element.
func (c Cursor[T]) Value() T {
	return c.vec.s.block[c.idx]
}

// Index returns the cursor's offset from the start of the container.
func (c Cursor[T]) Index() int {
	return c.idx
}

// Next returns the cursor advanced by one position.
func (c Cursor[T]) Next() Cursor[T] {
	c.idx++
	return c
}

// Prev returns the cursor moved back by one position.
func (c Cursor[T]) Prev() Cursor[T] {
	c.idx--
	return c
}

// Add returns the cursor advanced by n positions.
func (c Cursor[T]) Add(n int) Cursor[T] {
	c.idx += n
	return c
}

// Sub returns the cursor moved back by n positions.
func (c Cursor[T]) Sub(n int) Cursor[T] {
	c.idx -= n
	return c
}

// Distance returns the signed number of positions from o to c. Only
// meaningful for cursors of the same container.
func (c Cursor[T]) Distance(o Cursor[T]) int {
	return c.idx - o.idx
}

// Equal reports whether both cursors address the same position of the same
// container.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.vec == o.vec && c.idx == o.idx
}

// Less reports whether c precedes o within the same container.
func (c Cursor[T]) Less(o Cursor[T]) bool {
	return c.vec == o.vec && c.idx < o.idx
}

// Valid reports whether the cursor is fresh and addresses a live element.
func (c Cursor[T]) Valid() bool {
	return c.vec != nil && c.gen == c.vec.s.gen && c.idx >= 0 && c.idx < c.vec.s.size
}

// MutCursor is the mutable cursor flavor. It embeds Cursor, so it is usable
// anywhere a read-only cursor is expected.
type MutCursor[T any] struct {
	Cursor[T]
}

// Ref returns the addressed element for in-place modification.
func (c MutCursor[T]) Ref() *T {
	return &c.vec.s.block[c.idx]
}

// Set overwrites the addressed element.
func (c MutCursor[T]) Set(value T) {
	c.vec.s.block[c.idx] = value
}

// Next returns the cursor advanced by one position.
func (c MutCursor[T]) Next() MutCursor[T] {
	c.Cursor = c.Cursor.Next()
	return c
}

// Prev returns the cursor moved back by one position.
func (c MutCursor[T]) Prev() MutCursor[T] {
	c.Cursor = c.Cursor.Prev()
	return c
}

// Add returns the cursor advanced by n positions.
func (c MutCursor[T]) Add(n int) MutCursor[T] {
	c.Cursor = c.Cursor.Add(n)
	return c
}

// Sub returns the cursor moved back by n positions.
func (c MutCursor[T]) Sub(n int) MutCursor[T] {
	c.Cursor = c.Cursor.Sub(n)
	return c
}

// RevCursor is a read-only reverse cursor. A reverse cursor at position k
// from the back holds the forward position Len-k and dereferences the
// element just before it.
type RevCursor[T any] struct {
	fwd Cursor[T]
}

// Value returns the element at the reverse cursor.
func (c RevCursor[T]) Value() T {
	return c.fwd.vec.s.block[c.fwd.idx-1]
}

// Forward returns the underlying forward cursor (one past the addressed
// element).
func (c RevCursor[T]) Forward() Cursor[T] {
	return c.fwd
}

// Next returns the cursor advanced by one position towards the front.
func (c RevCursor[T]) Next() RevCursor[T] {
	c.fwd.idx--
	return c
}

// Prev returns the cursor moved back by one position towards the back.
func (c RevCursor[T]) Prev() RevCursor[T] {
	c.fwd.idx++
	return c
}

// Add returns the cursor advanced by n positions.
func (c RevCursor[T]) Add(n int) RevCursor[T] {
	c.fwd.idx -= n
	return c
}

// Sub returns the cursor moved back by n positions.
func (c RevCursor[T]) Sub(n int) RevCursor[T] {
	c.fwd.idx += n
	return c
}

// Distance returns the signed number of reverse positions from o to c.
func (c RevCursor[T]) Distance(o RevCursor[T]) int {
	return o.fwd.idx - c.fwd.idx
}

// Equal reports whether both cursors address the same position of the same
// container.
func (c RevCursor[T]) Equal(o RevCursor[T]) bool {
	return c.fwd.Equal(o.fwd)
}

// Less reports whether c precedes o in reverse order.
func (c RevCursor[T]) Less(o RevCursor[T]) bool {
	return c.fwd.vec == o.fwd.vec && c.fwd.idx > o.fwd.idx
}

// Valid reports whether the cursor is fresh and addresses a live element.
func (c RevCursor[T]) Valid() bool {
	f := c.fwd
	return f.vec != nil && f.gen == f.vec.s.gen && f.idx >= 1 && f.idx <= f.vec.s.size
}

// MutRevCursor is the mutable reverse cursor flavor.
type MutRevCursor[T any] struct {
	RevCursor[T]
}

// Ref returns the addressed element for in-place modification.
func (c MutRevCursor[T]) Ref() *T {
	return &c.fwd.vec.s.block[c.fwd.idx-1]
}

// Set overwrites the addressed element.
func (c MutRevCursor[T]) Set(value T) {
	c.fwd.vec.s.block[c.fwd.idx-1] = value
}

// Next returns the cursor advanced by one position towards the front.
func (c MutRevCursor[T]) Next() MutRevCursor[T] {
	c.RevCursor = c.RevCursor.Next()
	return c
}

// Prev returns the cursor moved back by one position towards the back.
func (c MutRevCursor[T]) Prev() MutRevCursor[T] {
	c.RevCursor = c.RevCursor.Prev()
	return c
}

// Add returns the cursor advanced by n positions.
func (c MutRevCursor[T]) Add(n int) MutRevCursor[T] {
	c.RevCursor = c.RevCursor.Add(n)
	return c
}

// Sub returns the cursor moved back by n positions.
func (c MutRevCursor[T]) Sub(n int) MutRevCursor[T] {
	c.RevCursor = c.RevCursor.Sub(n)
	return c
}

// cursorAt stamps a cursor for position i with the current generation.
func (v *Vector[T]) cursorAt(i int) Cursor[T] {
	return Cursor[T]{vec: v, idx: i, gen: v.s.gen}
}

// Begin returns a mutable cursor at the first element.
func (v *Vector[T]) Begin() MutCursor[T] {
	return MutCursor[T]{v.cursorAt(0)}
}

// End returns a mutable cursor one past the last element.
func (v *Vector[T]) End() MutCursor[T] {
	return MutCursor[T]{v.cursorAt(v.s.size)}
}

// CBegin returns a read-only cursor at the first element.
func (v *Vector[T]) CBegin() Cursor[T] {
	return v.cursorAt(0)
}

// CEnd returns a read-only cursor one past the last element.
func (v *Vector[T]) CEnd() Cursor[T] {
	return v.cursorAt(v.s.size)
}

// CursorAt returns a read-only cursor at offset i in [0, Len].
func (v *Vector[T]) CursorAt(i int) Cursor[T] {
	return v.cursorAt(i)
}

// RBegin returns a mutable reverse cursor at the last element.
func (v *Vector[T]) RBegin() MutRevCursor[T] {
	return MutRevCursor[T]{RevCursor[T]{fwd: v.cursorAt(v.s.size)}}
}

// REnd returns a mutable reverse cursor one before the first element.
func (v *Vector[T]) REnd() MutRevCursor[T] {
	return MutRevCursor[T]{RevCursor[T]{fwd: v.cursorAt(0)}}
}

// CRBegin returns a read-only reverse cursor at the last element.
func (v *Vector[T]) CRBegin() RevCursor[T] {
	return RevCursor[T]{fwd: v.cursorAt(v.s.size)}
}

// CREnd returns a read-only reverse cursor one before the first element.
func (v *Vector[T]) CREnd() RevCursor[T] {
	return RevCursor[T]{fwd: v.cursorAt(0)}
}

// checkPos validates an insertion position over v: the cursor must belong to
// v, carry the current generation, and lie in [0, Len].
func (v *Vector[T]) checkPos(pos Cursor[T]) (int, error) {
	if pos.vec != v {
		return 0, fmt.Errorf("%w: cursor of another container", ErrInvalidCursor)
	}
	if pos.gen != v.s.gen {
		return 0, fmt.Errorf("%w: stale cursor (generation %d, container %d)",
			ErrInvalidCursor, pos.gen, v.s.gen)
	}
	if pos.idx < 0 || pos.idx > v.s.size {
		return 0, fmt.Errorf("%w: position %d, len %d", ErrInvalidCursor, pos.idx, v.s.size)
	}
	return pos.idx, nil
}

// checkRange validates an ordered cursor pair over a single container and
// returns the container and the index window.
func checkRange[T any](first, last Cursor[T]) (*Vector[T], int, int, error) {
	if first.vec == nil || first.vec != last.vec {
		return nil, 0, 0, fmt.Errorf("%w: range cursors of different containers", ErrInvalidCursor)
	}
	src := first.vec
	if first.gen != src.s.gen || last.gen != src.s.gen {
		return nil, 0, 0, fmt.Errorf("%w: stale range cursor", ErrInvalidCursor)
	}
	if first.idx < 0 || first.idx > last.idx || last.idx > src.s.size {
		return nil, 0, 0, fmt.Errorf("%w: range [%d, %d), len %d",
			ErrInvalidCursor, first.idx, last.idx, src.s.size)
	}
	return src, first.idx, last.idx, nil
}
