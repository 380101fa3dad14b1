// Package vec implements a generic, contiguous, growable sequence container
// with explicit capacity management and random-access cursors.
//
// # Overview
//
// A Vector[T] owns one contiguous block of slots obtained from an
// alloc.Allocator. A prefix of the block holds live elements; the remaining
// slots are raw. Three quantities describe the layout:
//
//   - Len: number of live elements (the prefix)
//   - Cap: number of slots in the block
//   - Data: the live prefix as a slice, nil exactly when Cap is zero
//
// The zero value is an empty vector on the shared heap allocator. NewIn and
// the *In constructors bind a vector to a specific allocator, such as an
// alloc.Arena.
//
// # Growth
//
// Appends and inserts that run out of room double the capacity, starting from
// one, until the new size fits. Reserve, ShrinkToFit and Resize use the exact
// requested capacity instead. Amortized PushBack is O(1).
//
// # Cursors
//
// Cursors are position indicators of the form (container, index, generation).
// Cursor is the read-only flavor; MutCursor embeds it and adds Ref and Set,
// so a mutable cursor is usable anywhere a read-only one is. RevCursor and
// MutRevCursor traverse backwards: a reverse cursor at position k from the
// back corresponds to the forward position Len-k and dereferences the element
// just before it.
//
// # Invalidation
//
// The generation stamp changes whenever the block address may change: growth
// reallocations, growing Reserve, ShrinkToFit, capacity-changing Resize,
// Clear, Take, CopyFrom, growing Assign, and Swap. A cursor whose stamp no
// longer matches, or that belongs to another container, is rejected by
// Insert, Erase and NewFromRange with ErrInvalidCursor. In-place inserts and
// Erase do not change the stamp: cursors before the mutation point keep their
// meaning, cursors at or after it observe shifted contents.
//
// # Concurrency
//
// A Vector is a single-owner value. Multiple readers are safe only while no
// writer exists; the container performs no locking.
package vec
