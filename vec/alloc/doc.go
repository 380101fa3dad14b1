// Package alloc provides raw slot-block allocation for vec containers.
//
// # Overview
//
// A vec.Vector never calls make for element storage itself; it asks an
// Allocator for raw blocks sized in slots of the element type and returns
// them when it reallocates or clears. This keeps the storage strategy
// pluggable without the container knowing where slots live.
//
// # Allocator Interface
//
// The core abstraction is the generic Allocator interface:
//
//   - Allocate(n): Obtain a raw block of exactly n slots
//   - Deallocate(block): Return a previously allocated block
//   - MaxSlots(): Informational upper bound on a single allocation
//
// A raw block is a full-length []T whose slots are addressable but carry no
// meaning until the container constructs elements into them.
//
// # Implementations
//
// Heap: stateless default backed by the Go runtime
//
//   - Allocate is make([]T, n), Deallocate is a no-op
//   - MaxSlots derives from the element size
//
// Arena: bump allocator over an anonymous memory mapping
//
//   - O(1) allocation, Deallocate is a no-op, Close releases everything
//   - Restricted to element types without Go pointers; the garbage
//     collector does not scan mapped pages
//   - Reset reclaims all blocks at once for reuse
//
// Quota: wrapper that enforces a slot budget
//
//   - Fails allocations that would exceed the budget with ErrNoSpace
//   - Used by tests to drive allocation-failure paths deterministically
package alloc
