package alloc

// Allocator supplies and releases raw blocks of slots for elements of type T.
//
// Implementations:
//   - Heap: stateless, backed by the Go runtime (the default)
//   - Arena: bump allocation over an anonymous memory mapping
//   - Quota: budget-enforcing wrapper around another Allocator
//
// Allocators are value types by default; a stateful allocator must outlive
// every container that holds it. Containers never replicate allocator state
// when they are copied.
type Allocator[T any] interface {
	// Allocate obtains a raw block of exactly n slots. The block has
	// len == n; its contents carry no meaning until constructed into.
	// n == 0 yields a nil block and no error. Failure is reported as
	// ErrNoSpace, possibly wrapped with detail.
	Allocate(n int) ([]T, error)

	// Deallocate returns a block obtained from Allocate. Infallible;
	// implementations may treat it as a no-op.
	Deallocate(block []T)

	// MaxSlots reports an upper bound on the slot count of a single
	// allocation. Purely informational.
	MaxSlots() int
}
