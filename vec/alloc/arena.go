package alloc

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/veckit/internal/mmregion"
	"github.com/joshuapare/veckit/internal/overflow"
)

// Arena is a bump-pointer allocator handing out blocks from one anonymous
// memory mapping. Allocation is O(1); Deallocate is a no-op and blocks become
// dead space until Reset or Close reclaims the whole region at once.
//
// The mapped pages are invisible to the garbage collector, so the element
// type must not contain Go pointers; NewArena rejects pointerful types with
// ErrPointerElem.
//
// An Arena is stateful: it must outlive every container allocating from it,
// and Reset invalidates every block previously handed out.
type Arena[T any] struct {
	region  []byte
	cleanup func() error
	off     int

	elemSize  int
	elemAlign int
}

// NewArena maps an anonymous region of capacity bytes and returns an arena
// allocating slots of T from it.
func NewArena[T any](capacity int) (*Arena[T], error) {
	var zero T
	if typeHasPointers(reflect.TypeOf(&zero).Elem()) {
		return nil, fmt.Errorf("%w: %T", ErrPointerElem, zero)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrNoSpace, capacity)
	}
	region, cleanup, err := mmregion.Map(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSpace, err)
	}
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))
	if align == 0 {
		align = 1
	}
	return &Arena[T]{
		region:    region,
		cleanup:   cleanup,
		elemSize:  size,
		elemAlign: align,
	}, nil
}

// Allocate bumps the arena pointer and returns a block of n slots.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if a.region == nil && a.cleanup == nil {
		return nil, ErrClosed
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative slot count %d", ErrNoSpace, n)
	}
	if n == 0 {
		return nil, nil
	}
	need, ok := overflow.Mul(n, a.elemSize)
	if !ok {
		return nil, fmt.Errorf("%w: %d slots overflow byte size", ErrNoSpace, n)
	}
	// Align the bump pointer for T. The mapping base is page-aligned, so
	// aligning the offset aligns the block.
	start := a.off
	if rem := start % a.elemAlign; rem != 0 {
		start += a.elemAlign - rem
	}
	end, ok := overflow.Add(start, need)
	if !ok || end > len(a.region) {
		return nil, fmt.Errorf("%w: %d slots requested, %d bytes free",
			ErrNoSpace, n, len(a.region)-a.off)
	}
	a.off = end
	if a.elemSize == 0 {
		return make([]T, n), nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&a.region[start])), n), nil
}

// Deallocate is a no-op; bump storage is reclaimed wholesale by Reset or Close.
func (a *Arena[T]) Deallocate([]T) {}

// MaxSlots reports how many slots the whole region could hold.
func (a *Arena[T]) MaxSlots() int {
	if a.elemSize == 0 {
		return int(^uint(0) >> 1)
	}
	return len(a.region) / a.elemSize
}

// Len returns the number of bytes currently allocated from the arena.
func (a *Arena[T]) Len() int {
	return a.off
}

// Cap returns the total byte capacity of the arena.
func (a *Arena[T]) Cap() int {
	return len(a.region)
}

// Reset reclaims all blocks at once. Every block previously returned by
// Allocate becomes immediately invalid.
func (a *Arena[T]) Reset() {
	clear(a.region[:a.off])
	a.off = 0
}

// Close releases the mapping. The arena must not be used afterwards.
func (a *Arena[T]) Close() error {
	if a.cleanup == nil {
		return nil
	}
	cleanup := a.cleanup
	a.cleanup = nil
	a.region = nil
	a.off = 0
	return cleanup()
}

// typeHasPointers reports whether values of t contain Go pointers the
// collector would need to scan.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, strings, chans, funcs, interfaces.
		return true
	}
}

// Compile-time interface check
var _ Allocator[int] = (*Arena[int])(nil)
