package alloc

import "errors"

var (
	// ErrNoSpace indicates that a block of the requested slot count could not
	// be provided.
	ErrNoSpace = errors.New("alloc: no space for requested block")

	// ErrBadBlock indicates a Deallocate call with a block the allocator did
	// not hand out.
	ErrBadBlock = errors.New("alloc: block was not allocated here")

	// ErrPointerElem indicates an arena was requested for an element type
	// containing Go pointers, which must not live in unscanned memory.
	ErrPointerElem = errors.New("alloc: element type contains Go pointers")

	// ErrClosed indicates use of an arena after Close.
	ErrClosed = errors.New("alloc: arena is closed")
)
