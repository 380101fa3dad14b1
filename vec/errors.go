package vec

import "errors"

var (
	// ErrOutOfRange indicates an At call with an index outside [0, Len).
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrLength indicates a requested length or capacity beyond what the
	// allocator can represent.
	ErrLength = errors.New("vec: length exceeds limit")

	// ErrInvalidCursor indicates a cursor that is stale, belongs to another
	// container, or lies outside the operation's admissible window.
	ErrInvalidCursor = errors.New("vec: invalid cursor")
)
