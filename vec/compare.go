package vec

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold equal elements in the same order.
// Sequences of different lengths are unequal.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare orders a and b lexicographically: the first differing position
// decides, a proper prefix is less, and the empty sequence is the minimum.
// The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is Compare with a caller-supplied element ordering.
func CompareFunc[T any](a, b *Vector[T], cmpElem func(x, y T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), cmpElem)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessEqual reports whether a orders before b or equals it.
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

// GreaterEqual reports whether a orders after b or equals it.
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) >= 0
}
