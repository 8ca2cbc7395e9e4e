package vector

import "cmp"

// Equality and ordering are package functions in the manner of the
// standard slices package, so that Vector's element type itself stays
// unconstrained.

// Equal reports whether a and b hold the same sequence of elements.
// Two vectors backed by the same block are equal without any element
// comparison; representation is otherwise not observable.
func Equal[T comparable](a, b Vector[T]) bool {
	if a.tag == repShared && b.tag == repShared && a.big.blk == b.big.blk {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.at(i) != b.at(i) {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality, for
// element types that are not comparable.
func EqualFunc[T, U any](a Vector[T], b Vector[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.at(i), b.at(i)) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically over their logical element
// sequences: the result is negative if a sorts before b, zero if the
// sequences are equal, positive if a sorts after b. A prefix sorts
// before any of its extensions.
func Compare[T cmp.Ordered](a, b Vector[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied element ordering.
func CompareFunc[T, U any](a Vector[T], b Vector[U], compare func(T, U) int) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := compare(a.at(i), b.at(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}
