// Package ordered provides convenience wrappers around wikisort for the
// common case where the element type has a natural "<" ordering (numbers,
// strings) and callers would rather not write a three-way comparator by
// hand.
package ordered

import (
	"cmp"

	"github.com/shibukawa/wikisort"
)

func compare[T cmp.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sort sorts a in place using the natural ordering of T.
func Sort[T cmp.Ordered](a []T) {
	wikisort.Sort(a, compare[T])
}

// BinarySearch returns the first index i in sorted such that sorted[i] >=
// item, or len(sorted) if no such index exists. sorted must already be
// sorted in ascending order.
func BinarySearch[T cmp.Ordered](sorted []T, item T) int {
	i, j := 0, len(sorted)
	for i < j {
		h := int(uint(i+j) >> 1)
		if sorted[h] < item {
			i = h + 1
		} else {
			j = h
		}
	}
	return i
}

// IndexOf returns the index of item in sorted, or -1 if it isn't present.
func IndexOf[T cmp.Ordered](sorted []T, item T) int {
	i := BinarySearch(sorted, item)
	if i < len(sorted) && sorted[i] == item {
		return i
	}
	return -1
}

// Contains reports whether item is present in sorted.
func Contains[T cmp.Ordered](sorted []T, item T) bool {
	return IndexOf(sorted, item) != -1
}

// Insert inserts item into sorted at the position that keeps it sorted,
// returning the resulting slice.
func Insert[T cmp.Ordered](sorted []T, item T) []T {
	i := BinarySearch(sorted, item)
	sorted = append(sorted, item)
	copy(sorted[i+1:], sorted[i:len(sorted)-1])
	sorted[i] = item
	return sorted
}

// Remove removes the first occurrence of item from sorted, returning the
// resulting slice unchanged if item isn't present.
func Remove[T cmp.Ordered](sorted []T, item T) []T {
	i := IndexOf(sorted, item)
	if i == -1 {
		return sorted
	}
	return append(sorted[:i], sorted[i+1:]...)
}
