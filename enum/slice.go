package enum

import (
	"iter"
	"slices"
)

type sliceEnum[T any] []T

// FromSlice makes s enumerable. s is not copied and must not be modified
// while the result is in use.
func FromSlice[T any](s []T) Enumerable[T] {
	return sliceEnum[T](s)
}

// FromSeq collects a finite iterator so it can be traversed, suspended and
// resumed like any other enumerable.
func FromSeq[T any](seq iter.Seq[T]) Enumerable[T] {
	return sliceEnum[T](slices.Collect(seq))
}

func (s sliceEnum[T]) Next() (T, Enumerable[T], bool) {
	if len(s) == 0 {
		var zero T
		return zero, s, false
	}
	return s[0], s[1:], true
}

func (s sliceEnum[T]) Len() int {
	return len(s)
}

func (s sliceEnum[T]) SliceFunc() (int, func(offset, length int) []T) {
	return len(s), func(offset, length int) []T {
		return slices.Clone(s[offset : offset+length])
	}
}
