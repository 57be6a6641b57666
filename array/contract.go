package array

import "ringarray/enum"

var (
	_ enum.Enumerable[int]              = Array[int]{}
	_ enum.Counter                      = Array[int]{}
	_ enum.Slicer[int]                  = Array[int]{}
	_ enum.Collectable[int, Array[int]] = Array[int]{}
)

// Next implements enum.Enumerable on top of Shift.
func (a Array[T]) Next() (T, enum.Enumerable[T], bool) {
	v, rest, err := a.Shift()
	if err != nil {
		return v, rest, false
	}
	return v, rest, true
}

// Len implements enum.Counter.
func (a Array[T]) Len() int {
	return a.size
}

// SliceFunc implements enum.Slicer.
func (a Array[T]) SliceFunc() (int, func(offset, length int) []T) {
	return a.size, func(offset, length int) []T {
		return a.Slice(offset, length).ToSlice()
	}
}

// Into implements enum.Collectable: elements are pushed onto a.
func (a Array[T]) Into() (Array[T], enum.Collector[T, Array[T]]) {
	return a, func(acc Array[T], cmd enum.CollectCommand[T]) Array[T] {
		if cmd.Op == enum.CollectAppend {
			return acc.Push(cmd.Value)
		}
		return acc
	}
}
