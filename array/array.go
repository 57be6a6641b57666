package array

import (
	"fmt"
	"iter"
	"sync/atomic"

	"ringarray/enum"
)

// DefaultCapacity is the slot count of an Array created without an explicit capacity.
const DefaultCapacity = 8

var (
	ErrEmpty            = fmt.Errorf("array is empty")
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
)

// store is the fixed-capacity backing buffer shared by Array values.
// Each slot is written at most once: written is the absolute position of the
// next in-place append and only the value whose end sits exactly there may
// claim it.
type store[T any] struct {
	slots   []T
	written atomic.Int64
}

func (s *store[T]) claim(tail int) bool {
	return tail < len(s.slots) && s.written.CompareAndSwap(int64(tail), int64(tail+1))
}

// Array is an immutable sequence backed by a circular buffer.
// The zero value is an empty Array ready to use.
type Array[T any] struct {
	buf   *store[T]
	start int // physical slot of the first element
	size  int // number of elements
	tail  int // absolute append position of this value within buf
}

// New returns an empty Array with DefaultCapacity slots.
func New[T any]() Array[T] {
	return WithCapacity[T](DefaultCapacity)
}

// WithCapacity returns an empty Array with the given number of slots.
// A non-positive capacity falls back to DefaultCapacity.
func WithCapacity[T any](capacity int) Array[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return Array[T]{buf: &store[T]{slots: make([]T, capacity)}}
}

// From returns an Array holding values in order.
func From[T any](values ...T) Array[T] {
	return enum.Into[T, Array[T]](enum.FromSlice(values), New[T]())
}

// FromEnum returns an Array holding the elements of e in order.
func FromEnum[T any](e enum.Enumerable[T]) Array[T] {
	return enum.Into[T, Array[T]](e, New[T]())
}

// Collect returns an Array holding the elements of seq in order.
func Collect[T any](seq iter.Seq[T]) Array[T] {
	return enum.IntoSeq[T, Array[T]](seq, New[T]())
}

// position maps a logical offset, possibly negative or past the end, onto a physical slot.
func (a Array[T]) position(offset int) int {
	c := a.Cap()
	if c == 0 {
		return 0
	}
	return ((a.start+offset)%c + c) % c
}

func (a Array[T]) Size() int {
	return a.size
}

// Cap returns the number of slots in the backing buffer.
func (a Array[T]) Cap() int {
	if a.buf == nil {
		return 0
	}
	return len(a.buf.slots)
}

func (a Array[T]) IsEmpty() bool {
	return a.size == 0
}

// Get returns the element at logical index i.
func (a Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return a.buf.slots[a.position(i)], nil
}

// Push returns a new Array with value appended.
// A full Array is first rebuilt into a buffer of twice the capacity.
func (a Array[T]) Push(value T) Array[T] {
	if a.buf == nil {
		a = New[T]()
	}
	if a.size == a.Cap() {
		a = a.rebuild(2 * a.Cap())
	}
	if !a.buf.claim(a.tail) {
		// the next slot is visible to another value, or the buffer was
		// already written up to its end
		a = a.rebuild(a.compactCap())
		// a rebuilt buffer is private to a and holds fewer than cap elements
		if !a.buf.claim(a.tail) {
			panic("array: rebuilt buffer rejected append")
		}
	}
	a.buf.slots[a.position(a.size)] = value
	a.size++
	a.tail++
	return a
}

// compactCap keeps at least size free slots after a rebuild so the copy is
// paid back by the appends that follow.
func (a Array[T]) compactCap() int {
	if 2*a.size >= a.Cap() {
		return 2 * a.Cap()
	}
	return a.Cap()
}

// rebuild replays the live elements into a fresh, zero-offset buffer.
func (a Array[T]) rebuild(capacity int) Array[T] {
	out := WithCapacity[T](capacity)
	for i := range a.size {
		out = out.Push(a.buf.slots[a.position(i)])
	}
	return out
}

// Shift removes the first element and returns it together with the rest.
// It returns ErrEmpty, and the receiver unchanged, when there is nothing to remove.
func (a Array[T]) Shift() (value T, rest Array[T], err error) {
	if a.size == 0 {
		return value, a, ErrEmpty
	}
	// the slot is left as is, other values may still see it
	value = a.buf.slots[a.start]
	a.start = a.position(1)
	a.size--
	return value, a, nil
}

// Slice returns a view of up to length elements starting at offset. The
// backing buffer is shared, not copied.
// Negative arguments are treated as 0; an offset past the end yields an empty Array.
func (a Array[T]) Slice(offset, length int) Array[T] {
	if a.buf == nil {
		return a
	}
	offset = min(max(offset, 0), a.size)
	n := min(max(length, 0), a.size-offset)

	a.tail = a.tail - a.size + offset + n
	a.start = a.position(offset)
	a.size = n
	return a
}

// ToSlice returns the elements front to back.
func (a Array[T]) ToSlice() []T {
	return enum.ToList[T](a)
}

func (a Array[T]) Values() iter.Seq[T] {
	return enum.Values[T](a)
}

func (a Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range a.size {
			if !yield(i, a.buf.slots[a.position(i)]) {
				return
			}
		}
	}
}

// String implements fmt.Stringer for easier debugging.
func (a Array[T]) String() string {
	return fmt.Sprintf("%v", a.ToSlice())
}
