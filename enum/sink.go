package enum

// ToList collects every element of e, front to back.
func ToList[T any](e Enumerable[T]) []T {
	var out []T
	if c, ok := e.(Counter); ok {
		out = make([]T, 0, c.Len())
	} else {
		out = make([]T, 0)
	}
	res := Reduce(e, Continue(out), func(v T, acc []T) Command[[]T] {
		return Continue(append(acc, v))
	})
	return res.Acc
}

// Count returns the number of elements in e.
// Counter implementations answer directly; everything else is traversed.
func Count[T any](e Enumerable[T]) int {
	if c, ok := e.(Counter); ok {
		return c.Len()
	}
	return countByTraversal(e)
}

func countByTraversal[T any](e Enumerable[T]) int {
	res := Reduce(e, Continue(0), func(_ T, n int) Command[int] {
		return Continue(n + 1)
	})
	return res.Acc
}

// Slice returns up to length elements starting at offset.
// Negative arguments are treated as 0 and an offset past the end yields an empty slice.
func Slice[T any](e Enumerable[T], offset, length int) []T {
	offset = max(offset, 0)
	if length <= 0 {
		return []T{}
	}

	if s, ok := e.(Slicer[T]); ok {
		size, materialize := s.SliceFunc()
		if offset >= size {
			return []T{}
		}
		return materialize(offset, min(length, size-offset))
	}

	type window struct {
		skip int
		out  []T
	}
	res := Reduce(e, Continue(window{skip: offset}), func(v T, w window) Command[window] {
		if w.skip > 0 {
			w.skip--
			return Continue(w)
		}
		w.out = append(w.out, v)
		if len(w.out) == length {
			return Halt(w)
		}
		return Continue(w)
	})
	if res.Acc.out == nil {
		return []T{}
	}
	return res.Acc.out
}

// Member reports whether v occurs in e. There is no fast path: a sequence
// stored by position offers nothing better than a linear scan.
func Member[T comparable](e Enumerable[T], v T) bool {
	return MemberFunc(e, func(x T) bool { return x == v })
}

// MemberFunc reports whether any element of e satisfies match.
func MemberFunc[T any](e Enumerable[T], match func(T) bool) bool {
	res := Reduce(e, Continue(false), func(x T, found bool) Command[bool] {
		if match(x) {
			return Halt(true)
		}
		return Continue(found)
	})
	return res.Acc
}

// First returns the first element of e.
func First[T any](e Enumerable[T]) (T, bool) {
	type head struct {
		v  T
		ok bool
	}
	res := Reduce(e, Continue(head{}), func(v T, _ head) Command[head] {
		return Halt(head{v: v, ok: true})
	})
	return res.Acc.v, res.Acc.ok
}

// Fold aggregates e with reducer, starting from initial.
func Fold[T, R any](e Enumerable[T], initial R, reducer func(R, T) R) R {
	res := Reduce(e, Continue(initial), func(v T, acc R) Command[R] {
		return Continue(reducer(acc, v))
	})
	return res.Acc
}
