package enum

// Map applies transform to each element of e.
func Map[T, R any](e Enumerable[T], transform func(T) R) []R {
	res := Reduce(e, Continue(make([]R, 0)), func(v T, acc []R) Command[[]R] {
		return Continue(append(acc, transform(v)))
	})
	return res.Acc
}

// Filter keeps the elements of e that satisfy predicate.
func Filter[T any](e Enumerable[T], predicate func(T) bool) []T {
	res := Reduce(e, Continue(make([]T, 0)), func(v T, acc []T) Command[[]T] {
		if predicate(v) {
			acc = append(acc, v)
		}
		return Continue(acc)
	})
	return res.Acc
}

// Take returns the first n elements of e, halting the traversal as soon as
// the n-th element has been seen.
func Take[T any](e Enumerable[T], n int) []T {
	if n <= 0 {
		return []T{}
	}
	res := Reduce(e, Continue(make([]T, 0, n)), func(v T, acc []T) Command[[]T] {
		acc = append(acc, v)
		if len(acc) >= n {
			return Halt(acc)
		}
		return Continue(acc)
	})
	return res.Acc
}

// Skip drops the first n elements of e and returns the rest.
func Skip[T any](e Enumerable[T], n int) []T {
	type state struct {
		skipped int
		out     []T
	}
	res := Reduce(e, Continue(state{out: make([]T, 0)}), func(v T, s state) Command[state] {
		if s.skipped < n {
			s.skipped++
			return Continue(s)
		}
		s.out = append(s.out, v)
		return Continue(s)
	})
	return res.Acc.out
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs up e1 and e2 element by element and stops at the shorter one.
// e1 is reduced directly while e2 is pulled one element at a time through
// suspended traversals.
func Zip[T1, T2 any](e1 Enumerable[T1], e2 Enumerable[T2]) []Pair[T1, T2] {
	next2, stop2 := Pull(e2)
	defer stop2()

	res := Reduce(e1, Continue(make([]Pair[T1, T2], 0)), func(v1 T1, acc []Pair[T1, T2]) Command[[]Pair[T1, T2]] {
		v2, ok := next2()
		if !ok {
			return Halt(acc)
		}
		return Continue(append(acc, Pair[T1, T2]{V1: v1, V2: v2}))
	})
	return res.Acc
}
