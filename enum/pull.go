package enum

import "iter"

// Pull converts e into a pull-style iterator, like iter.Pull but without a
// goroutine: each call to next resumes a suspended traversal of e by exactly
// one element. stop halts the traversal; calling next after stop, or after
// e is exhausted, returns false.
func Pull[T any](e Enumerable[T]) (next func() (T, bool), stop func()) {
	type step struct {
		v  T
		ok bool
	}
	suspendEach := func(v T, _ step) Command[step] {
		return Suspend(step{v: v, ok: true})
	}

	resume := Reduce(e, Suspend(step{}), suspendEach).Resume
	next = func() (T, bool) {
		if resume == nil {
			var zero T
			return zero, false
		}
		res := resume(Continue(step{}))
		if res.State != Suspended {
			resume = nil
			var zero T
			return zero, false
		}
		resume = res.Resume
		return res.Acc.v, true
	}
	stop = func() {
		if resume == nil {
			return
		}
		resume(Halt(step{}))
		resume = nil
	}
	return next, stop
}

// Values adapts e to a standard iterator so it can be used with range and
// with iter.Seq based helpers.
func Values[T any](e Enumerable[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		Reduce(e, Continue(struct{}{}), func(v T, acc struct{}) Command[struct{}] {
			if !yield(v) {
				return Halt(acc)
			}
			return Continue(acc)
		})
	}
}
