/*
Package enum defines the two collection interop contracts used across ringarray
and the generic helpers built on top of them.

# Traversal

An [Enumerable] exposes a single step, Next, which returns the first element and
the remaining, immutable, enumerable. [Reduce] drives that step as a small state
machine controlled by the consumer:

  - [Continue]: produce the next element and hand it to the [Reducer].
  - [Halt]: stop now; the result is [Halted].
  - [Suspend]: pause; the result is [Suspended] and carries a [Continuation]
    that resumes from exactly the paused position.

Because every state operates on an immutable snapshot, a continuation can be
resumed later, or more than once, and always observes the same remainder.

Helpers such as [Map], [Take], [Zip], [Count] and [Slice] are written once against
this contract. Producers may implement [Counter] or [Slicer] to answer [Count]
and [Slice] without a traversal.

# Insertion

A [Collectable] hands out a seed accumulator and a [Collector]. [Into] drains any
enumerable into it by issuing Append commands followed by Done, or Halt if the
producer panics.

	a := array.From(1, 2, 3)
	doubled := enum.Map[int](a, func(v int) int { return v * 2 })
	for v := range enum.Values[int](a) {
		fmt.Println(v)
	}
*/
package enum
