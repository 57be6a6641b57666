/*
Package array provides Array, an immutable sequence stored in a resizable
circular buffer.

Array offers O(1) random access, amortized O(1) append and O(1) removal from
the front. Every operation returns a new value and leaves the receiver
untouched, so an Array can be shared freely, even across goroutines.

	a := array.From(1, 2, 3)
	first, rest, err := a.Shift() // 1, [2 3], nil
	b := rest.Push(4)             // [2 3 4]; rest is still [2 3]

Array implements the traversal and insertion contracts of package enum, so the
generic helpers there (Map, Take, Zip, Count, Slice, Into, ...) work on it
directly.
*/
package array
