package enum

import "iter"

// CollectOp is an insertion command kind.
type CollectOp uint8

const (
	CollectAppend CollectOp = iota
	CollectDone
	CollectHalt
)

// CollectCommand is sent to a Collector. Value is only meaningful for CollectAppend.
type CollectCommand[T any] struct {
	Op    CollectOp
	Value T
}

func Append[T any](v T) CollectCommand[T] {
	return CollectCommand[T]{Op: CollectAppend, Value: v}
}

// Collector folds one insertion command into the accumulator.
type Collector[T, C any] func(acc C, cmd CollectCommand[T]) C

// Collectable is the consumer side of the insertion contract.
type Collectable[T, C any] interface {
	// Into returns the seed accumulator and the collector that builds on it.
	Into() (C, Collector[T, C])
}

// drain feeds one collector. inCollector is set while the collector runs, so
// a panic raised by the collector itself is not answered with CollectHalt.
type drain[T, C any] struct {
	acc         C
	collect     Collector[T, C]
	inCollector bool
	finished    bool
}

func newDrain[T, C any](dst Collectable[T, C]) *drain[T, C] {
	acc, collect := dst.Into()
	return &drain[T, C]{acc: acc, collect: collect}
}

func (d *drain[T, C]) append(v T) {
	d.inCollector = true
	d.acc = d.collect(d.acc, Append(v))
	d.inCollector = false
}

// halt is deferred by the drivers; it only fires when the producer panicked.
func (d *drain[T, C]) halt() {
	if d.finished || d.inCollector {
		return
	}
	d.collect(d.acc, CollectCommand[T]{Op: CollectHalt})
}

func (d *drain[T, C]) done() C {
	d.finished = true
	return d.collect(d.acc, CollectCommand[T]{Op: CollectDone})
}

// Into drains src into dst and returns the built value.
// If src panics, dst's collector receives CollectHalt before the panic
// continues. A panic raised by the collector propagates without CollectHalt.
func Into[T, C any](src Enumerable[T], dst Collectable[T, C]) C {
	d := newDrain(dst)
	defer d.halt()

	Reduce(src, Continue(struct{}{}), func(v T, s struct{}) Command[struct{}] {
		d.append(v)
		return Continue(s)
	})
	return d.done()
}

// IntoSeq drains a standard iterator into dst, with the same panic handling as Into.
func IntoSeq[T, C any](seq iter.Seq[T], dst Collectable[T, C]) C {
	d := newDrain(dst)
	defer d.halt()

	for v := range seq {
		d.append(v)
	}
	return d.done()
}
