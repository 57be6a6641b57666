package enum

// Op is a consumer command kind.
type Op uint8

const (
	OpContinue Op = iota
	OpHalt
	OpSuspend
)

func (o Op) String() string {
	switch o {
	case OpContinue:
		return "continue"
	case OpHalt:
		return "halt"
	case OpSuspend:
		return "suspend"
	default:
		return "unknown"
	}
}

// Command is issued by the consumer after each element.
type Command[A any] struct {
	Op  Op
	Acc A
}

// Continue asks the producer for the next element.
func Continue[A any](acc A) Command[A] {
	return Command[A]{Op: OpContinue, Acc: acc}
}

// Halt stops the traversal.
func Halt[A any](acc A) Command[A] {
	return Command[A]{Op: OpHalt, Acc: acc}
}

// Suspend pauses the traversal without losing its position.
func Suspend[A any](acc A) Command[A] {
	return Command[A]{Op: OpSuspend, Acc: acc}
}

// State is the terminal (or paused) state reported by the producer.
type State uint8

const (
	Done State = iota
	Halted
	Suspended
)

func (s State) String() string {
	switch s {
	case Done:
		return "done"
	case Halted:
		return "halted"
	case Suspended:
		return "suspended"
	default:
		return "unknown"
	}
}

// Continuation resumes a suspended traversal with a new command.
type Continuation[A any] func(Command[A]) Result[A]

// Result is what Reduce returns. Resume is only set when State is Suspended.
type Result[A any] struct {
	State  State
	Acc    A
	Resume Continuation[A]
}

// Reducer folds one element into the accumulator and decides what happens next.
type Reducer[T, A any] func(elem T, acc A) Command[A]

// Enumerable is the producer side of the traversal contract.
type Enumerable[T any] interface {
	// Next returns the first element and the rest of the sequence.
	// ok is false when there are no elements left.
	Next() (elem T, rest Enumerable[T], ok bool)
}

// Counter is implemented by enumerables that know their size without a traversal.
type Counter interface {
	Len() int
}

// Slicer is implemented by enumerables that can materialize a contiguous range
// without a traversal. materialize is only called with 0 <= offset < size and
// 0 < length <= size-offset.
type Slicer[T any] interface {
	SliceFunc() (size int, materialize func(offset, length int) []T)
}

// Reduce walks e under the control of fn, starting with cmd.
func Reduce[T, A any](e Enumerable[T], cmd Command[A], fn Reducer[T, A]) Result[A] {
	for {
		switch cmd.Op {
		case OpHalt:
			return Result[A]{State: Halted, Acc: cmd.Acc}
		case OpSuspend:
			rest := e
			return Result[A]{
				State: Suspended,
				Acc:   cmd.Acc,
				Resume: func(next Command[A]) Result[A] {
					return Reduce(rest, next, fn)
				},
			}
		}

		if e == nil {
			return Result[A]{State: Done, Acc: cmd.Acc}
		}
		elem, rest, ok := e.Next()
		if !ok {
			return Result[A]{State: Done, Acc: cmd.Acc}
		}
		cmd = fn(elem, cmd.Acc)
		e = rest
	}
}
