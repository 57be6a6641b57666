package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"ringarray/array"
	"ringarray/enum"
)

// Outcome describes what one step did.
type Outcome struct {
	Step   int
	Op     string
	Result string
	Size   int
	Cap    int
}

type Runner struct {
	log zerolog.Logger
}

func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{log: logger.With().Str("component", "scenario").Logger()}
}

// Run executes every step of s in order and returns the final array.
// It stops at the first failing step.
func (r *Runner) Run(s Scenario) (array.Array[string], []Outcome, error) {
	log := r.log.With().Str("scenario", s.Name).Logger()

	a := r.initial(s)
	log.Info().Int("size", a.Size()).Int("cap", a.Cap()).Msg("Scenario started")

	outcomes := make([]Outcome, 0, len(s.Steps))
	for i, step := range s.Steps {
		next, result, err := r.apply(s, a, step)
		if err != nil {
			log.Error().Err(err).Int("step", i).Str("op", step.Op).Msg("Step failed")
			return a, outcomes, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
		a = next

		o := Outcome{Step: i, Op: step.Op, Result: result, Size: a.Size(), Cap: a.Cap()}
		outcomes = append(outcomes, o)
		log.Debug().
			Int("step", i).
			Str("op", step.Op).
			Str("result", result).
			Int("size", o.Size).
			Int("cap", o.Cap).
			Msg("Step applied")
	}

	log.Info().Int("steps", len(outcomes)).Int("size", a.Size()).Msg("Scenario finished")
	return a, outcomes, nil
}

func (r *Runner) initial(s Scenario) array.Array[string] {
	return enum.Into[string, array.Array[string]](enum.FromSlice(s.Initial), array.WithCapacity[string](s.Capacity))
}

func (r *Runner) apply(s Scenario, a array.Array[string], step Step) (array.Array[string], string, error) {
	switch step.Op {
	case OpPush:
		values := step.Values
		if step.Value != "" {
			values = append([]string{step.Value}, values...)
		}
		for _, v := range values {
			a = a.Push(v)
		}
		return a, a.String(), nil

	case OpShift:
		v, rest, err := a.Shift()
		if err != nil {
			return a, "", err
		}
		return rest, v, nil

	case OpSlice:
		a = a.Slice(step.Offset, step.Length)
		return a, a.String(), nil

	case OpGet:
		v, err := a.Get(step.Index)
		if err != nil {
			return a, "", fmt.Errorf("index %d: %w", step.Index, err)
		}
		return a, v, nil

	case OpTake:
		return a, fmt.Sprint(enum.Take[string](a, step.Count)), nil

	case OpCount:
		return a, strconv.Itoa(enum.Count[string](a)), nil

	case OpMember:
		return a, strconv.FormatBool(enum.Member[string](a, step.Value)), nil

	case OpZip:
		pairs := enum.Zip[string, string](a, enum.FromSlice(step.Values))
		parts := make([]string, len(pairs))
		for i, p := range pairs {
			parts[i] = p.V1 + "=" + p.V2
		}
		return a, "[" + strings.Join(parts, " ") + "]", nil

	case OpReset:
		a = r.initial(s)
		return a, a.String(), nil

	default:
		return a, "", fmt.Errorf("%w %q", ErrUnknownOp, step.Op)
	}
}
