package cycle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridsearch/walk"
)

// Detector is an incremental history of a deterministic walk.
// It is not safe for concurrent use; each walk owns its own Detector.
type Detector[S any, K comparable] struct {
	step    walk.StepFunc[S]
	key     func(S) K
	opts    Options
	states  []S       // visited states, index == step number
	indexOf map[K]int // state key → first step at which it was seen
	loop    *Loop
	steps   int // transitions computed so far
}

// New returns a Detector seeded with initial at step 0.
// key must map structurally equal states to equal keys.
// Returns ErrNilStep, ErrNilKey or ErrOptionViolation for invalid input.
func New[S any, K comparable](initial S, step walk.StepFunc[S], key func(S) K, opts ...Option) (*Detector[S, K], error) {
	if step == nil {
		return nil, ErrNilStep
	}
	if key == nil {
		return nil, ErrNilKey
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	d := &Detector[S, K]{
		step:    step,
		key:     key,
		opts:    o,
		states:  []S{initial},
		indexOf: map[K]int{key(initial): 0},
	}
	return d, nil
}

// NewComparable is New for states that are themselves comparable.
func NewComparable[S comparable](initial S, step walk.StepFunc[S], opts ...Option) (*Detector[S, S], error) {
	return New(initial, step, func(s S) S { return s }, opts...)
}

// StateAt returns the state reached after target transitions from the
// initial state. It extends the simulation only as far as needed and
// answers from the detected loop once one exists.
//
// Returns ErrNegativeStep for target < 0, ErrBudgetExhausted when the step
// budget runs out first, or the context error on cancellation.
func (d *Detector[S, K]) StateAt(target int) (S, error) {
	var zero S
	if target < 0 {
		return zero, fmt.Errorf("%w: %d", ErrNegativeStep, target)
	}
	for d.loop == nil && len(d.states) <= target {
		if err := d.extend(); err != nil {
			return zero, err
		}
	}
	return d.lookup(target), nil
}

// extend computes one more state, either appending it or declaring a loop.
func (d *Detector[S, K]) extend() error {
	select {
	case <-d.opts.Ctx.Done():
		return d.opts.Ctx.Err()
	default:
	}
	if d.opts.StepBudget > 0 && d.steps >= d.opts.StepBudget {
		return fmt.Errorf("%w: budget %d, simulated %d states", ErrBudgetExhausted, d.opts.StepBudget, len(d.states))
	}

	next := d.step(d.states[len(d.states)-1])
	d.steps++
	k := d.key(next)
	index := len(d.states)
	if seen, ok := d.indexOf[k]; ok && seen != index {
		length := index - seen
		if length == 0 {
			length = 1
		}
		d.loop = &Loop{Start: seen, Length: length}
		d.opts.Logger.Debug("loop discovered",
			zap.Int("start", seen),
			zap.Int("end", index),
			zap.Int("length", length))
		d.opts.OnLoop(*d.loop)
		return nil
	}
	d.states = append(d.states, next)
	d.indexOf[k] = index
	d.opts.OnStep(index, next)
	return nil
}

func (d *Detector[S, K]) lookup(target int) S {
	if target < len(d.states) {
		return d.states[target]
	}
	return d.states[d.loop.Project(target)]
}

// Loop reports the detected loop, if any.
func (d *Detector[S, K]) Loop() (Loop, bool) {
	if d.loop == nil {
		return Loop{}, false
	}
	return *d.loop, true
}

// Len returns the number of distinct states recorded, the initial one
// included.
func (d *Detector[S, K]) Len() int { return len(d.states) }

// Steps returns the number of transitions computed so far.
func (d *Detector[S, K]) Steps() int { return d.steps }

// FastForward is a one-shot helper: build a Detector and query target.
func FastForward[S any, K comparable](initial S, step walk.StepFunc[S], key func(S) K, target int, opts ...Option) (S, error) {
	d, err := New(initial, step, key, opts...)
	if err != nil {
		var zero S
		return zero, err
	}
	return d.StateAt(target)
}
