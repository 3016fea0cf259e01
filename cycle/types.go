package cycle

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors returned by Detector.
var (
	// ErrNilStep is returned when no transition function is supplied.
	ErrNilStep = errors.New("cycle: step function is nil")

	// ErrNilKey is returned when no key function is supplied.
	ErrNilKey = errors.New("cycle: key function is nil")

	// ErrNegativeStep is returned for targets below zero.
	ErrNegativeStep = errors.New("cycle: target step must be non-negative")

	// ErrBudgetExhausted is returned when the step budget runs out before
	// the target is reached and before any loop has been found.
	ErrBudgetExhausted = errors.New("cycle: step budget exhausted before a loop was found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cycle: invalid option supplied")
)

// Loop describes a detected cycle: states repeat with period Length from
// index Start onwards.
type Loop struct {
	Start  int
	Length int
}

// End returns the first index at which the loop repeats.
func (l Loop) End() int { return l.Start + l.Length }

// Project maps any target >= Start onto the recorded index that holds the
// same state.
func (l Loop) Project(target int) int {
	if target < l.Start {
		return target
	}
	return l.Start + (target-l.Start)%l.Length
}

// Option configures a Detector.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunables of a Detector.
type Options struct {
	// Ctx allows cancellation between transitions.
	Ctx context.Context

	// StepBudget, if > 0, caps the total number of transitions computed.
	// Zero means unlimited.
	StepBudget int

	// Logger receives loop discovery at debug level.
	Logger *zap.Logger

	// OnLoop is called once, when the loop is discovered.
	OnLoop func(Loop)

	// OnStep is called for every newly recorded state with its index.
	// The state is passed as any because Options is shared by all
	// Detector instantiations.
	OnStep func(index int, state any)

	err error
}

// DefaultOptions returns Options with a background context, no budget,
// a no-op logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		StepBudget: 0,
		Logger:     zap.NewNop(),
		OnLoop:     func(Loop) {},
		OnStep:     func(int, any) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepBudget limits the total number of transitions.
//
//	n > 0: at most n transitions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: StepBudget cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.StepBudget = n
	}
}

// WithLogger sets the logger used for loop discovery.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnLoop registers a callback for loop discovery.
func WithOnLoop(fn func(Loop)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLoop = fn
		}
	}
}

// WithOnStep registers a callback for every newly recorded state. The
// state that closes the loop is not recorded and is not reported.
func WithOnStep(fn func(index int, state any)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
