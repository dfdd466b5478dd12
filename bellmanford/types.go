// Package bellmanford defines errors, options and the result type for the
// relaxation-based shortest-path engine.
package bellmanford

import (
	"context"
	"errors"

	"github.com/katalvlaran/pathfinder/core"
)

// Sentinel errors for Bellman-Ford execution.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to BellmanFord.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNegativeCycle indicates that a negative-weight cycle is reachable from
	// the source. It is never returned by BellmanFord itself; callers that treat
	// the condition as fatal obtain it from Result.Err.
	ErrNegativeCycle = errors.New("bellmanford: negative weight cycle reachable from source")
)

// Option configures Bellman-Ford behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked at every round boundary.
	Ctx context.Context

	// EarlyExit stops the relaxation rounds after the first round that changes
	// nothing. Distances are identical to the full V-1 rounds.
	EarlyExit bool

	// OnRelax is called after every successful relaxation.
	OnRelax core.RelaxFunc
}

// DefaultOptions returns Options with context.Background(), all V-1 rounds and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnRelax: func(int, core.Distance, core.Distance) {},
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

// WithEarlyExit stops after a round without any relaxation.
func WithEarlyExit() Option {
	return func(o *Options) { o.EarlyExit = true }
}

// WithOnRelax registers a callback invoked after every successful relaxation.
func WithOnRelax(fn core.RelaxFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Result holds the outcome of a Bellman-Ford run.
//
// When NegativeCycle is true, Distances holds whatever the V-1 rounds produced
// and is unreliable for every vertex the cycle can reach.
type Result[K comparable] struct {
	// Distances is the total mapping from every vertex to its distance.
	Distances core.Distances[K]

	// NegativeCycle reports that some arc still admitted relaxation after V-1 rounds.
	NegativeCycle bool

	// Rounds is the number of relaxation rounds actually executed.
	Rounds int
}

// Err returns ErrNegativeCycle when a negative cycle was detected, nil otherwise.
func (r *Result[K]) Err() error {
	if r.NegativeCycle {
		return ErrNegativeCycle
	}

	return nil
}
