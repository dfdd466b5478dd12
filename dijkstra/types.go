// Package dijkstra defines errors and configuration options for the
// label-setting shortest-path engine.
//
// Options:
//
//	– WithContext:          cancellation, checked at every frontier extraction.
//	– WithMaxDistance:      cap on distances to explore; vertices beyond stay Unreachable.
//	– WithInfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– WithOnRelax:          observe every successful relaxation.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrOptionViolation   if an Option was given an invalid argument.
//	– core.ErrVertexNotFound   if the source vertex does not exist in the graph.
//	– core.ErrInvalidWeight    if a negative edge weight is present.
//	– core.ErrDistanceOverflow if a path length does not fit into int64.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfinder/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrOptionViolation indicates that an Option received an invalid argument.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices whose shortest distance exceeds this value are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Ctx              context.Context // cancellation and deadlines
	MaxDistance      int64           // maximum distance to explore
	InfEdgeThreshold int64           // weight threshold above which edges are non-traversable
	OnRelax          core.RelaxFunc  // relaxation observer

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Ctx:              context.Background().
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
//   - OnRelax:          no-op.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		OnRelax:          func(int, core.Distance, core.Distance) {},
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

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are reported Unreachable.
// A negative value is recorded and surfaced as ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Zero or negative values surface as ErrOptionViolation.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnRelax registers a callback invoked after every successful relaxation.
func WithOnRelax(fn core.RelaxFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
