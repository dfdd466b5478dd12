// Package bellmanford computes single-source shortest paths on graphs whose
// edge weights may be negative, and detects negative cycles reachable from the source.
//
// The algorithm relaxes every arc of the graph in insertion order, V-1 times.
// One further pass over all arcs then decides whether any arc still admits a
// relaxation, which can only happen when a negative cycle is reachable.
//
// Complexity:
//
//   - Time:  O(V · E)
//   - Space: O(V + E) (distance slice plus the snapshot of the graph)
package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// BellmanFord runs the relaxation algorithm from source over a snapshot of g.
//
// Undirected edges contribute both directions, so a negative undirected edge is
// itself a negative cycle.
//
// Returns:
//
//   - *Result: total distance mapping plus the NegativeCycle flag.
//     A negative cycle is reported through the flag, not as an error.
//   - err: ErrNilGraph, core.ErrVertexNotFound (source absent, no partial result),
//     core.ErrDistanceOverflow, or the context error on cancellation.
//
// Distances are kept in int64. When an intermediate sum leaves that range the
// run is repeated in arbitrary precision, so a negative cycle of any depth is
// still reported through the flag. core.ErrDistanceOverflow remains only for
// graphs without a reachable negative cycle whose true shortest distance does
// not fit into int64.
func BellmanFord[K comparable](g *core.Graph[K], source K, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	snap := g.Snapshot()
	src, ok := snap.Lookup(source)
	if !ok {
		return nil, fmt.Errorf("%w: source %v", core.ErrVertexNotFound, source)
	}

	w := &walker{
		opts: o,
		arcs: snap.AllArcs(),
		dist: make([]core.Distance, snap.Len()), // zero value is Unreachable
	}
	w.dist[src] = core.Finite(0)

	rounds, err := w.rounds(snap.Len() - 1)
	var cycle bool
	if err == nil {
		cycle, err = w.detectCycle()
	}
	if errors.Is(err, core.ErrDistanceOverflow) {
		return exactRun(o, snap, src)
	}
	if err != nil {
		return nil, err
	}

	return &Result[K]{
		Distances:     snap.Distances(w.dist),
		NegativeCycle: cycle,
		Rounds:        rounds,
	}, nil
}

// exactRun runs the whole algorithm again with arbitrary-precision distances.
// OnRelax is not called a second time.
func exactRun[K comparable](o Options, snap *core.Snapshot[K], src int) (*Result[K], error) {
	x := newExactWalker(o.Ctx, snap.AllArcs(), snap.Len(), src)
	rounds, err := x.rounds(snap.Len()-1, o.EarlyExit)
	if err != nil {
		return nil, err
	}
	cycle := x.detectCycle()
	dist, err := x.distances(cycle)
	if err != nil {
		return nil, err
	}

	return &Result[K]{
		Distances:     snap.Distances(dist),
		NegativeCycle: cycle,
		Rounds:        rounds,
	}, nil
}

// walker encapsulates mutable Bellman-Ford state.
type walker struct {
	opts Options
	arcs []core.Arc
	dist []core.Distance
}

// rounds performs up to n relaxation rounds and returns how many ran.
func (w *walker) rounds(n int) (int, error) {
	ctx := w.opts.Ctx
	done := 0
	for done < n {
		// cancellation check (once per round)
		select {
		case <-ctx.Done():
			return done, ctx.Err()
		default:
		}

		changed, err := w.round()
		if err != nil {
			return done, err
		}
		done++
		if !changed && w.opts.EarlyExit {
			break
		}
	}

	return done, nil
}

// round relaxes every arc once, in order, and reports whether any distance changed.
func (w *walker) round() (bool, error) {
	changed := false
	for _, a := range w.arcs {
		nd, ok, err := w.candidate(a)
		if err != nil {
			return changed, err
		}
		if !ok {
			continue
		}
		prev := w.dist[a.To]
		w.dist[a.To] = nd
		w.opts.OnRelax(a.To, prev, nd)
		changed = true
	}

	return changed, nil
}

// detectCycle reports whether any arc still admits a relaxation.
func (w *walker) detectCycle() (bool, error) {
	for _, a := range w.arcs {
		_, ok, err := w.candidate(a)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}

// candidate returns dist[a.From] + a.Weight and whether it improves dist[a.To].
// Arcs leaving unreachable vertices never relax.
func (w *walker) candidate(a core.Arc) (core.Distance, bool, error) {
	du := w.dist[a.From]
	if !du.Reachable() {
		return core.Distance{}, false, nil
	}
	nd, ok := du.Add(a.Weight)
	if !ok {
		return core.Distance{}, false, fmt.Errorf("%w: dist=%s weight=%d", core.ErrDistanceOverflow, du, a.Weight)
	}

	return nd, nd.Less(w.dist[a.To]), nil
}
