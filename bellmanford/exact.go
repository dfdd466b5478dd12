package bellmanford

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/pathfinder/core"
)

// exactWalker repeats the relaxation with arbitrary-precision distances.
// It runs only after the int64 walker overflowed, so the cycle verdict never
// depends on how large the weights are.
type exactWalker struct {
	ctx  context.Context
	arcs []core.Arc
	dist []*big.Int // nil is unreachable
	sum  big.Int
}

func newExactWalker(ctx context.Context, arcs []core.Arc, n, src int) *exactWalker {
	w := &exactWalker{ctx: ctx, arcs: arcs, dist: make([]*big.Int, n)}
	w.dist[src] = new(big.Int)

	return w
}

// rounds performs up to n relaxation rounds and returns how many ran.
func (w *exactWalker) rounds(n int, earlyExit bool) (int, error) {
	done := 0
	for done < n {
		select {
		case <-w.ctx.Done():
			return done, w.ctx.Err()
		default:
		}

		changed := w.round()
		done++
		if !changed && earlyExit {
			break
		}
	}

	return done, nil
}

func (w *exactWalker) round() bool {
	changed := false
	for _, a := range w.arcs {
		if !w.improves(a) {
			continue
		}
		if w.dist[a.To] == nil {
			w.dist[a.To] = new(big.Int)
		}
		w.dist[a.To].Set(&w.sum)
		changed = true
	}

	return changed
}

func (w *exactWalker) detectCycle() bool {
	for _, a := range w.arcs {
		if w.improves(a) {
			return true
		}
	}

	return false
}

// improves leaves dist[a.From] + a.Weight in w.sum and reports whether it is
// below dist[a.To].
func (w *exactWalker) improves(a core.Arc) bool {
	du := w.dist[a.From]
	if du == nil {
		return false
	}
	w.sum.SetInt64(a.Weight)
	w.sum.Add(&w.sum, du)
	dv := w.dist[a.To]

	return dv == nil || w.sum.Cmp(dv) < 0
}

// distances converts the exact values back to core.Distance. With a negative
// cycle the values are unreliable anyway and are clamped to the int64 range;
// without one, a value outside that range is ErrDistanceOverflow.
func (w *exactWalker) distances(cycle bool) ([]core.Distance, error) {
	out := make([]core.Distance, len(w.dist))
	for i, d := range w.dist {
		switch {
		case d == nil:
			// zero value is Unreachable
		case d.IsInt64():
			out[i] = core.Finite(d.Int64())
		case !cycle:
			return nil, fmt.Errorf("%w: vertex %d at distance %s", core.ErrDistanceOverflow, i, d)
		case d.Sign() < 0:
			out[i] = core.Finite(math.MinInt64)
		default:
			out[i] = core.Finite(math.MaxInt64)
		}
	}

	return out, nil
}
