// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//   - O(V) for the distance slice.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We run on an immutable core.Snapshot, so concurrent AddEdge calls never affect a run.
//   - We perform an upfront scan of all arcs (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: total map from vertex to core.Distance; unreachable vertices hold core.Unreachable().
//   - err:  error if inputs are invalid or if a negative weight is detected.
//     No partial mapping is returned together with an error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. g must contain source after normalization (core.ErrVertexNotFound).
//  4. No arc in g can have negative weight (core.ErrInvalidWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[K comparable](g *core.Graph[K], source K, opts ...Option) (core.Distances[K], error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Freeze the graph and resolve the source
	snap := g.Snapshot()
	src, ok := snap.Lookup(source)
	if !ok {
		return nil, fmt.Errorf("%w: source %v", core.ErrVertexNotFound, source)
	}

	// 4) Pre-scan all arcs to detect negative weights. Fail fast with ErrInvalidWeight.
	for _, a := range snap.AllArcs() {
		if a.Weight < 0 {
			return nil, fmt.Errorf("%w: negative edge %v→%v weight=%d",
				core.ErrInvalidWeight, snap.Vertex(a.From), snap.Vertex(a.To), a.Weight)
		}
	}

	// 5) Run
	r := &runner{
		options: cfg,
		arcs:    snap.Arcs,
		dist:    make([]core.Distance, snap.Len()), // zero value is Unreachable
		pq:      make(nodePQ, 0, snap.Len()),
	}
	r.init(src)
	if err := r.process(); err != nil {
		return nil, err
	}

	return snap.Distances(r.dist), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	options Options              // configuration (thresholds, hooks, context)
	arcs    func(int) []core.Arc // outgoing arcs by dense vertex index
	dist    []core.Distance      // dense index → current best distance from source
	pq      nodePQ               // min-heap of *nodeItem for lazy priority queue
}

// init sets the source distance to zero and pushes it onto the heap.
func (r *runner) init(src int) {
	r.dist[src] = core.Finite(0)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance (no need to explore farther).
//   - The context is done.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		// cancellation check (once per extraction)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)

		// A recorded distance above the current best means a shorter path was
		// found after this entry was pushed: the entry is stale.
		if best, _ := r.dist[item.id].Value(); item.dist > best {
			continue
		}

		if item.dist > r.options.MaxDistance {
			break
		}

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc leaving u and attempts to improve distances to its heads.
// If a shorter path to v is found we update dist[v] and push a new heap entry.
func (r *runner) relax(u int) error {
	du := r.dist[u]
	for _, a := range r.arcs(u) {
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		nd, ok := du.Add(a.Weight)
		if !ok {
			return fmt.Errorf("%w: dist=%s weight=%d", core.ErrDistanceOverflow, du, a.Weight)
		}
		// newDist is necessarily finite here
		newDist, _ := nd.Value()
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" avoids pushing duplicates when distances are equal.
		if !nd.Less(r.dist[a.To]) {
			continue
		}

		prev := r.dist[a.To]
		r.dist[a.To] = nd
		r.options.OnRelax(a.To, prev, nd)

		heap.Push(&r.pq, &nodeItem{id: a.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance at push time.
type nodeItem struct {
	id   int   // dense vertex index
	dist int64 // distance from source when pushed
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// Ties are broken arbitrarily.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
