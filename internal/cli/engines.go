package cli

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathfinder/bellmanford"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/report"
)

// Algorithm names as printed in reports.
const (
	algoDijkstra    = "dijkstra"
	algoBellmanFord = "bellman-ford"
	algoCompare     = "compare"
)

// engineConfig selects an engine and carries its options.
type engineConfig struct {
	algorithm    string
	graphOptions []core.GraphOption
	dijkstra     []dijkstra.Option
	bellmanford  []bellmanford.Option
	failOnCycle  bool
}

// execute runs the engine chosen by j.engine and renders its output.
func execute[K cmp.Ordered](ctx context.Context, j *job, g *core.Graph[K], source K) error {
	w := j.cmd.OutOrStdout()
	format, err := j.app.format(w)
	if err != nil {
		return err
	}

	switch j.engine.algorithm {
	case algoDijkstra:
		rep, err := runDijkstra(ctx, j, g, source)
		if err != nil {
			return err
		}
		return render(w, j, rep, format)
	case algoBellmanFord:
		rep, err := runBellmanFord(ctx, j, g, source)
		if err != nil {
			return err
		}
		if err = render(w, j, rep, format); err != nil {
			return err
		}
		if rep.NegativeCycle && j.engine.failOnCycle {
			return errors.Wrapf(bellmanford.ErrNegativeCycle, "source %v", source)
		}
		return nil
	case algoCompare:
		c, err := runCompare(ctx, j, g, source)
		if err != nil {
			return err
		}
		if err = report.RenderComparison(w, c, format); err != nil {
			return err
		}
		if !c.Agree() {
			return errors.Errorf("%s and %s disagree on %d vertices", c.Left, c.Right, len(c.Mismatches))
		}
		return nil
	default:
		return fmt.Errorf("unknown algorithm %q", j.engine.algorithm)
	}
}

func render(w io.Writer, j *job, rep *report.Report, format report.Format) error {
	if j.input.reachableOnly {
		rep.ReachableOnly()
	}

	return errors.Wrap(report.Render(w, rep, format), "render report")
}

// timedDijkstra runs Dijkstra under ctx and measures the engine alone.
func timedDijkstra[K cmp.Ordered](ctx context.Context, j *job, g *core.Graph[K], source K) (core.Distances[K], time.Duration, error) {
	opts := append([]dijkstra.Option{dijkstra.WithContext(ctx)}, j.engine.dijkstra...)

	start := time.Now()
	dist, err := dijkstra.Dijkstra(g, source, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return nil, elapsed, errors.Wrap(err, algoDijkstra)
	}

	return dist, elapsed, nil
}

// timedBellmanFord runs Bellman-Ford under ctx and measures the engine alone.
func timedBellmanFord[K cmp.Ordered](ctx context.Context, j *job, g *core.Graph[K], source K) (*bellmanford.Result[K], time.Duration, error) {
	opts := append([]bellmanford.Option{bellmanford.WithContext(ctx)}, j.engine.bellmanford...)

	start := time.Now()
	res, err := bellmanford.BellmanFord(g, source, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return nil, elapsed, errors.Wrap(err, algoBellmanFord)
	}

	return res, elapsed, nil
}

func runDijkstra[K cmp.Ordered](ctx context.Context, j *job, g *core.Graph[K], source K) (*report.Report, error) {
	dist, elapsed, err := timedDijkstra(ctx, j, g, source)
	if err != nil {
		return nil, err
	}

	rep := report.New(algoDijkstra, source, g.Directed(), dist)
	rep.Elapsed = elapsed
	j.app.log.WithFields(log.Fields{
		"algorithm": algoDijkstra,
		"source":    source,
		"reachable": dist.Reachable(),
		"vertices":  len(dist),
		"elapsed":   elapsed,
	}).Info("run complete")

	return rep, nil
}

func runBellmanFord[K cmp.Ordered](ctx context.Context, j *job, g *core.Graph[K], source K) (*report.Report, error) {
	res, elapsed, err := timedBellmanFord(ctx, j, g, source)
	if err != nil {
		return nil, err
	}

	rep := report.New(algoBellmanFord, source, g.Directed(), res.Distances)
	rep.NegativeCycle = res.NegativeCycle
	rep.Elapsed = elapsed
	entry := j.app.log.WithFields(log.Fields{
		"algorithm":      algoBellmanFord,
		"source":         source,
		"reachable":      res.Distances.Reachable(),
		"vertices":       len(res.Distances),
		"rounds":         res.Rounds,
		"negative_cycle": res.NegativeCycle,
		"elapsed":        elapsed,
	})
	if res.NegativeCycle {
		entry.Warn("negative weight cycle reachable from source; distances are unreliable")
	} else {
		entry.Info("run complete")
	}

	return rep, nil
}

// runCompare runs both engines from source and checks that they agree.
// Dijkstra rejects negative weights, so such graphs fail here.
func runCompare[K cmp.Ordered](ctx context.Context, j *job, g *core.Graph[K], source K) (*report.Comparison, error) {
	left, leftElapsed, err := timedDijkstra(ctx, j, g, source)
	if err != nil {
		if errors.Is(err, core.ErrInvalidWeight) {
			return nil, errors.Wrap(err, "compare needs non-negative weights")
		}
		return nil, err
	}
	right, rightElapsed, err := timedBellmanFord(ctx, j, g, source)
	if err != nil {
		return nil, err
	}

	c := report.Compare(source, algoDijkstra, left, algoBellmanFord, right.Distances)
	c.LeftElapsed, c.RightElapsed = leftElapsed, rightElapsed
	j.app.log.WithFields(log.Fields{
		"source":         source,
		"vertices":       c.Vertices,
		"agree":          c.Agree(),
		"mismatches":     len(c.Mismatches),
		"negative_cycle": right.NegativeCycle,
	}).Info("comparison complete")

	return c, nil
}
