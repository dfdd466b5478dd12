package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/bellmanford"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

const inputHelp = `
The graph is read from FILE, or from stdin when FILE is omitted or "-".
Forms:
  indexed   V E, then E lines "u v w" over vertices 0..V-1, optional source (directed)
  labeled   n m, then m lines "a b w" over names, optional source (undirected)
  cities    n, n city names, m, m roads "a b w", start city (directed)`

func newDijkstraCommand(ctx context.Context, a *app) *cobra.Command {
	j := &job{app: a, engine: engineConfig{
		algorithm:    algoDijkstra,
		graphOptions: []core.GraphOption{core.WithNonNegativeWeights()},
	}}
	var maxDistance, infThreshold int64

	cmd := &cobra.Command{
		Use:   "dijkstra [FILE]",
		Short: "Shortest paths on graphs with non-negative weights",
		Long:  "Run Dijkstra's algorithm from a source vertex. Negative weights are rejected." + inputHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j.cmd = cmd
			if cmd.Flags().Changed("max-distance") {
				j.engine.dijkstra = append(j.engine.dijkstra, dijkstra.WithMaxDistance(maxDistance))
			}
			if cmd.Flags().Changed("inf-threshold") {
				j.engine.dijkstra = append(j.engine.dijkstra, dijkstra.WithInfEdgeThreshold(infThreshold))
			}
			return j.run(ctx, args)
		},
	}
	j.input.register(cmd.Flags())
	cmd.Flags().Int64Var(&maxDistance, "max-distance", 0, "do not explore beyond this distance")
	cmd.Flags().Int64Var(&infThreshold, "inf-threshold", 0, "treat edges with at least this weight as impassable")

	return cmd
}

func newBellmanFordCommand(ctx context.Context, a *app) *cobra.Command {
	j := &job{app: a, engine: engineConfig{algorithm: algoBellmanFord}}
	var earlyExit bool

	cmd := &cobra.Command{
		Use:     "bellman-ford [FILE]",
		Aliases: []string{"bellmanford", "bf"},
		Short:   "Shortest paths with negative weights and cycle detection",
		Long:    "Run the Bellman-Ford algorithm from a source vertex and report negative cycles." + inputHelp,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j.cmd = cmd
			if earlyExit {
				j.engine.bellmanford = append(j.engine.bellmanford, bellmanford.WithEarlyExit())
			}
			return j.run(ctx, args)
		},
	}
	j.input.register(cmd.Flags())
	cmd.Flags().BoolVar(&earlyExit, "early-exit", false, "stop after a round without changes")
	cmd.Flags().BoolVar(&j.engine.failOnCycle, "fail-on-cycle", false, "exit non-zero when a negative cycle is detected")

	return cmd
}

func newCompareCommand(ctx context.Context, a *app) *cobra.Command {
	j := &job{app: a, engine: engineConfig{algorithm: algoCompare}}

	cmd := &cobra.Command{
		Use:   "compare [FILE]",
		Short: "Run both engines and check that they agree",
		Long:  "Run Dijkstra and Bellman-Ford from the same source and report any vertex where they differ." + inputHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j.cmd = cmd
			return j.run(ctx, args)
		},
	}
	j.input.register(cmd.Flags())

	return cmd
}
