package cli

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/loader"
)

// ErrUnknownShape is returned for a --shape the generator does not know.
var ErrUnknownShape = errors.New("unknown shape")

type generateFlags struct {
	shape      string
	n          int
	rows, cols int
	p          float64
	seed       int64
	minWeight  int64
	maxWeight  int64
	undirected bool
	source     int
}

func (f *generateFlags) constructor() (builder.Constructor, error) {
	switch strings.ToLower(f.shape) {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "star":
		return builder.Star(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "grid":
		return builder.Grid(f.rows, f.cols), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	case "dag":
		return builder.RandomDAG(f.n, f.p), nil
	default:
		return nil, errors.Wrapf(ErrUnknownShape, "%q", f.shape)
	}
}

func newGenerateCommand(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph in the indexed form",
		Long: `Generate a weighted graph and write it to stdout in the indexed form, ready
to be piped into dijkstra, bellman-ford or compare with --form indexed.
Shapes: path, cycle, star, complete, grid (--rows, --cols), random and dag (--probability).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.maxWeight < f.minWeight {
				return errors.Errorf("--max-weight %d is below --min-weight %d", f.maxWeight, f.minWeight)
			}
			cons, err := f.constructor()
			if err != nil {
				return err
			}

			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithDirected(!f.undirected)},
				[]builder.BuilderOption{builder.WithSeed(f.seed), builder.WithUniformWeight(f.minWeight, f.maxWeight)},
				cons,
			)
			if err != nil {
				return errors.Wrap(err, "generate")
			}
			if f.source < 0 || f.source >= g.VertexCount() {
				return errors.Wrapf(core.ErrVertexNotFound, "--source %d", f.source)
			}

			a.log.WithFields(log.Fields{
				"shape":    f.shape,
				"vertices": g.VertexCount(),
				"edges":    g.EdgeCount(),
				"seed":     f.seed,
			}).Debug("graph generated")

			return loader.WriteIndexed(cmd.OutOrStdout(), &loader.Input[int]{Graph: g, Source: f.source, HasSource: true})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&f.shape, "shape", "random", "graph shape")
	fs.IntVarP(&f.n, "vertices", "n", 10, "number of vertices (all shapes but grid)")
	fs.IntVar(&f.rows, "rows", 3, "grid rows")
	fs.IntVar(&f.cols, "cols", 3, "grid columns")
	fs.Float64VarP(&f.p, "probability", "p", 0.3, "edge probability for random and dag")
	fs.Int64Var(&f.seed, "seed", 1, "random seed")
	fs.Int64Var(&f.minWeight, "min-weight", 1, "smallest edge weight")
	fs.Int64Var(&f.maxWeight, "max-weight", 10, "largest edge weight")
	fs.BoolVar(&f.undirected, "undirected", false, "generate undirected edges (written as two arcs)")
	fs.IntVarP(&f.source, "source", "s", 0, "source vertex written on the last line")

	return cmd
}
