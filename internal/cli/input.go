package cli

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/loader"
)

// ErrNoSource is returned when neither --source nor the input names a source vertex.
var ErrNoSource = errors.New("no source vertex: pass --source or end the input with one")

// inputFlags select and shape the graph a run command loads.
type inputFlags struct {
	form          string
	source        string
	directed      bool
	reachableOnly bool
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.form, "form", "", "input form: indexed, labeled, cities (default from config)")
	fs.StringVarP(&f.source, "source", "s", "", "source vertex (overrides the one in the input)")
	fs.BoolVar(&f.directed, "directed", false, "override the form's default orientation")
	fs.BoolVar(&f.reachableOnly, "reachable-only", false, "omit unreachable vertices from the output")
}

// job is everything a run command needs once its flags are parsed.
type job struct {
	app    *app
	cmd    *cobra.Command
	input  inputFlags
	engine engineConfig
}

// run loads the graph named by args and dispatches to the engine on the
// graph's vertex type.
func (j *job) run(ctx context.Context, args []string) error {
	ctx, cancel := j.app.withTimeout(ctx)
	defer cancel()

	form := loader.Form(j.app.cfg.Form)
	if j.cmd.Flags().Changed("form") {
		f, err := loader.ParseForm(j.input.form)
		if err != nil {
			return err
		}
		form = f
	}

	name, r, closer, err := j.open(args)
	if err != nil {
		return err
	}
	defer closer()

	opts := append([]core.GraphOption(nil), j.engine.graphOptions...)
	if j.cmd.Flags().Changed("directed") {
		opts = append(opts, core.WithDirected(j.input.directed))
	}

	switch form {
	case loader.FormIndexed:
		in, err := loader.LoadIndexed(r, opts...)
		if err != nil {
			return errors.Wrapf(err, "load %s", name)
		}
		src, err := pickSource(in, j.input.source, strconv.Atoi)
		if err != nil {
			return err
		}
		j.logLoaded(name, form, in.Graph, src)
		return execute(ctx, j, in.Graph, src)
	case loader.FormLabeled, loader.FormCities:
		load := loader.LoadLabeled
		if form == loader.FormCities {
			load = loader.LoadCities
		}
		in, err := load(r, opts...)
		if err != nil {
			return errors.Wrapf(err, "load %s", name)
		}
		src, err := pickSource(in, j.input.source, func(s string) (string, error) { return core.NormalizeLabel(s), nil })
		if err != nil {
			return err
		}
		j.logLoaded(name, form, in.Graph, src)
		return execute(ctx, j, in.Graph, src)
	default:
		return errors.Wrapf(loader.ErrUnknownForm, "%q", form)
	}
}

// open returns the input named by args, or stdin when args is empty or "-".
func (j *job) open(args []string) (string, io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return "stdin", j.cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return "", nil, nil, errors.Wrap(err, "open input")
	}

	return args[0], f, func() { _ = f.Close() }, nil
}

func (j *job) logLoaded(name string, form loader.Form, g interface {
	VertexCount() int
	EdgeCount() int
	Directed() bool
}, source any) {
	j.app.log.WithFields(log.Fields{
		"input":    name,
		"form":     form,
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
		"directed": g.Directed(),
		"source":   source,
	}).Debug("graph loaded")
}

// pickSource prefers the --source flag over the source named in the input.
func pickSource[K comparable](in *loader.Input[K], flag string, parse func(string) (K, error)) (K, error) {
	if flag != "" {
		src, err := parse(flag)
		if err != nil {
			var zero K
			return zero, errors.Wrapf(err, "invalid --source %q", flag)
		}
		return src, nil
	}
	if !in.HasSource {
		var zero K
		return zero, ErrNoSource
	}

	return in.Source, nil
}
