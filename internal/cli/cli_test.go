package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathfinder/bellmanford"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/internal/cli"
	"github.com/katalvlaran/pathfinder/loader"
)

const (
	socialNetwork = "4 3\nAlice Bob 1\nBob Carol 2\nDave Eve 1\nalice\n"
	gpsMap        = "4 3\n0 1 4\n0 2 1\n2 1 -2\n0\n"
	cycleMap      = "2 2\n0 1 -1\n1 0 -1\n0\n"
	cityMap       = "3\nDhaka\nKhulna\nSylhet\n2\nDhaka Khulna 270\nKhulna Sylhet 200\nDhaka\n"
)

type CLISuite struct {
	suite.Suite
	dir string
	wd  string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

// SetupTest isolates every test from the user's config, .env and environment.
func (s *CLISuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv("HOME", s.dir)
	s.T().Setenv("USERPROFILE", s.dir)
	for _, k := range []string{"PATHFINDER_LOG_LEVEL", "PATHFINDER_LOG_FORMAT", "PATHFINDER_OUTPUT", "PATHFINDER_FORM", "PATHFINDER_TIMEOUT"} {
		s.T().Setenv(k, "")
	}
	wd, err := os.Getwd()
	s.Require().NoError(err)
	s.wd = wd
	s.Require().NoError(os.Chdir(s.dir))
}

func (s *CLISuite) TearDownTest() {
	s.Require().NoError(os.Chdir(s.wd))
}

func (s *CLISuite) writeInput(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	return path
}

// run executes the command line and returns stdout, stderr and the error.
func (s *CLISuite) run(stdin string, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	root := cli.NewRootCommand(context.Background(), "1.2.3")
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func (s *CLISuite) TestDijkstra_LabeledFile() {
	path := s.writeInput("social.txt", socialNetwork)

	out, _, err := s.run("", "dijkstra", path)
	s.Require().NoError(err)
	s.Contains(out, "Shortest distances from alice (dijkstra):\n"+
		"To alice: 0\n"+
		"To bob: 1\n"+
		"To carol: 3\n"+
		"dave is unreachable\n"+
		"eve is unreachable\n")
}

func (s *CLISuite) TestDijkstra_StdinAndSourceFlag() {
	out, _, err := s.run(socialNetwork, "dijkstra", "-s", "CAROL", "--reachable-only")
	s.Require().NoError(err)
	s.Contains(out, "Shortest distances from carol (dijkstra):\n")
	s.Contains(out, "To alice: 3\n")
	s.NotContains(out, "unreachable")
}

func (s *CLISuite) TestDijkstra_DirectedOverride() {
	out, _, err := s.run(socialNetwork, "dijkstra", "--directed", "-s", "carol")
	s.Require().NoError(err)
	s.Contains(out, "alice is unreachable\n")
}

func (s *CLISuite) TestDijkstra_RejectsNegativeWeightWithLine() {
	_, _, err := s.run(gpsMap, "dijkstra", "--form", "indexed")
	s.Require().Error(err)
	s.ErrorIs(err, core.ErrInvalidWeight)
	s.Contains(err.Error(), "line 4")
}

func (s *CLISuite) TestDijkstra_UnknownSource() {
	_, _, err := s.run(socialNetwork, "dijkstra", "-s", "mallory")
	s.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *CLISuite) TestDijkstra_NoSource() {
	_, _, err := s.run("2 1\nA B 1\n", "dijkstra")
	s.ErrorIs(err, cli.ErrNoSource)
}

func (s *CLISuite) TestDijkstra_BadOption() {
	_, _, err := s.run(socialNetwork, "dijkstra", "--max-distance", "-3")
	s.Error(err)
}

func (s *CLISuite) TestDijkstra_MaxDistance() {
	out, _, err := s.run(socialNetwork, "dijkstra", "--max-distance", "2")
	s.Require().NoError(err)
	s.Contains(out, "carol is unreachable\n")
}

func (s *CLISuite) TestBellmanFord_Indexed() {
	out, _, err := s.run(gpsMap, "bellman-ford", "--form", "indexed")
	s.Require().NoError(err)
	s.Contains(out, "To 1: -1\n")
	s.Contains(out, "3 is unreachable\n")
	s.NotContains(out, "negative weight cycle")
}

func (s *CLISuite) TestBellmanFord_NegativeCycle() {
	out, stderr, err := s.run(cycleMap, "bf", "--form", "indexed", "--early-exit")
	s.Require().NoError(err)
	s.Contains(out, "Graph contains negative weight cycle\n")
	s.Contains(stderr, "negative weight cycle reachable from source")

	_, _, err = s.run(cycleMap, "bellman-ford", "--form", "indexed", "--fail-on-cycle")
	s.ErrorIs(err, bellmanford.ErrNegativeCycle)
}

func (s *CLISuite) TestBellmanFord_Cities() {
	out, _, err := s.run(cityMap, "bellman-ford", "--form", "cities")
	s.Require().NoError(err)
	s.Contains(out, "To sylhet: 470\n")
}

func (s *CLISuite) TestCompare_Agree() {
	out, _, err := s.run(socialNetwork, "compare")
	s.Require().NoError(err)
	s.Equal("dijkstra and bellman-ford agree on all 5 vertices from alice\n", out)
}

func (s *CLISuite) TestCompare_NegativeWeights() {
	_, _, err := s.run(gpsMap, "compare", "--form", "indexed")
	s.ErrorIs(err, core.ErrInvalidWeight)
	s.Contains(err.Error(), "compare needs non-negative weights")
}

func (s *CLISuite) TestOutput_JSON() {
	out, _, err := s.run(socialNetwork, "dijkstra", "-o", "json")
	s.Require().NoError(err)

	var doc struct {
		Algorithm string `json:"algorithm"`
		Source    string `json:"source"`
		Distances []struct {
			Vertex   string `json:"vertex"`
			Distance *int64 `json:"distance"`
		} `json:"distances"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &doc))
	s.Equal("dijkstra", doc.Algorithm)
	s.Equal("alice", doc.Source)
	s.Len(doc.Distances, 5)
	s.Nil(doc.Distances[4].Distance)
}

func (s *CLISuite) TestOutput_FromEnvAndConfig() {
	s.T().Setenv("PATHFINDER_OUTPUT", "yaml")
	out, _, err := s.run(socialNetwork, "dijkstra")
	s.Require().NoError(err)
	s.Contains(out, "algorithm: dijkstra\n")

	cfg := s.writeInput("cfg.yaml", "output: json\nform: indexed\n")
	s.T().Setenv("PATHFINDER_OUTPUT", "")
	out, _, err = s.run(gpsMap, "bellman-ford", "--config", cfg)
	s.Require().NoError(err)
	s.Contains(out, `"algorithm": "bellman-ford"`)
}

func (s *CLISuite) TestInvalidOutputFlag() {
	_, _, err := s.run(socialNetwork, "dijkstra", "-o", "xml")
	s.Error(err)
}

func (s *CLISuite) TestUnknownForm() {
	_, _, err := s.run(socialNetwork, "dijkstra", "--form", "csv")
	s.ErrorIs(err, loader.ErrUnknownForm)
}

func (s *CLISuite) TestMissingFile() {
	_, _, err := s.run("", "dijkstra", filepath.Join(s.dir, "nope.txt"))
	s.Error(err)
	s.Contains(err.Error(), "open input")
}

func (s *CLISuite) TestVerboseLogsToStderr() {
	out, stderr, err := s.run(socialNetwork, "dijkstra", "-v", "--log-format", "json")
	s.Require().NoError(err)
	s.NotContains(out, "graph loaded")
	s.Contains(stderr, `"msg":"graph loaded"`)
	s.Contains(stderr, `"msg":"run complete"`)
}

func (s *CLISuite) TestVersion() {
	out, _, err := s.run("", "version")
	s.Require().NoError(err)
	s.Equal("pathfinder 1.2.3\n", out)
}

func TestNewRootCommand_Commands(t *testing.T) {
	root := cli.NewRootCommand(context.Background(), "")
	assert.Equal(t, "dev", root.Version)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.Subset(t, names, []string{"dijkstra", "bellman-ford", "compare", "generate", "version"})
}

func (s *CLISuite) TestGenerate_PipesIntoCompare() {
	graph, _, err := s.run("", "generate", "--shape", "random", "-n", "12", "-p", "0.3", "--seed", "9")
	s.Require().NoError(err)
	s.True(strings.HasPrefix(graph, "12 "))

	out, _, err := s.run(graph, "compare", "--form", "indexed")
	s.Require().NoError(err)
	s.Equal("dijkstra and bellman-ford agree on all 12 vertices from 0\n", out)
}

func (s *CLISuite) TestGenerate_Grid() {
	graph, _, err := s.run("", "generate", "--shape", "grid", "--rows", "2", "--cols", "3",
		"--undirected", "--min-weight", "4", "--max-weight", "4", "-s", "5")
	s.Require().NoError(err)
	// 7 undirected edges written as 14 arcs
	s.True(strings.HasPrefix(graph, "6 14\n0 1 4\n1 0 4\n"))
	s.True(strings.HasSuffix(graph, "\n5\n"))
}

func (s *CLISuite) TestGenerate_Errors() {
	_, _, err := s.run("", "generate", "--shape", "hexagram")
	s.ErrorIs(err, cli.ErrUnknownShape)

	_, _, err = s.run("", "generate", "--shape", "path", "-n", "1")
	s.Error(err)

	_, _, err = s.run("", "generate", "--min-weight", "5", "--max-weight", "1")
	s.Error(err)

	_, _, err = s.run("", "generate", "-n", "3", "-s", "3")
	s.ErrorIs(err, core.ErrVertexNotFound)
}
