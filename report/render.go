package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Format selects how Render writes a Report.
type Format string

const (
	// FormatText prints one line per vertex in plain prose.
	FormatText Format = "text"
	// FormatTable prints a bordered table, intended for terminals.
	FormatTable Format = "table"
	// FormatJSON prints an indented JSON document.
	FormatJSON Format = "json"
	// FormatYAML prints a YAML document.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format name Render does not support.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON, FormatYAML}
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// document is the serialized shape of a Report.
type document struct {
	Algorithm     string `json:"algorithm" yaml:"algorithm"`
	Source        string `json:"source" yaml:"source"`
	Directed      bool   `json:"directed" yaml:"directed"`
	NegativeCycle bool   `json:"negative_cycle" yaml:"negative_cycle"`
	ElapsedMicros int64  `json:"elapsed_us" yaml:"elapsed_us"`
	Distances     []Row  `json:"distances" yaml:"distances"`
}

func (r *Report) document() document {
	return document{
		Algorithm:     r.Algorithm,
		Source:        r.Source,
		Directed:      r.Directed,
		NegativeCycle: r.NegativeCycle,
		ElapsedMicros: r.Elapsed.Microseconds(),
		Distances:     r.Rows,
	}
}

// Render writes r to w in format f.
func Render(w io.Writer, r *Report, f Format) error {
	switch f {
	case FormatText, "":
		return renderText(w, r)
	case FormatTable:
		return renderTable(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.document())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.document()); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

func renderText(w io.Writer, r *Report) error {
	var b strings.Builder
	if r.NegativeCycle {
		b.WriteString("Graph contains negative weight cycle\n")
	}
	fmt.Fprintf(&b, "Shortest distances from %s (%s):\n", r.Source, r.Algorithm)
	for _, row := range r.Rows {
		if row.Reachable() {
			fmt.Fprintf(&b, "To %s: %d\n", row.Vertex, *row.Distance)
		} else {
			fmt.Fprintf(&b, "%s is unreachable\n", row.Vertex)
		}
	}
	if r.Elapsed > 0 {
		fmt.Fprintf(&b, "Time taken: %d microseconds\n", r.Elapsed.Microseconds())
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// Table styles.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")).Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f"))
)

func renderTable(w io.Writer, r *Report) error {
	rows := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		d := "unreachable"
		if row.Reachable() {
			d = strconv.FormatInt(*row.Distance, 10)
		}
		rows[i] = []string{row.Vertex, d}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff9f"))).
		Headers("VERTEX", "DISTANCE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case !r.Rows[row].Reachable():
				return dimStyle
			default:
				return cellStyle
			}
		})

	var b strings.Builder
	fmt.Fprintf(&b, "%s from %s\n", r.Algorithm, r.Source)
	if r.NegativeCycle {
		b.WriteString(warnStyle.Render("negative weight cycle detected; distances are unreliable"))
		b.WriteByte('\n')
	}
	b.WriteString(t.Render())
	b.WriteByte('\n')
	if r.Elapsed > 0 {
		b.WriteString(dimStyle.UnsetPadding().Render(fmt.Sprintf("took %s", r.Elapsed)))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}
