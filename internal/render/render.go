// Package render writes reduced Newick trees in one of the output formats
// of the newicktree command.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/TuftsBCB/newick/newick"
)

// DefaultWidth is the width of separators in text output when the output
// is not a terminal.
const DefaultWidth = 26

// Document is a single rendered input: either the whole tree, or its two
// halves when the tree was divided.
type Document struct {
	Name  string         `yaml:"name" json:"name"`
	Trees []*newick.Tree `yaml:"trees" json:"trees"`
}

// A Renderer writes documents to an io.Writer. Documents written with
// Render are separated according to the format.
type Renderer struct {
	format string
	width  int
	w      io.Writer
	yaml   *yaml.Encoder
	json   *json.Encoder
}

// New returns a renderer for format, which must be one of "text", "yaml"
// or "json". Width sets the width of separators in text output. If width
// is zero, then the terminal width of w is used, if w is a terminal.
func New(w io.Writer, format string, width int) (*Renderer, error) {
	r := &Renderer{format: format, width: width, w: w}
	switch format {
	case "text":
		if r.width <= 0 {
			r.width = TerminalWidth(w)
		}
	case "yaml":
		r.yaml = yaml.NewEncoder(w)
		r.yaml.SetIndent(2)
	case "json":
		r.json = json.NewEncoder(w)
		r.json.SetIndent("", "  ")
	default:
		return nil, fmt.Errorf("unknown output format '%s'", format)
	}
	return r, nil
}

// Render writes a single document.
func (r *Renderer) Render(doc Document) error {
	switch {
	case r.yaml != nil:
		return r.yaml.Encode(doc)
	case r.json != nil:
		return r.json.Encode(doc)
	}

	buf := new(strings.Builder)
	fmt.Fprintf(buf, "%s\n", doc.Name)
	for _, tree := range doc.Trees {
		buf.WriteString(tree.String())
		buf.WriteString(strings.Repeat("-", r.width))
		buf.WriteByte('\n')
	}
	_, err := io.WriteString(r.w, buf.String())
	return err
}

// Close flushes any pending output. The underlying writer is not closed.
func (r *Renderer) Close() error {
	if r.yaml != nil {
		return r.yaml.Close()
	}
	return nil
}

// TerminalWidth returns the width of w if it is a terminal, and DefaultWidth
// otherwise.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return DefaultWidth
}
