// Command newicktree reduces Newick trees and prints them.
//
// Each file given is read as a single tree. With no files, the tree is read
// from stdin, unless stdin is a terminal. Files are reduced concurrently,
// but printed in the order given. If any input is malformed, nothing is
// printed and the exit status is 1.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/TuftsBCB/newick/internal/config"
	"github.com/TuftsBCB/newick/internal/render"
	"github.com/TuftsBCB/newick/newick"
)

var (
	flagConfig  = ""
	flagExpr    = ""
	flagFormat  = ""
	flagDivide  = false
	flagTrace   = false
	flagWorkers = 0
	flagWidth   = 0
)

func init() {
	log.SetFlags(0)

	flag.StringVar(&flagConfig, "config", flagConfig,
		"A YAML file with settings. Flags override its values.")
	flag.StringVar(&flagExpr, "e", flagExpr,
		"Reduce this Newick tree instead of reading files.")
	flag.StringVar(&flagFormat, "format", flagFormat,
		"The output format: "+strings.Join(config.Formats, ", ")+".")
	flag.BoolVar(&flagDivide, "divide", flagDivide,
		"When set, print the two halves of each tree instead of the tree.")
	flag.BoolVar(&flagTrace, "trace", flagTrace,
		"When set, every reduction step is logged to stderr.")
	flag.IntVar(&flagWorkers, "workers", flagWorkers,
		"The number of inputs to reduce at the same time.")
	flag.IntVar(&flagWidth, "width", flagWidth,
		"The width of separators in text output.")
	flag.Usage = usage
}

// input is a single tree to reduce.
type input struct {
	name string
	open func() (io.ReadCloser, error)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		log.Fatalf("%s", err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %s", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))

	inputs := collectInputs()
	trees := make([]*newick.Tree, len(inputs))

	g := new(errgroup.Group)
	g.SetLimit(cfg.Workers)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			tree, err := readTree(in, cfg.Trace, logger)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			trees[i] = tree
			logger.Info("tree reduced",
				"input", in.name, "clades", tree.Len())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("%s", err)
	}

	width := cfg.Width
	if width == 0 {
		width = render.TerminalWidth(os.Stdout)
	}
	out, err := renderAll(cfg, width, inputs, trees)
	if err != nil {
		log.Fatalf("%s", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatalf("%s", err)
	}
}

// renderAll renders every tree before anything is written, so that a
// failure leaves no partial output.
func renderAll(cfg *config.Config, width int, inputs []input,
	trees []*newick.Tree) ([]byte, error) {
	buf := new(bytes.Buffer)
	r, err := render.New(buf, cfg.Format, width)
	if err != nil {
		return nil, err
	}
	for i, tree := range trees {
		doc := render.Document{Name: inputs[i].name}
		if cfg.Divide {
			left, right := tree.Divide()
			doc.Trees = []*newick.Tree{left, right}
		} else {
			doc.Trees = []*newick.Tree{tree}
		}
		if err := r.Render(doc); err != nil {
			return nil, fmt.Errorf("%s: %w", inputs[i].name, err)
		}
	}
	if err := r.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func readTree(in input, trace bool, logger *slog.Logger) (*newick.Tree, error) {
	rc, err := in.open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r := newick.NewReader(rc)
	if trace {
		r.Logger = logger.With("input", in.name)
	}
	tree, err := r.ReadTree()
	if err == io.EOF {
		return nil, fmt.Errorf("no tree found")
	}
	return tree, err
}

// applyFlags overrides settings with the flags given on the command line.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = flagFormat
		case "divide":
			cfg.Divide = flagDivide
		case "trace":
			cfg.Trace = flagTrace
		case "workers":
			cfg.Workers = flagWorkers
		case "width":
			cfg.Width = flagWidth
		}
	})
}

func collectInputs() []input {
	if len(flagExpr) > 0 {
		return []input{{
			name: "-e",
			open: func() (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader(flagExpr)), nil
			},
		}}
	}
	if flag.NArg() == 0 {
		// Don't wait on someone typing a tree.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			usage()
		}
		return []input{{
			name: "stdin",
			open: func() (io.ReadCloser, error) {
				return io.NopCloser(os.Stdin), nil
			},
		}}
	}

	inputs := make([]input, flag.NArg())
	for i, name := range flag.Args() {
		name := name
		inputs[i] = input{
			name: name,
			open: func() (io.ReadCloser, error) {
				return os.Open(name)
			},
		}
	}
	return inputs
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] [ newick-file ... ]\n",
		path.Base(os.Args[0]))
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nex. './%s -e \"((A:1,B:2)0.9,C:3)\"'\n",
		path.Base(os.Args[0]))
	os.Exit(1)
}
