package newick

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

const decimalPattern = `[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?`

var (
	// placeholder matches a branch that refers to a previously reduced
	// clade, optionally followed by the clade's branch length.
	placeholder = regexp.MustCompile(`^T-[0-9]+(:` + decimalPattern + `)?$`)

	// decimal matches the numbers accepted as distances and support
	// values. strconv.ParseFloat alone would also accept "NaN", "Inf" and
	// hexadecimal floats.
	decimal = regexp.MustCompile(`^` + decimalPattern + `$`)
)

// Reader corresponds to the state necessary to read a tree from Newick
// formatted input.
type Reader struct {
	// When set, every reduction step is logged at debug level.
	// This may be set at any time.
	Logger *slog.Logger
	input  io.Reader
}

// NewReader returns a reader ready for reading a tree from `r`.
func NewReader(r io.Reader) *Reader {
	return &Reader{input: r}
}

// ReadTree reads all of the remaining input and reduces it to a single
// tree. Blanks and new lines anywhere in the input are ignored. If there is
// no input left, then a nil `Tree` is returned with `io.EOF` as the error.
func (r *Reader) ReadTree() (*Tree, error) {
	bs, err := io.ReadAll(r.input)
	if err != nil {
		return nil, err
	}
	newick := stripBlanks(string(bs))
	if len(newick) == 0 {
		return nil, io.EOF
	}
	return reduce(newick, r.Logger)
}

// Parse reduces a single tree written in Newick format. A trailing ';' is
// not accepted. If the input is malformed, then the error returned is a
// *FormatError and no tree is returned.
//
// It is safe to call Parse from multiple goroutines.
func Parse(newick string) (*Tree, error) {
	return reduce(newick, nil)
}

// reducer holds the state of a single reduction. Trees and their
// identifiers are appended in the order they are built.
type reducer struct {
	work  string
	trees []*Tree
	ids   []string
	used  []bool
	log   *slog.Logger
}

func reduce(newick string, log *slog.Logger) (*Tree, error) {
	r := &reducer{work: newick, log: log}
	if err := r.run(); err != nil {
		return nil, err
	}
	return r.trees[len(r.trees)-1], nil
}

// run reduces the innermost clade of the working string until no
// delimiter is left.
func (r *reducer) run() error {
	if !strings.ContainsRune(r.work, descDelimiter) {
		return formatErr(ErrNoClade, r.work, nil)
	}
	for strings.ContainsRune(r.work, descDelimiter) {
		clade, ok := extractClade(r.work)
		if !ok {
			return formatErr(ErrNoClade, r.work, nil)
		}
		tree, err := r.build(clade)
		if err != nil {
			return err
		}
		if r.log != nil {
			r.log.Debug("reduced clade",
				"working", r.work, "clade", clade, "id", tree.ID)
		}
		r.trees = append(r.trees, tree)
		r.ids = append(r.ids, tree.ID)
		r.used = append(r.used, false)
		r.work = strings.Replace(r.work, clade, tree.ID, 1)
	}

	// Only the root placeholder may be left, with an optional branch length.
	root := r.ids[len(r.ids)-1]
	if branchName(r.work) != root || !isPlaceholder(r.work) {
		return formatErr(ErrUnreduced, r.work, nil)
	}
	return nil
}

// build creates the tree for a single clade. The tree is assigned the next
// placeholder identifier, but it is not recorded.
func (r *reducer) build(clade string) (*Tree, error) {
	branches, support := splitClade(clade)
	if len(branches) != 2 {
		return nil, formatErr(ErrBranchCount, clade, nil)
	}

	tree := &Tree{ID: fmt.Sprintf("T-%d", len(r.trees))}
	if len(support) > 0 {
		prob, err := parseDecimal(support)
		if err != nil {
			return nil, formatErr(ErrNumber, clade, err)
		}
		tree.Probability = &prob
	}

	var err error
	if isPlaceholder(branches[0]) {
		if tree.Left, err = r.lookup(branches[0]); err != nil {
			return nil, err
		}
	} else if tree.LeftLeaf, err = newLeaf(branches[0]); err != nil {
		return nil, err
	}
	if isPlaceholder(branches[1]) {
		if tree.Right, err = r.lookup(branches[1]); err != nil {
			return nil, err
		}
	} else if tree.RightLeaf, err = newLeaf(branches[1]); err != nil {
		return nil, err
	}

	switch {
	case tree.Left != nil && tree.Right != nil:
		tree.Index = tree.Left.Index
		if tree.Right.Index > tree.Index {
			tree.Index = tree.Right.Index
		}
	case tree.Left != nil:
		tree.Index = tree.Left.Index
	case tree.Right != nil:
		tree.Index = tree.Right.Index
	default:
		tree.Index = 1
	}
	return tree, nil
}

// lookup finds the tree previously built for a placeholder branch. The most
// recently assigned identifier wins. Each tree may be claimed by only one
// parent, so a placeholder that was already consumed does not resolve.
func (r *reducer) lookup(branch string) (*Tree, error) {
	name := branchName(branch)
	for i := len(r.ids) - 1; i >= 0; i-- {
		if r.ids[i] != name {
			continue
		}
		if r.used[i] {
			break
		}
		r.used[i] = true
		return r.trees[i], nil
	}
	return nil, formatErr(ErrUnresolved, branch, nil)
}

// newLeaf reads a branch of the form "label[:distance]". Only the part of
// the label before a '-' is kept.
func newLeaf(branch string) (*Leaf, error) {
	pieces := strings.Split(branch, string(lengthStart))
	if len(pieces) > 2 {
		return nil, formatErr(ErrLeafFormat, branch, nil)
	}
	segments := strings.Split(pieces[0], string(labelSuffix))
	if len(segments) > 2 {
		return nil, formatErr(ErrLeafFormat, branch, nil)
	}

	leaf := &Leaf{Value: segments[0]}
	if len(pieces) == 2 {
		distance, err := parseDecimal(pieces[1])
		if err != nil {
			return nil, formatErr(ErrNumber, branch, err)
		}
		leaf.Distance = &distance
	}
	return leaf, nil
}

// parseDecimal reads a finite decimal number, with an optional exponent.
func parseDecimal(s string) (float64, error) {
	if !decimal.MatchString(s) {
		return 0, fmt.Errorf("'%s' is not a decimal number", s)
	}
	return strconv.ParseFloat(s, 64)
}

// isPlaceholder reports whether a branch refers to a reduced clade.
func isPlaceholder(branch string) bool {
	return placeholder.MatchString(branch)
}

// branchName returns the part of a branch before its distance.
func branchName(branch string) string {
	if i := strings.IndexByte(branch, lengthStart); i >= 0 {
		return branch[:i]
	}
	return branch
}
