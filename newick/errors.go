package newick

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every error returned while reducing a tree.
// Use errors.Is(err, ErrFormat) to test for it, or errors.As with a
// *FormatError to inspect the kind of failure and the offending text.
var ErrFormat = errors.New("Incorrect Newick format")

// ErrorKind classifies a FormatError.
type ErrorKind int

const (
	// A clade does not have exactly two comma separated branches.
	ErrBranchCount ErrorKind = iota + 1

	// A leaf has more than one distance field or more than one '-'
	// separated suffix in its label.
	ErrLeafFormat

	// A distance or support value is not a decimal number.
	ErrNumber

	// A branch names a placeholder that was never assigned.
	ErrUnresolved

	// The input has no clade to reduce.
	ErrNoClade

	// Text is left around the root after all clades have been reduced.
	// (e.g., a one-branch outer clade or an unmatched ')'.)
	ErrUnreduced
)

func (kind ErrorKind) String() string {
	switch kind {
	case ErrBranchCount:
		return "a clade must have exactly two branches"
	case ErrLeafFormat:
		return "malformed leaf"
	case ErrNumber:
		return "invalid number"
	case ErrUnresolved:
		return "unresolved subtree"
	case ErrNoClade:
		return "no clade found"
	case ErrUnreduced:
		return "input does not reduce to a single tree"
	}
	panic(fmt.Sprintf("BUG: Unknown error kind '%d'.", int(kind)))
}

// FormatError is returned when the input is not a tree this package can
// reduce. No tree is ever returned along with a FormatError.
type FormatError struct {
	Kind ErrorKind

	// The clade, branch or value that could not be read.
	Text string

	// The underlying error, if any. (e.g., from strconv.)
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s in '%s': %s", ErrFormat, e.Kind, e.Text, e.Err)
	}
	return fmt.Sprintf("%s: %s in '%s'", ErrFormat, e.Kind, e.Text)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatErr(kind ErrorKind, text string, err error) error {
	return &FormatError{Kind: kind, Text: text, Err: err}
}
