package newick

import (
	"bytes"
	"fmt"
	"strings"
)

// Leaf corresponds to a single taxon in a tree.
type Leaf struct {
	// The taxon label. If it's empty, then this leaf does not have a name.
	Value string `yaml:"value" json:"value"`

	// The branch length between this leaf and its parent node. If it's
	// `nil`, then no distance exists.
	Distance *float64 `yaml:"distance,omitempty" json:"distance,omitempty"`

	// Index is bookkeeping carried over from the reduction and is always 0.
	Index int `yaml:"-" json:"-"`
}

// String returns the label of the leaf followed by its distance, if one
// exists.
func (l Leaf) String() string {
	name := l.Value
	if len(name) == 0 {
		name = "N/A"
	}
	if l.Distance != nil {
		return fmt.Sprintf("%s (%f)", name, *l.Distance)
	}
	return name
}

// Tree corresponds to a single clade in a Newick tree. Each side of a clade
// is either another clade or a leaf: exactly one of Left and LeftLeaf is
// set, and exactly one of Right and RightLeaf is set. The only exception are
// the partial trees returned by Divide.
//
// A Tree is never modified after it has been built.
type Tree struct {
	Left      *Tree `yaml:"left,omitempty" json:"left,omitempty"`
	Right     *Tree `yaml:"right,omitempty" json:"right,omitempty"`
	LeftLeaf  *Leaf `yaml:"left_leaf,omitempty" json:"left_leaf,omitempty"`
	RightLeaf *Leaf `yaml:"right_leaf,omitempty" json:"right_leaf,omitempty"`

	// The support value written directly after the closing parenthesis of
	// this clade. If it's `nil`, then no value was given.
	Probability *float64 `yaml:"probability,omitempty" json:"probability,omitempty"`

	// Index is 1 for a clade of two leaves. Otherwise it is the largest
	// Index of its child clades.
	Index int `yaml:"index" json:"index"`

	// The placeholder identifier ("T-<n>") assigned to this clade when it
	// was reduced.
	ID string `yaml:"id,omitempty" json:"id,omitempty"`
}

// String recursively converts a tree to a string, with whitespace indenting
// to indicate depth.
func (tree *Tree) String() string {
	buf := new(bytes.Buffer)
	pf := func(format string, v ...interface{}) {
		fmt.Fprintf(buf, format, v...)
	}

	var out func(t *Tree, depth int)
	out = func(t *Tree, depth int) {
		indent := strings.Repeat("  ", depth)
		if t.LeftLeaf != nil {
			pf("%sLeft %s\n", indent, t.LeftLeaf)
		} else if t.Left != nil {
			pf("%sT Left %s I %d%s\n",
				indent, t.Left.ID, t.Left.Index, probString(t.Left))
			out(t.Left, depth+1)
		}
		if t.RightLeaf != nil {
			pf("%sRight %s\n", indent, t.RightLeaf)
		} else if t.Right != nil {
			pf("%sT Right %s I %d%s\n",
				indent, t.Right.ID, t.Right.Index, probString(t.Right))
			out(t.Right, depth+1)
		}
	}

	name := tree.ID
	if len(name) == 0 {
		name = "N/A"
	}
	pf("%s I %d%s\n", name, tree.Index, probString(tree))
	out(tree, 1)
	return buf.String()
}

func probString(t *Tree) string {
	if t.Probability == nil {
		return ""
	}
	return fmt.Sprintf(" P %f", *t.Probability)
}

// Divide returns the two sides of a tree as standalone trees. A side that is
// a clade is returned as is. A side that is a leaf is wrapped in a partial
// tree holding only that leaf (in LeftLeaf for the left side and in
// RightLeaf for the right side), with no identifier and a zero Index.
func (tree *Tree) Divide() (*Tree, *Tree) {
	left, right := tree.Left, tree.Right
	if left == nil {
		left = &Tree{LeftLeaf: tree.LeftLeaf}
	}
	if right == nil {
		right = &Tree{RightLeaf: tree.RightLeaf}
	}
	return left, right
}

// Leaves returns all leaves of the tree in left-to-right order.
func (tree *Tree) Leaves() []Leaf {
	leaves := make([]Leaf, 0)
	var walk func(t *Tree)
	walk = func(t *Tree) {
		if t.LeftLeaf != nil {
			leaves = append(leaves, *t.LeftLeaf)
		} else if t.Left != nil {
			walk(t.Left)
		}
		if t.RightLeaf != nil {
			leaves = append(leaves, *t.RightLeaf)
		} else if t.Right != nil {
			walk(t.Right)
		}
	}
	walk(tree)
	return leaves
}

// Len returns the number of clades in the tree, including the tree itself.
func (tree *Tree) Len() int {
	n := 1
	if tree.Left != nil {
		n += tree.Left.Len()
	}
	if tree.Right != nil {
		n += tree.Right.Len()
	}
	return n
}

// Check verifies that every clade reachable from tree has exactly one
// subtree or leaf on each side. The first violation found is returned.
func (tree *Tree) Check() error {
	if (tree.Left == nil) == (tree.LeftLeaf == nil) {
		return fmt.Errorf("Clade '%s' must have exactly one of a left "+
			"subtree or a left leaf.", tree.ID)
	}
	if (tree.Right == nil) == (tree.RightLeaf == nil) {
		return fmt.Errorf("Clade '%s' must have exactly one of a right "+
			"subtree or a right leaf.", tree.ID)
	}
	if tree.Left != nil {
		if err := tree.Left.Check(); err != nil {
			return err
		}
	}
	if tree.Right != nil {
		if err := tree.Right.Check(); err != nil {
			return err
		}
	}
	return nil
}
