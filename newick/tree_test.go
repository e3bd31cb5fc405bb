package newick

import (
	"fmt"
	"strings"
	"testing"
)

func TestDivide(t *testing.T) {
	tests := []struct {
		newick      string
		left, right string
	}{
		{"((A,B),(C,D))", "T-0", "T-1"},
		{"((A,B),C)", "T-0", ""},
		{"(A,(B,C))", "", "T-0"},
		{"(A,B)", "", ""},
	}
	for _, test := range tests {
		tree := mustParse(t, test.newick)
		left, right := tree.Divide()
		if left.ID != test.left || right.ID != test.right {
			t.Fatalf("Halves of '%s' should be '%s' and '%s' but we got "+
				"'%s' and '%s'.", test.newick, test.left, test.right,
				left.ID, right.ID)
		}
		if len(left.ID) == 0 {
			if left.LeftLeaf == nil || left.LeftLeaf != tree.LeftLeaf {
				t.Fatalf("Left half of '%s' should hold the left leaf.",
					test.newick)
			}
			if left.Left != nil || left.Right != nil || left.RightLeaf != nil {
				t.Fatalf("Left half of '%s' should only hold a leaf.",
					test.newick)
			}
			if left.Index != 0 || left.Probability != nil {
				t.Fatalf("Left half of '%s' should have no metadata.",
					test.newick)
			}
		}
		if len(right.ID) == 0 {
			if right.RightLeaf == nil || right.RightLeaf != tree.RightLeaf {
				t.Fatalf("Right half of '%s' should hold the right leaf.",
					test.newick)
			}
			if right.Left != nil || right.Right != nil || right.LeftLeaf != nil {
				t.Fatalf("Right half of '%s' should only hold a leaf.",
					test.newick)
			}
		}
	}
}

func TestCheck(t *testing.T) {
	a, b := &Leaf{Value: "A"}, &Leaf{Value: "B"}
	good := &Tree{LeftLeaf: a, RightLeaf: b, Index: 1, ID: "T-0"}
	if err := good.Check(); err != nil {
		t.Fatal(err)
	}

	bad := []*Tree{
		{RightLeaf: b, ID: "T-1"},
		{LeftLeaf: a, ID: "T-1"},
		{Left: good, LeftLeaf: a, RightLeaf: b, ID: "T-1"},
		{LeftLeaf: a, Right: good, RightLeaf: b, ID: "T-1"},
		{LeftLeaf: a, Right: &Tree{LeftLeaf: a, ID: "T-0"}, ID: "T-1"},
	}
	for i, tree := range bad {
		if err := tree.Check(); err == nil {
			t.Fatalf("Expected tree %d to be invalid.", i)
		}
	}

	// Partial trees from Divide are never valid on their own.
	left, _ := mustParse(t, "(A,B)").Divide()
	if err := left.Check(); err == nil {
		t.Fatalf("Expected the left half of '(A,B)' to be invalid.")
	}
}

func TestString(t *testing.T) {
	tree := mustParse(t, "((A:1,B:2)0.5,C)")
	answer := strings.Join([]string{
		"T-1 I 1",
		"  T Left T-0 I 1 P 0.500000",
		"    Left A (1.000000)",
		"    Right B (2.000000)",
		"  Right C",
		"",
	}, "\n")
	if ours := tree.String(); ours != answer {
		t.Fatalf("Expected\n%s\nbut we got\n%s", answer, ours)
	}

	leaf := Leaf{}
	if leaf.String() != "N/A" {
		t.Fatalf("An unnamed leaf should print as 'N/A'.")
	}
}

func ExampleParse() {
	tree, err := Parse("((A:0.1,B:0.2)0.95,C:0.3)")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(tree)
	for _, leaf := range tree.Leaves() {
		fmt.Println(leaf.Value, *leaf.Distance)
	}
	// Output:
	// T-1 I 1
	//   T Left T-0 I 1 P 0.950000
	//     Left A (0.100000)
	//     Right B (0.200000)
	//   Right C (0.300000)
	// A 0.1
	// B 0.2
	// C 0.3
}

func ExampleTree_Divide() {
	tree, err := Parse("((A,B),C)")
	if err != nil {
		fmt.Println(err)
		return
	}
	left, right := tree.Divide()
	fmt.Print(left)
	fmt.Print(right)
	// Output:
	// T-0 I 1
	//   Left A
	//   Right B
	// N/A I 0
	//   Right C
}

func ExampleParse_error() {
	_, err := Parse("(A:1,B:2,C:3)")
	fmt.Println(err)
	// Output:
	// Incorrect Newick format: a clade must have exactly two branches in '(A:1,B:2,C:3)'
}
