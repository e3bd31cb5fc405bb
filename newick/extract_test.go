package newick

import (
	"testing"
)

func TestExtractClade(t *testing.T) {
	tests := []struct {
		text  string
		clade string
	}{
		{"(A:1,B:2)", "(A:1,B:2)"},
		{"((A:1,B:2):3,C:4)", "(A:1,B:2)"},
		{"(T-0:3,C:4)", "(T-0:3,C:4)"},
		{"(A,(B,C))", "(B,C)"},
		{"(A,T-0)", "(A,T-0)"},
		{"((A,B)0.9,C)", "(A,B)0.9"},
		{"((A,B)0.95:0.01,C)", "(A,B)0.95"},
		{"(A,(B,C)0.5)", "(B,C)0.5"},
		{"(A,B)1.0", "(A,B)1.0"},
		{"((A,B),(C,D))", "(A,B)"},
		{"(T-0,(C,D))", "(C,D)"},
	}
	for _, test := range tests {
		clade, ok := extractClade(test.text)
		if !ok {
			t.Fatalf("No clade found in '%s'.", test.text)
		}
		if clade != test.clade {
			t.Fatalf("Clade of '%s' should be '%s' but we got '%s'.",
				test.text, test.clade, clade)
		}
	}
}

func TestExtractCladeNone(t *testing.T) {
	for _, text := range []string{"", "A", "A,B", "(A,B", "A,B)", ")A,B("} {
		if clade, ok := extractClade(text); ok {
			t.Fatalf("Expected no clade in '%s' but got '%s'.", text, clade)
		}
	}
}

func TestSplitClade(t *testing.T) {
	branches, support := splitClade("(A:1,T-3:0.5)0.75")
	if len(branches) != 2 {
		t.Fatalf("Expected 2 branches but got %d.", len(branches))
	}
	if branches[0] != "A:1" || branches[1] != "T-3:0.5" {
		t.Fatalf("Unexpected branches %q.", branches)
	}
	if support != "0.75" {
		t.Fatalf("Support should be '0.75' but we got '%s'.", support)
	}

	_, support = splitClade("(A,B)")
	if len(support) != 0 {
		t.Fatalf("Expected no support but got '%s'.", support)
	}
}

func TestStripBlanks(t *testing.T) {
	got := stripBlanks(" (A:1,\n\tB:2)\r\n")
	if got != "(A:1,B:2)" {
		t.Fatalf("Expected '(A:1,B:2)' but got '%s'.", got)
	}
}
