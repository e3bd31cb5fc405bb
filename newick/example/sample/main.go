// Example sample shows how to reduce a Newick tree and split it into its two
// halves.
package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/TuftsBCB/newick/newick"
)

const sampleTree = "(((((1544310:0.00081,49435:0.0033):0.00014,347846:0.00081)" +
	":0.00014,562859:0.00079):0.00078,109254:0.00161):0.0056,140691:0.00399)"

func main() {
	trees := flag.Args()
	if len(trees) == 0 {
		trees = []string{sampleTree}
	}
	for _, s := range trees {
		// newick.Parse will return an error if 's' is not a tree of
		// two-branch clades.
		tree, err := newick.Parse(s)
		if err != nil {
			fmt.Println(s)
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("%s\n%s--------------------------\n", s, tree)

		left, right := tree.Divide()
		fmt.Printf("Left half:\n%s", left)
		fmt.Printf("Right half:\n%s--------------------------\n", right)
	}
}

func init() {
	flag.Usage = usage
	flag.Parse()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [ newick-tree ... ]\n",
		path.Base(os.Args[0]))
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nex. './%s \"((A:1,B:2)0.9,C:3)\"'\n",
		path.Base(os.Args[0]))
	os.Exit(1)
}
