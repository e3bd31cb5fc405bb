/*
Package newick provides facilities for reading binary trees in the Newick
format. The format used is roughly equivalent to the conventions established
here: http://evolution.genetics.washington.edu/phylip/newick_doc.html.
Comments, quoted labels, internal node labels and multi-tree input are not
supported.

Trees are read by reduction rather than by recursive descent. The innermost
clade of the input, i.e., the leftmost "(X,Y)" group that contains no other
group, is parsed into a Tree and its text is replaced in the input by a
placeholder identifier of the form "T-<n>". The enclosing clade then refers
to that placeholder as one of its branches, and so on, until the whole input
has collapsed to a single placeholder. The last tree built is the root.

Every clade must have exactly two branches. A branch is either a leaf,
written as "label[:distance]", or a clade. A clade may carry a single
support (probability) value directly after its closing parenthesis:

	((A:0.1,B:0.2)0.95:0.5,C:0.3)

Note that the branch length following a clade's support value (0.5 above)
is accepted but not retained.

An informal description of the Newick format can be found here:
http://evolution.genetics.washington.edu/phylip/newicktree.html.
*/
package newick
