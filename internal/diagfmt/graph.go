package diagfmt

import (
	"fmt"
	"io"

	"ucc/internal/ast"
)

// Graph writes the tree rooted at prog as a Graphviz digraph. Nodes are
// keyed by their builder-assigned IDs, so the output is stable across
// runs for the same input.
func Graph(w io.Writer, prog *ast.Program) {
	fmt.Fprintln(w, "digraph ucast {")
	fmt.Fprintln(w, "  node [shape=box, fontname=\"monospace\"];")
	writeGraph(w, prog)
	fmt.Fprintln(w, "}")
}

func writeGraph(w io.Writer, n ast.Node) {
	fmt.Fprintf(w, "  n%d [label=%q];\n", n.ID(), label(n))
	for _, c := range children(n) {
		fmt.Fprintf(w, "  n%d -> n%d;\n", n.ID(), c.ID())
		writeGraph(w, c)
	}
}
