package diagfmt

import (
	"fmt"
	"io"

	"ucc/internal/ast"
)

// Tree writes an indented dump of the tree rooted at prog, one node per
// line with its computed type where one has been attached. Useful for
// inspecting what analysis actually resolved.
func Tree(w io.Writer, prog *ast.Program) {
	writeTree(w, prog, "")
}

func writeTree(w io.Writer, n ast.Node, indent string) {
	kids := children(n)
	if len(kids) == 0 {
		fmt.Fprintf(w, "%s%s\n", indent, label(n))
		return
	}
	fmt.Fprintf(w, "%s%s {\n", indent, label(n))
	for _, c := range kids {
		writeTree(w, c, indent+"  ")
	}
	fmt.Fprintf(w, "%s}\n", indent)
}
