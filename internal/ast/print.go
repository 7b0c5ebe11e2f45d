package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print renders root depth-first, child-labeled (S/L/M/R), four-space
// indent per depth level — the print_ast debug API named in spec.md
// §6. Grounded on original_source/ast.c's PrintAST/PrintASTRecurse.
func Print(w io.Writer, root *Node) {
	printRecurse(w, root, 0, 'S')
}

func printRecurse(w io.Writer, n *Node, depth int, label byte) {
	if n == nil {
		return
	}

	indent := strings.Repeat(" ", depth*4)
	if n.Token.Lexeme == "" {
		fmt.Fprintf(w, "%s%c: <%s>\n", indent, label, n.Kind)
	} else {
		fmt.Fprintf(w, "%s%c: %s\n", indent, label, n.Token.Lexeme)
	}

	printRecurse(w, n.Left(), depth+1, 'L')
	printRecurse(w, n.Middle(), depth+1, 'M')
	printRecurse(w, n.Right(), depth+1, 'R')
}
