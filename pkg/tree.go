package exprc

import "strings"

const treeIndent = "  "

// PrintTree renders the syntax tree one node per line, children indented
// one level below their operator. The traversal is fixed: operator first,
// then left subtree, then right.
func PrintTree(expr Expr) string {
	if expr == nil {
		return "(empty)"
	}

	var b strings.Builder
	printNode(&b, expr, 0)

	return b.String()
}

func printNode(b *strings.Builder, expr Expr, depth int) {
	writeLine := func(text string) {
		b.WriteString(strings.Repeat(treeIndent, depth))
		b.WriteString(text)
		b.WriteByte('\n')
	}

	switch e := expr.(type) {
	case *BinaryExpr:
		writeLine(string(e.Operation))
		printNode(b, e.Op1, depth+1)
		printNode(b, e.Op2, depth+1)
	case *UnaryExpr:
		writeLine(string(e.Operation))
		printNode(b, e.Operand, depth+1)
	case *LiteralExpr:
		writeLine(e.Value)
	case *Identifier:
		writeLine(e.Name)
	}
}
