package logic

import (
	"fmt"
	"strings"
)

// Stringify renders n in canonical form: a literal as its rune, a negation
// as "~" directly followed by its operand, and a binary node as
// "(left op right)". The output parses back to an identical AST.
func Stringify(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case Literal:
		b.WriteRune(n.Name)
	case Unary:
		b.WriteRune(SymNot)
		writeNode(b, n.Operand)
	case Binary:
		b.WriteByte('(')
		writeNode(b, n.Left)
		b.WriteByte(' ')
		b.WriteRune(n.Op.Symbol())
		b.WriteByte(' ')
		writeNode(b, n.Right)
		b.WriteByte(')')
	default:
		panic(fmt.Errorf("%w: node %T", ErrUnknownOperator, n))
	}
}

// FormatTree draws n as an indented tree, one node per line:
//
//	IMPL
//	├── VAR(p)
//	└── NOT
//	    └── VAR(q)
func FormatTree(n Node) string {
	var lines []string
	var walk func(n Node, prefix string, last, root bool)
	walk = func(n Node, prefix string, last, root bool) {
		var label string
		var children []Node
		switch n := n.(type) {
		case Literal:
			label = "VAR(" + string(n.Name) + ")"
		case Unary:
			label = OpNot.String()
			children = []Node{n.Operand}
		case Binary:
			label = n.Op.String()
			children = []Node{n.Left, n.Right}
		default:
			return
		}
		childPrefix := ""
		if root {
			lines = append(lines, label)
		} else {
			lines = append(lines, prefix+treeConnector(last)+label)
			childPrefix = prefix + treeIndent(last)
		}
		for i, c := range children {
			walk(c, childPrefix, i == len(children)-1, false)
		}
	}
	walk(n, "", true, true)
	return strings.Join(lines, "\n")
}

func treeConnector(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func treeIndent(last bool) string {
	if last {
		return "    "
	}
	return "│   "
}
