package logic

import (
	"fmt"
)

// Evaluate returns the truth value of n under m.
//
// A variable missing from m is false. Both operands of a binary node are
// always evaluated. Evaluate panics with an error wrapping
// ErrUnknownOperator if n is not a well-formed AST, which Parse never
// produces.
func Evaluate(n Node, m Model) bool {
	switch n := n.(type) {
	case Literal:
		return m[n.Name]
	case Unary:
		return !Evaluate(n.Operand, m)
	case Binary:
		l := Evaluate(n.Left, m)
		r := Evaluate(n.Right, m)
		switch n.Op {
		case OpAnd:
			return l && r
		case OpOr:
			return l || r
		case OpImpl:
			return !l || r
		case OpEq:
			return l == r
		}
		panic(fmt.Errorf("%w: %v", ErrUnknownOperator, n.Op))
	default:
		panic(fmt.Errorf("%w: node %T", ErrUnknownOperator, n))
	}
}
