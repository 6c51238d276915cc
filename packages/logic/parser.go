package logic

import (
	"fmt"
)

// Parse converts a folded hierarchy into an AST.
//
// Accepted shapes are a LevelNot node with one nested child, a single raw
// token, a single nested node (unwrapped), and exactly [left, op, right]
// with op a binary operator. Anything else fails with ErrMalformedNode;
// in particular p ∧ q ∧ r needs explicit brackets.
func Parse(h *Hierarchy) (Node, error) {
	if h == nil {
		return nil, malformed(nil, "nil node")
	}
	if h.Level == LevelNot {
		if len(h.Items) != 1 || h.Items[0].Node == nil {
			return nil, malformed(h, "negation must wrap exactly one group")
		}
		operand, err := Parse(h.Items[0].Node)
		if err != nil {
			return nil, err
		}
		return Unary{Operand: operand}, nil
	}

	switch len(h.Items) {
	case 0:
		return nil, malformed(h, "empty group")
	case 1:
		it := h.Items[0]
		if it.Node != nil {
			return Parse(it.Node)
		}
		if _, ok := OperatorOf(it.Token); ok {
			return nil, malformed(h, fmt.Sprintf("operator %q where a variable was expected", it.Token))
		}
		return Literal{Name: it.Token}, nil
	case 3:
		return parseBinary(h)
	default:
		return nil, malformed(h, fmt.Sprintf("expected 1 or 3 items, got %d", len(h.Items)))
	}
}

func parseBinary(h *Hierarchy) (Node, error) {
	left, mid, right := h.Items[0], h.Items[1], h.Items[2]
	if mid.Node != nil {
		return nil, malformed(h, "expected a binary operator between operands, got a group")
	}
	op, ok := OperatorOf(mid.Token)
	if !ok || !op.Binary() {
		return nil, malformed(h, fmt.Sprintf("unrecognized operator %q", mid.Token))
	}
	l, err := Parse(asGroup(left))
	if err != nil {
		return nil, err
	}
	r, err := Parse(asGroup(right))
	if err != nil {
		return nil, err
	}
	return Binary{Op: op, Left: l, Right: r}, nil
}

// asGroup coerces a raw token operand into a singleton node.
func asGroup(it Item) *Hierarchy {
	if it.Node != nil {
		return it.Node
	}
	return &Hierarchy{Level: LevelBracket, Items: []Item{it}}
}

// ParseSentence runs the whole front end: Normalize, BuildHierarchy, Parse.
func ParseSentence(sentence string) (Node, error) {
	h, err := BuildHierarchy(Normalize(sentence))
	if err != nil {
		return nil, err
	}
	return Parse(h)
}
