package logic

import (
	"errors"
	"fmt"
)

var (
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
	ErrUnclosedBracket    = errors.New("unclosed bracket")
	ErrDanglingNot        = errors.New("dangling negation")
	ErrMalformedNode      = errors.New("malformed node")
	ErrTooManyVariables   = errors.New("too many variables")

	// ErrUnknownOperator signals a broken internal invariant: an operator
	// or node type that the evaluator does not handle.
	ErrUnknownOperator = errors.New("unknown operator")
)

// PositionError reports a failure tied to one token of the normalized input.
// Pos is the index of that token in the sequence returned by Normalize.
type PositionError struct {
	Err   error
	Pos   int
	Token rune
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s: %q at position %d", e.Err, e.Token, e.Pos)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

// NodeError reports a hierarchy node that has none of the accepted shapes.
type NodeError struct {
	Err    error
	Node   *Hierarchy
	Reason string
}

func (e *NodeError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("%s: %s", e.Err, e.Reason)
	}
	return fmt.Sprintf("%s: %s in %s", e.Err, e.Reason, e.Node)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

func malformed(h *Hierarchy, reason string) error {
	return &NodeError{Err: ErrMalformedNode, Node: h, Reason: reason}
}
