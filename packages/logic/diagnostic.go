package logic

import (
	"errors"
)

// Diagnostic codes.
const (
	CodeUnbalancedBrackets = "UNBALANCED_BRACKETS"
	CodeUnclosedBracket    = "UNCLOSED_BRACKET"
	CodeDanglingNot        = "DANGLING_NOT"
	CodeMalformedNode      = "MALFORMED_NODE"
	CodeTooManyVariables   = "TOO_MANY_VARIABLES"
	CodeInternal           = "INTERNAL"
)

// Diagnostic is a stable, serializable description of a pipeline failure.
// Pos is the token index in the normalized input, or -1.
type Diagnostic struct {
	Code    string `yaml:"code"`
	Message string `yaml:"message"`
	Pos     int    `yaml:"pos"`
}

// Diagnose classifies err. It returns nil for a nil error.
func Diagnose(err error) *Diagnostic {
	if err == nil {
		return nil
	}
	d := &Diagnostic{Code: CodeInternal, Message: err.Error(), Pos: -1}
	var perr *PositionError
	if errors.As(err, &perr) {
		d.Pos = perr.Pos
	}
	switch {
	case errors.Is(err, ErrUnbalancedBrackets):
		d.Code = CodeUnbalancedBrackets
	case errors.Is(err, ErrUnclosedBracket):
		d.Code = CodeUnclosedBracket
	case errors.Is(err, ErrDanglingNot):
		d.Code = CodeDanglingNot
	case errors.Is(err, ErrMalformedNode):
		d.Code = CodeMalformedNode
	case errors.Is(err, ErrTooManyVariables):
		d.Code = CodeTooManyVariables
	}
	return d
}
