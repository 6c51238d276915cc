package logic

import (
	"errors"
	"testing"
)

func TestEvaluateConnectives(t *testing.T) {
	p, q := Literal{Name: 'p'}, Literal{Name: 'q'}
	tests := []struct {
		op   Operator
		want [4]bool // (F,F) (T,F) (F,T) (T,T)
	}{
		{OpAnd, [4]bool{false, false, false, true}},
		{OpOr, [4]bool{false, true, true, true}},
		{OpImpl, [4]bool{true, false, true, true}},
		{OpEq, [4]bool{true, false, false, true}},
	}
	for _, tt := range tests {
		n := Binary{Op: tt.op, Left: p, Right: q}
		for i, want := range tt.want {
			m := Model{'p': i&1 == 1, 'q': i&2 == 2}
			if got := Evaluate(n, m); got != want {
				t.Fatalf("%s under %s: got %v, want %v", tt.op, m.Format([]rune("pq")), got, want)
			}
		}
	}
}

func TestEvaluateNegation(t *testing.T) {
	n := Unary{Operand: Literal{Name: 'p'}}
	if Evaluate(n, Model{'p': true}) {
		t.Fatalf("~p should be false when p is true")
	}
	if !Evaluate(n, Model{'p': false}) {
		t.Fatalf("~p should be true when p is false")
	}
}

func TestEvaluateMissingVariableIsFalse(t *testing.T) {
	if Evaluate(Literal{Name: 'z'}, Model{'p': true}) {
		t.Fatalf("expected unassigned variable to be false")
	}
	if !Evaluate(Unary{Operand: Literal{Name: 'z'}}, nil) {
		t.Fatalf("expected ~z to hold under an empty model")
	}
}

func TestEvaluateUnknownOperatorPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownOperator) {
			t.Fatalf("expected panic wrapping ErrUnknownOperator, got %v", r)
		}
	}()
	Evaluate(Binary{Op: Operator(99), Left: Literal{Name: 'p'}, Right: Literal{Name: 'q'}}, Model{})
}
