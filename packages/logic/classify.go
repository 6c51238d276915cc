package logic

import (
	"fmt"
)

// Classification is the verdict for a sentence.
type Classification int

const (
	Contingent Classification = iota
	Tautology
	Contradiction
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	case Contingent:
		return "contingent"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Analysis is the outcome of enumerating the models of one AST.
type Analysis struct {
	Variables      []rune
	Classification Classification
	// Witness is the first model that satisfies the sentence; nil for a
	// contradiction.
	Witness Model
	// Counterexample is the first model that falsifies the sentence; nil
	// for a tautology.
	Counterexample Model
	// Visited counts the models evaluated before the verdict was certain.
	Visited uint64
	Total   uint64
}

// Analyze enumerates the models of n and stops as soon as both a
// satisfying and a falsifying model have been found.
func Analyze(n Node) (*Analysis, error) {
	vars := Variables(n)
	models, err := Models(vars)
	if err != nil {
		return nil, err
	}
	a := &Analysis{Variables: vars, Total: ModelCount(len(vars))}
	for m := range models {
		a.Visited++
		if Evaluate(n, m) {
			if a.Witness == nil {
				a.Witness = m
			}
		} else if a.Counterexample == nil {
			a.Counterexample = m
		}
		if a.Witness != nil && a.Counterexample != nil {
			break
		}
	}
	switch {
	case a.Counterexample == nil:
		a.Classification = Tautology
	case a.Witness == nil:
		a.Classification = Contradiction
	default:
		a.Classification = Contingent
	}
	return a, nil
}

// Classify reports whether n is a tautology, a contradiction, or neither.
func Classify(n Node) (Classification, error) {
	a, err := Analyze(n)
	if err != nil {
		return Contingent, err
	}
	return a.Classification, nil
}

// IsTautology reports whether n holds in every model. It returns at the
// first falsifying model.
func IsTautology(n Node) (bool, error) {
	ok, _, err := holdsEverywhere(n, true)
	return ok, err
}

// IsContradiction reports whether n fails in every model. It returns at
// the first satisfying model.
func IsContradiction(n Node) (bool, error) {
	ok, _, err := holdsEverywhere(n, false)
	return ok, err
}

// holdsEverywhere reports whether every model evaluates to want, together
// with the number of models it evaluated.
func holdsEverywhere(n Node, want bool) (bool, uint64, error) {
	models, err := Models(Variables(n))
	if err != nil {
		return false, 0, err
	}
	var visited uint64
	for m := range models {
		visited++
		if Evaluate(n, m) != want {
			return false, visited, nil
		}
	}
	return true, visited, nil
}

// Row is one line of a truth table.
type Row struct {
	Model Model
	Value bool
}

// Table is the full truth table of a sentence, rows in enumeration order.
type Table struct {
	Variables []rune
	Rows      []Row
}

// TruthTable evaluates n under every model.
func TruthTable(n Node) (*Table, error) {
	vars := Variables(n)
	models, err := Models(vars)
	if err != nil {
		return nil, err
	}
	t := &Table{Variables: vars, Rows: make([]Row, 0, min(ModelCount(len(vars)), 1<<12))}
	for m := range models {
		t.Rows = append(t.Rows, Row{Model: m, Value: Evaluate(n, m)})
	}
	return t, nil
}
