package logic

import (
	"fmt"
	"iter"
	"strings"
)

// MaxVariables is the largest variable count Models can enumerate; the
// model counter is a uint64.
const MaxVariables = 62

// Model assigns truth values to variables.
type Model map[rune]bool

// Assignment returns m keyed by variable name, restricted to vars.
func (m Model) Assignment(vars []rune) map[string]bool {
	out := make(map[string]bool, len(vars))
	for _, v := range vars {
		out[string(v)] = m[v]
	}
	return out
}

// Format renders m as "p=T q=F" in the order of vars.
func (m Model) Format(vars []rune) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = string(v) + "=" + truthLetter(m[v])
	}
	return strings.Join(parts, " ")
}

func truthLetter(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

// ModelCount returns 2^n.
func ModelCount(n int) uint64 {
	return uint64(1) << uint(n)
}

// Models yields every complete assignment of vars, 2^len(vars) in total.
// The i-th model sets vars[j] to bit j of i, so i = 0 is all false and
// the last model is all true. Duplicate entries in vars are ignored.
func Models(vars []rune) (iter.Seq[Model], error) {
	vars = distinct(vars)
	if len(vars) > MaxVariables {
		return nil, fmt.Errorf("%w: %d, at most %d can be enumerated", ErrTooManyVariables, len(vars), MaxVariables)
	}
	total := ModelCount(len(vars))
	return func(yield func(Model) bool) {
		for i := uint64(0); i < total; i++ {
			if !yield(modelAt(vars, i)) {
				return
			}
		}
	}, nil
}

func modelAt(vars []rune, bits uint64) Model {
	m := make(Model, len(vars))
	for j, v := range vars {
		m[v] = (bits>>uint(j))&1 == 1
	}
	return m
}

func distinct(vars []rune) []rune {
	seen := make(map[rune]bool, len(vars))
	out := make([]rune, 0, len(vars))
	for _, v := range vars {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
