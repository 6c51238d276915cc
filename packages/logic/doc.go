// Package logic decides whether a propositional sentence is a tautology,
// a contradiction, or contingent.
//
// The pipeline runs strictly forward:
//
//	Normalize       text      -> []rune tokens
//	BuildHierarchy  tokens    -> *Hierarchy (brackets grouped, negations folded)
//	Parse           hierarchy -> Node (Literal, Unary, Binary)
//	Analyze         Node      -> *Analysis (2^n models, brute force)
//
// Variables are single runes. A binary connective needs explicit brackets
// whenever more than one appears at the same level: "(p ∧ q) ∧ r" parses,
// "p ∧ q ∧ r" does not.
package logic
