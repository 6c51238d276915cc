package logic

import (
	"strings"
)

// Level is the kind of a hierarchy node.
type Level int

const (
	LevelRoot Level = iota
	LevelBracket
	LevelNot
)

func (l Level) String() string {
	switch l {
	case LevelRoot:
		return "root"
	case LevelBracket:
		return "bracket"
	case LevelNot:
		return "not"
	default:
		return "unknown"
	}
}

// tag is the prefix used by Hierarchy.String.
func (l Level) tag() string {
	switch l {
	case LevelRoot:
		return "root"
	case LevelNot:
		return string(SymNot)
	default:
		return "node"
	}
}

// Item is one child of a hierarchy node: a raw token when Node is nil,
// otherwise a nested node. Pos is the token index in the normalized input
// (for a group, the index of its opening bracket).
type Item struct {
	Token rune
	Node  *Hierarchy
	Pos   int
}

// IsNode reports whether the item is a nested node rather than a raw token.
func (it Item) IsNode() bool {
	return it.Node != nil
}

func (it Item) isToken(r rune) bool {
	return it.Node == nil && it.Token == r
}

// Hierarchy is the bracket structure of a sentence. It only lives between
// Normalize and Parse.
type Hierarchy struct {
	Level Level
	Items []Item
}

// Len returns the number of direct children.
func (h *Hierarchy) Len() int {
	return len(h.Items)
}

// String renders the tree as e.g. "root#(~#(node#(p)) ∨ q)".
func (h *Hierarchy) String() string {
	if h == nil {
		return "<nil>"
	}
	var b strings.Builder
	h.write(&b)
	return b.String()
}

func (h *Hierarchy) write(b *strings.Builder) {
	b.WriteString(h.Level.tag())
	b.WriteString("#(")
	for i, it := range h.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		if it.Node != nil {
			it.Node.write(b)
			continue
		}
		b.WriteRune(it.Token)
	}
	b.WriteByte(')')
}

// Brackets is a bracket alphabet. Any rune of Open opens a group and any
// rune of Close closes the innermost one; pairs are not matched by style.
type Brackets struct {
	Open  string
	Close string
}

// DefaultBrackets accepts round, square and curly brackets.
var DefaultBrackets = Brackets{Open: "([{", Close: ")]}"}

func (b Brackets) opens(r rune) bool {
	return strings.ContainsRune(b.Open, r)
}

func (b Brackets) closes(r rune) bool {
	return strings.ContainsRune(b.Close, r)
}

type hierarchyConfig struct {
	brackets Brackets
}

// HierarchyOption configures BuildHierarchy.
type HierarchyOption func(*hierarchyConfig)

// WithBrackets replaces the default bracket alphabet.
func WithBrackets(b Brackets) HierarchyOption {
	return func(c *hierarchyConfig) {
		c.brackets = b
	}
}

// BuildHierarchy groups tokens by bracket nesting and folds every negation
// into a LevelNot node with exactly one nested child.
func BuildHierarchy(tokens []rune, opts ...HierarchyOption) (*Hierarchy, error) {
	cfg := hierarchyConfig{brackets: DefaultBrackets}
	for _, opt := range opts {
		opt(&cfg)
	}
	grouped, err := group(tokens, cfg.brackets)
	if err != nil {
		return nil, err
	}
	return foldNot(grouped)
}

func group(tokens []rune, brackets Brackets) (*Hierarchy, error) {
	root := &Hierarchy{Level: LevelRoot}
	stack := []*Hierarchy{root}
	var opened []int
	for i, tok := range tokens {
		top := stack[len(stack)-1]
		switch {
		case brackets.opens(tok):
			next := &Hierarchy{Level: LevelBracket}
			top.Items = append(top.Items, Item{Node: next, Pos: i})
			stack = append(stack, next)
			opened = append(opened, i)
		case brackets.closes(tok):
			if len(stack) == 1 {
				return nil, &PositionError{Err: ErrUnbalancedBrackets, Pos: i, Token: tok}
			}
			stack = stack[:len(stack)-1]
			opened = opened[:len(opened)-1]
		default:
			top.Items = append(top.Items, Item{Token: tok, Pos: i})
		}
	}
	if len(opened) > 0 {
		pos := opened[len(opened)-1]
		return nil, &PositionError{Err: ErrUnclosedBracket, Pos: pos, Token: tokens[pos]}
	}
	return root, nil
}

// foldNot rebuilds h bottom-up. A run of NOT tokens followed by an operand
// becomes a chain of LevelNot nodes, innermost wrapping the operand; a raw
// operand is first wrapped in a singleton bracket node.
func foldNot(h *Hierarchy) (*Hierarchy, error) {
	out := &Hierarchy{Level: h.Level, Items: make([]Item, 0, len(h.Items))}
	for i := 0; i < len(h.Items); i++ {
		it := h.Items[i]
		if it.Node != nil {
			folded, err := foldNot(it.Node)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, Item{Node: folded, Pos: it.Pos})
			continue
		}
		if it.Token != SymNot {
			out.Items = append(out.Items, it)
			continue
		}

		j := i
		for j < len(h.Items) && h.Items[j].isToken(SymNot) {
			j++
		}
		if j == len(h.Items) {
			last := h.Items[j-1]
			return nil, &PositionError{Err: ErrDanglingNot, Pos: last.Pos, Token: last.Token}
		}

		operand, err := operandNode(h.Items[j])
		if err != nil {
			return nil, err
		}
		for k := j - 1; k >= i; k-- {
			operand = &Hierarchy{Level: LevelNot, Items: []Item{{Node: operand, Pos: h.Items[k].Pos}}}
		}
		out.Items = append(out.Items, Item{Node: operand, Pos: it.Pos})
		i = j
	}
	return out, nil
}

func operandNode(it Item) (*Hierarchy, error) {
	if it.Node != nil {
		return foldNot(it.Node)
	}
	return &Hierarchy{Level: LevelBracket, Items: []Item{it}}, nil
}
