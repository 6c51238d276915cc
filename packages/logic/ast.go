package logic

// NodeKind identifies the AST variant.
type NodeKind int

const (
	KindLiteral NodeKind = iota
	KindUnary
	KindBinary
)

func (k NodeKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Node is an AST node. The set of implementations is closed: Literal, Unary
// and Binary. Nodes are values and are never mutated after parsing.
type Node interface {
	Kind() NodeKind
	String() string
	node()
}

// Literal is a propositional variable.
type Literal struct {
	Name rune
}

// Unary is a negation.
type Unary struct {
	Operand Node
}

// Binary is a two-operand connective; Op is one of OpAnd, OpOr, OpImpl, OpEq.
type Binary struct {
	Op    Operator
	Left  Node
	Right Node
}

func (Literal) Kind() NodeKind { return KindLiteral }
func (Unary) Kind() NodeKind   { return KindUnary }
func (Binary) Kind() NodeKind  { return KindBinary }

// Operator always returns OpNot.
func (Unary) Operator() Operator { return OpNot }

func (n Literal) String() string { return Stringify(n) }
func (n Unary) String() string   { return Stringify(n) }
func (n Binary) String() string  { return Stringify(n) }

func (Literal) node() {}
func (Unary) node()   {}
func (Binary) node()  {}
