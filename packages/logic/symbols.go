package logic

// Canonical operator symbols. Normalize maps every synonym onto one of these.
const (
	SymNot  = '~'
	SymAnd  = '∧'
	SymOr   = '∨'
	SymImpl = '→'
	SymEq   = '≡'
)

// Operator is a logical connective.
type Operator int

const (
	OpNot Operator = iota + 1
	OpAnd
	OpOr
	OpImpl
	OpEq
)

// Symbol returns the canonical rune for the operator.
func (o Operator) Symbol() rune {
	switch o {
	case OpNot:
		return SymNot
	case OpAnd:
		return SymAnd
	case OpOr:
		return SymOr
	case OpImpl:
		return SymImpl
	case OpEq:
		return SymEq
	default:
		return '?'
	}
}

func (o Operator) String() string {
	switch o {
	case OpNot:
		return "NOT"
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpImpl:
		return "IMPL"
	case OpEq:
		return "EQ"
	default:
		return "UNKNOWN"
	}
}

// Binary reports whether the operator takes two operands.
func (o Operator) Binary() bool {
	return o == OpAnd || o == OpOr || o == OpImpl || o == OpEq
}

// OperatorOf returns the operator denoted by a canonical symbol.
func OperatorOf(r rune) (Operator, bool) {
	switch r {
	case SymNot:
		return OpNot, true
	case SymAnd:
		return OpAnd, true
	case SymOr:
		return OpOr, true
	case SymImpl:
		return OpImpl, true
	case SymEq:
		return OpEq, true
	default:
		return 0, false
	}
}

// canonical is the substitution table applied by Normalize.
// Runes without an entry are returned unchanged.
func canonical(r rune) rune {
	switch r {
	case '∧', '^', '&':
		return SymAnd
	case '∨', 'v', '|':
		return SymOr
	case '→', '>', '⇒':
		return SymImpl
	case '≡', '↔', '⇔', '=':
		return SymEq
	case '~', '¬', '!':
		return SymNot
	default:
		return r
	}
}
