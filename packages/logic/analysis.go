package logic

// Walk visits n and its descendants depth-first, parents before children
// and left operands before right ones. parent is nil for the root.
func Walk(n Node, visit func(n, parent Node)) {
	var walk func(n, parent Node)
	walk = func(n, parent Node) {
		if n == nil {
			return
		}
		visit(n, parent)
		switch n := n.(type) {
		case Unary:
			walk(n.Operand, n)
		case Binary:
			walk(n.Left, n)
			walk(n.Right, n)
		}
	}
	walk(n, nil)
}

// WalkBreadthFirst visits n and its descendants level by level.
func WalkBreadthFirst(n Node, visit func(n, parent Node)) {
	if n == nil {
		return
	}
	type entry struct{ n, parent Node }
	queue := []entry{{n: n}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		visit(cur.n, cur.parent)
		switch c := cur.n.(type) {
		case Unary:
			queue = append(queue, entry{n: c.Operand, parent: c})
		case Binary:
			queue = append(queue, entry{n: c.Left, parent: c}, entry{n: c.Right, parent: c})
		}
	}
}

// Variables returns the distinct literal names of n in order of first
// depth-first occurrence. The order is stable for a given AST and fixes
// which bit of the enumeration counter drives each variable.
func Variables(n Node) []rune {
	var vars []rune
	seen := make(map[rune]bool)
	Walk(n, func(n, _ Node) {
		lit, ok := n.(Literal)
		if !ok || seen[lit.Name] {
			return
		}
		seen[lit.Name] = true
		vars = append(vars, lit.Name)
	})
	return vars
}
