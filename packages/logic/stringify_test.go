package logic

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStringifyCanonical(t *testing.T) {
	tests := map[string]string{
		"p":                    "p",
		"~ ~ p":                "~~p",
		"P & Q":                "(p ∧ q)",
		"~(p v ~q) > (~p | q)": "(~(p ∨ ~q) → (~p ∨ q))",
		"[p = (q ⇒ r)]":        "(p ≡ (q → r))",
	}
	for in, want := range tests {
		if got := Stringify(mustParse(t, in)); got != want {
			t.Fatalf("Stringify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStringifyRoundTrip(t *testing.T) {
	sentences := append(append([]string{}, tautologies...), nonTautologies...)
	for _, s := range sentences {
		first := mustParse(t, s)
		canonical := Stringify(first)
		second := mustParse(t, canonical)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("%q: canonical form %q reparsed differently:\n%s", s, canonical, diff)
		}
		if again := Stringify(second); again != canonical {
			t.Fatalf("%q: canonical form not stable: %q then %q", s, canonical, again)
		}
	}
}

func TestFormatTree(t *testing.T) {
	got := FormatTree(mustParse(t, "p → ~(q ∧ r)"))
	want := strings.Join([]string{
		"IMPL",
		"├── VAR(p)",
		"└── NOT",
		"    └── AND",
		"        ├── VAR(q)",
		"        └── VAR(r)",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected tree:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatTreeNestedSiblings(t *testing.T) {
	got := FormatTree(mustParse(t, "(p ∨ ~q) ≡ r"))
	want := strings.Join([]string{
		"EQ",
		"├── OR",
		"│   ├── VAR(p)",
		"│   └── NOT",
		"│       └── VAR(q)",
		"└── VAR(r)",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected tree:\n%s\nwant:\n%s", got, want)
	}
}

func TestWalkOrder(t *testing.T) {
	n := mustParse(t, "(p ∧ q) ∨ ~r")
	var dfs, bfs []string
	Walk(n, func(n, _ Node) { dfs = append(dfs, n.String()) })
	WalkBreadthFirst(n, func(n, _ Node) { bfs = append(bfs, n.String()) })

	wantDFS := []string{"((p ∧ q) ∨ ~r)", "(p ∧ q)", "p", "q", "~r", "r"}
	wantBFS := []string{"((p ∧ q) ∨ ~r)", "(p ∧ q)", "~r", "p", "q", "r"}
	if diff := cmp.Diff(wantDFS, dfs); diff != "" {
		t.Fatalf("unexpected depth-first order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantBFS, bfs); diff != "" {
		t.Fatalf("unexpected breadth-first order (-want +got):\n%s", diff)
	}
}

func TestWalkReportsParents(t *testing.T) {
	n := mustParse(t, "~p")
	var parents []Node
	Walk(n, func(_, parent Node) { parents = append(parents, parent) })
	if len(parents) != 2 || parents[0] != nil {
		t.Fatalf("expected nil parent for the root, got %v", parents)
	}
	if _, ok := parents[1].(Unary); !ok {
		t.Fatalf("expected the negation as parent of p, got %T", parents[1])
	}
}
