package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeSynonyms(t *testing.T) {
	cases := map[string]string{
		"p & q":        "p∧q",
		"p ^ q":        "p∧q",
		"p ∧ q":        "p∧q",
		"p | q":        "p∨q",
		"p v q":        "p∨q",
		"P V Q":        "p∨q",
		"p > q":        "p→q",
		"p ⇒ q":        "p→q",
		"p = q":        "p≡q",
		"p ↔ q":        "p≡q",
		"p ⇔ q":        "p≡q",
		"~p":           "~p",
		"¬p":           "~p",
		"!p":           "~p",
		"[ p\t∨\n~p ]": "[p∨~p]",
	}
	for in, want := range cases {
		got := string(Normalize(in))
		if got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizePassesUnknownRunes(t *testing.T) {
	got := Normalize("x # {y}")
	want := []rune{'x', '#', '{', 'y', '}'}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestNormalizeComposesCombiningMarks(t *testing.T) {
	got := Normalize("É")
	if len(got) != 1 || got[0] != 'é' {
		t.Fatalf("expected a single composed rune, got %q", string(got))
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(" \t\n"); len(got) != 0 {
		t.Fatalf("expected no tokens, got %q", string(got))
	}
}
