package logic

import (
	"fmt"
	"strings"
	"testing"
)

type benchSpec struct {
	name string
	vars int
}

var benchSpecs = []benchSpec{
	{name: "V8", vars: 8},
	{name: "V12", vars: 12},
	{name: "V16", vars: 16},
}

// buildBenchSentence returns ((a ∨ ~a) ∧ (b ∨ ~b)) ∧ ..., a tautology that
// forces every model to be visited.
func buildBenchSentence(vars int) string {
	names := []rune("abcdefghijklmnopqrstuvwxyz")
	s := fmt.Sprintf("(%c ∨ ~%c)", names[0], names[0])
	for i := 1; i < vars; i++ {
		s = fmt.Sprintf("(%s ∧ (%c ∨ ~%c))", s, names[i], names[i])
	}
	return s
}

func BenchmarkParseSentence(b *testing.B) {
	for _, spec := range benchSpecs {
		b.Run(spec.name, func(b *testing.B) {
			sentence := buildBenchSentence(spec.vars)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := ParseSentence(sentence); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAnalyze(b *testing.B) {
	for _, spec := range benchSpecs {
		b.Run(spec.name, func(b *testing.B) {
			n := mustParse(b, buildBenchSentence(spec.vars))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Analyze(n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func TestBenchSentenceIsTautology(t *testing.T) {
	s := buildBenchSentence(4)
	if strings.Count(s, "∨") != 4 {
		t.Fatalf("unexpected bench sentence %q", s)
	}
	ok, err := IsTautology(mustParse(t, s))
	if err != nil || !ok {
		t.Fatalf("bench sentence %q should be a tautology: %v", s, err)
	}
}
