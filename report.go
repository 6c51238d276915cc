package tautology

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/user/tautology/packages/logic"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "text", "json" or "yaml".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// ReportItem is the serializable form of a BatchItem.
type ReportItem struct {
	Sentence       string            `yaml:"sentence"`
	Canonical      string            `yaml:"canonical,omitempty"`
	Variables      []string          `yaml:"variables,omitempty"`
	Classification string            `yaml:"classification,omitempty"`
	Counterexample map[string]bool   `yaml:"counterexample,omitempty"`
	Witness        map[string]bool   `yaml:"witness,omitempty"`
	Visited        uint64            `yaml:"visited,omitempty"`
	Total          uint64            `yaml:"total,omitempty"`
	Cached         bool              `yaml:"cached,omitempty"`
	Error          *logic.Diagnostic `yaml:"error,omitempty"`
}

type Summary struct {
	Total          int `yaml:"total"`
	Tautologies    int `yaml:"tautologies"`
	Contradictions int `yaml:"contradictions"`
	Contingent     int `yaml:"contingent"`
	Failed         int `yaml:"failed"`
}

type Report struct {
	Items   []ReportItem `yaml:"items"`
	Summary Summary      `yaml:"summary"`
}

// NewReport converts batch items into a report, in the same order.
func NewReport(items []BatchItem) *Report {
	r := &Report{Items: make([]ReportItem, 0, len(items))}
	for _, it := range items {
		ri := ReportItem{Sentence: it.Sentence}
		r.Summary.Total++
		switch {
		case it.Err != nil:
			ri.Error = logic.Diagnose(it.Err)
			r.Summary.Failed++
		case it.Result != nil:
			res := it.Result
			ri.Canonical = res.Canonical
			ri.Variables = res.Variables
			ri.Classification = res.Classification.String()
			ri.Counterexample = res.Counterexample
			ri.Witness = res.Witness
			ri.Visited = res.Visited
			ri.Total = res.Total
			ri.Cached = res.Cached
			switch res.Classification {
			case logic.Tautology:
				r.Summary.Tautologies++
			case logic.Contradiction:
				r.Summary.Contradictions++
			default:
				r.Summary.Contingent++
			}
		}
		r.Items = append(r.Items, ri)
	}
	return r
}

// Palette colors text reports.
type Palette struct {
	Tautology     func(a ...any) string
	Contradiction func(a ...any) string
	Contingent    func(a ...any) string
	Failure       func(a ...any) string
	Muted         func(a ...any) string
}

// ColorPalette uses terminal colors; it honors color.NoColor.
func ColorPalette() Palette {
	return Palette{
		Tautology:     color.New(color.FgGreen, color.Bold).SprintFunc(),
		Contradiction: color.New(color.FgRed, color.Bold).SprintFunc(),
		Contingent:    color.New(color.FgYellow).SprintFunc(),
		Failure:       color.New(color.FgRed).SprintFunc(),
		Muted:         color.New(color.Faint).SprintFunc(),
	}
}

func PlainPalette() Palette {
	return Palette{
		Tautology:     fmt.Sprint,
		Contradiction: fmt.Sprint,
		Contingent:    fmt.Sprint,
		Failure:       fmt.Sprint,
		Muted:         fmt.Sprint,
	}
}

func (p Palette) verdict(c string) string {
	switch c {
	case logic.Tautology.String():
		return p.Tautology(c)
	case logic.Contradiction.String():
		return p.Contradiction(c)
	default:
		return p.Contingent(c)
	}
}

// EncodeReport writes r to w. The palette only applies to FormatText.
func EncodeReport(w io.Writer, r *Report, f Format, p Palette) error {
	switch f {
	case FormatJSON:
		b, err := yaml.MarshalWithOptions(r, yaml.JSON())
		if err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		_, err = fmt.Fprintln(w, strings.TrimRight(string(b), "\n"))
		return err
	case FormatYAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		_, err = w.Write(b)
		return err
	case FormatText:
		return encodeText(w, r, p)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

func encodeText(w io.Writer, r *Report, p Palette) error {
	var b strings.Builder
	for _, it := range r.Items {
		if it.Error != nil {
			fmt.Fprintf(&b, "%s  %s %s\n", it.Sentence, p.Failure("error"), p.Muted(it.Error.Code+": "+it.Error.Message))
			continue
		}
		fmt.Fprintf(&b, "%s  %s\n", it.Canonical, p.verdict(it.Classification))
		if it.Counterexample != nil {
			fmt.Fprintf(&b, "    counterexample: %s\n", formatAssignment(it.Variables, it.Counterexample))
		}
	}
	if len(r.Items) > 1 {
		s := r.Summary
		fmt.Fprintln(&b, p.Muted(fmt.Sprintf("%d checked: %d tautologies, %d contradictions, %d contingent, %d failed",
			s.Total, s.Tautologies, s.Contradictions, s.Contingent, s.Failed)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func formatAssignment(vars []string, m map[string]bool) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		val := "F"
		if m[v] {
			val = "T"
		}
		parts[i] = v + "=" + val
	}
	return strings.Join(parts, " ")
}
