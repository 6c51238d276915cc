package tautology

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()
	c, err := New()
	require.NoError(t, err)
	items, err := c.CheckAll(context.Background(), []string{"p ∨ ~p", "(p → q) ∧ p", "(p ∧ q"})
	require.NoError(t, err)
	return NewReport(items)
}

func TestParseFormat(t *testing.T) {
	t.Run("Should accept known formats", func(t *testing.T) {
		for _, s := range []string{"text", "JSON", " yaml "} {
			_, err := ParseFormat(s)
			assert.NoError(t, err, s)
		}
	})

	t.Run("Should reject unknown formats", func(t *testing.T) {
		_, err := ParseFormat("xml")
		assert.Error(t, err)
	})
}

func TestNewReport(t *testing.T) {
	t.Run("Should summarize items", func(t *testing.T) {
		r := sampleReport(t)

		assert.Equal(t, Summary{Total: 3, Tautologies: 1, Contingent: 1, Failed: 1}, r.Summary)
		assert.Equal(t, "tautology", r.Items[0].Classification)
		assert.Equal(t, "UNCLOSED_BRACKET", r.Items[2].Error.Code)
		assert.Equal(t, 0, r.Items[2].Error.Pos)
	})
}

func TestEncodeReport(t *testing.T) {
	t.Run("Should encode text", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, EncodeReport(&buf, sampleReport(t), FormatText, PlainPalette()))

		out := buf.String()
		assert.Contains(t, out, "(p ∨ ~p)  tautology\n")
		assert.Contains(t, out, "((p → q) ∧ p)  contingent\n")
		assert.Contains(t, out, "    counterexample: p=F q=F\n")
		assert.Contains(t, out, "(p ∧ q  error UNCLOSED_BRACKET")
		assert.Contains(t, out, "3 checked: 1 tautologies, 0 contradictions, 1 contingent, 1 failed")
	})

	t.Run("Should encode valid JSON", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, EncodeReport(&buf, sampleReport(t), FormatJSON, PlainPalette()))

		var decoded struct {
			Items []struct {
				Canonical      string `json:"canonical"`
				Classification string `json:"classification"`
				Error          *struct {
					Code string `json:"code"`
				} `json:"error"`
			} `json:"items"`
			Summary struct {
				Total int `json:"total"`
			} `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded.Items, 3)
		assert.Equal(t, "(p ∨ ~p)", decoded.Items[0].Canonical)
		assert.Equal(t, "contingent", decoded.Items[1].Classification)
		require.NotNil(t, decoded.Items[2].Error)
		assert.Equal(t, "UNCLOSED_BRACKET", decoded.Items[2].Error.Code)
		assert.Equal(t, 3, decoded.Summary.Total)
	})

	t.Run("Should encode YAML that decodes back", func(t *testing.T) {
		var buf bytes.Buffer
		r := sampleReport(t)

		require.NoError(t, EncodeReport(&buf, r, FormatYAML, PlainPalette()))

		var decoded Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, r.Summary, decoded.Summary)
		assert.Equal(t, r.Items[1].Counterexample, decoded.Items[1].Counterexample)
	})

	t.Run("Should reject unknown format", func(t *testing.T) {
		assert.Error(t, EncodeReport(&bytes.Buffer{}, &Report{}, Format("xml"), PlainPalette()))
	})
}
