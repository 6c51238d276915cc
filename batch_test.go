package tautology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/tautology/packages/logic"
)

func TestChecker_CheckAll(t *testing.T) {
	t.Run("Should keep input order and record per-item errors", func(t *testing.T) {
		c, err := New(WithParallel(3))
		require.NoError(t, err)
		sentences := []string{"p ∨ ~p", "(p ∧ q", "p ∧ ~p", "~", "(p → q) ∧ p"}

		items, err := c.CheckAll(context.Background(), sentences)

		require.NoError(t, err)
		require.Len(t, items, len(sentences))
		for i, it := range items {
			assert.Equal(t, i, it.Index)
			assert.Equal(t, sentences[i], it.Sentence)
			assert.True(t, (it.Result == nil) != (it.Err == nil), "item %d", i)
		}
		assert.Equal(t, logic.Tautology, items[0].Result.Classification)
		assert.ErrorIs(t, items[1].Err, logic.ErrUnclosedBracket)
		assert.Equal(t, logic.Contradiction, items[2].Result.Classification)
		assert.ErrorIs(t, items[3].Err, logic.ErrDanglingNot)
		assert.Equal(t, logic.Contingent, items[4].Result.Classification)
	})

	t.Run("Should handle an empty batch", func(t *testing.T) {
		c, err := New()
		require.NoError(t, err)

		items, err := c.CheckAll(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Should return cancellation", func(t *testing.T) {
		c, err := New(WithParallel(1))
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = c.CheckAll(ctx, []string{"p", "q"})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Should check many sentences in parallel", func(t *testing.T) {
		c, err := New(WithParallel(8))
		require.NoError(t, err)
		sentences := make([]string, 64)
		for i := range sentences {
			if i%2 == 0 {
				sentences[i] = "(p → q) ≡ (~q → ~p)"
			} else {
				sentences[i] = "p ∧ q"
			}
		}

		items, err := c.CheckAll(context.Background(), sentences)

		require.NoError(t, err)
		for i, it := range items {
			require.NoError(t, it.Err)
			assert.Equal(t, i%2 == 0, it.Result.IsTautology(), "item %d", i)
		}
	})
}
