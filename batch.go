package tautology

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// BatchItem is the outcome for one sentence of a batch. Exactly one of
// Result and Err is set once the batch completes.
type BatchItem struct {
	Index    int
	Sentence string
	Result   *Result
	Err      error
}

// CheckAll checks sentences concurrently, at most the configured parallel
// count at a time. A sentence that fails to parse or exceeds the limits
// records its error in its item; only cancellation of ctx aborts the batch.
// Items are returned in input order.
func (c *Checker) CheckAll(ctx context.Context, sentences []string) ([]BatchItem, error) {
	items := make([]BatchItem, len(sentences))
	for i, s := range sentences {
		items[i] = BatchItem{Index: i, Sentence: s}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallel)
	for i := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := c.Check(gctx, items[i].Sentence)
			if err != nil {
				if isContextErr(err) {
					return err
				}
				items[i].Err = err
				return nil
			}
			items[i].Result = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return items, err
	}
	if err := ctx.Err(); err != nil {
		return items, err
	}

	c.log.Info("batch checked", "sentences", len(items), "failed", countFailed(items))
	return items, nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func countFailed(items []BatchItem) int {
	n := 0
	for _, it := range items {
		if it.Err != nil {
			n++
		}
	}
	return n
}
