// Package tautology checks propositional sentences for validity.
//
// A Checker runs the logic pipeline with resource limits, caches analyses
// by canonical form, and checks batches in parallel.
package tautology

import (
	"context"
	"fmt"
	"time"

	"github.com/user/tautology/packages/config"
	"github.com/user/tautology/packages/logger"
	"github.com/user/tautology/packages/logic"
)

// Defaults used when an option is not given.
const (
	DefaultMaxVariables = 24
	DefaultCacheSize    = 256
	DefaultParallel     = 4
)

// Checker is safe for concurrent use.
type Checker struct {
	maxVars   int
	cacheSize int
	parallel  int
	cache     *ResultCache
	log       logger.Logger
}

type Option func(*Checker)

// WithMaxVariables rejects sentences with more than n distinct variables.
func WithMaxVariables(n int) Option {
	return func(c *Checker) { c.maxVars = n }
}

// WithCacheSize sets the result cache capacity; 0 disables caching.
func WithCacheSize(n int) Option {
	return func(c *Checker) { c.cacheSize = n }
}

// WithParallel sets how many sentences CheckAll checks at once.
func WithParallel(n int) Option {
	return func(c *Checker) { c.parallel = n }
}

func WithLogger(l logger.Logger) Option {
	return func(c *Checker) { c.log = l }
}

// New creates a Checker.
func New(opts ...Option) (*Checker, error) {
	c := &Checker{
		maxVars:   DefaultMaxVariables,
		cacheSize: DefaultCacheSize,
		parallel:  DefaultParallel,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxVars < 1 || c.maxVars > logic.MaxVariables {
		return nil, fmt.Errorf("max variables must be in [1, %d], got %d", logic.MaxVariables, c.maxVars)
	}
	if c.cacheSize < 0 {
		return nil, fmt.Errorf("cache size must not be negative, got %d", c.cacheSize)
	}
	if c.parallel < 1 {
		return nil, fmt.Errorf("parallel must be at least 1, got %d", c.parallel)
	}
	if c.cacheSize > 0 {
		c.cache = NewResultCache(c.cacheSize)
	}
	if c.log == nil {
		c.log = logger.NewForTests()
	}
	return c, nil
}

// NewFromConfig creates a Checker from the check section of cfg.
func NewFromConfig(cfg *config.Config, l logger.Logger) (*Checker, error) {
	return New(
		WithMaxVariables(cfg.Check.MaxVariables),
		WithCacheSize(cfg.Check.CacheSize),
		WithParallel(cfg.Check.Parallel),
		WithLogger(l),
	)
}

// Result is the verdict for one sentence.
type Result struct {
	Sentence       string
	Canonical      string
	Variables      []string
	Classification logic.Classification
	// Counterexample is the first falsifying assignment, nil for a tautology.
	Counterexample map[string]bool
	// Witness is the first satisfying assignment, nil for a contradiction.
	Witness map[string]bool
	Visited uint64
	Total   uint64
	Cached  bool
}

func (r *Result) IsTautology() bool {
	return r.Classification == logic.Tautology
}

// Check parses and classifies sentence.
func (c *Checker) Check(ctx context.Context, sentence string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	n, err := logic.ParseSentence(sentence)
	if err != nil {
		return nil, err
	}
	canonical := logic.Stringify(n)
	vars := logic.Variables(n)
	if len(vars) > c.maxVars {
		return nil, fmt.Errorf("%w: %s has %d, limit is %d", logic.ErrTooManyVariables, canonical, len(vars), c.maxVars)
	}
	c.log.Debug("parsed sentence", "sentence", canonical, "vars", len(vars), "elapsed", time.Since(start))

	if a, ok := c.cached(canonical); ok {
		c.log.Debug("cache hit", "sentence", canonical)
		return newResult(sentence, canonical, a, true), nil
	}

	start = time.Now()
	a, err := logic.Analyze(n)
	if err != nil {
		return nil, err
	}
	c.log.Debug("classified sentence",
		"sentence", canonical,
		"classification", a.Classification.String(),
		"visited", a.Visited,
		"total", a.Total,
		"elapsed", time.Since(start),
	)
	if c.cache != nil {
		c.cache.Put(canonical, a)
	}
	return newResult(sentence, canonical, a, false), nil
}

func (c *Checker) cached(canonical string) (*logic.Analysis, bool) {
	if c.cache == nil {
		return nil, false
	}
	return c.cache.Get(canonical)
}

func newResult(sentence, canonical string, a *logic.Analysis, cached bool) *Result {
	r := &Result{
		Sentence:       sentence,
		Canonical:      canonical,
		Variables:      make([]string, len(a.Variables)),
		Classification: a.Classification,
		Visited:        a.Visited,
		Total:          a.Total,
		Cached:         cached,
	}
	for i, v := range a.Variables {
		r.Variables[i] = string(v)
	}
	if a.Counterexample != nil {
		r.Counterexample = a.Counterexample.Assignment(a.Variables)
	}
	if a.Witness != nil {
		r.Witness = a.Witness.Assignment(a.Variables)
	}
	return r
}
