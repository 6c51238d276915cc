package tautology

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/user/tautology/packages/logic"
)

// ResultCache is an LRU cache of analyses keyed by canonical form.
// Analyses are immutable once stored; callers must not modify them.
// It is safe for concurrent use.
type ResultCache struct {
	lru *lru.Cache[string, *logic.Analysis]
}

// NewResultCache creates a cache with a fixed capacity.
func NewResultCache(capacity int) *ResultCache {
	if capacity <= 0 {
		capacity = 1
	}
	c, err := lru.New[string, *logic.Analysis](capacity)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return &ResultCache{lru: c}
}

// Get returns the analysis cached for canonical, if present.
func (c *ResultCache) Get(canonical string) (*logic.Analysis, bool) {
	a, ok := c.lru.Get(canonical)
	return a, ok && a != nil
}

// Put inserts or updates the analysis for canonical, evicting the least
// recently used entry when full.
func (c *ResultCache) Put(canonical string, a *logic.Analysis) {
	if a == nil {
		return
	}
	c.lru.Add(canonical, a)
}

// Len returns the number of cached analyses.
func (c *ResultCache) Len() int {
	return c.lru.Len()
}
