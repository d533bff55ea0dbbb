// Package tspga - memoized pairwise geometry.
//
// Distance lookups dominate the cost of a GA run (every fitness evaluation
// touches n edges), so Euclidean distances are computed once per city pair
// and reused across all generations. The cache is an explicit object owned
// by the run - never package-global state - so parallel runs and tests stay
// isolated.
package tspga

import "math"

// pairKey is the canonical, direction-independent key for a city pair:
// the lower identifier always comes first.
type pairKey struct {
	lo int
	hi int
}

// DistCache memoizes Euclidean distances between city identifiers.
// It grows monotonically for the lifetime of a run and is never invalidated:
// city coordinates are immutable once loaded, and the domain (n² pairs over
// a fixed, finite city set) is small enough that eviction is pointless.
//
// Not safe for concurrent use; the engine is single-threaded by design.
type DistCache struct {
	m map[pairKey]float64
}

// NewDistCache returns an empty cache, ready for a run.
func NewDistCache() *DistCache {
	return &DistCache{m: make(map[pairKey]float64)}
}

// Distance returns the Euclidean distance between a and b.
//
// Contract:
//   - equal identifiers ⇒ 0, without touching the cache;
//   - Distance(a,b) == Distance(b,a): the key is canonicalized (lower id
//     first) so both orders hit the same entry;
//   - a miss computes math.Hypot(dx,dy), stores it and returns it.
//
// Complexity: O(1) amortized.
func (c *DistCache) Distance(a, b City) float64 {
	if a.ID == b.ID {
		return 0
	}

	k := pairKey{lo: a.ID, hi: b.ID}
	if k.lo > k.hi {
		k.lo, k.hi = k.hi, k.lo
	}

	if d, ok := c.m[k]; ok {
		return d
	}

	d := math.Hypot(a.X-b.X, a.Y-b.Y)
	c.m[k] = d

	return d
}

// Len reports the number of cached pairs. Intended for tests and metrics.
func (c *DistCache) Len() int {
	return len(c.m)
}
