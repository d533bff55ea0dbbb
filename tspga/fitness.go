// Package tspga - fitness evaluation.
//
// Fitness is the total length of the chromosome read as a CLOSED cycle.
// The canonical representation is always-open: the wrap-around edge from
// the last city back to the first is added here, exactly once, and nowhere
// else. No operator ever appends a repeated endpoint.
package tspga

import "math"

// roundScale controls fitness stabilization precision (1e-9).
// Summation order varies between tours of equal edge multisets; rounding
// removes the resulting FP noise so equal tours compare equal.
const roundScale = 1e9

// Evaluator computes tour lengths against a shared DistCache.
// Construct one per run and pass it wherever lengths are needed.
type Evaluator struct {
	cache *DistCache
}

// NewEvaluator returns an Evaluator backed by cache. A nil cache gets a
// fresh private one.
func NewEvaluator(cache *DistCache) *Evaluator {
	if cache == nil {
		cache = NewDistCache()
	}

	return &Evaluator{cache: cache}
}

// Cache exposes the underlying distance cache (shared ownership: the same
// cache may back several evaluators of one run).
func (e *Evaluator) Cache() *DistCache {
	return e.cache
}

// Fitness returns the total length of c as a closed cycle:
// Σ distance(c[i-1], c[i]) over all i with wrap-around indexing
// (i-1 == -1 refers to the last element). Lower is better.
//
// Contract:
//   - result ≥ 0; 0 only for degenerate inputs of fewer than two cities;
//   - invariant under rotation and reversal of c (the cycle is the same);
//   - stabilized to 1e-9.
//
// Complexity: O(n) lookups.
func (e *Evaluator) Fitness(c Chromosome) float64 {
	n := len(c)
	if n < 2 {
		return 0
	}

	var (
		sum  float64
		i    int
		prev = c[n-1] // wrap-around: position -1 is the last city
	)
	for i = 0; i < n; i++ {
		sum += e.cache.Distance(prev, c[i])
		prev = c[i]
	}

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
