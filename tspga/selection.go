// Package tspga - parent selection strategies.
//
// All strategies return an index into the population and share the same
// contract: a fully defined chromosome is always selected, whatever the
// fitness landscape. Lower tour length must map to HIGHER selection
// probability, so minimization fitness is transformed (inverse weights for
// roulette, rank order for rank selection) before building the wheel.
package tspga

import (
	"math/rand"
	"sort"
)

// selectIndex routes to the configured strategy.
//
// Contract: pop is non-empty and fits is aligned with pop.
func selectIndex(pop Population, fits []float64, opts Options, rng *rand.Rand) int {
	switch opts.Selection {
	case SelectRoulette:
		return rouletteIndex(fits, rng)
	case SelectRank:
		return rankIndex(fits, rng)
	default:
		return tournamentIndex(fits, opts.TournamentSize, rng)
	}
}

// pickParents draws two DISTINCT parent indices. The second draw is retried
// while it collides with the first; after a bounded number of retries it is
// remapped to the next position so the pair is always well defined, even
// when the strategy keeps electing the same winner.
//
// Contract: len(pop) >= 2.
func pickParents(pop Population, fits []float64, opts Options, rng *rand.Rand) (int, int) {
	first := selectIndex(pop, fits, opts, rng)

	const maxRetries = 16
	var (
		second int
		try    int
	)
	second = selectIndex(pop, fits, opts, rng)
	for second == first && try < maxRetries {
		second = selectIndex(pop, fits, opts, rng)
		try++
	}
	if second == first {
		// Deterministic remap: the neighboring position is a valid, defined
		// chromosome and never the identical instance.
		second = (first + 1) % len(pop)
	}

	return first, second
}

// tournamentIndex samples k random positions and returns the fittest
// (minimal length). k is clamped to [1, len(fits)].
//
// Complexity: O(k).
func tournamentIndex(fits []float64, k int, rng *rand.Rand) int {
	n := len(fits)
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	var (
		best = rng.Intn(n)
		i    int
		cand int
	)
	for i = 1; i < k; i++ {
		cand = rng.Intn(n)
		if fits[cand] < fits[best] {
			best = cand
		}
	}

	return best
}

// rouletteIndex is fitness-proportionate selection over inverse lengths:
// weight_i = 1 / fitness_i. A cumulative array is built, a uniform value in
// [0,total) is drawn, and the first position whose cumulative weight exceeds
// the draw wins.
//
// Degenerate guards:
//   - any fitness ≈ 0 (single-city degenerate tours) or a vanishing total
//     weight ⇒ uniform draw, so the parent is always defined;
//   - a draw landing past the last boundary (FP accumulation) falls back to
//     the final position rather than leaving the parent unset.
//
// Complexity: O(n).
func rouletteIndex(fits []float64, rng *rand.Rand) int {
	n := len(fits)

	var (
		cum   = make([]float64, n)
		total float64
		i     int
	)
	for i = 0; i < n; i++ {
		if fits[i] <= 0 {
			// A zero-length tour would take an infinite wheel slice;
			// treat the landscape as degenerate and sample uniformly.
			return rng.Intn(n)
		}
		total += 1 / fits[i]
		cum[i] = total
	}
	if total <= 0 {
		return rng.Intn(n)
	}

	u := rng.Float64() * total
	for i = 0; i < n; i++ {
		if u < cum[i] {
			return i
		}
	}

	// FP boundary: u accumulated to exactly total. Well-defined fallback.
	return n - 1
}

// rankIndex weights members by rank: the longest tour gets weight 1, the
// shortest weight n. The wheel is then spun as in rouletteIndex.
//
// Complexity: O(n log n) for the rank sort.
func rankIndex(fits []float64, rng *rand.Rand) int {
	n := len(fits)

	// order[j] is the population index of the j-th WORST member.
	order := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fits[order[a]] > fits[order[b]]
	})

	// Total rank weight is 1+2+…+n; draw on the triangular wheel.
	total := float64(n) * float64(n+1) / 2
	u := rng.Float64() * total

	var cum float64
	for i = 0; i < n; i++ {
		cum += float64(i + 1)
		if u < cum {
			return order[i]
		}
	}

	return order[n-1]
}
