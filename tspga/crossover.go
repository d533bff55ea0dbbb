// Package tspga - permutation-preserving crossover operators.
//
// Both operators accept two parents over the SAME city set and return two
// offspring that are valid permutations of that set by construction. The
// intermediate fill steps may hold partially built tours, but no offspring
// ever escapes with a duplicate or omission.
//
// Edge-case policy: segment bounds are clamped for very short chromosomes
// (n < 5) instead of erroring; a degenerate draw is corrected locally and
// never aborts a run.
package tspga

import "math/rand"

// crossoverPair routes to the configured operator.
//
// Contract: len(a) == len(b) and both are permutations of the same cities.
func crossoverPair(a, b Chromosome, op CrossoverOperator, rng *rand.Rand) (Chromosome, Chromosome) {
	if op == CrossCycle {
		return crossCycle(a, b)
	}

	return crossSegment(a, b, rng)
}

// crossSegment is segment-transplant crossover. A random contiguous segment
// of parent A is copied to the same positions of offspring 1; the remaining
// slots are filled with the missing cities in parent B's relative order.
// Offspring 2 is the symmetric construction with the parent roles swapped.
//
// Segment bounds: length ∈ [1, n-1] (never empty, never the whole tour) and
// start ∈ [0, n-length], both clamped so chromosomes as short as n==2 work.
//
// Complexity: O(n) time, O(n) space per offspring.
func crossSegment(a, b Chromosome, rng *rand.Rand) (Chromosome, Chromosome) {
	n := len(a)
	if n < 2 {
		return a.Clone(), b.Clone()
	}

	// Bounded draw: degenerate 0-length and whole-chromosome segments are
	// excluded by construction, not by retry.
	segLen := 1 + rng.Intn(n-1)
	start := rng.Intn(n - segLen + 1)

	return fillFromDonor(a, b, start, segLen), fillFromDonor(b, a, start, segLen)
}

// fillFromDonor builds one offspring: keeper[start:start+segLen] is
// transplanted verbatim, every other slot takes the next city of donor that
// the segment did not already place. Skipping placed cities is what
// guarantees the permutation invariant (no duplicates, no omissions).
//
// Complexity: O(n) time, O(n) space.
func fillFromDonor(keeper, donor Chromosome, start, segLen int) Chromosome {
	n := len(keeper)
	out := make(Chromosome, n)

	placed := make(map[int]struct{}, segLen)
	var i int
	for i = start; i < start+segLen; i++ {
		out[i] = keeper[i]
		placed[keeper[i].ID] = struct{}{}
	}

	var (
		pos int // next open slot in out
		ok  bool
	)
	for i = 0; i < n; i++ {
		if _, ok = placed[donor[i].ID]; ok {
			continue
		}
		// Advance past the transplanted window.
		if pos == start {
			pos += segLen
		}
		out[pos] = donor[i]
		pos++
	}

	return out
}

// crossCycle is classic cycle crossover. Positions are partitioned into
// cycles of the mapping "index of b[p]'s city inside a"; offspring alternate
// which parent contributes each cycle. Every city belongs to exactly one
// cycle, so both offspring are permutations by construction. No randomness
// is involved.
//
// Complexity: O(n) time, O(n) space.
func crossCycle(a, b Chromosome) (Chromosome, Chromosome) {
	n := len(a)
	if n < 2 {
		return a.Clone(), b.Clone()
	}

	// posInA[id] = index of the city inside parent A.
	posInA := make(map[int]int, n)
	var i int
	for i = 0; i < n; i++ {
		posInA[a[i].ID] = i
	}

	// cycleOf[p] = cycle index of position p; -1 while unassigned.
	cycleOf := make([]int, n)
	for i = 0; i < n; i++ {
		cycleOf[i] = -1
	}

	var (
		cycles int
		p, q   int
	)
	for p = 0; p < n; p++ {
		if cycleOf[p] >= 0 {
			continue
		}
		// Walk the cycle through p until it closes on itself.
		q = p
		for cycleOf[q] < 0 {
			cycleOf[q] = cycles
			q = posInA[b[q].ID]
		}
		cycles++
	}

	c1 := make(Chromosome, n)
	c2 := make(Chromosome, n)
	for i = 0; i < n; i++ {
		if cycleOf[i]%2 == 0 {
			c1[i] = a[i]
			c2[i] = b[i]
		} else {
			c1[i] = b[i]
			c2[i] = a[i]
		}
	}

	return c1, c2
}
