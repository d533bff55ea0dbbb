// Package tspga - mutation.
package tspga

import "math/rand"

// mutateSwap returns a COPY of c with two distinct random positions
// exchanged. Working on a copy is deliberate: the source chromosome may
// still be referenced by the population being read, and in-place mutation
// would silently corrupt it (shared-storage aliasing).
//
// The two indices are guaranteed distinct by redrawing the second until it
// differs; for n<2 the clone is returned untouched.
//
// Complexity: O(n) for the copy, O(1) for the swap.
func mutateSwap(c Chromosome, rng *rand.Rand) Chromosome {
	out := c.Clone()
	n := len(out)
	if n < 2 {
		return out
	}

	i := rng.Intn(n)
	j := distinctIndex(n, i, rng)
	out[i], out[j] = out[j], out[i]

	return out
}
