// Package tspga - population initialization.
package tspga

import "math/rand"

// InitPopulation builds the starting population: size independent uniformly
// random permutations of cities. Each chromosome is drawn from the same RNG
// stream but is an independent sample (no shared backing storage, no reused
// shuffle).
//
// Errors: ErrPopulationSize for size<=0; ErrNoCities / ErrDuplicateCityID
// from city validation. All wrap ErrInvalidInput.
//
// Complexity: O(size·n) time and space.
func InitPopulation(cities []City, size int, rng *rand.Rand) (Population, error) {
	if size <= 0 {
		return nil, ErrPopulationSize
	}
	if err := validateCities(cities); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rngFromSeed(0)
	}

	pop := make(Population, size)
	var i int
	for i = 0; i < size; i++ {
		pop[i] = randomPermutation(cities, rng)
	}

	return pop, nil
}
