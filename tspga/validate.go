// Package tspga - validation helpers shared by the driver and initializer.
//
// Staged like the rest of the engine: options first (cheap, data-free),
// then the city set. Deterministic, side-effect free, sentinel errors only.
package tspga

// validateOptions checks internal consistency of Options without touching
// any city data.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.PopulationSize <= 0 {
		return ErrPopulationSize
	}
	if opts.GenerationSize <= 0 {
		return ErrGenerationSize
	}
	if opts.CrossoverRate < 0 || opts.CrossoverRate > 1 {
		return ErrCrossoverRate
	}
	if opts.StagnationLimit <= 0 {
		return ErrStagnationLimit
	}
	// Eps governs the acceptance rule "new < best − eps"; a negative value
	// would turn equal fitness into an improvement and never stagnate.
	if opts.Eps < 0 {
		return ErrNegativeEps
	}

	switch opts.Selection {
	case SelectTournament, SelectRoulette, SelectRank:
		// ok
	default:
		return ErrUnknownSelection
	}
	if opts.Selection == SelectTournament && opts.TournamentSize <= 0 {
		return ErrTournamentSize
	}

	switch opts.Crossover {
	case CrossSegment, CrossCycle:
		// ok
	default:
		return ErrUnknownCrossover
	}

	return nil
}

// validateCities enforces the input contract of the engine: a non-empty
// city set with unique identifiers. Coordinates are unconstrained.
//
// Complexity: O(n) time, O(n) extra space for the uniqueness check.
func validateCities(cities []City) error {
	if len(cities) == 0 {
		return ErrNoCities
	}
	seen := make(map[int]struct{}, len(cities))

	var (
		i  int
		ok bool
	)
	for i = 0; i < len(cities); i++ {
		if _, ok = seen[cities[i].ID]; ok {
			return ErrDuplicateCityID
		}
		seen[cities[i].ID] = struct{}{}
	}

	return nil
}
