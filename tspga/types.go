package tspga

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the base sentinel for fatal input validation failures:
// empty city sets, duplicate identifiers, non-positive sizes, malformed
// options. All finer-grained input sentinels below wrap it, so callers may
// match either the broad class or the precise cause with errors.Is.
var ErrInvalidInput = errors.New("tspga: invalid input")

var (
	// ErrNoCities is returned when the city set is empty.
	ErrNoCities = fmt.Errorf("%w: empty city set", ErrInvalidInput)

	// ErrDuplicateCityID is returned when two cities share an identifier.
	ErrDuplicateCityID = fmt.Errorf("%w: duplicate city id", ErrInvalidInput)

	// ErrPopulationSize is returned for a non-positive population size.
	ErrPopulationSize = fmt.Errorf("%w: population size must be positive", ErrInvalidInput)

	// ErrGenerationSize is returned for a non-positive per-generation target size.
	ErrGenerationSize = fmt.Errorf("%w: generation size must be positive", ErrInvalidInput)

	// ErrCrossoverRate is returned when the crossover probability lies outside [0,1].
	ErrCrossoverRate = fmt.Errorf("%w: crossover rate outside [0,1]", ErrInvalidInput)

	// ErrStagnationLimit is returned for a non-positive stagnation threshold.
	ErrStagnationLimit = fmt.Errorf("%w: stagnation limit must be positive", ErrInvalidInput)

	// ErrTournamentSize is returned for a non-positive tournament window.
	ErrTournamentSize = fmt.Errorf("%w: tournament size must be positive", ErrInvalidInput)

	// ErrNegativeEps is returned for a negative improvement tolerance.
	ErrNegativeEps = fmt.Errorf("%w: negative eps", ErrInvalidInput)

	// ErrUnknownSelection is returned for an unrecognized selection strategy.
	ErrUnknownSelection = fmt.Errorf("%w: unknown selection strategy", ErrInvalidInput)

	// ErrUnknownCrossover is returned for an unrecognized crossover operator.
	ErrUnknownCrossover = fmt.Errorf("%w: unknown crossover operator", ErrInvalidInput)
)

// City is one node of the tour: a stable identifier plus 2D coordinates.
// Cities are created once from input and never mutated during a run.
type City struct {
	ID int
	X  float64
	Y  float64
}

// Chromosome is a candidate tour: an ordered OPEN permutation of all cities
// (each city exactly once, no repeated endpoint). The edge from the last
// city back to the first is implicit and accounted for by Evaluator.Fitness.
type Chromosome []City

// Clone returns an independent copy of the chromosome. Operators that
// perturb a tour always work on a clone, never on population storage.
func (c Chromosome) Clone() Chromosome {
	if c == nil {
		return nil
	}
	out := make(Chromosome, len(c))
	copy(out, c)

	return out
}

// IDs returns the city identifiers in tour order. Intended for reporting
// and tests; allocates a fresh slice.
func (c Chromosome) IDs() []int {
	out := make([]int, len(c))
	var i int
	for i = 0; i < len(c); i++ {
		out[i] = c[i].ID
	}

	return out
}

// Population is an ordered set of chromosomes. Order carries no meaning:
// every selection strategy samples positions at random, so no reshuffle
// between generations is required for unbiased co-selection.
type Population []Chromosome

// StopReason tells why the generational driver returned.
type StopReason int

const (
	// ReasonStagnation: the best fitness did not improve for more than
	// Options.StagnationLimit consecutive generations. This is the normal
	// termination of the heuristic, not an error.
	ReasonStagnation StopReason = iota

	// ReasonTarget: Options.TargetFitness was configured and reached.
	ReasonTarget

	// ReasonCanceled: the context was canceled; the best tour found so far
	// is still returned and no error is reported.
	ReasonCanceled
)

// String implements fmt.Stringer for log-friendly reporting.
func (r StopReason) String() string {
	switch r {
	case ReasonStagnation:
		return "stagnation"
	case ReasonTarget:
		return "target"
	case ReasonCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a run of Evolve.
type Result struct {
	// Best is the shortest tour seen across ALL generations, not just the
	// final one. It is an independent copy, safe to retain.
	Best Chromosome

	// Fitness is the total length of Best interpreted as a closed cycle,
	// stabilized to 1e-9.
	Fitness float64

	// Generations is the number of generations produced before stopping.
	Generations int

	// Reason records which termination rule fired.
	Reason StopReason
}

// ProgressEvent is delivered to Options.OnImprovement once per generation
// in which the best-known fitness improved (and once for the initial
// population, as generation 0).
type ProgressEvent struct {
	Generation int
	Fitness    float64
	// Best is an independent copy of the incumbent tour.
	Best Chromosome
}
