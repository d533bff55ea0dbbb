package tspga

// SelectionStrategy picks how parents are drawn from the population.
type SelectionStrategy int

const (
	// SelectTournament samples a random window of TournamentSize members and
	// keeps the fittest. Default.
	SelectTournament SelectionStrategy = iota

	// SelectRoulette is fitness-proportionate sampling. Raw tour length is a
	// minimization score, so weights are the inverse length (shorter tour ⇒
	// larger slice of the wheel).
	SelectRoulette

	// SelectRank weights members by their rank (worst=1 … best=P), which
	// keeps selection pressure stable when lengths are nearly equal.
	SelectRank
)

// CrossoverOperator picks how two parent tours are recombined.
type CrossoverOperator int

const (
	// CrossSegment transplants a random contiguous segment of one parent and
	// fills the remaining slots in the other parent's relative order. Default.
	CrossSegment CrossoverOperator = iota

	// CrossCycle alternates ownership of the position cycles shared by the
	// two parents (classic cycle crossover).
	CrossCycle
)

// Options configures a run of Evolve. The zero value is NOT usable; start
// from DefaultOptions and adjust.
type Options struct {
	// PopulationSize is the number of chromosomes in the initial population.
	PopulationSize int

	// GenerationSize is the target number of chromosomes assembled per
	// generation. Crossover produces two offspring; when the second would
	// overflow the target it is dropped (deterministic cap).
	GenerationSize int

	// CrossoverRate ∈ [0,1] is the probability that a reproduction step uses
	// selection+crossover; otherwise a random member is swap-mutated.
	CrossoverRate float64

	// StagnationLimit is the number of consecutive generations without
	// improvement of the best-known fitness after which the run stops.
	// Problem-size dependent; must be positive.
	StagnationLimit int

	// TournamentSize is the window width for SelectTournament.
	// Clamped to the population size at draw time.
	TournamentSize int

	// Selection picks the parent-selection strategy.
	Selection SelectionStrategy

	// Crossover picks the recombination operator.
	Crossover CrossoverOperator

	// Eps is the improvement tolerance: a new best must undercut the
	// incumbent by more than Eps to reset the stagnation counter.
	// Must be non-negative.
	Eps float64

	// Seed drives every random draw of the run. Policy: seed==0 selects a
	// fixed default stream, so the zero value is still fully deterministic.
	Seed int64

	// TargetFitness, when positive, stops the run as soon as the best
	// fitness is ≤ the target (ReasonTarget). 0 disables the rule.
	TargetFitness float64

	// TwoOptPolish runs a first-improvement 2-opt pass over the best tour
	// after the generational loop terminates.
	TwoOptPolish bool

	// TwoOptMaxIters caps accepted 2-opt moves during the polish.
	// 0 ⇒ unlimited (until local optimum).
	TwoOptMaxIters int

	// OnImprovement, when non-nil, receives a ProgressEvent for generation 0
	// and for every generation that improved the best-known fitness.
	OnImprovement func(ProgressEvent)
}

// Default knob values mirror the classic 50-tour / 90%-crossover /
// 1000-generation-stagnation configuration of the reference runs.
const (
	DefaultPopulationSize  = 50
	DefaultGenerationSize  = 50
	DefaultCrossoverRate   = 0.9
	DefaultStagnationLimit = 1000
	DefaultTournamentSize  = 5
	DefaultEps             = 1e-9
)

// DefaultOptions returns a ready-to-run configuration: tournament selection,
// segment crossover, no target fitness, no polish, deterministic seed 0.
func DefaultOptions() Options {
	return Options{
		PopulationSize:  DefaultPopulationSize,
		GenerationSize:  DefaultGenerationSize,
		CrossoverRate:   DefaultCrossoverRate,
		StagnationLimit: DefaultStagnationLimit,
		TournamentSize:  DefaultTournamentSize,
		Selection:       SelectTournament,
		Crossover:       CrossSegment,
		Eps:             DefaultEps,
	}
}
