// Package tspga - the generational driver.
//
// Evolve is the canonical entry point of the engine:
//
//	Initialize → Evolve* → Terminated
//
// Each generation assembles a new population from the previous one: with
// probability Options.CrossoverRate a pair of parents is selected and
// recombined, otherwise a random member is swap-mutated; children are
// appended until the target size is reached. The best tour ever seen is
// carried into each new generation (elitism) and tracked across the whole
// run, which keeps the best-known fitness monotone and makes the
// stagnation rule well defined.
//
// Design principles (shared with the rest of the engine):
//   - Deterministic: one seeded RNG stream drives every draw of the run.
//   - Strict sentinels: input errors abort immediately; operator edge cases
//     are clamped or retried locally and never abort a generation.
//   - No logging: progress surfaces through Options.OnImprovement only.
package tspga

import (
	"context"
	"math/rand"
)

// Evolve runs the genetic algorithm over cities until a termination rule
// fires and returns the best tour found.
//
// Contracts:
//   - cities must be non-empty with unique identifiers (ErrInvalidInput
//     family otherwise; see validateCities).
//   - opts must come from DefaultOptions or satisfy validateOptions.
//   - ctx cancellation is a clean stop, not an error: the best-so-far tour
//     is returned with ReasonCanceled. A nil ctx means context.Background.
//
// Termination (checked in this order, once per generation boundary):
//  1. ctx canceled            → ReasonCanceled
//  2. TargetFitness reached   → ReasonTarget (only when TargetFitness > 0)
//  3. stagnation: more than StagnationLimit consecutive generations without
//     the best fitness improving by more than Eps → ReasonStagnation.
//     With a frozen fitness landscape the driver therefore runs exactly
//     StagnationLimit+1 generations.
//
// Complexity: O(G·P·n) distance lookups, G = generations run, P =
// GenerationSize, n = city count; each distance is computed once per run.
func Evolve(ctx context.Context, cities []City, opts Options) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	rng := rngFromSeed(opts.Seed)
	eval := NewEvaluator(NewDistCache())

	pop, err := InitPopulation(cities, opts.PopulationSize, rng)
	if err != nil {
		return Result{}, err
	}
	fits := evaluateAll(pop, eval)

	// Incumbent: best of the initial population, reported as generation 0.
	var (
		bestIdx = argmin(fits)
		best    = pop[bestIdx].Clone()
		bestFit = fits[bestIdx]
	)
	emit(opts, ProgressEvent{Generation: 0, Fitness: bestFit, Best: best.Clone()})

	var (
		gen           int
		sinceImproved int
		reason        StopReason
	)
	for {
		if ctx.Err() != nil {
			reason = ReasonCanceled
			break
		}
		if opts.TargetFitness > 0 && bestFit <= opts.TargetFitness {
			reason = ReasonTarget
			break
		}
		if sinceImproved > opts.StagnationLimit {
			reason = ReasonStagnation
			break
		}

		gen++
		pop, fits = nextGeneration(pop, fits, best, bestFit, eval, opts, rng)

		genIdx := argmin(fits)
		if bestFit-fits[genIdx] > opts.Eps {
			best = pop[genIdx].Clone()
			bestFit = fits[genIdx]
			sinceImproved = 0
			emit(opts, ProgressEvent{Generation: gen, Fitness: bestFit, Best: best.Clone()})
		} else {
			sinceImproved++
		}
	}

	if opts.TwoOptPolish && reason != ReasonCanceled {
		best, bestFit = TwoOpt(best, eval, opts.Eps, opts.TwoOptMaxIters)
	}

	return Result{
		Best:        best,
		Fitness:     bestFit,
		Generations: gen,
		Reason:      reason,
	}, nil
}

// nextGeneration assembles one generation of size opts.GenerationSize.
// Slot 0 carries an independent copy of the incumbent best (elitism); the
// remaining slots are filled by crossover or mutation. When crossover's
// second offspring would overflow the target size it is dropped - the
// deterministic cap, so generation sizes never drift.
//
// Every appended chromosome is freshly allocated: nothing in next aliases
// storage of pop, so the previous generation stays readable throughout.
//
// Complexity: O(P·n) time and space.
func nextGeneration(pop Population, fits []float64, best Chromosome, bestFit float64,
	eval *Evaluator, opts Options, rng *rand.Rand) (Population, []float64) {

	next := make(Population, 0, opts.GenerationSize)
	nf := make([]float64, 0, opts.GenerationSize)

	next = append(next, best.Clone())
	nf = append(nf, bestFit)

	var (
		i, j   int
		c1, c2 Chromosome
		m      Chromosome
	)
	for len(next) < opts.GenerationSize {
		if len(pop) >= 2 && rng.Float64() < opts.CrossoverRate {
			i, j = pickParents(pop, fits, opts, rng)
			c1, c2 = crossoverPair(pop[i], pop[j], opts.Crossover, rng)

			next = append(next, c1)
			nf = append(nf, eval.Fitness(c1))
			if len(next) < opts.GenerationSize {
				next = append(next, c2)
				nf = append(nf, eval.Fitness(c2))
			}

			continue
		}

		m = mutateSwap(pop[rng.Intn(len(pop))], rng)
		next = append(next, m)
		nf = append(nf, eval.Fitness(m))
	}

	return next, nf
}

// evaluateAll scores a whole population against eval.
//
// Complexity: O(P·n) lookups.
func evaluateAll(pop Population, eval *Evaluator) []float64 {
	fits := make([]float64, len(pop))
	var i int
	for i = 0; i < len(pop); i++ {
		fits[i] = eval.Fitness(pop[i])
	}

	return fits
}

// argmin returns the index of the smallest value. Ties resolve to the
// earliest index, which keeps runs reproducible.
//
// Contract: fits is non-empty.
func argmin(fits []float64) int {
	best := 0
	var i int
	for i = 1; i < len(fits); i++ {
		if fits[i] < fits[best] {
			best = i
		}
	}

	return best
}

// emit delivers a progress event when a callback is configured.
func emit(opts Options, ev ProgressEvent) {
	if opts.OnImprovement != nil {
		opts.OnImprovement(ev)
	}
}
