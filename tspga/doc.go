// Package tspga provides a genetic-algorithm heuristic for the Euclidean
// Traveling Salesman Problem.
//
// The engine evolves a population of candidate tours (chromosomes) over a
// fixed city set:
//
//   - Evolve — the generational driver: selection → crossover/mutation →
//     replacement, terminating on best-fitness stagnation.
//
//   - Complexity: O(G·P·n) distance lookups for G generations of P tours
//     over n cities; Euclidean distances are memoized per run.
//
//   - Two crossover operators (segment transplant and cycle crossover),
//     both permutation-preserving by construction.
//
//   - Three selection strategies (tournament, roulette, rank).
//
// Tours are OPEN permutations of the city set; the closing edge back to the
// first city exists only inside fitness evaluation (wrap-around indexing).
// Lower fitness is better: fitness is the total length of the closed tour.
//
// Use this package when a short tour is wanted quickly and an optimality
// proof is not: the stagnation policy is an approximation-algorithm stop,
// not a convergence guarantee.
package tspga
