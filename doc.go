// Package gentsp is a genetic-algorithm toolkit for the Euclidean
// Traveling Salesman Problem: load a set of 2D cities, evolve short
// closed tours, and render the winner.
//
// 🚀 What is gentsp?
//
//	A small, deterministic solver library that brings together:
//		• Core engine: population, selection, permutation-safe crossover,
//		  mutation and a stagnation-driven generational loop
//		• Memoized geometry: a symmetric pairwise distance cache shared by
//		  every fitness evaluation of a run
//		• Local search: optional 2-opt polish of the evolved tour
//		• I/O collaborators: TSP-format coordinate parsing and PNG plotting
//
// ✨ Why choose gentsp?
//
//   - Reproducible – every random draw flows from one seeded stream
//   - Invariant-safe – operators provably preserve the permutation of cities
//   - Minimal API – one Options struct, one Evolve call, one Result
//   - Pure Go engine – plotting is the only package that draws anything
//
// Everything is organized under three packages plus a CLI:
//
//	tspga/   — the genetic engine: cache, fitness, operators, driver
//	tspfile/ — TSP-format coordinate files in, tour listings out
//	tspplot/ — tour and convergence charts as PNG (gonum/plot)
//	cmd/gentsp — command-line front end tying the three together
//
// Quick ASCII example:
//
//	    1───2
//	    │   │        a 4-city instance whose optimal tour is the
//	    4───3        perimeter, length 4 on the unit square.
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/gentsp/tspga
package gentsp
