// Package tspga_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating engine functionality.
package tspga_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gentsp/tspga"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny matches tspga.DefaultEps: strict threshold for fitness equality.
	epsTiny = 1e-9

	// epsLoose is a relaxed tolerance for noisy geometric comparisons.
	epsLoose = 1e-6

	// seedDet is the deterministic seed used across tests (0 ⇒ default stream).
	seedDet = int64(0)

	// unitPerimeter is the optimal tour length of the unit square.
	unitPerimeter = 4.0
)

// -----------------------------------------------------------------------------
// Generic helpers (assertions, numeric closeness)
// -----------------------------------------------------------------------------

// mustErrIs asserts that err matches target using errors.Is.
// Intended for strict sentinels (ErrInvalidInput, ErrDuplicateCityID, ...).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustNoErr fails the test on any error.
func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// floatsClose checks absolute closeness of two float64 values.
func floatsClose(a, b, abs float64) bool {
	if a == b {
		// Bitwise equal (covers +0/-0, excludes NaN comparisons).
		return true
	}

	return math.Abs(a-b) <= abs
}

// mustFloatClose asserts closeness of two float64 values.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if !floatsClose(got, want, abs) {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (abs=%.1e)", got, want, abs)
	}
}

// mustValidPermutation asserts the engine-wide permutation invariant.
func mustValidPermutation(t *testing.T, c tspga.Chromosome, want []tspga.City) {
	t.Helper()
	if err := tspga.ValidatePermutation(c, want); err != nil {
		t.Fatalf("permutation invariant violated: %v (tour ids %v)", err, c.IDs())
	}
}

// -----------------------------------------------------------------------------
// Geometric instance generators
// -----------------------------------------------------------------------------

// unitSquare returns the 4 corners of the unit square; the perimeter order
// (as listed) is the unique optimal tour, length exactly 4.
func unitSquare() []tspga.City {
	return []tspga.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 0, Y: 1},
		{ID: 3, X: 1, Y: 1},
		{ID: 4, X: 1, Y: 0},
	}
}

// triangle returns 3 cities; every tour over 3 cities traverses the same
// edge multiset, so ALL fitness values are equal - a frozen landscape.
func triangle() []tspga.City {
	return []tspga.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 4, Y: 0},
		{ID: 3, X: 2, Y: 3},
	}
}

// circleCities places n cities on a gently rippled circle: enough structure
// for the GA to have real work, no symmetry ties.
func circleCities(n int) []tspga.City {
	out := make([]tspga.City, n)
	var (
		i  int
		th float64
		r  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.025*float64(i%3)
		out[i] = tspga.City{ID: i + 1, X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return out
}
