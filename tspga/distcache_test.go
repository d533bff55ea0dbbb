// Package tspga_test validates the memoized distance cache: symmetry,
// idempotence, the same-city fast path and monotone growth.
package tspga_test

import (
	"testing"

	"github.com/katalvlaran/gentsp/tspga"
)

func TestDistCache_SymmetryAndIdempotence(t *testing.T) {
	cache := tspga.NewDistCache()
	a := tspga.City{ID: 1, X: 0, Y: 0}
	b := tspga.City{ID: 2, X: 3, Y: 4}

	// First lookup computes, second must return the identical value.
	d1 := cache.Distance(a, b)
	d2 := cache.Distance(a, b)
	if d1 != d2 {
		t.Fatalf("cache not idempotent: %v vs %v", d1, d2)
	}
	mustFloatClose(t, d1, 5.0, epsTiny)

	// Symmetric lookup must hit the same canonical entry, not add a new one.
	d3 := cache.Distance(b, a)
	if d3 != d1 {
		t.Fatalf("asymmetric cache: d(a,b)=%v d(b,a)=%v", d1, d3)
	}
	if cache.Len() != 1 {
		t.Fatalf("want exactly 1 cached pair, got %d", cache.Len())
	}
}

func TestDistCache_SameCityUncached(t *testing.T) {
	cache := tspga.NewDistCache()
	a := tspga.City{ID: 7, X: 2, Y: 9}

	if d := cache.Distance(a, a); d != 0 {
		t.Fatalf("distance to self must be 0, got %v", d)
	}
	// The same-id fast path must not pollute the cache.
	if cache.Len() != 0 {
		t.Fatalf("self-distance was cached: %d entries", cache.Len())
	}
}

func TestDistCache_GrowsMonotonically(t *testing.T) {
	cache := tspga.NewDistCache()
	cities := circleCities(6)

	// Touch every unordered pair once; the cache must hold exactly C(6,2).
	var i, j int
	for i = 0; i < len(cities); i++ {
		for j = i + 1; j < len(cities); j++ {
			cache.Distance(cities[i], cities[j])
		}
	}
	if want := 15; cache.Len() != want {
		t.Fatalf("want %d cached pairs, got %d", want, cache.Len())
	}

	// Re-touching in reversed order must not add entries.
	for i = 0; i < len(cities); i++ {
		for j = i + 1; j < len(cities); j++ {
			cache.Distance(cities[j], cities[i])
		}
	}
	if want := 15; cache.Len() != want {
		t.Fatalf("reversed lookups grew cache: got %d", cache.Len())
	}
}
