// Swap mutation: copy semantics, distinct indices, invariant preservation.
package tspga

import (
	"math/rand"
	"testing"
)

func TestMutateSwap_CopySemantics(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	cities := ringCities(8)
	src := randomPermutation(cities, rng)
	srcIDs := src.IDs()

	out := mutateSwap(src, rng)

	// The source chromosome may still sit inside the population being read;
	// mutation must never touch it.
	for p := range src {
		if src[p].ID != srcIDs[p] {
			t.Fatal("mutation modified the source chromosome in place")
		}
	}
	mustPerm(t, out, cities)
}

func TestMutateSwap_ExactlyTwoPositionsDiffer(t *testing.T) {
	rng := rand.New(rand.NewSource(47))
	cities := ringCities(10)

	for trial := 0; trial < 100; trial++ {
		src := randomPermutation(cities, rng)
		out := mutateSwap(src, rng)

		var diff int
		for p := range src {
			if src[p].ID != out[p].ID {
				diff++
			}
		}
		// Indices are guaranteed distinct, so a swap changes exactly two slots.
		if diff != 2 {
			t.Fatalf("trial %d: %d positions differ, want 2", trial, diff)
		}
	}
}

func TestMutateSwap_ShortChromosomes(t *testing.T) {
	rng := rand.New(rand.NewSource(53))

	// n==2: the only possible swap.
	two := Chromosome(ringCities(2))
	out := mutateSwap(two, rng)
	if out[0].ID != two[1].ID || out[1].ID != two[0].ID {
		t.Fatalf("two-city swap wrong: %v", out.IDs())
	}

	// n==1 and n==0: returned unchanged, no panic.
	one := Chromosome(ringCities(1))
	if got := mutateSwap(one, rng); len(got) != 1 || got[0].ID != one[0].ID {
		t.Fatal("single-city chromosome changed")
	}
	if got := mutateSwap(nil, rng); got != nil {
		t.Fatal("nil chromosome should clone to nil")
	}
}
