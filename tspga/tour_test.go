// Package tspga_test validates the tour structure utilities.
package tspga_test

import (
	"testing"

	"github.com/katalvlaran/gentsp/tspga"
)

func TestValidatePermutation(t *testing.T) {
	cities := circleCities(5)

	// A faithful cover passes.
	mustNoErr(t, tspga.ValidatePermutation(tspga.Chromosome(cities), cities))

	// A rotation is still a permutation of the same set.
	mustNoErr(t, tspga.ValidatePermutation(tspga.Rotate(tspga.Chromosome(cities), 2), cities))

	// Duplicate city ⇒ ErrDuplicateCityID.
	dup := tspga.Chromosome{cities[0], cities[1], cities[2], cities[3], cities[0]}
	mustErrIs(t, tspga.ValidatePermutation(dup, cities), tspga.ErrDuplicateCityID)

	// Omission (short tour) ⇒ ErrInvalidInput.
	short := tspga.Chromosome{cities[0], cities[1]}
	mustErrIs(t, tspga.ValidatePermutation(short, cities), tspga.ErrInvalidInput)

	// Foreign identifier ⇒ ErrInvalidInput.
	foreign := tspga.Chromosome(cities).Clone()
	foreign[4] = tspga.City{ID: 999}
	mustErrIs(t, tspga.ValidatePermutation(foreign, cities), tspga.ErrInvalidInput)
}

func TestRotateAndReverse(t *testing.T) {
	c := tspga.Chromosome(circleCities(6))

	// Rotation by n (and by 0) is the identity.
	same := tspga.Rotate(c, 6)
	for i := range c {
		if same[i].ID != c[i].ID {
			t.Fatalf("rotation by n changed the tour at %d", i)
		}
	}

	// Negative shifts normalize: Rotate(-1) == Rotate(n-1).
	left := tspga.Rotate(c, -1)
	right := tspga.Rotate(c, 5)
	for i := range c {
		if left[i].ID != right[i].ID {
			t.Fatalf("negative rotation mismatch at %d", i)
		}
	}

	// Double reversal is the identity.
	back := tspga.Reverse(tspga.Reverse(c))
	for i := range c {
		if back[i].ID != c[i].ID {
			t.Fatalf("double reversal changed the tour at %d", i)
		}
	}
}

func TestEqualModuloRotation(t *testing.T) {
	c := tspga.Chromosome(circleCities(7))

	for k := 0; k < 7; k++ {
		if !tspga.EqualModuloRotation(c, tspga.Rotate(c, k)) {
			t.Fatalf("rotation %d not recognized as the same cycle", k)
		}
	}

	// A reversed tour is the same cycle geometrically but a different
	// directed sequence; EqualModuloRotation is direction-sensitive.
	if tspga.EqualModuloRotation(c, tspga.Reverse(c)) {
		t.Fatal("reversal wrongly reported equal under rotation")
	}

	if tspga.EqualModuloRotation(c, c[:6]) {
		t.Fatal("length mismatch wrongly reported equal")
	}
}
