// Package tspga - tour structure utilities.
//
// Compact helpers that operate purely on tour structure, without touching
// distances. They back the operator invariants and the test suite:
//   - ValidatePermutation: verify a chromosome covers a city set exactly.
//   - Rotate: cyclic shift (a tour is the same cycle from any start).
//   - Reverse: direction flip (a symmetric tour has the same length).
//   - EqualModuloRotation: equality of cycles with different starts.
//
// Design: no logging, no panics on user input — sentinel errors only.
package tspga

// ValidatePermutation checks that c visits every city of want exactly once:
// no duplicates, no omissions, no foreign identifiers. This is the
// permutation invariant every operator must restore at generation
// boundaries.
//
// Errors: ErrDuplicateCityID for repeats, ErrInvalidInput for length or
// coverage mismatches.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(c Chromosome, want []City) error {
	if len(c) != len(want) {
		return ErrInvalidInput
	}

	expected := make(map[int]struct{}, len(want))
	var i int
	for i = 0; i < len(want); i++ {
		expected[want[i].ID] = struct{}{}
	}

	seen := make(map[int]struct{}, len(c))
	var ok bool
	for i = 0; i < len(c); i++ {
		if _, ok = expected[c[i].ID]; !ok {
			return ErrInvalidInput
		}
		if _, ok = seen[c[i].ID]; ok {
			return ErrDuplicateCityID
		}
		seen[c[i].ID] = struct{}{}
	}

	return nil
}

// Rotate returns a fresh chromosome cyclically shifted left by k positions:
// out[i] = c[(i+k) mod n]. The cycle it denotes is unchanged.
//
// Complexity: O(n) time, O(n) space.
func Rotate(c Chromosome, k int) Chromosome {
	n := len(c)
	if n == 0 {
		return Chromosome{}
	}

	k %= n
	if k < 0 {
		k += n
	}

	out := make(Chromosome, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = c[(i+k)%n]
	}

	return out
}

// Reverse returns a fresh chromosome in reversed order. Read as a cycle,
// the reversed tour traverses the same edges in the opposite direction.
//
// Complexity: O(n) time, O(n) space.
func Reverse(c Chromosome) Chromosome {
	n := len(c)
	out := make(Chromosome, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = c[n-1-i]
	}

	return out
}

// EqualModuloRotation reports whether a and b denote the same directed
// cycle, i.e. b is some rotation of a.
//
// Complexity: O(n) time.
func EqualModuloRotation(a, b Chromosome) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}

	// Locate a[0] inside b, then compare by rotation.
	var (
		p = -1
		i int
	)
	for i = 0; i < n; i++ {
		if b[i].ID == a[0].ID {
			p = i
			break
		}
	}
	if p == -1 {
		return false
	}

	for i = 0; i < n; i++ {
		if a[i].ID != b[(p+i)%n].ID {
			return false
		}
	}

	return true
}
