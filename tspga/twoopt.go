// Package tspga - 2-opt polish for evolved tours.
//
// TwoOpt performs deterministic first-improvement 2-opt on an open
// chromosome read as a closed cycle:
//
//	Δ = d(a,c) + d(b,d) − d(a,b) − d(c,d),
//	with a=T[i−1], b=T[i], c=T[k], d=T[(k+1) mod n].
//
// Position 0 is pinned (a cycle needs no moving start), candidate cuts scan
// 1 ≤ i < k ≤ n−1, and an accepted move reverses the segment [i..k] in
// place on a private copy. The scan restarts after every accepted move and
// stops at a local optimum or after maxIters accepted moves (0 ⇒ unlimited).
//
// The GA reaches good basins fast but stalls on crossing edges; a cheap
// 2-opt pass afterwards uncrosses them. Wired behind Options.TwoOptPolish.
package tspga

// TwoOpt returns an improved copy of c together with its stabilized length.
// The input chromosome is never modified. eps is the acceptance tolerance
// (a move must improve by more than eps); negative eps is clamped to 0.
//
// Complexity: O(iter·n²) candidate checks; O(n) per accepted move.
func TwoOpt(c Chromosome, eval *Evaluator, eps float64, maxIters int) (Chromosome, float64) {
	n := len(c)
	cur := c.Clone()
	if n < 4 {
		// Fewer than four cities admit no 2-opt move.
		return cur, eval.Fitness(cur)
	}
	if eps < 0 {
		eps = 0
	}

	cost := eval.Fitness(cur)
	cache := eval.Cache()

	accepted := 0
	for {
		improved := false

		var (
			a, b, cc, d City
			delta       float64
			i, k        int
		)
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				a = cur[i-1]
				b = cur[i]
				cc = cur[k]
				d = cur[(k+1)%n] // wrap-around: k==n-1 closes on cur[0]

				delta = (cache.Distance(a, cc) + cache.Distance(b, d)) -
					(cache.Distance(a, b) + cache.Distance(cc, d))
				if delta >= -eps {
					continue
				}

				reverseSegment(cur, i, k)
				cost = round1e9(cost + delta)
				accepted++
				improved = true

				if maxIters > 0 && accepted >= maxIters {
					return cur, cost
				}

				// First-improvement policy: restart the scan.
				break
			}
			if improved {
				break
			}
		}

		if !improved {
			break
		}
	}

	return cur, cost
}

// reverseSegment reverses the inclusive slice cur[i..k] in place.
// The 2-opt primitive.
//
// Complexity: O(k−i) time, O(1) space.
func reverseSegment(cur Chromosome, i, k int) {
	for i < k {
		cur[i], cur[k] = cur[k], cur[i]
		i++
		k--
	}
}
