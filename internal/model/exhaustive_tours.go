package model

import "github.com/samber/lo"

// Exhaustive tour search on the circle metric. Tours are kept in canonical
// form: anchored at vertex 0, with each reversal-symmetric duplicate skipped.

// computeTourCost is the circle-metric cost of a tour, including the closing
// edge back to the anchor.
func computeTourCost(tour []int) int64 {
	n := len(tour)

	var cost int64
	for i := 0; i < n-1; i++ {
		cost += circleDistance(tour[i], tour[i+1], n)
	}
	return cost + circleDistance(tour[n-1], tour[0], n)
}

// edgeInTour reports whether the undirected edge {tail, head} appears in the
// tour, closing edge included.
func edgeInTour(tail, head int, tour []int) bool {
	n := len(tour)
	if (tail == tour[0] && tour[n-1] == head) || (head == tour[0] && tour[n-1] == tail) {
		return true
	}
	for i := 1; i < n; i++ {
		if (tour[i-1] == tail && tour[i] == head) || (tour[i-1] == head && tour[i] == tail) {
			return true
		}
	}
	return false
}

func disjointTours(first, second []int) bool {
	n := len(first)
	if edgeInTour(first[0], first[n-1], second) {
		return false
	}
	for i := 1; i < n; i++ {
		if edgeInTour(first[i-1], first[i], second) {
			return false
		}
	}
	return true
}

// oddDepthTour classifies a canonical tour by the parity of the depth of the
// circle segment between vertices 0 and 1: the number of tour edges covering
// vertex 0 or vertex 1, counting the edge {0, 1} itself when present.
func oddDepthTour(tour []int) bool {
	n := len(tour)

	depth := 0
	for i := 0; i < n-1; i++ {
		difference := abs(tour[i] - tour[i+1])
		if difference > n-difference {
			if i > 0 {
				depth++ // Vertex 0 is covered when the edge wraps around and does not start at the anchor
			}
		} else if i == 0 {
			depth++ // Vertex 1 is covered by a non-wrapping edge out of the anchor
		}
	}

	lastDifference := abs(tour[n-1] - tour[0])
	if lastDifference < n-lastDifference {
		depth++ // The closing edge covers vertex 1 when it does not wrap around
	}

	return depth%2 == 1
}

// canonicalTours lists every Hamiltonian tour of 0..n-1 exactly once: the
// anchor comes first, and a tour whose last vertex is smaller than its second
// is the reversal of one already listed.
func canonicalTours(vertices int) [][]int {
	candidates := lo.Map(permutations(lo.Range(vertices)[1:]), func(permutation []int, _ int) []int {
		return append([]int{0}, permutation...)
	})

	return lo.Filter(candidates, func(tour []int, _ int) bool {
		return tour[vertices-1] > tour[1]
	})
}

// DisjointToursExist reports whether any two edge-disjoint Hamiltonian tours
// exist at all, ignoring cost and depth parity.
func DisjointToursExist(vertices int) bool {
	tours := canonicalTours(vertices)

	for i := 0; i < len(tours)-1; i++ {
		for j := i + 1; j < len(tours); j++ {
			if disjointTours(tours[i], tours[j]) {
				return true
			}
		}
	}
	return false
}

// DisjointToursWithinBoundExist looks for a pair of odd-depth edge-disjoint
// tours with Denominator*(cost1+cost2) < Numerator*n.
func DisjointToursWithinBoundExist(instance Instance) bool {
	tours := canonicalTours(instance.Vertices)
	costs := lo.Map(tours, func(tour []int, _ int) int64 { return computeTourCost(tour) })
	oddDepth := lo.Map(tours, func(tour []int, _ int) bool { return oddDepthTour(tour) })
	threshold := instance.Bound.Numerator * int64(instance.Vertices)

	for i := 0; i < len(tours)-1; i++ {
		if !oddDepth[i] {
			continue
		}
		for j := i + 1; j < len(tours); j++ {
			if oddDepth[j] &&
				instance.Bound.Denominator*(costs[i]+costs[j]) < threshold &&
				disjointTours(tours[i], tours[j]) {
				return true
			}
		}
	}
	return false
}
