package model

import (
	"slices"

	"github.com/samber/lo"
)

// Exhaustive counterpart of the path encoder: enumerates every Hamiltonian
// source-sink order outright instead of asking a solver. Only feasible for
// the study's small vertex counts, where it doubles as ground truth for the
// encoding.

// computePathCost is the line-metric cost of an explicit vertex order.
func computePathCost(path []int) int64 {
	var cost int64
	for i := 0; i < len(path)-1; i++ {
		cost += lineDistance(path[i], path[i+1])
	}
	return cost
}

// edgeInPath reports whether the undirected edge {tail, head} connects two
// consecutive vertices of the order.
func edgeInPath(tail, head int, path []int) bool {
	for i := 1; i < len(path); i++ {
		if (path[i-1] == tail && path[i] == head) || (path[i-1] == head && path[i] == tail) {
			return true
		}
	}
	return false
}

// disjointPaths reports whether no undirected edge of the first order appears
// in the second.
func disjointPaths(first, second []int) bool {
	for i := 1; i < len(first); i++ {
		if edgeInPath(first[i-1], first[i], second) {
			return false
		}
	}
	return true
}

// hamiltonianOrders lists every vertex order of 0..n-1 with the given fixed
// endpoints, one per permutation of the interior vertices.
func hamiltonianOrders(vertices, source, sink int) [][]int {
	interior := lo.Filter(lo.Range(vertices), func(vertex int, _ int) bool {
		return vertex != source && vertex != sink
	})

	return lo.Map(permutations(interior), func(permutation []int, _ int) []int {
		order := make([]int, 0, vertices)
		order = append(order, source)
		order = append(order, permutation...)
		return append(order, sink)
	})
}

func permutations(items []int) [][]int {
	if len(items) <= 1 {
		return [][]int{slices.Clone(items)}
	}

	result := make([][]int, 0)
	for i, item := range items {
		rest := make([]int, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, tail := range permutations(rest) {
			result = append(result, append([]int{item}, tail...))
		}
	}
	return result
}

// DisjointPathsExist reports whether any two edge-disjoint Hamiltonian paths
// between 0 and n-1 exist at all, ignoring cost.
func DisjointPathsExist(vertices int) bool {
	orders := hamiltonianOrders(vertices, 0, vertices-1)

	for i := 0; i < len(orders)-1; i++ {
		for j := i + 1; j < len(orders); j++ {
			if disjointPaths(orders[i], orders[j]) {
				return true
			}
		}
	}
	return false
}

// DisjointPathsWithinBoundExist additionally requires the pair's combined
// cost to beat the instance bound: Denominator*(cost1+cost2) < Numerator*(n-1).
func DisjointPathsWithinBoundExist(instance Instance) bool {
	orders := hamiltonianOrders(instance.Vertices, instance.Source, instance.Sink)
	costs := lo.Map(orders, func(order []int, _ int) int64 { return computePathCost(order) })
	threshold := instance.Bound.Numerator * int64(instance.Vertices-1)

	for i := 0; i < len(orders)-1; i++ {
		for j := i + 1; j < len(orders); j++ {
			if instance.Bound.Denominator*(costs[i]+costs[j]) < threshold && disjointPaths(orders[i], orders[j]) {
				return true
			}
		}
	}
	return false
}
