package model

// Verify rechecks a satisfiable result without trusting the engine: every
// path must be a source-to-sink permutation of the vertices, the paths must
// be pairwise edge-disjoint, the recomputed total cost must match the
// reported one exactly and the strict bound must hold.
func (searcher *pathSearcher) Verify(instance Instance, result SearchResult) bool {
	if result.Verdict != Satisfiable || len(result.Paths) != instance.Paths {
		return false
	}

	var total int64
	for _, path := range result.Paths {
		if !validPathOrder(instance, path) {
			return false
		}
		total += computePathCost(path)
	}

	if !pairwiseDisjoint(result.Paths, disjointPaths) {
		return false
	} else if total != result.Cost {
		return false
	}

	return instance.Bound.Denominator*total < instance.Bound.Numerator*int64(instance.Vertices-1)
}

func (searcher *tourSearcher) Verify(instance Instance, result SearchResult) bool {
	if result.Verdict != Satisfiable || len(result.Paths) != instance.Paths {
		return false
	}

	var total int64
	for _, tour := range result.Paths {
		if !validTourOrder(instance, tour) {
			return false
		}
		total += computeTourCost(tour)
	}

	if !pairwiseDisjoint(result.Paths, disjointTours) {
		return false
	} else if total != result.Cost {
		return false
	}

	return instance.Bound.Denominator*total < instance.Bound.Numerator*int64(instance.Vertices)
}

// validPathOrder checks that a vertex order visits every vertex exactly once,
// starting at the source and ending at the sink.
func validPathOrder(instance Instance, path []int) bool {
	if len(path) != instance.Vertices {
		return false
	} else if path[0] != instance.Source || path[len(path)-1] != instance.Sink {
		return false
	}
	return visitsEveryVertexOnce(instance.Vertices, path)
}

// validTourOrder checks that a tour visits every vertex exactly once in its
// canonical form anchored at vertex 0.
func validTourOrder(instance Instance, tour []int) bool {
	if len(tour) != instance.Vertices || tour[0] != 0 {
		return false
	}
	return visitsEveryVertexOnce(instance.Vertices, tour)
}

func visitsEveryVertexOnce(vertices int, order []int) bool {
	seen := make([]bool, vertices)
	for _, vertex := range order {
		if vertex < 0 || vertex >= vertices || seen[vertex] {
			return false
		}
		seen[vertex] = true
	}
	return true
}

func pairwiseDisjoint(orders [][]int, disjoint func(first, second []int) bool) bool {
	for i := 0; i < len(orders)-1; i++ {
		for j := i + 1; j < len(orders); j++ {
			if !disjoint(orders[i], orders[j]) {
				return false
			}
		}
	}
	return true
}
