package model

import (
	"slices"

	"github.com/samber/lo"

	"github.com/andoresu47/Disjoint-Tours-and-the-PoD/internal/smt"
)

// interpret reconstructs each path's explicit vertex order from a satisfying
// assignment by sorting the vertices on their assigned ranks, and reads back
// the engine's cost value. The assignment is trusted; Verify is the place for
// independent rechecking.
func interpret(variables *variableStore, engineModel smt.Model) ([][]int, int64) {
	instance := variables.instance

	paths := make([][]int, 0, instance.Paths)
	for path := 0; path < instance.Paths; path++ {
		order := lo.Range(instance.Vertices)
		slices.SortFunc(order, func(a, b int) int {
			return int(engineModel[variables.RankName(path, a)] - engineModel[variables.RankName(path, b)])
		})
		paths = append(paths, order)
	}

	return paths, engineModel[variables.CostName()]
}
