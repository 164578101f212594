package model

import (
	"fmt"

	"github.com/andoresu47/Disjoint-Tours-and-the-PoD/internal/smt"
)

type edgeKey struct {
	path, tail, head int
}

type rankKey struct {
	path, vertex int
}

// variableStore owns every engine variable of a single run: one boolean per
// (path, tail, head) meaning "path traverses the directed edge tail->head",
// one bounded integer per (path, vertex) holding the vertex's rank along the
// path, and one integer for the total cost. Identity is keyed by the typed
// tuples so identical names cannot be produced for distinct variables.
type variableStore struct {
	instance Instance
	edges    map[edgeKey]string
	ranks    map[rankKey]string
	cost     string
}

func newVariableStore(instance Instance) *variableStore {
	store := &variableStore{
		instance: instance,
		edges:    make(map[edgeKey]string, instance.Paths*instance.Vertices*instance.Vertices),
		ranks:    make(map[rankKey]string, instance.Paths*instance.Vertices),
		cost:     "total_cost",
	}

	for path := 0; path < instance.Paths; path++ {
		for tail := 0; tail < instance.Vertices; tail++ {
			for head := 0; head < instance.Vertices; head++ {
				store.edges[edgeKey{path, tail, head}] = fmt.Sprintf("x_%v_%v_%v", path, tail, head)
			}
		}
		for vertex := 0; vertex < instance.Vertices; vertex++ {
			store.ranks[rankKey{path, vertex}] = fmt.Sprintf("u_%v_%v", path, vertex)
		}
	}

	return store
}

func (store *variableStore) Edge(path, tail, head int) smt.Term {
	return smt.BoolVar(store.edges[edgeKey{path, tail, head}])
}

func (store *variableStore) EdgeName(path, tail, head int) string {
	return store.edges[edgeKey{path, tail, head}]
}

func (store *variableStore) Rank(path, vertex int) smt.Term {
	return smt.IntVar(store.ranks[rankKey{path, vertex}])
}

func (store *variableStore) RankName(path, vertex int) string {
	return store.ranks[rankKey{path, vertex}]
}

func (store *variableStore) Cost() smt.Term {
	return smt.IntVar(store.cost)
}

func (store *variableStore) CostName() string {
	return store.cost
}

// Declarations emits every owned variable in a deterministic order: edge
// booleans, then ranks bounded to [0, n-1], then the cost variable with a
// loose but safe upper bound.
func (store *variableStore) Declarations() ([]string, []smt.IntDecl) {
	instance := store.instance

	booleans := make([]string, 0, len(store.edges))
	integers := make([]smt.IntDecl, 0, len(store.ranks)+1)
	for path := 0; path < instance.Paths; path++ {
		for tail := 0; tail < instance.Vertices; tail++ {
			for head := 0; head < instance.Vertices; head++ {
				booleans = append(booleans, store.edges[edgeKey{path, tail, head}])
			}
		}
	}
	for path := 0; path < instance.Paths; path++ {
		for vertex := 0; vertex < instance.Vertices; vertex++ {
			integers = append(integers, smt.IntDecl{
				Name:  store.ranks[rankKey{path, vertex}],
				Lower: 0,
				Upper: int64(instance.Vertices - 1),
			})
		}
	}
	integers = append(integers, smt.IntDecl{
		Name:  store.cost,
		Lower: 0,
		Upper: int64(instance.Paths * instance.Vertices * instance.Vertices),
	})

	return booleans, integers
}
