package model

import (
	"github.com/andoresu47/Disjoint-Tours-and-the-PoD/internal/smt"
)

type Verdict int

const (
	Inconclusive Verdict = iota
	Satisfiable
	Unsatisfiable
)

func (verdict Verdict) String() string {
	switch verdict {
	case Satisfiable:
		return "sat"
	case Unsatisfiable:
		return "unsat"
	}
	return "unknown"
}

// SearchResult is the outcome of one run. Cost and Paths are populated only
// on a Satisfiable verdict; each path is an explicit vertex order.
type SearchResult struct {
	Verdict Verdict
	Cost    int64
	Paths   [][]int
}

type Finder interface {
	Find(instance Instance) (SearchResult, error)
	Verify(instance Instance, result SearchResult) bool // Rechecks a satisfiable result independently of the engine
}

// NewPathFinder searches for edge-disjoint Hamiltonian source-sink paths on
// the line within the instance bound.
func NewPathFinder(solver smt.Solver) Finder {
	return newPathSearcher(solver)
}

// NewTourFinder searches for edge-disjoint Hamiltonian tours of the circle
// within the instance bound.
func NewTourFinder(solver smt.Solver) Finder {
	return newTourSearcher(solver)
}
