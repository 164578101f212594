package model

import (
	"github.com/andoresu47/Disjoint-Tours-and-the-PoD/internal/smt"
)

// tourSearcher is the cycle counterpart of pathSearcher: it looks for k
// edge-disjoint Hamiltonian tours of the circle whose combined cost beats
// Numerator*n/Denominator. Unlike the exhaustive tour search, the encoding
// ranges over all tours with no depth-parity restriction.
type tourSearcher struct {
	solver smt.Solver
}

func newTourSearcher(solver smt.Solver) *tourSearcher {
	return &tourSearcher{solver: solver}
}

func (searcher *tourSearcher) Find(instance Instance) (SearchResult, error) {
	if err := instance.validateTour(); err != nil {
		return SearchResult{}, err
	}

	variables := newVariableStore(instance)
	booleans, integers := variables.Declarations()

	smtInstance := smt.Instance{Booleans: booleans, Integers: integers}
	smtInstance.Assertions = append(smtInstance.Assertions, noSelfLoopConstraints(variables)...)
	smtInstance.Assertions = append(smtInstance.Assertions, tourDegreeConstraints(variables)...)
	smtInstance.Assertions = append(smtInstance.Assertions, tourOrderingConstraints(variables)...)
	smtInstance.Assertions = append(smtInstance.Assertions, disjointnessConstraints(variables)...)
	smtInstance.Assertions = append(smtInstance.Assertions, tourCostConstraints(variables)...)

	verdict, engineModel, err := searcher.solver.Solve(smtInstance)
	if err != nil {
		return SearchResult{}, err
	}

	switch verdict {
	case smt.Unsat:
		return SearchResult{Verdict: Unsatisfiable}, nil
	case smt.Unknown:
		return SearchResult{Verdict: Inconclusive}, nil
	}

	tours, cost := interpret(variables, engineModel)
	return SearchResult{Verdict: Satisfiable, Cost: cost, Paths: tours}, nil
}

// tourDegreeConstraints gives every vertex exactly one incoming and one
// outgoing edge; combined with tourOrderingConstraints the selection is one
// cycle through all vertices rather than several disjoint ones.
func tourDegreeConstraints(variables *variableStore) []smt.Term {
	instance := variables.instance

	constraints := make([]smt.Term, 0, 2*instance.Paths*instance.Vertices)
	for path := 0; path < instance.Paths; path++ {
		for vertex := 0; vertex < instance.Vertices; vertex++ {
			inDegree, outDegree := vertexDegrees(variables, path, vertex)
			constraints = append(constraints, smt.Eq(inDegree, smt.Int(1)), smt.Eq(outDegree, smt.Int(1)))
		}
	}
	return constraints
}

// tourOrderingConstraints anchors each tour's rank permutation at vertex 0
// and forces used edges to move strictly forward in rank, except for edges
// returning to the anchor, which close the cycle.
func tourOrderingConstraints(variables *variableStore) []smt.Term {
	instance := variables.instance

	constraints := make([]smt.Term, 0, instance.Paths*(2+instance.Vertices*instance.Vertices))
	for path := 0; path < instance.Paths; path++ {
		constraints = append(constraints, smt.Eq(variables.Rank(path, 0), smt.Int(0)))

		ranks := make([]smt.Term, 0, instance.Vertices)
		for vertex := 0; vertex < instance.Vertices; vertex++ {
			ranks = append(ranks, variables.Rank(path, vertex))
		}
		constraints = append(constraints, smt.Distinct(ranks...))

		for tail := 0; tail < instance.Vertices; tail++ {
			for head := 1; head < instance.Vertices; head++ {
				if tail == head {
					continue
				}
				constraints = append(constraints, smt.Implies(
					variables.Edge(path, tail, head),
					smt.Ge(variables.Rank(path, head), smt.Add(variables.Rank(path, tail), smt.Int(1))),
				))
			}
		}
	}
	return constraints
}

// tourCostConstraints is the circle-metric cost aggregation with the strict
// threshold Denominator*cost < Numerator*n.
func tourCostConstraints(variables *variableStore) []smt.Term {
	instance := variables.instance

	terms := make([]smt.Term, 0, instance.Paths*instance.Vertices*instance.Vertices)
	for path := 0; path < instance.Paths; path++ {
		for tail := 0; tail < instance.Vertices; tail++ {
			for head := 0; head < instance.Vertices; head++ {
				if tail == head {
					continue
				}
				terms = append(terms, smt.Ite(
					variables.Edge(path, tail, head),
					smt.Int(circleDistance(tail, head, instance.Vertices)),
					smt.Int(0),
				))
			}
		}
	}

	return []smt.Term{
		smt.Eq(variables.Cost(), smt.Add(terms...)),
		smt.Lt(
			smt.Mul(smt.Int(instance.Bound.Denominator), variables.Cost()),
			smt.Int(instance.Bound.Numerator*int64(instance.Vertices)),
		),
	}
}
