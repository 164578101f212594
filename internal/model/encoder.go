package model

import (
	"github.com/andoresu47/Disjoint-Tours-and-the-PoD/internal/smt"
)

// pathSearcher encodes one instance of the two-path conjecture (k vertex-wise
// generalized) into a constraint system and delegates the decision to an
// external solver.
type pathSearcher struct {
	solver smt.Solver
}

func newPathSearcher(solver smt.Solver) *pathSearcher {
	return &pathSearcher{solver: solver}
}

func (searcher *pathSearcher) Find(instance Instance) (SearchResult, error) {
	if err := instance.Validate(); err != nil {
		return SearchResult{}, err
	}

	variables := newVariableStore(instance)
	booleans, integers := variables.Declarations()

	smtInstance := smt.Instance{Booleans: booleans, Integers: integers}
	smtInstance.Assertions = append(smtInstance.Assertions, noSelfLoopConstraints(variables)...)
	smtInstance.Assertions = append(smtInstance.Assertions, degreeConstraints(variables)...)
	smtInstance.Assertions = append(smtInstance.Assertions, orderingConstraints(variables)...)
	smtInstance.Assertions = append(smtInstance.Assertions, disjointnessConstraints(variables)...)
	smtInstance.Assertions = append(smtInstance.Assertions, costConstraints(variables)...)

	verdict, engineModel, err := searcher.solver.Solve(smtInstance)
	if err != nil {
		return SearchResult{}, err
	}

	switch verdict {
	case smt.Unsat:
		return SearchResult{Verdict: Unsatisfiable}, nil
	case smt.Unknown: // An inconclusive engine answer is surfaced as-is, never treated as unsatisfiable
		return SearchResult{Verdict: Inconclusive}, nil
	}

	paths, cost := interpret(variables, engineModel)
	return SearchResult{Verdict: Satisfiable, Cost: cost, Paths: paths}, nil
}

func noSelfLoopConstraints(variables *variableStore) []smt.Term {
	instance := variables.instance

	constraints := make([]smt.Term, 0, instance.Paths*instance.Vertices)
	for path := 0; path < instance.Paths; path++ {
		for vertex := 0; vertex < instance.Vertices; vertex++ {
			constraints = append(constraints, smt.Not(variables.Edge(path, vertex, vertex)))
		}
	}
	return constraints
}

// degreeConstraints pins the in/out degree of every vertex to its role: the
// source emits exactly one edge and absorbs none, the sink absorbs exactly
// one and emits none, interior vertices do both. Degrees alone still admit
// disjoint cycles next to the source-sink chain; orderingConstraints rules
// those out.
func degreeConstraints(variables *variableStore) []smt.Term {
	instance := variables.instance

	constraints := make([]smt.Term, 0, 2*instance.Paths*instance.Vertices)
	for path := 0; path < instance.Paths; path++ {
		for vertex := 0; vertex < instance.Vertices; vertex++ {
			inDegree, outDegree := vertexDegrees(variables, path, vertex)

			switch vertex {
			case instance.Source:
				constraints = append(constraints, smt.Eq(inDegree, smt.Int(0)), smt.Eq(outDegree, smt.Int(1)))
			case instance.Sink:
				constraints = append(constraints, smt.Eq(inDegree, smt.Int(1)), smt.Eq(outDegree, smt.Int(0)))
			default:
				constraints = append(constraints, smt.Eq(inDegree, smt.Int(1)), smt.Eq(outDegree, smt.Int(1)))
			}
		}
	}
	return constraints
}

// vertexDegrees builds the in/out degree expressions of a vertex as sums of
// 0/1 casts of the edge indicators.
func vertexDegrees(variables *variableStore, path, vertex int) (smt.Term, smt.Term) {
	instance := variables.instance

	ins := make([]smt.Term, 0, instance.Vertices)
	outs := make([]smt.Term, 0, instance.Vertices)
	for other := 0; other < instance.Vertices; other++ {
		ins = append(ins, smt.Ite(variables.Edge(path, other, vertex), smt.Int(1), smt.Int(0)))
		outs = append(outs, smt.Ite(variables.Edge(path, vertex, other), smt.Int(1), smt.Int(0)))
	}
	return smt.Add(ins...), smt.Add(outs...)
}

// orderingConstraints makes the rank variables of each path a permutation of
// 0..n-1 with the source first and the sink last, and forces every used edge
// to move strictly forward in rank. A degree-valid selection can then only be
// one monotone chain from source to sink; fragments of disjoint cycles would
// need a rank decrease somewhere.
func orderingConstraints(variables *variableStore) []smt.Term {
	instance := variables.instance

	constraints := make([]smt.Term, 0, instance.Paths*(3+instance.Vertices*instance.Vertices))
	for path := 0; path < instance.Paths; path++ {
		constraints = append(constraints, smt.Eq(variables.Rank(path, instance.Source), smt.Int(0)))
		constraints = append(constraints, smt.Eq(variables.Rank(path, instance.Sink), smt.Int(int64(instance.Vertices-1))))

		ranks := make([]smt.Term, 0, instance.Vertices)
		for vertex := 0; vertex < instance.Vertices; vertex++ {
			ranks = append(ranks, variables.Rank(path, vertex))
		}
		constraints = append(constraints, smt.Distinct(ranks...))

		for tail := 0; tail < instance.Vertices; tail++ {
			for head := 0; head < instance.Vertices; head++ {
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

// disjointnessConstraints forbids any unordered vertex pair from being used,
// in either direction, by more than one path. This is the only coupling
// between the paths.
func disjointnessConstraints(variables *variableStore) []smt.Term {
	instance := variables.instance

	constraints := make([]smt.Term, 0, instance.Paths*instance.Paths*instance.Vertices*instance.Vertices/2)
	for first := 0; first < instance.Paths-1; first++ {
		for second := first + 1; second < instance.Paths; second++ {
			for tail := 0; tail < instance.Vertices; tail++ {
				for head := tail + 1; head < instance.Vertices; head++ {
					firstUses := smt.Or(variables.Edge(first, tail, head), variables.Edge(first, head, tail))
					secondUses := smt.Or(variables.Edge(second, tail, head), variables.Edge(second, head, tail))
					constraints = append(constraints, smt.Not(smt.And(firstUses, secondUses)))
				}
			}
		}
	}
	return constraints
}

// costConstraints equates the cost variable with the summed line-metric
// lengths of the used edges and asserts the strict threshold
// Denominator*cost < Numerator*(n-1), the integer form of
// cost < Numerator*(n-1)/Denominator.
func costConstraints(variables *variableStore) []smt.Term {
	instance := variables.instance

	terms := make([]smt.Term, 0, instance.Paths*instance.Vertices*instance.Vertices)
	for path := 0; path < instance.Paths; path++ {
		for tail := 0; tail < instance.Vertices; tail++ {
			for head := 0; head < instance.Vertices; head++ {
				if tail == head {
					continue
				}
				terms = append(terms, smt.Ite(variables.Edge(path, tail, head), smt.Int(lineDistance(tail, head)), smt.Int(0)))
			}
		}
	}

	return []smt.Term{
		smt.Eq(variables.Cost(), smt.Add(terms...)),
		smt.Lt(
			smt.Mul(smt.Int(instance.Bound.Denominator), variables.Cost()),
			smt.Int(instance.Bound.Numerator*int64(instance.Vertices-1)),
		),
	}
}
