package model

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestVerifyPathWitness(t *testing.T) {
	g := NewWithT(t)

	instance := Instance{Vertices: 6, Source: 0, Sink: 5, Paths: 2, Bound: Bound{Numerator: 4, Denominator: 1}}
	finder := NewPathFinder(&fakeSolver{})

	witness := SearchResult{
		Verdict: Satisfiable,
		Cost:    16,
		Paths:   [][]int{{0, 1, 2, 3, 4, 5}, {0, 2, 4, 1, 3, 5}},
	}
	g.Expect(finder.Verify(instance, witness)).To(BeTrue())

	// The reported cost must match the recomputed one exactly
	wrongCost := witness
	wrongCost.Cost = 15
	g.Expect(finder.Verify(instance, wrongCost)).To(BeFalse())

	// Sharing an undirected edge between the paths is rejected
	sharedEdge := witness
	sharedEdge.Paths = [][]int{{0, 1, 2, 3, 4, 5}, {0, 1, 2, 3, 4, 5}}
	sharedEdge.Cost = 10
	g.Expect(finder.Verify(instance, sharedEdge)).To(BeFalse())

	// A path must end at the sink
	wrongSink := witness
	wrongSink.Paths = [][]int{{0, 1, 2, 3, 4, 5}, {0, 2, 4, 1, 5, 3}}
	g.Expect(finder.Verify(instance, wrongSink)).To(BeFalse())

	// Under the study threshold 16/5 the same pair is too expensive: 5*16 = 16*5
	tightBound := instance
	tightBound.Bound = Bound{Numerator: 16, Denominator: 5}
	g.Expect(finder.Verify(tightBound, witness)).To(BeFalse())

	// Only satisfiable results carry a witness
	unsat := SearchResult{Verdict: Unsatisfiable}
	g.Expect(finder.Verify(instance, unsat)).To(BeFalse())
}

func TestVerifyTourWitness(t *testing.T) {
	g := NewWithT(t)

	instance := Instance{Vertices: 5, Paths: 2, Bound: Bound{Numerator: 100, Denominator: 1}}
	finder := NewTourFinder(&fakeSolver{})

	witness := SearchResult{
		Verdict: Satisfiable,
		Cost:    15,
		Paths:   [][]int{{0, 1, 2, 3, 4}, {0, 2, 4, 1, 3}},
	}
	g.Expect(finder.Verify(instance, witness)).To(BeTrue())

	// Tours are verified in canonical form, anchored at vertex 0
	unanchored := witness
	unanchored.Paths = [][]int{{1, 2, 3, 4, 0}, {0, 2, 4, 1, 3}}
	g.Expect(finder.Verify(instance, unanchored)).To(BeFalse())

	wrongCost := witness
	wrongCost.Cost = 14
	g.Expect(finder.Verify(instance, wrongCost)).To(BeFalse())
}
