package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTourCost(t *testing.T) {
	assert.Equal(t, int64(8), computeTourCost([]int{0, 2, 1, 4, 3}))
	assert.Equal(t, int64(6), computeTourCost([]int{0, 1, 2, 3, 4, 5}))
	assert.Equal(t, int64(8), computeTourCost([]int{0, 1, 3, 2, 4, 5}))
	assert.Equal(t, int64(11), computeTourCost([]int{0, 2, 3, 1, 4, 5, 6}))
	assert.Equal(t, int64(11), computeTourCost([]int{0, 1, 2, 5, 3, 4, 6}))
	assert.Equal(t, int64(17), computeTourCost([]int{0, 1, 2, 3, 4, 5, 7, 9, 6, 8, 10}))
}

func TestEdgeInTour(t *testing.T) {
	tour := []int{0, 2, 1, 3}

	// Closing edge between the anchor and the last vertex
	assert.True(t, edgeInTour(0, 3, tour))
	assert.True(t, edgeInTour(3, 0, tour))

	assert.True(t, edgeInTour(0, 2, tour))
	assert.True(t, edgeInTour(1, 2, tour))
	assert.True(t, edgeInTour(1, 3, tour))

	assert.False(t, edgeInTour(0, 1, tour))
	assert.False(t, edgeInTour(2, 3, tour))
}

func TestOddDepthTour(t *testing.T) {
	// The identity tour covers the segment between 0 and 1 exactly once
	assert.True(t, oddDepthTour([]int{0, 1, 2, 3, 4, 5}))

	assert.False(t, oddDepthTour([]int{0, 6, 4, 2, 1, 3, 5, 7}))
}

func TestCanonicalTours(t *testing.T) {
	tours := canonicalTours(4)

	// (n-1)!/2 tours once reversals are removed
	assert.ElementsMatch(t, [][]int{{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}}, tours)
}

func TestDisjointToursExist(t *testing.T) {
	for _, vertices := range []int{3, 4} {
		assert.False(t, DisjointToursExist(vertices), "n=%v", vertices)
	}
	for _, vertices := range []int{5, 6, 7} {
		assert.True(t, DisjointToursExist(vertices), "n=%v", vertices)
	}
}

func TestDisjointToursWithinBoundExist(t *testing.T) {
	// Under the study threshold 16n/5 no admissible odd-depth pair exists
	for _, vertices := range []int{5, 6, 7} {
		instance := Instance{Vertices: vertices, Paths: 2, Bound: Bound{Numerator: 16, Denominator: 5}}
		assert.False(t, DisjointToursWithinBoundExist(instance), "n=%v", vertices)
	}

	// Relaxing to 4n admits pairs for n >= 6; for n=5 no odd-depth disjoint pair exists at any cost
	relaxed := Bound{Numerator: 4, Denominator: 1}
	assert.False(t, DisjointToursWithinBoundExist(Instance{Vertices: 5, Paths: 2, Bound: relaxed}))
	for _, vertices := range []int{6, 7} {
		assert.True(t, DisjointToursWithinBoundExist(Instance{Vertices: vertices, Paths: 2, Bound: relaxed}), "n=%v", vertices)
	}
}
