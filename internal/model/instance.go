package model

import "fmt"

// Bound is the strict cost threshold of the conjecture under test, kept as an
// exact rational Numerator/Denominator so the comparison never leaves integer
// arithmetic: a witness is admissible when Denominator*cost < Numerator*scale,
// where scale is n-1 for paths and n for tours.
type Bound struct {
	Numerator   int64 `mapstructure:"numerator"`
	Denominator int64 `mapstructure:"denominator"`
}

// Instance describes one independent encode-and-decide run. Vertices are the
// integers 0..Vertices-1 on the line (or circle, for tours); Source and Sink
// only apply to path searches.
type Instance struct {
	Vertices int
	Source   int
	Sink     int
	Paths    int
	Bound    Bound
}

// NewInstance returns the study's default instance for n vertices: source 0,
// sink n-1, two paths and the 16/5 threshold.
func NewInstance(vertices int) Instance {
	return Instance{
		Vertices: vertices,
		Source:   0,
		Sink:     vertices - 1,
		Paths:    2,
		Bound:    Bound{Numerator: 16, Denominator: 5},
	}
}

func (instance Instance) Validate() error {
	if instance.Vertices < 2 {
		return fmt.Errorf("at least two vertices are required, got %v", instance.Vertices)
	} else if instance.Paths < 1 {
		return fmt.Errorf("at least one path is required, got %v", instance.Paths)
	} else if instance.Source < 0 || instance.Source >= instance.Vertices {
		return fmt.Errorf("source %v is not a vertex of 0..%v", instance.Source, instance.Vertices-1)
	} else if instance.Sink < 0 || instance.Sink >= instance.Vertices {
		return fmt.Errorf("sink %v is not a vertex of 0..%v", instance.Sink, instance.Vertices-1)
	} else if instance.Source == instance.Sink {
		return fmt.Errorf("source and sink must differ, both are %v", instance.Source)
	} else if instance.Bound.Numerator <= 0 || instance.Bound.Denominator <= 0 {
		return fmt.Errorf("bound must be a positive rational, got %v/%v", instance.Bound.Numerator, instance.Bound.Denominator)
	}
	return nil
}

// validateTour is the tour-search variant: tours have no endpoints, so only
// the vertex count, path count and bound are checked.
func (instance Instance) validateTour() error {
	if instance.Vertices < 3 {
		return fmt.Errorf("at least three vertices are required for a tour, got %v", instance.Vertices)
	} else if instance.Paths < 1 {
		return fmt.Errorf("at least one tour is required, got %v", instance.Paths)
	} else if instance.Bound.Numerator <= 0 || instance.Bound.Denominator <= 0 {
		return fmt.Errorf("bound must be a positive rational, got %v/%v", instance.Bound.Numerator, instance.Bound.Denominator)
	}
	return nil
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

// lineDistance is the uniform line metric on vertex labels.
func lineDistance(i, j int) int64 {
	return int64(abs(i - j))
}

// circleDistance is the metric on n uniformly spaced points of the circle.
func circleDistance(i, j, n int) int64 {
	difference := abs(i - j)
	return int64(min(difference, n-difference))
}
