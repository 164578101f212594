package smt

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func requireSolver(t *testing.T, path string) {
	t.Helper()
	if _, err := exec.LookPath(path); err != nil {
		t.Skipf("%v is not installed", path)
	}
}

func TestZ3Satisfiable(t *testing.T) {
	requireSolver(t, z3Path)
	solver := NewZ3Solver()

	instance := Instance{
		Booleans:   []string{"a", "b"},
		Integers:   []IntDecl{{Name: "y", Lower: -5, Upper: 5}},
		Assertions: []Term{BoolVar("a"), Not(BoolVar("b")), Eq(IntVar("y"), Int(-2))},
	}

	result, model, err := solver.Solve(instance)

	assert.Nil(t, err)
	assert.Equal(t, Sat, result)
	assert.Equal(t, Model{"a": 1, "b": 0, "y": -2}, model)
}

func TestZ3Unsatisfiable(t *testing.T) {
	requireSolver(t, z3Path)
	solver := NewZ3Solver()

	instance := Instance{
		Booleans:   []string{"a"},
		Assertions: []Term{BoolVar("a"), Not(BoolVar("a"))},
	}

	result, model, err := solver.Solve(instance)

	assert.Nil(t, err)
	assert.Equal(t, Unsat, result)
	assert.Nil(t, model)
}

func TestZ3Distinct(t *testing.T) {
	requireSolver(t, z3Path)
	solver := NewZ3Solver()

	instance := Instance{
		Integers: []IntDecl{
			{Name: "y0", Lower: 0, Upper: 2},
			{Name: "y1", Lower: 0, Upper: 2},
			{Name: "y2", Lower: 0, Upper: 2},
		},
		Assertions: []Term{
			Distinct(IntVar("y0"), IntVar("y1"), IntVar("y2")),
			Eq(IntVar("y0"), Int(1)),
		},
	}

	result, model, err := solver.Solve(instance)

	assert.Nil(t, err)
	assert.Equal(t, Sat, result)
	assert.Equal(t, int64(1), model["y0"])
	assert.ElementsMatch(t, []int64{0, 1, 2}, []int64{model["y0"], model["y1"], model["y2"]})
}
