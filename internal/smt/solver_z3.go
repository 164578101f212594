package smt

import "os/exec"

const z3Path = "z3"

type z3Solver struct{}

func NewZ3Solver() Solver {
	return &z3Solver{}
}

func (solver *z3Solver) Solve(instance Instance) (Result, Model, error) {
	cmd := exec.Command(z3Path, "-in") // Feed the SMT-LIB2 script into z3's standard input
	return runSession(cmd, instance)
}
