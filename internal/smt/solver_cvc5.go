package smt

import "os/exec"

const cvc5Path = "cvc5"

type cvc5Solver struct{}

func NewCvc5Solver() Solver {
	return &cvc5Solver{}
}

func (solver *cvc5Solver) Solve(instance Instance) (Result, Model, error) {
	// cvc5 reads the script from its standard input when no file is given;
	// incremental mode makes it answer each command as soon as it arrives
	cmd := exec.Command(cvc5Path, "--lang", "smt2", "--incremental")
	return runSession(cmd, instance)
}
