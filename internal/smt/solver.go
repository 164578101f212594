package smt

type Result int

const (
	Unknown Result = iota
	Sat
	Unsat
)

func (result Result) String() string {
	switch result {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	}
	return "unknown"
}

// Model maps every declared variable to its assigned value; booleans are
// stored as 0/1. Only valid for a Sat result.
type Model map[string]int64

type Solver interface {
	Solve(Instance) (Result, Model, error) // A non-nil Model is returned only on Sat; Unknown is a valid verdict, not an error
}
