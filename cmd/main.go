package main

import (
	"fmt"
	"log"

	"github.com/andoresu47/Disjoint-Tours-and-the-PoD/internal/model"
	"github.com/andoresu47/Disjoint-Tours-and-the-PoD/internal/smt"
)

func main() {
	solver := smt.NewZ3Solver()
	// solver := smt.NewCvc5Solver()
	finder := model.NewPathFinder(solver)

	for _, instance := range model.DefaultSearchInput().Instances() {
		result, err := finder.Find(instance)
		if err != nil {
			log.Fatal(err)
		}

		switch result.Verdict {
		case model.Unsatisfiable:
			fmt.Printf("n=%v: UNSAT (no such pair exists)\n", instance.Vertices)
		case model.Inconclusive:
			fmt.Printf("n=%v: UNKNOWN (the solver gave no answer)\n", instance.Vertices)
		case model.Satisfiable:
			fmt.Printf("n=%v: SAT (counterexample found), total cost = %v\n", instance.Vertices, result.Cost)
			for index, path := range result.Paths {
				fmt.Printf("  path %v order: %v\n", index, path)
			}

			if !finder.Verify(instance, result) {
				log.Fatal("verification failed")
			}
		}
	}
}
