package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/andoresu47/Disjoint-Tours-and-the-PoD/internal/model"
	"github.com/andoresu47/Disjoint-Tours-and-the-PoD/internal/smt"
)

var (
	validSolvers = []string{"z3", "cvc5"}
	solvers      = map[string]func() smt.Solver{
		"z3":   smt.NewZ3Solver,
		"cvc5": smt.NewCvc5Solver,
	}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "z3", "SMT-Solver to use. Allowed values are: \"z3\" and \"cvc5\", where \"z3\" is the default")
	filePathPtr := flag.String("file", "", "Path to the input file; if empty, the study defaults are used (n in {6, 7, 8}, two paths, threshold 16/5)")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	toursPtr := flag.Bool("tours", false, "Search for edge-disjoint Hamiltonian tours of the circle instead of source-sink paths of the line")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	}

	// Extract input
	input := model.DefaultSearchInput()
	if filePath != "" {
		var err error
		input, err = model.InputFromJson(filePath)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
	}

	// Initialize engines
	solver := solvers[solverStr]()
	finder := model.NewPathFinder(solver)
	if *toursPtr {
		finder = model.NewTourFinder(solver)
	}

	// Run one independent search per vertex count
	anySatisfiable := false
	outputs := make([]map[string]any, 0, len(input.Counts))
	for _, instance := range input.Instances() {
		result, err := finder.Find(instance)
		if err != nil {
			log.Fatalf("an error occurred during the search: %v", err)
		}

		output := map[string]any{
			"n":       instance.Vertices,
			"verdict": result.Verdict.String(),
		}
		if result.Verdict == model.Satisfiable {
			if !finder.Verify(instance, result) {
				log.Fatalf("verification failed for n=%v", instance.Vertices)
			}
			anySatisfiable = true
			output["cost"] = result.Cost
			output["paths"] = result.Paths
		}
		outputs = append(outputs, output)
	}

	// Marshal output into json
	outputsJson, err := json.Marshal(outputs)
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(outputsJson))
	} else {
		err := os.WriteFile(outFile, outputsJson, 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	if anySatisfiable {
		os.Exit(10)
	}
	os.Exit(20)
}
