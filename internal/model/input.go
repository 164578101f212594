package model

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// SearchInput is the JSON-facing description of a search campaign: the vertex
// counts to try plus the shared instance configuration. Absent keys keep the
// study defaults.
type SearchInput struct {
	Counts           []int
	Source           int
	Sink             int // A negative sink stands for "last vertex", resolved per count
	Paths            int
	BoundNumerator   int64 `mapstructure:"boundNumerator"`
	BoundDenominator int64 `mapstructure:"boundDenominator"`
}

// DefaultSearchInput is the campaign of the originating study: n in {6, 7, 8},
// endpoints 0 and n-1, two paths, threshold 16/5.
func DefaultSearchInput() SearchInput {
	return SearchInput{
		Counts:           []int{6, 7, 8},
		Source:           0,
		Sink:             -1,
		Paths:            2,
		BoundNumerator:   16,
		BoundDenominator: 5,
	}
}

// Instances expands the campaign into one independent instance per count.
func (input SearchInput) Instances() []Instance {
	return lo.Map(input.Counts, func(count int, _ int) Instance {
		sink := input.Sink
		if sink < 0 {
			sink = count - 1
		}
		return Instance{
			Vertices: count,
			Source:   input.Source,
			Sink:     sink,
			Paths:    input.Paths,
			Bound:    Bound{Numerator: input.BoundNumerator, Denominator: input.BoundDenominator},
		}
	})
}

func InputFromJson(file string) (SearchInput, error) {
	bytes, _ := os.ReadFile(file)
	var inputJson map[string]any
	err := json.Unmarshal(bytes, &inputJson)
	if err != nil {
		return SearchInput{}, err
	}

	input := DefaultSearchInput()
	mapstructure.Decode(inputJson, &input)

	return input, nil
}
