package store_test

import (
	"fmt"

	"github.com/katalvlaran/praxis/core"
	"github.com/katalvlaran/praxis/store"
)

// ExamplePatternStore_Match matches a pipeline-shaped problem against a
// tiny two-pattern library. The pipeline pattern requires the
// linear_chain feature and matches fully; the fixed-point pattern
// requires features the problem lacks and falls below the default
// threshold.
func ExamplePatternStore_Match() {
	st := store.New()
	st.Add(core.Pattern{
		ID:   "pat-pipeline",
		Name: "Pipeline",
		Solution: core.Solution{
			Preconditions: []string{"linear_chain"},
		},
	})
	st.Add(core.Pattern{
		ID:   "pat-fixedpoint",
		Name: "Fixed-Point Iteration",
		Solution: core.Solution{
			Preconditions: []string{"cycle", "convergent"},
		},
	})

	problem := core.Problem{
		ID:   "prob-etl",
		Name: "Three-stage ETL job",
		Structure: core.Structure{
			Entities: []core.Entity{
				{ID: "extract", Type: "stage"},
				{ID: "transform", Type: "stage"},
				{ID: "load", Type: "stage"},
			},
			Relations: []core.Relation{
				{Source: "extract", Target: "transform", Type: core.RelTypeOrderedBefore},
				{Source: "transform", Target: "load", Type: core.RelTypeOrderedBefore},
			},
		},
	}

	for _, r := range st.Match(&problem, store.DefaultThreshold) {
		fmt.Printf("%s %.2f matched=%v\n", r.Pattern.ID, r.Score, r.Matched)
	}

	// Output:
	// pat-pipeline 1.00 matched=[linear_chain]
}
