package coverage_test

import (
	"fmt"

	"github.com/katalvlaran/aomkin/builder"
	"github.com/katalvlaran/aomkin/coverage"
	"github.com/katalvlaran/aomkin/kinetics"
)

func ExampleSolve() {
	n, _ := builder.ByName(builder.NameER)
	tab := kinetics.RateTable{}
	for _, id := range n.StepIDs() {
		tab[id] = kinetics.Pair{Forward: 2, Backward: 1}
	}
	cov, err := coverage.Solve(n, tab)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cov)
	// Output: θ(*)=0.25 θ(*OH)=0.25 θ(*O)=0.25 θ(*OOH)=0.25
}
