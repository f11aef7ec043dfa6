package sweep_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aomkin/builder"
	"github.com/katalvlaran/aomkin/kinetics"
	"github.com/katalvlaran/aomkin/sweep"
)

// ExampleEngine_Run1D sweeps η over the ER mechanism with Butler-Volmer/BEP
// kinetics at pH 0.
func ExampleEngine_Run1D() {
	n, _ := builder.ByName(builder.NameER)
	step := kinetics.Step{DeltaG: 0.1, Z: 1, Gamma: 0.5, Beta: 0.5}
	cfg := sweep.Config{
		Network: n,
		T:       298.15,
		DeltaGw: 0.8277,
		Ea0:     0.5,
		Steps:   map[string]kinetics.Step{"1": step, "2": step, "3": step, "4": step},
		Eta:     sweep.Range{Start: -1, End: 1, Step: 0.5},
	}
	e, err := sweep.New(cfg, sweep.WithWorkers(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := e.Run1D(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range res.Points {
		fmt.Printf("eta=%+.1f lg|r4|=%.3f theta*=%.2f\n", p.Eta, p.LgRef, p.ThetaFree())
	}
	// Output:
	// eta=-1.0 lg|r4|=13.036 theta*=0.25
	// eta=-0.5 lg|r4|=8.810 theta*=0.25
	// eta=+0.0 lg|r4|=4.575 theta*=0.25
	// eta=+0.5 lg|r4|=7.120 theta*=0.25
	// eta=+1.0 lg|r4|=11.346 theta*=0.25
}
