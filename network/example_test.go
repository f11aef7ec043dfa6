package network_test

import (
	"fmt"

	"github.com/katalvlaran/aomkin/network"
)

// ExampleNetwork assembles a two-state cycle: an electrochemical adsorption
// followed by a chemical desorption that closes the loop.
func ExampleNetwork() {
	n := network.NewNetwork("toy", network.WithReference("2"))
	_ = n.AddStep("1", "*", "*OH")
	_ = n.AddStep("2", "*OH", "*", network.WithKind(network.Chemical))
	if err := n.Seal(); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(n.StateIDs(), n.Reference(), len(n.AllArcs()))
	// Output: [* *OH] 2 4
}
