package spectral_test

import (
	"fmt"

	"github.com/lvmarek/gyrostat/spectral"
	"github.com/lvmarek/gyrostat/topology"
)

// ExampleCompute derives the theoretical g-factor of the default Alpha
// topology (6 vertices, 9 chains, four independent cycles).
func ExampleCompute() {
	res, err := spectral.Compute(topology.Alpha(), nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("vertices:   %d\n", res.VertexCount)
	fmt.Printf("edges:      %d\n", res.EdgeCount)
	fmt.Printf("cycle rank: %d\n", res.CycleRank)
	fmt.Printf("tr(L+):     %.4f\n", res.LaplacianPseudoinverseTrace)
	fmt.Printf("g-factor:   %.6f\n", res.GFactor)
	// Output:
	// vertices:   6
	// edges:      9
	// cycle rank: 4
	// tr(L+):     4.5000
	// g-factor:   0.209877
}
