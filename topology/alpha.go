// SPDX-License-Identifier: MIT
// Package: gyrostat/topology
//
// alpha.go — the fixed default "Alpha" topology.

package topology

// Alpha returns the default tetracyclic "Alpha" polymer topology: 6 junction
// vertices and 9 chains, the complete bipartite graph K(3,3) — each of
// {1,3,5} joined to each of {2,4,6}. With 9 edges over 6 vertices in one
// component the cycle rank is 4.
//
// The published figure this topology traces back to is ambiguous about the
// exact edge list; K(3,3) is the documented default here, and LoadTopology
// accepts any other 6/9 edge list taken from the literature.
func Alpha() *Graph {
	g, err := New(
		[]int{1, 2, 3, 4, 5, 6},
		[]Edge{
			{1, 2}, {1, 4}, {1, 6},
			{3, 2}, {3, 4}, {3, 6},
			{5, 2}, {5, 4}, {5, 6},
		},
	)
	if err != nil {
		// The edge list above is a compile-time constant; failing to build it
		// is a programmer error, not a runtime condition.
		panic("topology: default Alpha graph failed validation: " + err.Error())
	}
	return g
}
