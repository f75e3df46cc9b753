// Package spectral computes the closed-form theoretical g-factor of a
// branched-polymer topology from its connectivity graph.
//
// The pipeline, per Compute:
//
//  1. Build the normalized graph Laplacian L = I − D^{−1/2} A D^{−1/2},
//     where A holds edge multiplicities and D the vertex degrees.
//  2. Take the Moore–Penrose pseudoinverse L⁺ via a singular-value
//     decomposition with an explicit relative rank tolerance — L is singular
//     by construction for every connected graph (one-dimensional null
//     space), so a direct inverse is undefined and a naive one is wrong.
//  3. Sum the diagonal: tr(L⁺), the sum of reciprocals of the nonzero
//     eigenvalues of L (a Kirchhoff-index-like quantity).
//  4. Apply g = (3/e²)·(tr(L⁺) + cycleRank/3 − 1/6) with e the edge count.
//
// Linear algebra is delegated to gonum.org/v1/gonum/mat; the only graphs in
// scope are tens of vertices, so dense O(n³) routines are the right tool.
//
// Connectivity is a theory precondition, not an implementation detail:
// Compute rejects disconnected graphs with topology.ErrDisconnected instead
// of silently producing a meaningless number.
package spectral
