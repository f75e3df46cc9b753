// SPDX-License-Identifier: MIT
// Package: gyrostat/spectral
//
// laplacian.go — normalized graph Laplacian construction.
//
// Contract:
//   • Matrix index i corresponds to the i-th vertex in ascending-ID order
//     (topology.Graph.Index), so the construction is deterministic.
//   • A[i][j] = multiplicity of the edge {i,j}; D[i][i] = degree(i).
//   • L = I − D^{−1/2} A D^{−1/2}, symmetric by construction.
//   • Any degree-0 vertex ⇒ ErrZeroDegreeVertex.
//
// Complexity:
//   • Time O(V² + E), Space O(V²).

package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/lvmarek/gyrostat/topology"
)

// NormalizedLaplacian builds I − D^{−1/2} A D^{−1/2} for g as a dense
// symmetric matrix. Errors with ErrZeroDegreeVertex when any vertex is
// isolated.
func NormalizedLaplacian(g *topology.Graph) (*mat.SymDense, error) {
	n := g.VertexCount()
	vertices := g.Vertices()

	// invSqrtDeg[i] = 1/sqrt(deg(i)); reject isolated vertices first.
	invSqrtDeg := make([]float64, n)
	for i, v := range vertices {
		d, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("spectral: degree(%d): %w", v, err)
		}
		if d == 0 {
			return nil, fmt.Errorf("vertex %d: %w", v, ErrZeroDegreeVertex)
		}
		invSqrtDeg[i] = 1.0 / math.Sqrt(float64(d))
	}

	// Adjacency with multiplicities, accumulated symmetrically.
	adj := make([]float64, n*n)
	for _, e := range g.Edges() {
		iu, err := g.Index(e.U)
		if err != nil {
			return nil, fmt.Errorf("spectral: index(%d): %w", e.U, err)
		}
		iv, err := g.Index(e.V)
		if err != nil {
			return nil, fmt.Errorf("spectral: index(%d): %w", e.V, err)
		}
		adj[iu*n+iv]++
		adj[iv*n+iu]++
	}

	// L[i][j] = δ_ij − A[i][j]/sqrt(deg(i)·deg(j)).
	l := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := -adj[i*n+j] * invSqrtDeg[i] * invSqrtDeg[j]
			if i == j {
				v++ // identity term; diagonal of A is zero (no self-loops)
			}
			l.SetSym(i, j, v)
		}
	}

	return l, nil
}
