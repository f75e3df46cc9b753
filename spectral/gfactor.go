// SPDX-License-Identifier: MIT
// Package: gyrostat/spectral
//
// gfactor.go — the asymptotic g-factor of a connected topology.
//
// Formula (over the normalized Laplacian L of the topology):
//
//	g = (3/e²) · ( tr(L⁺) + cycleRank/3 − 1/6 )
//
// with e the edge (chain) count and cycleRank = e − v + 1 for the connected
// graphs this accepts. The formula is total for any connected, self-loop-free,
// positive-degree topology.

package spectral

import (
	"fmt"

	"github.com/lvmarek/gyrostat/topology"
)

// formula constants of the g-factor expression, kept named so the code reads
// against the theory rather than as bare arithmetic.
const (
	gPrefactor   = 3.0
	cycleRankDiv = 3.0
	gOffset      = 1.0 / 6.0
)

// Options configures the spectral computation.
type Options struct {
	// RankTolerance is the relative singular-value cutoff for the
	// pseudoinverse; ≤ 0 selects DefaultRankTolerance.
	RankTolerance float64
}

// DefaultOptions returns the canonical numeric policy.
func DefaultOptions() Options {
	return Options{RankTolerance: DefaultRankTolerance}
}

// Result is the outcome of one spectral g-factor computation.
type Result struct {
	// VertexCount and EdgeCount echo the input topology.
	VertexCount int
	EdgeCount   int

	// CycleRank is the number of independent cycles, e − v + 1 here.
	CycleRank int

	// LaplacianPseudoinverseTrace is tr(L⁺): the sum of reciprocals of the
	// nonzero eigenvalues of the normalized Laplacian.
	LaplacianPseudoinverseTrace float64

	// GFactor is the theoretical compactness ratio; values below 1 mean the
	// topology is more compact than a tree of equal mass.
	GFactor float64
}

// Compute derives the theoretical g-factor of g. opts may be nil, in which
// case DefaultOptions applies.
//
// Errors: topology.ErrDisconnected when g has more than one component (the
// trace formula assumes a one-dimensional Laplacian null space),
// ErrZeroDegreeVertex for isolated vertices, ErrDecompositionFailed if the
// SVD does not converge.
func Compute(g *topology.Graph, opts *Options) (*Result, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}

	if !g.Connected() {
		return nil, fmt.Errorf("spectral: %d components: %w",
			g.Components(), topology.ErrDisconnected)
	}

	l, err := NormalizedLaplacian(g)
	if err != nil {
		return nil, err
	}

	_, trace, _, err := PseudoInverse(l, cfg.RankTolerance)
	if err != nil {
		return nil, err
	}

	e := float64(g.EdgeCount())
	rank := g.CycleRank()
	gFactor := (gPrefactor / (e * e)) * (trace + float64(rank)/cycleRankDiv - gOffset)

	return &Result{
		VertexCount:                 g.VertexCount(),
		EdgeCount:                   g.EdgeCount(),
		CycleRank:                   rank,
		LaplacianPseudoinverseTrace: trace,
		GFactor:                     gFactor,
	}, nil
}
