// SPDX-License-Identifier: MIT
// Package: gyrostat/spectral
//
// pinv.go — SVD-based Moore–Penrose pseudoinverse.
//
// Contract:
//   • A⁺ = V Σ⁺ Uᵀ with Σ⁺ inverting only singular values above
//     tol·σ_max; everything at or below the cut is treated as exact zero.
//   • The tolerance is relative and explicit (DefaultRankTolerance), never a
//     magic constant buried in formula code: the normalized Laplacian of a
//     connected graph always carries one true zero singular value that must
//     not be inverted.
//
// Complexity:
//   • Time O(n³), Space O(n²) — fine for topology-sized matrices.

package spectral

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DefaultRankTolerance is the relative singular-value cutoff used when
// inverting: values ≤ DefaultRankTolerance·σ_max count as zero.
const DefaultRankTolerance = 1e-10

// PseudoInverse computes the Moore–Penrose pseudoinverse of the square
// matrix a via a full SVD, returning the pseudoinverse, its trace, and the
// numerical rank under the given relative tolerance. tol ≤ 0 selects
// DefaultRankTolerance.
func PseudoInverse(a mat.Matrix, tol float64) (pinv *mat.Dense, trace float64, rank int, err error) {
	if tol <= 0 {
		tol = DefaultRankTolerance
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDFull); !ok {
		return nil, 0, 0, fmt.Errorf("pseudoinverse: %w", ErrDecompositionFailed)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sigma := svd.Values(nil) // descending

	n := len(sigma)
	cut := tol * sigma[0]

	// Σ⁺: reciprocal of the singular values above the cut, zero otherwise.
	sigmaInv := mat.NewDense(n, n, nil)
	for i, s := range sigma {
		if s > cut {
			sigmaInv.Set(i, i, 1.0/s)
			rank++
		}
	}

	// A⁺ = V Σ⁺ Uᵀ.
	var tmp mat.Dense
	tmp.Mul(&v, sigmaInv)
	pinv = &mat.Dense{}
	pinv.Mul(&tmp, u.T())

	for i := 0; i < n; i++ {
		trace += pinv.At(i, i)
	}

	return pinv, trace, rank, nil
}
