// SPDX-License-Identifier: MIT
// Package: gyrostat/spectral
//
// errors.go — sentinel errors for Laplacian construction and decomposition.

package spectral

import "errors"

var (
	// ErrZeroDegreeVertex indicates an isolated vertex: D^{−1/2} would divide
	// by zero, so the normalized Laplacian is undefined.
	ErrZeroDegreeVertex = errors.New("spectral: vertex has degree zero")

	// ErrDecompositionFailed indicates the singular value decomposition did
	// not converge. Does not occur for the small symmetric matrices this
	// package targets; surfaced rather than swallowed all the same.
	ErrDecompositionFailed = errors.New("spectral: singular value decomposition failed")
)
