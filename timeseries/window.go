// SPDX-License-Identifier: MIT
// Package: gyrostat/timeseries
//
// window.go — equilibration window selection.
//
// Policy (fixed heuristic, not configuration):
//   • start = (3·N)/4, integer division truncating toward zero — i.e. the
//     trailing 25% of samples is treated as equilibrated.
//   • If truncation yields start == 0 for N > 1, start is forced to 1 so at
//     least the first sample is always excluded as burn-in.
//   • N ≤ 1 ⇒ ErrInsufficientData.
//
// The truncation and the burn-in special case must be reproduced exactly to
// match reference numerics; do not "simplify" the arithmetic.

package timeseries

import "fmt"

// equilibratedNum/equilibratedDen encode the trailing-window rule:
// discard the first 3/4 of the trajectory.
const (
	equilibratedNum = 3
	equilibratedDen = 4

	// minBurnIn is the smallest number of leading samples always excluded.
	minBurnIn = 1
)

// SelectEquilibration returns the trailing window [start, N) of s deemed
// equilibrated. Errors with ErrInsufficientData when s has one sample or
// fewer (a nil-safe guard; Load never produces such a Series).
func SelectEquilibration(s *Series) (Window, error) {
	n := s.Len()
	if n <= 1 {
		return Window{}, fmt.Errorf("series length %d: %w", n, ErrInsufficientData)
	}

	start := (equilibratedNum * n) / equilibratedDen
	if start == 0 {
		start = minBurnIn
	}

	return Window{Start: start, End: n}, nil
}
