// SPDX-License-Identifier: MIT
// Package: gyrostat/timeseries
//
// moments.go — moment statistics over an equilibrated window.
//
// Contract:
//   • mean       = Σ x_i / n
//   • std        = sqrt(Σ (x_i − mean)² / n)      (population, divisor n)
//   • meanSquare = Σ x_i² / n                      (computed directly!)
//
// meanSquare must never be derived from mean² — the two differ by the
// variance, and every downstream g-factor ratio is defined over meanSquare.
// An earlier analysis script shipped with exactly that bug; the direct
// formulation here is load-bearing.
//
// Determinism:
//   • Fixed forward accumulation order; no randomness.
//
// Complexity:
//   • Time O(n), Space O(1).

package timeseries

import "math"

// Moments computes mean, population standard deviation and mean of squares
// over values. Pure; no validation beyond what the type system gives —
// callers pass windows produced by SelectEquilibration, which are non-empty
// by construction. An empty slice yields NaN moments (0/0) and Count 0.
func Moments(values []float64) MomentSummary {
	n := len(values)

	var sum, sumSq float64
	for _, v := range values {
		sum += v
		sumSq += v * v
	}

	mean := sum / float64(n)
	meanSquare := sumSq / float64(n)

	var devSq float64
	for _, v := range values {
		d := v - mean
		devSq += d * d
	}
	std := math.Sqrt(devSq / float64(n))

	return MomentSummary{
		Mean:       mean,
		Std:        std,
		MeanSquare: meanSquare,
		Count:      n,
	}
}
