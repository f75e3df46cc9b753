// SPDX-License-Identifier: MIT
// Package: gyrostat/timeseries
//
// types.go — Series, Window and MomentSummary value types.

package timeseries

// Sample is one trajectory record: a simulation timestep and the observable
// value recorded at it.
type Sample struct {
	// Timestep is the simulation step the value was recorded at. Treated as
	// already time-ordered input; monotonicity is not enforced.
	Timestep int64

	// Value is the observable (radius of gyration) at Timestep.
	Value float64
}

// Series is an immutable, ordered trajectory of samples.
// Construct via Load or LoadFile; a Series always holds at least two records.
type Series struct {
	timesteps []int64
	values    []float64
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.values) }

// Sample returns the i-th record. Panics on out-of-range i, as slice
// indexing would; callers iterate with Len.
func (s *Series) Sample(i int) Sample {
	return Sample{Timestep: s.timesteps[i], Value: s.values[i]}
}

// Values returns the ordered observable values. The returned slice is a view
// into the Series and must not be mutated.
func (s *Series) Values() []float64 { return s.values }

// Timesteps returns the ordered timesteps. Read-only view, same contract as
// Values.
func (s *Series) Timesteps() []int64 { return s.timesteps }

// Window is a half-open index range [Start, End) into a Series.
// Produced by SelectEquilibration, where End equals the series length and
// 0 ≤ Start < End holds by construction.
type Window struct {
	Start int
	End   int
}

// Len returns the number of samples covered by the window.
func (w Window) Len() int { return w.End - w.Start }

// Slice applies the window to a Series and returns the covered values.
// Read-only view, same contract as Series.Values.
func (w Window) Slice(s *Series) []float64 { return s.values[w.Start:w.End] }

// MomentSummary holds the moment statistics of one equilibrated window.
type MomentSummary struct {
	// Mean is the arithmetic mean of the window.
	Mean float64

	// Std is the population standard deviation (divisor = window size,
	// not size-1), matching the reference numerics.
	Std float64

	// MeanSquare is the average of the squared values, avg(x²).
	// Distinct from Mean² whenever the window has nonzero variance; the
	// g-factor ratio is defined over MeanSquare, never Mean².
	MeanSquare float64

	// Count is the number of samples the moments were taken over.
	Count int
}
