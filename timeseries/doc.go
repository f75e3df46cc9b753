// Package timeseries loads radius-of-gyration trajectories and reduces them
// to equilibrated moment statistics.
//
// The package provides three independent stages:
//
//   - Load / LoadFile — parse a two-column whitespace-separated record stream
//     (LAMMPS-style, '#' comment lines skipped) into an immutable Series.
//   - SelectEquilibration — pick the trailing sub-range of a Series deemed
//     equilibrated: the last 25% of samples, with a minimum burn-in of one
//     sample. A fixed domain heuristic, exposed as a pure function so an
//     alternative policy can be substituted without touching the statistics.
//   - Moments — mean, population standard deviation, and mean of squares over
//     a value window. The mean of squares is computed directly as avg(x²);
//     deriving it from mean² is wrong for any window with nonzero variance,
//     and downstream g-factor ratios depend on the distinction.
//
// Stages are pure apart from the initial read, and errors are sentinels
// checked with errors.Is.
package timeseries
