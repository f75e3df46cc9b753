// SPDX-License-Identifier: MIT
// Package: gyrostat/timeseries
//
// errors.go — sentinel errors for trajectory loading and windowing.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context (line number, token) with %w wrapping;
//     sentinels themselves stay unformatted.

package timeseries

import "errors"

var (
	// ErrParse indicates a non-comment, non-blank line that did not yield at
	// least two numeric tokens (timestep, value).
	ErrParse = errors.New("timeseries: malformed data line")

	// ErrEmptyData indicates the input produced fewer than two valid records;
	// statistics on a single point are meaningless downstream.
	ErrEmptyData = errors.New("timeseries: fewer than two valid records")

	// ErrInsufficientData indicates a series too short (length ≤ 1) for
	// equilibration window selection.
	ErrInsufficientData = errors.New("timeseries: not enough samples to select an equilibration window")
)
