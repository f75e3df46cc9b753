// SPDX-License-Identifier: MIT
// Package: gyrostat/analysis
//
// analysis.go — per-topology branch pipeline and the mean-square ratio.
//
// Control flow (matching the reference numerics):
//   Load → SelectEquilibration → Moments, once per topology, then
//   Ratio(alpha.MeanSquare, tree.MeanSquare).
//
// Error policy:
//   • Branch errors propagate unchanged (timeseries sentinels).
//   • ErrDivisionByZero guards the single arithmetic hazard of the ratio;
//     every other float edge case (NaN inputs) propagates via IEEE semantics,
//     no clamping or rounding.

package analysis

import (
	"errors"
	"fmt"
	"io"

	"github.com/lvmarek/gyrostat/timeseries"
)

// ErrDivisionByZero indicates the reference (tree) mean-square is zero, so
// the g-factor ratio is undefined.
var ErrDivisionByZero = errors.New("analysis: tree mean-square is zero")

// Branch is the empirical result for one topology's trajectory.
type Branch struct {
	// Name labels the branch in reports ("alpha", "tree").
	Name string

	// Series is the full parsed trajectory.
	Series *timeseries.Series

	// Window is the equilibrated trailing sub-range of Series.
	Window timeseries.Window

	// Moments holds the statistics over the equilibrated window.
	Moments timeseries.MomentSummary
}

// AnalyzeReader runs the full branch pipeline over one record stream.
func AnalyzeReader(name string, r io.Reader) (*Branch, error) {
	s, err := timeseries.Load(r, nil)
	if err != nil {
		return nil, fmt.Errorf("branch %s: %w", name, err)
	}
	return analyzeSeries(name, s)
}

// AnalyzeFile runs the full branch pipeline over one trajectory file.
func AnalyzeFile(name, path string) (*Branch, error) {
	s, err := timeseries.LoadFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("branch %s: %w", name, err)
	}
	return analyzeSeries(name, s)
}

func analyzeSeries(name string, s *timeseries.Series) (*Branch, error) {
	w, err := timeseries.SelectEquilibration(s)
	if err != nil {
		return nil, fmt.Errorf("branch %s: %w", name, err)
	}
	return &Branch{
		Name:    name,
		Series:  s,
		Window:  w,
		Moments: timeseries.Moments(w.Slice(s)),
	}, nil
}

// Ratio returns alpha.MeanSquare / tree.MeanSquare, the empirical g-factor
// squared. ErrDivisionByZero when the denominator is exactly zero; non-finite
// inputs otherwise propagate by standard floating-point semantics.
func Ratio(alpha, tree timeseries.MomentSummary) (float64, error) {
	if tree.MeanSquare == 0 {
		return 0, ErrDivisionByZero
	}
	return alpha.MeanSquare / tree.MeanSquare, nil
}

// Comparison pairs two completed branches with their mean-square ratio.
type Comparison struct {
	Alpha *Branch
	Tree  *Branch

	// Ratio is ⟨Rg²⟩_alpha / ⟨Rg²⟩_tree.
	Ratio float64
}

// Compare combines two completed branches. Both operands must exist — branch
// failures are surfaced where they happen, never papered over here.
func Compare(alpha, tree *Branch) (*Comparison, error) {
	if alpha == nil || tree == nil {
		return nil, errors.New("analysis: missing branch operand")
	}
	ratio, err := Ratio(alpha.Moments, tree.Moments)
	if err != nil {
		return nil, err
	}
	return &Comparison{Alpha: alpha, Tree: tree, Ratio: ratio}, nil
}
