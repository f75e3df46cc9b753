package analysis_test

import (
	"strings"
	"testing"

	"github.com/lvmarek/gyrostat/analysis"
	"github.com/lvmarek/gyrostat/timeseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEndToEnd_StepScenario reproduces the canonical 8-record scenario:
// both windows start at index 6, equilibrated values are [20,20] and
// [10,10], mean-squares 400 and 100, ratio exactly 4.
func TestEndToEnd_StepScenario(t *testing.T) {
	alphaIn := "0 10\n1 10\n2 10\n3 10\n4 20\n5 20\n6 20\n7 20\n"
	treeIn := "0 5\n1 5\n2 5\n3 5\n4 10\n5 10\n6 10\n7 10\n"

	alpha, err := analysis.AnalyzeReader("alpha", strings.NewReader(alphaIn))
	require.NoError(t, err)
	tree, err := analysis.AnalyzeReader("tree", strings.NewReader(treeIn))
	require.NoError(t, err)

	assert.Equal(t, 6, alpha.Window.Start)
	assert.Equal(t, 6, tree.Window.Start)
	assert.Equal(t, []float64{20, 20}, alpha.Window.Slice(alpha.Series))

	assert.Equal(t, 400.0, alpha.Moments.MeanSquare)
	assert.Equal(t, 100.0, tree.Moments.MeanSquare)

	c, err := analysis.Compare(alpha, tree)
	require.NoError(t, err)
	assert.Equal(t, 4.0, c.Ratio, "ratio must be exactly 4")
}

// TestRatio_InverseLaw: Ratio(A,B)·Ratio(B,A) == 1 for non-degenerate
// summaries.
func TestRatio_InverseLaw(t *testing.T) {
	a := timeseries.MomentSummary{MeanSquare: 42.1875}
	b := timeseries.MomentSummary{MeanSquare: 7.3}

	ab, err := analysis.Ratio(a, b)
	require.NoError(t, err)
	ba, err := analysis.Ratio(b, a)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, ab*ba, 1e-12)
}

// TestRatio_ZeroDenominator surfaces ErrDivisionByZero; zero numerator with
// nonzero denominator is fine.
func TestRatio_ZeroDenominator(t *testing.T) {
	_, err := analysis.Ratio(
		timeseries.MomentSummary{MeanSquare: 1},
		timeseries.MomentSummary{MeanSquare: 0},
	)
	assert.ErrorIs(t, err, analysis.ErrDivisionByZero)

	r, err := analysis.Ratio(
		timeseries.MomentSummary{MeanSquare: 0},
		timeseries.MomentSummary{MeanSquare: 2},
	)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
}

// TestAnalyzeReader_ErrorPropagation keeps the timeseries sentinels
// distinguishable through the branch wrapper.
func TestAnalyzeReader_ErrorPropagation(t *testing.T) {
	_, err := analysis.AnalyzeReader("alpha", strings.NewReader("# header only\n"))
	assert.ErrorIs(t, err, timeseries.ErrEmptyData)

	_, err = analysis.AnalyzeReader("alpha", strings.NewReader("0 bad-token\n"))
	assert.ErrorIs(t, err, timeseries.ErrParse)
}

// TestCompare_MissingOperand never forms a ratio from a failed branch.
func TestCompare_MissingOperand(t *testing.T) {
	ok, err := analysis.AnalyzeReader("tree", strings.NewReader("0 1\n1 2\n"))
	require.NoError(t, err)

	_, err = analysis.Compare(nil, ok)
	assert.Error(t, err)
	_, err = analysis.Compare(ok, nil)
	assert.Error(t, err)
}
