// SPDX-License-Identifier: MIT
// Package: gyrostat/report
//
// text.go — plain-text result summary.
//
// Contract:
//   • Both mean-square values and the ratio are printed with 6 decimal
//     digits so downstream reproducibility checks can diff reports.
//   • The theoretical benchmark section is optional (nil spectral result
//     skips it); the empirical section always renders in full.

package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/lvmarek/gyrostat/analysis"
	"github.com/lvmarek/gyrostat/spectral"
)

const ruleWidth = 50

// WriteSummary renders the comparison (and, when present, the theoretical
// benchmark) as a human-readable report.
func WriteSummary(w io.Writer, c *analysis.Comparison, s *spectral.Result) error {
	rule := strings.Repeat("=", ruleWidth)
	thinRule := strings.Repeat("-", ruleWidth)

	var b strings.Builder
	b.WriteString("ALPHA vs. TREE G-FACTOR ANALYSIS\n")
	b.WriteString(rule + "\n")

	for _, br := range []*analysis.Branch{c.Alpha, c.Tree} {
		fmt.Fprintf(&b, "Branch %-6s  samples=%d  equilibrated=%d (start index %d)\n",
			br.Name, br.Series.Len(), br.Window.Len(), br.Window.Start)
		fmt.Fprintf(&b, "  Avg. Rg:     %.6f +/- %.6f\n", br.Moments.Mean, br.Moments.Std)
		fmt.Fprintf(&b, "  Avg. <Rg^2>: %.6f\n", br.Moments.MeanSquare)
	}

	b.WriteString(thinRule + "\n")
	fmt.Fprintf(&b, "<Rg^2>_alpha / <Rg^2>_tree = %.6f\n", c.Ratio)
	fmt.Fprintf(&b, "sqrt(ratio)                = %.6f\n", math.Sqrt(c.Ratio))

	if s != nil {
		b.WriteString(thinRule + "\n")
		b.WriteString("Theoretical benchmark (normalized Laplacian):\n")
		fmt.Fprintf(&b, "  vertices=%d edges=%d cycle rank=%d\n",
			s.VertexCount, s.EdgeCount, s.CycleRank)
		fmt.Fprintf(&b, "  tr(L+)   = %.6f\n", s.LaplacianPseudoinverseTrace)
		fmt.Fprintf(&b, "  g-factor = %.6f\n", s.GFactor)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// SaveSummary writes the summary to a file, truncating any previous report.
func SaveSummary(path string, c *analysis.Comparison, s *spectral.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteSummary(f, c, s); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return f.Close()
}
