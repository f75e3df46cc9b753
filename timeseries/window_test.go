package timeseries_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lvmarek/gyrostat/timeseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seriesOfLen builds a Series with n records through the public loader.
func seriesOfLen(t *testing.T, n int) *timeseries.Series {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d %g\n", i, float64(i))
	}
	s, err := timeseries.Load(strings.NewReader(b.String()), nil)
	require.NoError(t, err)
	return s
}

// TestSelectEquilibration_Boundaries pins down the exact truncation behavior
// of the trailing-25% rule, including the forced burn-in for short series.
func TestSelectEquilibration_Boundaries(t *testing.T) {
	cases := []struct {
		n, wantStart int
	}{
		{2, 1}, // (3·2)/4 = 1, already nonzero
		{3, 2}, // (3·3)/4 = 2
		{4, 3},
		{5, 3},
		{8, 6},
		{100, 75},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("N=%d", tc.n), func(t *testing.T) {
			w, err := timeseries.SelectEquilibration(seriesOfLen(t, tc.n))
			require.NoError(t, err)
			assert.Equal(t, tc.wantStart, w.Start)
			assert.Equal(t, tc.n, w.End, "window must extend to the series end")
			assert.Positive(t, w.Len())
		})
	}
}

// TestSelectEquilibration_WindowSlice verifies the window maps onto the
// expected trailing values.
func TestSelectEquilibration_WindowSlice(t *testing.T) {
	s := seriesOfLen(t, 8)
	w, err := timeseries.SelectEquilibration(s)
	require.NoError(t, err)

	assert.Equal(t, []float64{6, 7}, w.Slice(s))
}
