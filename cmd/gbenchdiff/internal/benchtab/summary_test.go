// Copyright 2025 The gbenchdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zchee/gbenchdiff/benchcmp"
)

func renderSummary(t *testing.T, comps []benchcmp.Comparison) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, comps))
	return buf.String()
}

func TestWriteSummaryEmpty(t *testing.T) {
	assert.Empty(t, renderSummary(t, nil))
}

func TestWriteSummarySingleRegression(t *testing.T) {
	out := renderSummary(t, []benchcmp.Comparison{
		{Name: "BM_A", BaselineTime: 100, CurrentTime: 150, Ratio: 1.5},
	})

	assert.Contains(t, out, "=== Summary ===")
	assert.Contains(t, out, "Total benchmarks compared: 1")
	assert.Contains(t, out, "Improved: 0 (0.0%)")
	assert.Contains(t, out, "Regressed: 1 (100.0%)")
	assert.Contains(t, out, "Unchanged: 0 (0.0%)")
	assert.Contains(t, out, "Geometric mean of speedup: ↑  50.00%")
	assert.Contains(t, out, "Worst regression:")
	assert.Contains(t, out, "BM_A: 1.50x slower")
	assert.NotContains(t, out, "Best improvement:")
}

func TestWriteSummaryGeomeanCancels(t *testing.T) {
	// exp(mean(ln 2, ln 0.5)) == 1.
	out := renderSummary(t, []benchcmp.Comparison{
		{Name: "BM_Up", Ratio: 2.0},
		{Name: "BM_Down", Ratio: 0.5},
	})

	assert.Contains(t, out, "Total benchmarks compared: 2")
	assert.Contains(t, out, "Improved: 1 (50.0%)")
	assert.Contains(t, out, "Regressed: 1 (50.0%)")
	assert.Contains(t, out, "Geometric mean of speedup: ≈   0.00%")
	assert.Contains(t, out, "Best improvement:")
	assert.Contains(t, out, "BM_Down: 2.00x faster")
	assert.Contains(t, out, "Worst regression:")
	assert.Contains(t, out, "BM_Up: 2.00x slower")
}

func TestWriteSummaryPicksExtremes(t *testing.T) {
	out := renderSummary(t, []benchcmp.Comparison{
		{Name: "BM_Mild", Ratio: 1.1},
		{Name: "BM_Bad", Ratio: 3.0},
		{Name: "BM_Good", Ratio: 0.25},
		{Name: "BM_OK", Ratio: 0.9},
	})

	assert.Contains(t, out, "BM_Good: 4.00x faster")
	assert.Contains(t, out, "BM_Bad: 3.00x slower")
	assert.NotContains(t, out, "BM_Mild:")
	assert.NotContains(t, out, "BM_OK:")
}
