// Copyright 2025 The gbenchdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"io"
	"strings"

	"github.com/aclements/go-moremath/stats"

	"github.com/zchee/gbenchdiff/benchcmp"
)

// WriteSummary prints aggregate statistics over comps: counts per
// direction, the geometric mean of all ratios, and the single best
// and worst outliers. It prints nothing for an empty list.
func WriteSummary(w io.Writer, comps []benchcmp.Comparison) error {
	if len(comps) == 0 {
		return nil
	}

	total := len(comps)
	var improved, regressed int
	ratios := make([]float64, len(comps))
	best, worst := comps[0], comps[0]
	for i, c := range comps {
		ratios[i] = c.Ratio
		if c.Improved() {
			improved++
		}
		if c.Regressed() {
			regressed++
		}
		if c.Ratio < best.Ratio {
			best = c
		}
		if c.Ratio > worst.Ratio {
			worst = c
		}
	}
	unchanged := total - improved - regressed

	var sb strings.Builder
	sb.WriteByte('\n')
	sb.WriteString(boldStyle.Render("=== Summary ==="))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Total benchmarks compared: %d\n", total)
	sb.WriteString(improvedStyle.Render(fmt.Sprintf("Improved: %d (%.1f%%)", improved, percent(improved, total))))
	sb.WriteByte('\n')
	sb.WriteString(regressedStyle.Render(fmt.Sprintf("Regressed: %d (%.1f%%)", regressed, percent(regressed, total))))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Unchanged: %d (%.1f%%)\n", unchanged, percent(unchanged, total))

	text, style := change(stats.GeoMean(ratios))
	fmt.Fprintf(&sb, "\nGeometric mean of speedup: %s\n", style.Render(text))

	if improved > 0 {
		sb.WriteByte('\n')
		sb.WriteString(improvedStyle.Render("Best improvement:"))
		fmt.Fprintf(&sb, "\n  %s: %.2fx faster\n", best.Name, 1/best.Ratio)
	}
	if regressed > 0 {
		sb.WriteByte('\n')
		sb.WriteString(regressedStyle.Render("Worst regression:"))
		fmt.Fprintf(&sb, "\n  %s: %.2fx slower\n", worst.Name, worst.Ratio)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func percent(n, total int) float64 {
	return float64(n) / float64(total) * 100
}
