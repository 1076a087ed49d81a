// Copyright 2025 The gbenchdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab renders benchmark comparisons as a colored table,
// summary statistics, and CSV rows, assuming a fixed-width font.
package benchtab

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/zchee/gbenchdiff/benchcmp"
	"github.com/zchee/gbenchdiff/benchunit"
)

var (
	boldStyle      = lipgloss.NewStyle().Bold(true)
	improvedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	regressedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

const (
	// maxNameWidth caps the visible length of a benchmark name;
	// longer names are truncated with an ellipsis.
	maxNameWidth = 47

	changeWidth = 15
	tableWidth  = 95
)

// WriteTable renders one row per comparison: truncated name, scaled
// baseline and current times, and the signed percentage change with a
// directional glyph. An empty list produces only a notice.
func WriteTable(w io.Writer, comps []benchcmp.Comparison) error {
	var sb strings.Builder
	if len(comps) == 0 {
		sb.WriteString(noticeStyle.Render("No common benchmarks found to compare"))
		sb.WriteByte('\n')
		_, err := io.WriteString(w, sb.String())
		return err
	}

	header := fmt.Sprintf("%-50s %12s %12s %15s", "Benchmark", "Baseline", "Current", "Change")
	sb.WriteByte('\n')
	sb.WriteString(boldStyle.Render(header))
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("-", tableWidth))
	sb.WriteByte('\n')

	for _, c := range comps {
		text, style := change(c.Ratio)
		fmt.Fprintf(&sb, "%-50s %12s %12s %s\n",
			truncate(c.Name, maxNameWidth),
			benchunit.FormatNs(c.BaselineTime),
			benchunit.FormatNs(c.CurrentTime),
			style.Render(pad(text, changeWidth)))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// change renders the percentage change for ratio along with the style
// it should be displayed in: "≈" within ±1% (uncolored), "↓" for
// improvements (green), "↑" for regressions (red).
func change(ratio float64) (string, lipgloss.Style) {
	pct := (ratio - 1) * 100
	switch {
	case math.Abs(pct) < 1:
		return fmt.Sprintf("≈ %6.2f%%", math.Abs(pct)), lipgloss.NewStyle()
	case pct < 0:
		return fmt.Sprintf("↓ %6.2f%%", math.Abs(pct)), improvedStyle
	default:
		return fmt.Sprintf("↑ %6.2f%%", pct), regressedStyle
	}
}

// truncate caps name at max runes, replacing the tail with "...".
func truncate(name string, max int) string {
	r := []rune(name)
	if len(r) <= max {
		return name
	}
	return string(r[:max-3]) + "..."
}

// pad right-aligns s to width, counting runes rather than bytes so
// the arrow glyphs line up.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
