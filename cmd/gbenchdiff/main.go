// Copyright 2025 The gbenchdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gbenchdiff compares two Google Benchmark JSON result files and
// reports the relative performance change of every benchmark present
// in both, plus summary statistics.
//
// Usage:
//
//	gbenchdiff [flags] baseline.json current.json
//
// Each input file should be the output of a Google Benchmark binary
// run with --benchmark_format=json (or --benchmark_out). The baseline
// file is the reference; the current file is evaluated against it.
// For each benchmark appearing in both files, gbenchdiff computes the
// ratio of current to baseline time (preferring CPU time, falling
// back to wall-clock time) and prints a table of the changes followed
// by a summary with per-direction counts, the geometric mean of all
// ratios, and the single best and worst movers.
//
// Changes within the noise threshold (-threshold, default 1%) are
// hidden. The comparison can be narrowed further to names matching a
// regular expression (-filter) or to a single direction
// (-regressions-only, -improvements-only), and exported as CSV
// (-csv).
//
// For example, comparing two runs where BM_Encode got 50% slower:
//
//	$ gbenchdiff old.json new.json
//	Loading baseline: old.json
//	Loading current: new.json
//
//	Benchmark                                              Baseline      Current          Change
//	-----------------------------------------------------------------------------------------------
//	BM_Encode                                             100.00 ns    150.00 ns       ↑  50.00%
//
//	=== Summary ===
//	Total benchmarks compared: 1
//	Improved: 0 (0.0%)
//	Regressed: 1 (100.0%)
//	Unchanged: 0 (0.0%)
//
//	Geometric mean of speedup: ↑  50.00%
//
//	Worst regression:
//	  BM_Encode: 1.50x slower
//
// gbenchdiff exits with status 1 when either input cannot be read or
// parsed, and 0 otherwise, even when no benchmarks were compared.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/zchee/gbenchdiff/benchcmp"
	"github.com/zchee/gbenchdiff/benchjson"
	"github.com/zchee/gbenchdiff/cmd/gbenchdiff/internal/benchtab"
)

var (
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

type options struct {
	filter           string
	regressionsOnly  bool
	improvementsOnly bool
	csvPath          string
	threshold        float64
	noColor          bool
}

func newRootCmd() *cobra.Command {
	opts := new(options)
	cmd := &cobra.Command{
		Use:   "gbenchdiff [flags] <baseline.json> <current.json>",
		Short: "Compare two Google Benchmark JSON result files",
		Long: `gbenchdiff compares two Google Benchmark JSON result files and reports
the relative performance change of every benchmark present in both,
followed by summary statistics (counts per direction, geometric mean
of the timing ratios, best and worst movers).`,
		Example: `  # Compare two benchmark runs
  gbenchdiff baseline.json current.json

  # Show only regressions
  gbenchdiff baseline.json current.json --regressions-only

  # Restrict to specific benchmarks
  gbenchdiff baseline.json current.json --filter "BM_TopK"

  # Export the comparison to CSV
  gbenchdiff baseline.json current.json --csv out.csv`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			return run(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.filter, "filter", "", "only compare benchmarks matching this regular expression")
	cmd.Flags().BoolVar(&opts.regressionsOnly, "regressions-only", false, "show only benchmarks that got slower")
	cmd.Flags().BoolVar(&opts.improvementsOnly, "improvements-only", false, "show only benchmarks that got faster")
	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "export the comparison to this CSV file")
	cmd.Flags().Float64Var(&opts.threshold, "threshold", 1.0, "minimum percentage change to show")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

func run(cmd *cobra.Command, opts *options, baselinePath, currentPath string) error {
	out := cmd.OutOrStdout()

	// Baseline strictly first: when it fails, the current file is
	// never touched.
	fmt.Fprintln(out, infoStyle.Render("Loading baseline: "+baselinePath))
	baseline, err := benchjson.ReadFile(baselinePath)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, infoStyle.Render("Loading current: "+currentPath))
	current, err := benchjson.ReadFile(currentPath)
	if err != nil {
		return err
	}

	comps := benchcmp.Compare(baseline.ByName(), current.ByName())

	if opts.filter != "" {
		comps, err = benchcmp.FilterName(comps, opts.filter)
		if err != nil {
			return fmt.Errorf("parsing --filter: %w", err)
		}
	}
	comps = benchcmp.FilterThreshold(comps, opts.threshold)
	switch {
	case opts.regressionsOnly:
		comps = benchcmp.Regressions(comps)
	case opts.improvementsOnly:
		comps = benchcmp.Improvements(comps)
	}

	if err := benchtab.WriteTable(out, comps); err != nil {
		return err
	}
	if err := benchtab.WriteSummary(out, comps); err != nil {
		return err
	}

	if opts.csvPath != "" {
		if err := exportCSV(opts.csvPath, comps); err != nil {
			return err
		}
		fmt.Fprintln(out, okStyle.Render("\nResults exported to: "+opts.csvPath))
	}
	return nil
}

// exportCSV writes the filtered comparison list, identical to what
// the table shows, to a CSV file at path.
func exportCSV(path string, comps []benchcmp.Comparison) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := benchtab.WriteCSV(f, comps); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gbenchdiff: %s\n", err)
		os.Exit(1)
	}
}
