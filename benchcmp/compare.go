// Copyright 2025 The gbenchdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcmp joins the measurements of two benchmark runs and
// narrows the joined list with composable filters.
//
// Compare produces one Comparison per benchmark name present in both
// runs. The filter functions are pure: each returns a new list and
// leaves its input untouched, so they can be chained in any
// combination the caller needs.
package benchcmp

import (
	"sort"

	"github.com/zchee/gbenchdiff/benchjson"
)

// Classification cutoffs. A change within ±1% counts as unchanged.
// These are fixed and do not track the configurable noise threshold.
const (
	improvedBelow  = 0.99
	regressedAbove = 1.01
)

// A Comparison is the relative change of one benchmark between a
// baseline run and a current run. Times are in nanoseconds.
type Comparison struct {
	Name           string
	BaselineTime   float64
	CurrentTime    float64
	Ratio          float64
	IterationsBase int64
	IterationsCurr int64
}

// PercentChange returns the signed percentage change of the current
// time over the baseline time. Positive values are regressions.
func (c Comparison) PercentChange() float64 {
	return (c.Ratio - 1) * 100
}

// Improved reports whether c is more than 1% faster than baseline.
func (c Comparison) Improved() bool { return c.Ratio < improvedBelow }

// Regressed reports whether c is more than 1% slower than baseline.
func (c Comparison) Regressed() bool { return c.Ratio > regressedAbove }

// Compare produces one Comparison per benchmark name present in both
// maps, ordered lexicographically by name so that output is
// reproducible regardless of document order.
//
// Names present in only one run are dropped. A shared name whose
// baseline time is zero is dropped as well, since no meaningful ratio
// exists for it.
func Compare(baseline, current map[string]benchjson.Benchmark) []Comparison {
	names := make([]string, 0, len(baseline))
	for name := range baseline {
		if _, ok := current[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	comps := make([]Comparison, 0, len(names))
	for _, name := range names {
		base, curr := baseline[name], current[name]
		baseTime := base.Time()
		if baseTime == 0 {
			continue
		}
		currTime := curr.Time()
		comps = append(comps, Comparison{
			Name:           name,
			BaselineTime:   baseTime,
			CurrentTime:    currTime,
			Ratio:          currTime / baseTime,
			IterationsBase: base.Iterations,
			IterationsCurr: curr.Iterations,
		})
	}
	return comps
}
