// Copyright 2025 The gbenchdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcmp

import "regexp"

// FilterName keeps comparisons whose name matches pattern. The match
// is unanchored, so the pattern may match anywhere in the name.
func FilterName(comps []Comparison, pattern string) ([]Comparison, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return filter(comps, func(c Comparison) bool {
		return re.MatchString(c.Name)
	}), nil
}

// FilterThreshold drops comparisons whose ratio falls inside the
// noise band [1/t, t] for t = 1 + percent/100. A percent of 0 keeps
// every comparison with any measurable change.
func FilterThreshold(comps []Comparison, percent float64) []Comparison {
	t := 1 + percent/100
	return filter(comps, func(c Comparison) bool {
		return c.Ratio < 1/t || c.Ratio > t
	})
}

// Regressions keeps only comparisons that got slower.
func Regressions(comps []Comparison) []Comparison {
	return filter(comps, Comparison.Regressed)
}

// Improvements keeps only comparisons that got faster.
func Improvements(comps []Comparison) []Comparison {
	return filter(comps, Comparison.Improved)
}

func filter(comps []Comparison, keep func(Comparison) bool) []Comparison {
	kept := make([]Comparison, 0, len(comps))
	for _, c := range comps {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	return kept
}
