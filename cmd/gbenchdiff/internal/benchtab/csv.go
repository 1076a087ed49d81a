// Copyright 2025 The gbenchdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/zchee/gbenchdiff/benchcmp"
)

// csvHeader mirrors the table columns, with times in raw nanoseconds
// rather than scaled display units.
var csvHeader = []string{"Benchmark", "Baseline (ns)", "Current (ns)", "Ratio", "Change %"}

// WriteCSV writes comps as comma-separated rows under a header row.
// Ratios are rounded to four decimals and the percentage change
// carries an explicit leading sign.
func WriteCSV(w io.Writer, comps []benchcmp.Comparison) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range comps {
		rec := []string{
			c.Name,
			strconv.FormatFloat(c.BaselineTime, 'g', -1, 64),
			strconv.FormatFloat(c.CurrentTime, 'g', -1, 64),
			fmt.Sprintf("%.4f", c.Ratio),
			fmt.Sprintf("%+.2f%%", c.PercentChange()),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
