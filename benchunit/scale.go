// Copyright 2025 The gbenchdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats nanosecond quantities for display,
// picking between ns, µs, ms, and s by magnitude.
package benchunit

import "fmt"

// Scale converts a time measured in nanoseconds into a display value
// and unit. Unit boundaries are at 1e3, 1e6, and 1e9 ns.
func Scale(ns float64) (value float64, unit string) {
	switch {
	case ns < 1e3:
		return ns, "ns"
	case ns < 1e6:
		return ns / 1e3, "µs"
	case ns < 1e9:
		return ns / 1e6, "ms"
	default:
		return ns / 1e9, "s"
	}
}

// FormatNs renders a nanosecond time in its display unit to two
// decimal places, e.g. "1.50 µs".
func FormatNs(ns float64) string {
	v, unit := Scale(ns)
	return fmt.Sprintf("%.2f %s", v, unit)
}
