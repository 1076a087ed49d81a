// Copyright 2025 The gbenchdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNs(t *testing.T) {
	for _, test := range []struct {
		ns   float64
		want string
	}{
		{0, "0.00 ns"},
		{0.5, "0.50 ns"},
		{100, "100.00 ns"},
		{999.99, "999.99 ns"},
		{1e3, "1.00 µs"},
		{1500, "1.50 µs"},
		{999999, "1000.00 µs"},
		{1e6, "1.00 ms"},
		{2.5e6, "2.50 ms"},
		{1e9, "1.00 s"},
		{3e9, "3.00 s"},
	} {
		t.Run(test.want, func(t *testing.T) {
			assert.Equal(t, test.want, FormatNs(test.ns))
		})
	}
}
