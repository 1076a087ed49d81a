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

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []benchcmp.Comparison{
		{Name: "BM_A", BaselineTime: 100, CurrentTime: 150, Ratio: 1.5},
		{Name: "BM_B", BaselineTime: 200, CurrentTime: 100, Ratio: 0.5},
	})
	require.NoError(t, err)

	want := "Benchmark,Baseline (ns),Current (ns),Ratio,Change %\n" +
		"BM_A,100,150,1.5000,+50.00%\n" +
		"BM_B,200,100,0.5000,-50.00%\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Benchmark,Baseline (ns),Current (ns),Ratio,Change %\n", buf.String())
}

func TestWriteCSVQuotesNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []benchcmp.Comparison{
		{Name: "BM_A,args", BaselineTime: 10, CurrentTime: 20, Ratio: 2},
	}))
	assert.Contains(t, buf.String(), `"BM_A,args",10,20,2.0000,+100.00%`)
}
