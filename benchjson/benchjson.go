// Copyright 2025 The gbenchdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchjson reads benchmark results in the Google Benchmark
// JSON output format (--benchmark_format=json).
//
// A document is parsed in full and never mutated afterward. This
// package is designed to be used with the higher-level package
// benchcmp, which joins the records of two documents and narrows the
// result with filters.
package benchjson

// A Benchmark is a single named benchmark measurement from a results
// document.
//
// RealTime and CPUTime are in nanoseconds. Both are optional in the
// input; a missing field decodes as zero.
type Benchmark struct {
	// Name is the full benchmark name, including any argument
	// suffixes like "BM_Search/1024".
	Name string `json:"name"`

	// RunName and RunType describe how the entry was produced
	// ("iteration", "aggregate"). They are informational.
	RunName string `json:"run_name,omitempty"`
	RunType string `json:"run_type,omitempty"`

	// Iterations is the number of iterations the measurement was
	// averaged over.
	Iterations int64 `json:"iterations"`

	// RealTime is the wall-clock time per iteration.
	RealTime float64 `json:"real_time"`

	// CPUTime is the CPU time per iteration.
	CPUTime float64 `json:"cpu_time"`

	// TimeUnit is the unit the producing process claims for the
	// times, conventionally "ns".
	TimeUnit string `json:"time_unit,omitempty"`
}

// Time returns the preferred timing measurement for b: CPU time when
// present, otherwise wall-clock time. A benchmark with neither
// reports 0.
func (b Benchmark) Time() float64 {
	if b.CPUTime != 0 {
		return b.CPUTime
	}
	return b.RealTime
}

// A Context describes the machine and build that produced a results
// document. It is carried through parsing but does not affect
// comparisons.
type Context struct {
	Date              string  `json:"date,omitempty"`
	HostName          string  `json:"host_name,omitempty"`
	Executable        string  `json:"executable,omitempty"`
	NumCPUs           int     `json:"num_cpus,omitempty"`
	MHzPerCPU         float64 `json:"mhz_per_cpu,omitempty"`
	CPUScalingEnabled bool    `json:"cpu_scaling_enabled,omitempty"`
	LibraryBuildType  string  `json:"library_build_type,omitempty"`
}

// A Document is one parsed results file.
type Document struct {
	Context    *Context    `json:"context,omitempty"`
	Benchmarks []Benchmark `json:"benchmarks"`
}

// ByName maps each benchmark name in d to its record. When a document
// contains several entries with the same name, the last occurrence
// wins. A document without a "benchmarks" field yields an empty map.
func (d *Document) ByName() map[string]Benchmark {
	m := make(map[string]Benchmark, len(d.Benchmarks))
	for _, b := range d.Benchmarks {
		m[b.Name] = b
	}
	return m
}
