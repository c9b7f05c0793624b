// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"

	"github.com/Adri029/geoc-perf/benchfmt"
)

// A Metric selects which series of a result record to aggregate.
type Metric int

const (
	// Throughput is the requests/second column of a results table.
	Throughput Metric = iota
	// Latency is the percentile latency column of a results table.
	Latency
	// CPU is the CPU usage from a dstat log.
	CPU
	// Disk is the KiB written per sample from a dstat log.
	Disk
)

var metricNames = []string{"throughput", "latency", "cpu", "disk"}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// ParseMetric returns the Metric named s.
func ParseMetric(s string) (Metric, error) {
	for i, name := range metricNames {
		if name == s {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q (want throughput, latency, cpu, or disk)", s)
}

// Kind returns the kind of result file that carries m.
func (m Metric) Kind() benchfmt.Kind {
	switch m {
	case CPU, Disk:
		return benchfmt.KindDstat
	}
	return benchfmt.KindRun
}

// Series returns the series for m from rec.
func (m Metric) Series(rec benchfmt.Record) (*benchfmt.Series, error) {
	switch rec := rec.(type) {
	case *benchfmt.Run:
		switch m {
		case Throughput:
			return rec.Throughput, nil
		case Latency:
			if rec.Latency == nil {
				return nil, fmt.Errorf("results table format has no latency column")
			}
			return rec.Latency, nil
		}
	case *benchfmt.Dstat:
		switch m {
		case CPU:
			return rec.CPU, nil
		case Disk:
			return rec.DiskKB, nil
		}
	}
	return nil, fmt.Errorf("%T record has no %s series", rec, m)
}
