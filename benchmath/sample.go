// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath turns the sums and counts accumulated from many
// benchmark runs into presentation values: means, percentage
// breakdowns, and descriptive spread.
//
// This package deliberately stops at description. It doesn't reject
// outliers and doesn't test whether two samples differ.
//
// Summaries contain a list of warnings, captured as an []error value.
// These aren't errors that prevent analysis, but should be presented
// to the user along with the results.
package benchmath

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of per-run measurements of one experiment, such
// as the mean throughput of every run in a result folder.
type Sample struct {
	// Values are the measured values, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a set of measurements. It takes
// ownership of values.
func NewSample(values []float64) *Sample {
	// Sort values for fast order statistics.
	sort.Float64s(values)
	return &Sample{values}
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// A Summary describes a Sample.
type Summary struct {
	// N is the number of values in the sample.
	N int

	Mean, StdDev float64
	Min, Max     float64

	// Warnings is a list of warnings about this summary.
	Warnings []error
}

// Summarize returns the descriptive statistics of s. The standard
// deviation of a sample with fewer than two values is 0 and the
// summary carries a warning.
func (s *Sample) Summarize() Summary {
	sum := Summary{N: len(s.Values)}
	if sum.N == 0 {
		nan := math.NaN()
		sum.Mean, sum.StdDev, sum.Min, sum.Max = nan, nan, nan, nan
		sum.Warnings = append(sum.Warnings, fmt.Errorf("no runs"))
		return sum
	}
	ss := s.sample()
	sum.Mean = ss.Mean()
	sum.Min, sum.Max = ss.Bounds()
	if sum.N < 2 {
		sum.Warnings = append(sum.Warnings, fmt.Errorf("need >= 2 runs for spread"))
	} else {
		sum.StdDev = ss.StdDev()
	}
	return sum
}

// PctStdDevString returns the standard deviation of s as a percentage
// of its mean, or "" if the spread is unknown.
func (s Summary) PctStdDevString() string {
	if s.N < 2 {
		return ""
	}
	// If the mean is 0, avoid dividing by zero. All values are 0
	// only if the deviation is also 0.
	if s.Mean == 0 {
		if s.StdDev == 0 {
			return "0%"
		}
		return "?"
	}
	return fmt.Sprintf("%.0f%%", 100*math.Abs(s.StdDev/s.Mean))
}
