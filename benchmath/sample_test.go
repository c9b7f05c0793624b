// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	s := NewSample([]float64{300, 100, 200})
	sum := s.Summarize()
	if sum.N != 3 || sum.Mean != 200 || sum.Min != 100 || sum.Max != 300 {
		t.Errorf("got %+v, want n=3 mean=200 min=100 max=300", sum)
	}
	if math.Abs(sum.StdDev-100) > 1e-9 {
		t.Errorf("stddev = %v, want 100", sum.StdDev)
	}
	if len(sum.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", sum.Warnings)
	}

	one := NewSample([]float64{42}).Summarize()
	if one.Mean != 42 || one.StdDev != 0 || len(one.Warnings) != 1 {
		t.Errorf("single value: got %+v, want mean 42, stddev 0, one warning", one)
	}

	empty := NewSample(nil).Summarize()
	if !math.IsNaN(empty.Mean) || len(empty.Warnings) != 1 {
		t.Errorf("empty: got %+v, want NaN mean and a warning", empty)
	}
}

func TestSummaryFormat(t *testing.T) {
	check := func(s Summary, want string) {
		t.Helper()
		if got := s.PctStdDevString(); got != want {
			t.Errorf("for %+v, got %q, want %q", s, got, want)
		}
	}
	check(Summary{N: 3, Mean: 200, StdDev: 100}, "50%")
	check(Summary{N: 3, Mean: -200, StdDev: 20}, "10%")
	check(Summary{N: 1, Mean: 200}, "")
	check(Summary{N: 2, Mean: 0, StdDev: 0}, "0%")
	check(Summary{N: 2, Mean: 0, StdDev: 1}, "?")
}
