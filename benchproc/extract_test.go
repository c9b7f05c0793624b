// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"errors"
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	var x Extractor
	check := func(path string, want Key) {
		t.Helper()
		got, err := x.Extract(path)
		if err != nil {
			t.Errorf("Extract(%q): unexpected error %s", path, err)
			return
		}
		if got != want {
			t.Errorf("Extract(%q) = %q, want %q", path, got, want)
		}
	}

	check("results/cockroachdb/tpcc/1wh-10term/run1-histograms.json", "cockroachdb, tpcc, 1wh-10term")
	check("/srv/a/b/results/cockroachdb/tpcc/1wh-10term/run2-histograms.json", "cockroachdb, tpcc, 1wh-10term")
	check("cockroachdb/tpcc/1wh-10term/result.csv", "cockroachdb, tpcc, 1wh-10term")
	check("results//postgres/./geoc/4wh-40term/x.summary.json", "postgres, geoc, 4wh-40term")

	x.Depth = 2
	check("results/cockroachdb/tpcc/1wh-10term/result.csv", "tpcc, 1wh-10term")
}

func TestExtractSameExperiment(t *testing.T) {
	var x Extractor
	k1, err1 := x.Extract(".../cockroachdb/tpcc/1wh-10term/run1-histograms.json")
	k2, err2 := x.Extract(".../cockroachdb/tpcc/1wh-10term/run2-histograms.json")
	k3, err3 := x.Extract(".../cockroachdb/geoc/1wh-10term/run1-histograms.json")
	if err := errors.Join(err1, err2, err3); err != nil {
		t.Fatal(err)
	}
	if k1 != k2 {
		t.Errorf("runs of the same experiment got different keys %q and %q", k1, k2)
	}
	if k1 == k3 {
		t.Errorf("tpcc and geoc runs got the same key %q", k1)
	}
}

func TestExtractMalformed(t *testing.T) {
	var x Extractor
	for _, path := range []string{
		"",
		"result.csv",
		"tpcc/1wh-10term/result.csv",
		"/1wh-10term/result.csv",
		"../tpcc/1wh-10term/result.csv",
	} {
		_, err := x.Extract(path)
		var perr *MalformedPathError
		if !errors.As(err, &perr) {
			t.Errorf("Extract(%q): got error %v, want *MalformedPathError", path, err)
			continue
		}
		if perr.Depth != DefaultDepth {
			t.Errorf("Extract(%q): error depth %d, want %d", path, perr.Depth, DefaultDepth)
		}
	}
}

func TestExtractDir(t *testing.T) {
	var x Extractor
	got, err := x.ExtractDir("testing/remote_results/results/cockroachdb-triple/tpcc/2wh-20term/")
	if err != nil {
		t.Fatal(err)
	}
	if want := KeyOf("cockroachdb-triple", "tpcc", "2wh-20term"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, err := x.ExtractDir("tpcc/2wh-20term"); err == nil {
		t.Errorf("shallow directory: got success, want error")
	}
}

func TestKeyFields(t *testing.T) {
	k := KeyOf("postgres", "geoc", "1wh-10term")
	if got, want := k.Fields(), []string{"postgres", "geoc", "1wh-10term"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
	if k.Database() != "postgres" || k.Workload() != "geoc" || k.Variant() != "1wh-10term" {
		t.Errorf("accessors of %q = %q, %q, %q", k, k.Database(), k.Workload(), k.Variant())
	}
	two := KeyOf("tpcc", "1wh-10term")
	if two.Database() != "" || two.Workload() != "tpcc" || two.Variant() != "1wh-10term" {
		t.Errorf("accessors of %q = %q, %q, %q", two, two.Database(), two.Workload(), two.Variant())
	}
	short := KeyOf("geoc")
	if short.Workload() != "" || short.Variant() != "geoc" {
		t.Errorf("accessors of one-segment key = %q, %q, want \"\", \"geoc\"", short.Workload(), short.Variant())
	}
	var zero Key
	if !zero.IsZero() || zero.Fields() != nil || zero.String() != "<zero>" {
		t.Errorf("zero Key misbehaves: %v %v %q", zero.IsZero(), zero.Fields(), zero.String())
	}
}
