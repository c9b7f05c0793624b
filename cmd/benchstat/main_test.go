// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"flag"
	"path/filepath"
	"strings"
	"testing"
)

var (
	pgDir    = filepath.Join("testdata", "postgres", "tpcc", "1wh-10term")
	emptyDir = filepath.Join("testdata", "postgres", "tpcc", "2wh-20term")
	crdbDir  = filepath.Join("testdata", "cockroachdb", "tpcc", "1wh-10term")
)

func TestCSV(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run(&out, &errOut, []string{"-format", "csv", "-sort", "-mean", pgDir, crdbDir}); err != nil {
		t.Fatalf("unexpected error: %s\nstderr:\n%s", err, errOut.String())
	}
	want := `key,database,workload,variant,runs,mean,stddev
"cockroachdb, tpcc, 1wh-10term",cockroachdb,tpcc,1wh-10term,1,1500,0
"postgres, tpcc, 1wh-10term",postgres,tpcc,1wh-10term,3,200,100
`
	if got := out.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	if !strings.Contains(errOut.String(), "run4.summary.json") {
		t.Errorf("want warning about run4.summary.json, got stderr:\n%s", errOut.String())
	}
}

func TestText(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run(&out, &errOut, []string{"-sort", "key", crdbDir, pgDir}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "Throughput (requests/second)") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "cockroachdb") || !strings.Contains(lines[1], "1.50kreq/s") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "200req/s ± 50%") {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestFilter(t *testing.T) {
	var out, errOut bytes.Buffer
	args := []string{"-format", "csv", "-filter", "database:postgres -variant:2wh-20term", pgDir, emptyDir, crdbDir}
	if err := run(&out, &errOut, args); err != nil {
		t.Fatalf("unexpected error: %s\nstderr:\n%s", err, errOut.String())
	}
	want := `key,database,workload,variant,runs,mean,stddev
"postgres, tpcc, 1wh-10term",postgres,tpcc,1wh-10term,3,200,100
`
	if got := out.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestField(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run(&out, &errOut, []string{"-format", "csv", "-field", "Goodput (requests/second)", pgDir}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(out.String(), ",3,190,100\n") {
		t.Errorf("want goodput mean 190, got:\n%s", out.String())
	}
}

func TestEmptyFolder(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-format", "csv", pgDir, emptyDir})
	if err == nil {
		t.Fatal("empty folder succeeded, want error")
	}
	if !strings.Contains(errOut.String(), "postgres, tpcc, 2wh-20term: no result files") {
		t.Errorf("stderr does not name the empty folder:\n%s", errOut.String())
	}
	// The other folders are still printed.
	if !strings.Contains(out.String(), "postgres, tpcc, 1wh-10term") {
		t.Errorf("stdout missing non-empty folder:\n%s", out.String())
	}
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"-sort", "delta", pgDir},
	} {
		var out, errOut bytes.Buffer
		if err := run(&out, &errOut, args); err != flag.ErrHelp {
			t.Errorf("benchstat %s: got %v, want flag.ErrHelp", strings.Join(args, " "), err)
		}
	}
}

func TestUnitOf(t *testing.T) {
	for field, want := range map[string]string{
		"Throughput (requests/second)":       "req/s",
		"Goodput (requests/second)":          "req/s",
		"Latency Distribution (millisecond)": "ms",
		"Benchmark Type":                     "",
	} {
		if got := unitOf(field); got != want {
			t.Errorf("unitOf(%q) = %q, want %q", field, got, want)
		}
	}
}
