// Copyright 2022 The Go Authors. All rights reserved.
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

var root = filepath.Join("testdata", "results")

func runOK(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	t.Logf("benchhist %s", strings.Join(args, " "))
	if err := run(&out, &errOut, args); err != nil {
		t.Fatalf("unexpected error: %s\nstderr:\n%s", err, errOut.String())
	}
	return out.String(), errOut.String()
}

func TestRootCSV(t *testing.T) {
	out, errOut := runOK(t, "-root", root, "-format", "csv")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	if want := "key,database,workload,variant,transaction,category,count,percent"; lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	// 9 geoc and 5 tpcc transaction types, 4 categories each.
	if got, want := len(lines)-1, (9+5)*4; got != want {
		t.Errorf("got %d rows, want %d", got, want)
	}
	for _, want := range []string{
		`"cockroachdb, geoc, 1wh-10term",cockroachdb,geoc,1wh-10term,ApproveCart,completed,90,90`,
		`"cockroachdb, geoc, 1wh-10term",cockroachdb,geoc,1wh-10term,Restock,unexpected,5,50`,
		`"postgres, tpcc, 1wh-10term",postgres,tpcc,1wh-10term,NewOrder,completed,150,75`,
		`"postgres, tpcc, 1wh-10term",postgres,tpcc,1wh-10term,NewOrder,aborted,30,15`,
		`"postgres, tpcc, 1wh-10term",postgres,tpcc,1wh-10term,NewOrder,rejected,20,10`,
		`"postgres, tpcc, 1wh-10term",postgres,tpcc,1wh-10term,NewOrder,unexpected,0,0`,
	} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("output missing row %s", want)
		}
	}
	if !strings.Contains(errOut, `workload "ycsb"`) {
		t.Errorf("want warning about ycsb, got stderr:\n%s", errOut)
	}
}

func TestVariant(t *testing.T) {
	out, _ := runOK(t, "-root", root, "-variant", "1wh-*", "-format", "csv")
	if strings.Contains(out, "ycsb") {
		t.Errorf("variant filter kept ycsb:\n%s", out)
	}

	var buf bytes.Buffer
	if err := run(&buf, &buf, []string{"-root", root, "-variant", "8wh-*"}); err == nil {
		t.Error("unmatched variant succeeded, want error")
	}
}

func TestFilter(t *testing.T) {
	out, errOut := runOK(t, "-root", root, "-filter", "workload:tpcc", "-format", "csv")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if got, want := len(lines)-1, 5*4; got != want {
		t.Errorf("got %d rows, want %d:\n%s", got, want, out)
	}
	if strings.Contains(out, "geoc") {
		t.Errorf("filter kept geoc:\n%s", out)
	}
	if strings.Contains(errOut, "ycsb") {
		t.Errorf("filtered ycsb results still warned:\n%s", errOut)
	}

	var buf bytes.Buffer
	if err := run(&buf, &buf, []string{"-root", root, "-filter", "workload:("}); err == nil {
		t.Error("malformed filter succeeded, want error")
	}
}

func TestText(t *testing.T) {
	dir := filepath.Join(root, "postgres", "tpcc", "1wh-10term")
	out, errOut := runOK(t, filepath.Join(dir, "run1-histograms.json"), filepath.Join(dir, "run2-histograms.json"))

	var newOrder string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "NewOrder") {
			newOrder = line
		}
	}
	if got, want := strings.Fields(newOrder), []string{"75.00", "15.00", "10.00", "0.00"}; len(got) < 4 || strings.Join(got[len(got)-4:], " ") != strings.Join(want, " ") {
		t.Errorf("NewOrder row = %q, want percentages %v", newOrder, want)
	}
	for _, txn := range []string{"OrderStatus", "Delivery", "StockLevel"} {
		if !strings.Contains(errOut, txn+" has no outcomes") {
			t.Errorf("stderr missing warning for %s:\n%s", txn, errOut)
		}
	}
}

func TestConfigDepth(t *testing.T) {
	out, _ := runOK(t, "-config", filepath.Join("testdata", "depth2.yaml"), "-root", root, "-format", "csv")
	for _, want := range []string{
		`"tpcc, 1wh-10term",,tpcc,1wh-10term,NewOrder,completed,150,75`,
		`"geoc, 1wh-10term",,geoc,1wh-10term,ApproveCart,completed,90,90`,
	} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("output missing row %s:\n%s", want, out)
		}
	}

	var buf bytes.Buffer
	err := run(&buf, &buf, []string{"-config", filepath.Join("testdata", "depth1.yaml"), "-root", root})
	if err == nil || !strings.Contains(err.Error(), "depth 1") {
		t.Errorf("depth 1: got %v, want depth error", err)
	}
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"-root", root, "file.json"},
	} {
		var out, errOut bytes.Buffer
		if err := run(&out, &errOut, args); err != flag.ErrHelp {
			t.Errorf("benchhist %s: got %v, want flag.ErrHelp", strings.Join(args, " "), err)
		}
		if !strings.Contains(errOut.String(), "usage:") {
			t.Errorf("benchhist %s: no usage message", strings.Join(args, " "))
		}
	}

	var out bytes.Buffer
	if err := run(&out, &out, []string{"-format", "html", "-root", root}); err == nil {
		t.Error("-format html succeeded, want error")
	}
}
