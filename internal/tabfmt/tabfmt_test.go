// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

func testGrouping() table.Grouping {
	var gb table.GroupingBuilder
	for _, g := range []struct {
		key    string
		values []float64
	}{{"a, b", []float64{1, 2.5}}, {"c", []float64{3}}} {
		keys := make([]string, len(g.values))
		runs := make([]int, len(g.values))
		for i := range keys {
			keys[i], runs[i] = g.key, i+1
		}
		var tb table.Builder
		tb.Add("key", keys).Add("value", g.values).Add("runs", runs)
		gb.Add(table.RootGroupID.Extend(g.key), tb.Done())
	}
	return gb.Done()
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testGrouping()); err != nil {
		t.Fatal(err)
	}
	want := `key,value,runs
"a, b",1,1
"a, b",2.5,2
c,3,1
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	buf.Reset()
	if err := WriteCSV(&buf, new(table.Table)); err != nil || buf.Len() != 0 {
		t.Errorf("empty table: wrote %q, %v", buf.String(), err)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, testGrouping(), "%s", "%.2f"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	// Header, then a "--" line before each group's rows.
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "-- ") || !strings.HasPrefix(lines[4], "-- ") {
		t.Errorf("missing group headers:\n%s", buf.String())
	}
	if !strings.Contains(lines[3], "2.50") {
		t.Errorf("row 2 = %q, want value 2.50", lines[3])
	}
}
