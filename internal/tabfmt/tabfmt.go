// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tabfmt writes go-gg tables in the formats the commands
// offer.
package tabfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// WriteCSV writes every group of g to w as CSV, with one header row
// naming the columns of g followed by the rows of each group in
// order.
func WriteCSV(w io.Writer, g table.Grouping) error {
	cols := g.Columns()
	if cols == nil {
		return nil
	}
	cw := csv.NewWriter(w)
	cw.Write(cols)
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		data := make([]reflect.Value, len(cols))
		for i, col := range cols {
			data[i] = reflect.ValueOf(t.MustColumn(col))
		}
		row := make([]string, len(cols))
		for r := 0; r < t.Len(); r++ {
			for i := range cols {
				row[i] = cell(data[i].Index(r).Interface())
			}
			cw.Write(row)
		}
	}
	cw.Flush()
	return cw.Error()
}

func cell(v interface{}) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	}
	return fmt.Sprint(v)
}

// WriteText writes g to w as an aligned text table. formats gives the
// fmt verb of each column, as for table.Fprint.
func WriteText(w io.Writer, g table.Grouping, formats ...string) error {
	return table.Fprint(w, g, formats...)
}
