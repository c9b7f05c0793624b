// Copyright 2015 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchstat computes the mean throughput of repeated BenchBase runs.
//
// Usage:
//
//	benchstat [flags] dir...
//
// Each dir is a result folder, normally
// <root>/<database>/<workload>/<variant>, holding the
// "*.summary.json" file of every run of one experiment. For each
// folder, benchstat reads the summary field selected by -field
// (default "Throughput (requests/second)") from every run and prints
// the number of runs, their mean, and the standard deviation as a
// percentage of the mean.
//
// A folder without any readable summary has no mean. It is reported
// on standard error and benchstat exits with an error after printing
// the other folders.
//
// The -sort option specifies an order in which to list the results:
// none (input order), key (database, workload, variant), mean, or
// runs. A leading “-” prefix, as in “-mean”, reverses the order.
//
// The -filter flag restricts the results to the keys matching a filter
// expression, such as "database:postgres workload:(tpcc OR geoc)".
// See "go doc github.com/Adri029/geoc-perf/benchproc/syntax".
//
// The -format option selects text (the default) or csv output.
//
// Example
//
//	$ benchstat results/postgres/tpcc/*
//	folder                         Throughput (requests/second)  runs
//	postgres, tpcc, 1wh-10term     200req/s ± 50%                   3
//	postgres, tpcc, 2wh-20term     1.50kreq/s                       1
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Adri029/geoc-perf/benchstat"
	"github.com/Adri029/geoc-perf/internal/config"
	"github.com/Adri029/geoc-perf/internal/tabfmt"
	"github.com/aclements/go-gg/table"
)

func main() {
	log.SetPrefix("benchstat: ")
	log.SetFlags(0)
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err != flag.ErrHelp {
			log.Fatal(err)
		}
		os.Exit(2)
	}
}

var sortNames = map[string]benchstat.SortFunc{
	"none": nil,
	"key":  benchstat.ByKey,
	"mean": benchstat.ByMean,
	"runs": benchstat.ByRuns,
}

func run(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchstat", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: benchstat [flags] dir...\n")
		flags.PrintDefaults()
	}
	flagConfig := flags.String("config", "", "read the experiment description from `file`")
	flagField := flags.String("field", "", "average summary `field` (default from -config, else \"Throughput (requests/second)\")")
	flagSort := flags.String("sort", "none", "sort by `order`: [-]key, [-]mean, [-]runs, none")
	flagFormat := flags.String("format", "text", "print results as `format`: text or csv")
	flagFilter := flags.String("filter", "*", "aggregate only result keys matching `query` (see go doc github.com/Adri029/geoc-perf/benchproc/syntax)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	sortName := *flagSort
	reverse := false
	if strings.HasPrefix(sortName, "-") {
		reverse = true
		sortName = sortName[1:]
	}
	order, ok := sortNames[sortName]
	if flags.NArg() == 0 || !ok {
		flags.Usage()
		return flag.ErrHelp
	}
	if *flagFormat != "text" && *flagFormat != "csv" {
		return fmt.Errorf("unknown format %q", *flagFormat)
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		return err
	}
	field := cfg.SummaryField
	if *flagField != "" {
		field = *flagField
	}

	c := &benchstat.Collection{
		Warn: func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, format, args...)
		},
	}
	keys, err := cfg.Keys(*flagFilter)
	if err != nil {
		return err
	}
	if err := c.AddDirs(flags.Args(), keys, field); err != nil {
		return err
	}

	t := c.Table(field, unitOf(field))
	if order != nil {
		if reverse {
			order = benchstat.SortReverse(order)
		}
		benchstat.SortTable(t, order)
	}
	if *flagFormat == "csv" {
		err = tabfmt.WriteCSV(stdout, t.Grouping())
	} else {
		err = tabfmt.WriteText(stdout, textGrouping(t))
	}
	if err != nil {
		return err
	}

	empty := c.Empty()
	for _, key := range empty {
		_, err := c.Mean(key)
		fmt.Fprintf(stderr, "%v\n", err)
	}
	if len(empty) > 0 {
		return fmt.Errorf("%d of %d result folders have no runs", len(empty), len(c.Keys))
	}
	return nil
}

// unitOf returns the display unit of a summary field such as
// "Throughput (requests/second)".
func unitOf(field string) string {
	switch {
	case strings.HasSuffix(field, "(requests/second)"):
		return "req/s"
	case strings.HasSuffix(field, "(millisecond)"), strings.HasSuffix(field, "(milliseconds)"):
		return "ms"
	}
	return ""
}

// textGrouping returns the formatted text columns of t.
func textGrouping(t *benchstat.Table) table.Grouping {
	if len(t.Rows) == 0 {
		return new(table.Table)
	}
	var folders, means []string
	var runs []int
	for _, row := range t.Rows {
		folders = append(folders, string(row.Key))
		means = append(means, row.Metrics.Format(row.Scaler))
		runs = append(runs, row.Summary.N)
	}
	var tb table.Builder
	tb.Add("folder", folders)
	tb.Add(t.Metric, means)
	tb.Add("runs", runs)
	return tb.Done()
}
