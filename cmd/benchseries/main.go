// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchseries averages the time series of repeated BenchBase runs.
//
// Usage:
//
//	benchseries [flags] files...
//
// Each file is a results table (for the throughput and latency
// metrics) or a dstat log (for the cpu and disk metrics). Files are
// grouped by the last three directories of their path, normally
// <database>/<workload>/<variant>, and the runs of each group are
// averaged sample by sample. Runs of different length are truncated
// to the shortest one, with a warning.
//
// The -metric flag selects the series: throughput (the default),
// latency, cpu, or disk.
//
// The -format flag selects the output: text (the default) prints an
// aligned table per group; csv prints one "key,time,mean" row per
// sample.
//
// The -filter flag restricts the results to the keys matching a filter
// expression, such as "database:postgres workload:(tpcc OR geoc)".
// See "go doc github.com/Adri029/geoc-perf/benchproc/syntax".
//
// The -config flag names a YAML file that overrides the key depth and
// the results table layout. For example:
//
//	depth: 3
//	throughput:
//	  header_rows: 1
//	  time_column: 0
//	  value_column: 1
//	latency:
//	  value_column: 2
//	  latency_column: 9
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Adri029/geoc-perf/benchfmt"
	"github.com/Adri029/geoc-perf/benchseries"
	"github.com/Adri029/geoc-perf/internal/config"
	"github.com/Adri029/geoc-perf/internal/tabfmt"
)

func main() {
	log.SetPrefix("benchseries: ")
	log.SetFlags(0)
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err != flag.ErrHelp {
			log.Fatal(err)
		}
		os.Exit(2)
	}
}

var errNoResults = errors.New("no results")

func run(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchseries", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: benchseries [flags] files...\n")
		flags.PrintDefaults()
	}
	flagConfig := flags.String("config", "", "read the experiment description from `file`")
	flagMetric := flags.String("metric", "throughput", "average `metric`: throughput, latency, cpu, or disk")
	flagFormat := flags.String("format", "text", "print results as `format`: text or csv")
	flagFilter := flags.String("filter", "*", "aggregate only result keys matching `query` (see go doc github.com/Adri029/geoc-perf/benchproc/syntax)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
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
	metric, err := benchseries.ParseMetric(*flagMetric)
	if err != nil {
		return err
	}
	format := cfg.Throughput
	if metric == benchseries.Latency {
		format = cfg.Latency
	}

	agg := benchseries.NewAggregator(&benchseries.Options{
		Warn: func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, format, args...)
		},
	})
	files := &benchfmt.Files{Paths: flags.Args(), Kind: metric.Kind(), Format: &format}
	keys, err := cfg.Keys(*flagFilter)
	if err != nil {
		return err
	}
	if err := agg.AddFiles(files, keys, metric); err != nil {
		return err
	}
	if agg.Len() == 0 {
		return errNoResults
	}

	if *flagFormat == "csv" {
		return agg.WriteCSV(stdout)
	}
	return tabfmt.WriteText(stdout, agg.Table(), "%s", "%g", "%.2f", "%d")
}
