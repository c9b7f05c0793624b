// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchhist reports how the transaction attempts of repeated BenchBase
// runs ended.
//
// Usage:
//
//	benchhist [flags] files...
//	benchhist [flags] -root dir [-variant name]
//
// Each file is a BenchBase "histograms.json" output. Files are grouped
// by the last three directories of their path,
// <database>/<workload>/<variant>, or by as many as the -config depth
// names (at least two, the workload and variant), and the outcome counts of each
// group are summed per transaction type. Histogram labels of the form
// "<name>/<n>" are resolved against the transaction catalog of the
// group's workload (tpcc and geoc are built in).
//
// With -root, benchhist reads every
// <root>/<database>/<workload>/<variant>/*histograms.json file whose
// variant matches the -variant pattern (default "*").
//
// The -filter flag restricts the results to the keys matching a filter
// expression, such as "database:postgres workload:(tpcc OR geoc)".
// See "go doc github.com/Adri029/geoc-perf/benchproc/syntax".
//
// The -format flag selects the output: text (the default) prints, for
// every transaction type, the percentage of attempts that completed,
// aborted, were rejected, or failed unexpectedly; csv prints the
// long-form counts and percentages.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/Adri029/geoc-perf/benchfmt"
	"github.com/Adri029/geoc-perf/benchhist"
	"github.com/Adri029/geoc-perf/internal/config"
	"github.com/Adri029/geoc-perf/internal/tabfmt"
)

func main() {
	log.SetPrefix("benchhist: ")
	log.SetFlags(0)
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err != flag.ErrHelp {
			log.Fatal(err)
		}
		os.Exit(2)
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchhist", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: benchhist [flags] files...\n")
		fmt.Fprintf(stderr, "       benchhist [flags] -root dir [-variant name]\n")
		flags.PrintDefaults()
	}
	flagConfig := flags.String("config", "", "read the experiment description from `file`")
	flagFormat := flags.String("format", "text", "print results as `format`: text or csv")
	flagRoot := flags.String("root", "", "read every histograms file under the results `dir`")
	flagVariant := flags.String("variant", "*", "with -root, read only variants matching `pattern`")
	flagFilter := flags.String("filter", "*", "aggregate only result keys matching `query` (see go doc github.com/Adri029/geoc-perf/benchproc/syntax)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if (flags.NArg() == 0) == (*flagRoot == "") {
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
	if cfg.Depth < 2 {
		// The workload selects the transaction catalog.
		return fmt.Errorf("depth %d: keys must include the workload and variant directories", cfg.Depth)
	}

	paths := flags.Args()
	if *flagRoot != "" {
		pattern := filepath.Join(*flagRoot, "*", "*", *flagVariant, "*histograms.json")
		paths, err = filepath.Glob(pattern)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no files match %s", pattern)
		}
		sort.Strings(paths)
	}

	agg := benchhist.NewAggregator(&benchhist.Options{
		Warn: func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, format, args...)
		},
	}, cfg.CatalogList()...)
	files := &benchfmt.Files{Paths: paths, Kind: benchfmt.KindHistograms}
	extract, err := cfg.Keys(*flagFilter)
	if err != nil {
		return err
	}
	if err := agg.AddFiles(files, extract); err != nil {
		return err
	}
	keys := agg.Keys()
	if len(keys) == 0 {
		return fmt.Errorf("no histograms")
	}

	if *flagFormat == "csv" {
		return tabfmt.WriteCSV(stdout, agg.Table())
	}
	for _, key := range keys {
		// Report transaction types without outcomes.
		if _, err := agg.Percentages(key); err != nil {
			return err
		}
	}
	return tabfmt.WriteText(stdout, agg.WideTable(), "%s", "%s", "%s", "%s", "%s", "%.2f", "%.2f", "%.2f", "%.2f")
}
