// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchproc derives grouping identities for BenchBase result
// files.
//
// BenchBase runs are stored in a directory tree whose trailing levels
// encode the experiment that produced them:
//
//	results/<database>/<workload>/<variant>/<run files>
//
// for example results/cockroachdb/tpcc/1wh-10term/run1-histograms.json.
// Every file under the same database/workload/variant prefix belongs
// to the same experiment, and the aggregators in benchseries,
// benchhist, and benchstat accumulate those files into a single
// bucket.
//
// The typical steps for processing a set of result files are:
//
// 1. Read the files using benchfmt.Files.
//
// 2. For each record, compute its Key with an Extractor. A record
// whose path is too shallow to carry an identity is reported and
// skipped; it does not affect other keys. If the Extractor carries a
// Filter, records whose Key it rejects are dropped here.
//
// 3. Fold the record into an aggregator under that Key.
//
// 4. Once all files are consumed, sort the Keys with SortKeys and
// present the aggregates in that order.
package benchproc
