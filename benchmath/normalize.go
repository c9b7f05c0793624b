// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"fmt"

	"github.com/aclements/go-moremath/vec"
)

// An EmptyGroupError reports that a mean was requested for a group
// that no result file contributed to. This usually means the files
// were not found where they were expected, rather than a problem with
// the data itself.
type EmptyGroupError struct {
	Key string
}

func (e *EmptyGroupError) Error() string {
	return fmt.Sprintf("%s: no result files", e.Key)
}

// Mean returns sum divided by count. count must be positive.
func Mean(sum float64, count int) float64 {
	if count <= 0 {
		panic(fmt.Sprintf("mean of %d values", count))
	}
	return sum / float64(count)
}

// MeanVec returns the elementwise mean of an accumulated sum of count
// vectors. count must be positive.
func MeanVec(sum []float64, count int) []float64 {
	if count <= 0 {
		panic(fmt.Sprintf("mean of %d vectors", count))
	}
	n := float64(count)
	return vec.Map(func(x float64) float64 { return x / n }, sum)
}

// Percentages converts count vectors, one per category, into
// percentage vectors. For each position i, result[c][i] is
// 100 * vectors[c][i] / Σ vectors[·][i], so the percentages at each
// position sum to 100.
//
// A position whose counts are all zero has no meaningful breakdown.
// Its percentages are all 0 and the position is listed in zero, so
// that callers can tell it apart from a computed 0%.
//
// All vectors must have the same length.
func Percentages(vectors ...[]int64) (result [][]float64, zero []int) {
	if len(vectors) == 0 {
		return nil, nil
	}
	n := len(vectors[0])
	for _, v := range vectors[1:] {
		if len(v) != n {
			panic(fmt.Sprintf("count vectors have lengths %d and %d", n, len(v)))
		}
	}

	result = make([][]float64, len(vectors))
	for c := range result {
		result[c] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		var total int64
		for _, v := range vectors {
			total += v[i]
		}
		if total == 0 {
			zero = append(zero, i)
			continue
		}
		for c, v := range vectors {
			result[c][i] = 100 * float64(v[i]) / float64(total)
		}
	}
	return result, zero
}
