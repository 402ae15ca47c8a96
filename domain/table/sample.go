package table

import (
	"math/rand"
)

// SampleMethod selects how rows are drawn from the table
type SampleMethod string

const (
	SampleHead   SampleMethod = "head"
	SampleRandom SampleMethod = "random"
)

// DefaultSeed is the fixed seed for random sampling. Sampling is part of the
// rendering contract: identical inputs must produce byte-identical samples, so
// the generator and seed are pinned rather than left to a global source.
const DefaultSeed int64 = 42

// Sample reduces the table to n rows using the given method and the default
// seed. When n >= RowCount the receiver is returned unchanged; the caller is
// responsible for clamping n into [1, RowCount] beforehand.
func (t *Table) Sample(n int, method SampleMethod) *Table {
	return t.SampleSeeded(n, method, DefaultSeed)
}

// SampleSeeded is Sample with an explicit seed. The random draw is a
// Fisher-Yates prefix shuffle over the row-index permutation [0, rows),
// driven by math/rand's default Source: after n swap steps the first n
// indices are a uniform draw without replacement, kept in draw order.
// A fresh generator is created per call, so repeated calls with identical
// (table, n, seed) return identical samples.
func (t *Table) SampleSeeded(n int, method SampleMethod, seed int64) *Table {
	if n >= t.rows {
		return t
	}

	if method == SampleHead {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		return t.SelectRows(indices)
	}

	rng := rand.New(rand.NewSource(seed))
	indices := make([]int, t.rows)
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(t.rows-i)
		indices[i], indices[j] = indices[j], indices[i]
	}
	return t.SelectRows(indices[:n])
}

// ClampSampleN normalizes a requested sample size into the valid control
// range [min(floor, rows), rows]. A non-positive request falls to the floor.
func ClampSampleN(requested, floor, rows int) int {
	low := floor
	if rows < low {
		low = rows
	}
	if requested < low {
		return low
	}
	if requested > rows {
		return rows
	}
	return requested
}
