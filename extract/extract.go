// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extract filters a stream of sequences down to those named in
// an identifier set.
package extract

import (
	"fmt"
	"strings"

	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/seq"
	"gonum.org/v1/gonum/stat"

	"github.com/biogo/genetools/idset"
)

// Result describes the outcome of a Filter call.
type Result struct {
	// Written is the number of sequences written.
	Written int

	// Found holds the identifiers that matched at least
	// one input sequence.
	Found idset.Set

	// Lengths holds the length of each written sequence
	// in output order.
	Lengths []int
}

// Missing returns the members of ids that were not seen during
// filtering, in lexical order.
func (r Result) Missing(ids idset.Set) []string {
	var missing []string
	for _, id := range ids.Sorted() {
		if !r.Found.Has(id) {
			missing = append(missing, id)
		}
	}
	return missing
}

// ID returns the identifier of s: the first white space delimited
// token of its header. A header with space after the '>' leaves the
// name empty and the identifier at the start of the description.
func ID(s seq.Sequence) string {
	if id := s.Name(); id != "" {
		return id
	}
	if f := strings.Fields(s.Description()); len(f) != 0 {
		return f[0]
	}
	return ""
}

// Filter reads sequences from r and writes those whose name is in ids
// to w, preserving input order. Names are taken as described by ID. Requested identifiers that do not
// occur in the input are not an error.
func Filter(r seqio.Reader, w seqio.Writer, ids idset.Set) (Result, error) {
	res := Result{Found: make(idset.Set)}
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq()
		id := ID(s)
		if !ids.Has(id) {
			continue
		}
		if _, err := w.Write(s); err != nil {
			return res, fmt.Errorf("extract: failed to write sequence %q: %w", id, err)
		}
		res.Written++
		res.Found.Add(id)
		res.Lengths = append(res.Lengths, s.Len())
	}
	if err := sc.Error(); err != nil {
		return res, fmt.Errorf("extract: failed during read: %w", err)
	}
	return res, nil
}

// Summary holds length statistics of a set of sequences.
type Summary struct {
	N      int
	Total  int
	Min    int
	Max    int
	Mean   float64
	StdDev float64
}

// Summarize returns length statistics for lengths. The standard
// deviation of fewer than two values is zero.
func Summarize(lengths []int) Summary {
	if len(lengths) == 0 {
		return Summary{}
	}
	x := make([]float64, len(lengths))
	sum := Summary{N: len(lengths), Min: lengths[0]}
	for i, l := range lengths {
		x[i] = float64(l)
		sum.Total += l
		if l < sum.Min {
			sum.Min = l
		}
		if l > sum.Max {
			sum.Max = l
		}
	}
	if len(x) < 2 {
		sum.Mean = x[0]
		return sum
	}
	sum.Mean, sum.StdDev = stat.MeanStdDev(x, nil)
	return sum
}
