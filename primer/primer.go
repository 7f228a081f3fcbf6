// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package primer shapes primer design requests for a fixed parameter
// profile and flattens designer responses into ranked result rows.
//
// The design algorithm itself is supplied by a Designer, typically
// the primer3 package's wrapper around primer3_core.
package primer

import (
	"errors"
	"fmt"
)

// Params is the global parameter set sent with each design request.
type Params struct {
	OptSize, MinSize, MaxSize int
	MinTm, OptTm, MaxTm       float64

	// NumReturn is the number of primer pairs requested.
	NumReturn int
}

// DefaultParams returns the standard profile requesting n primer pairs.
func DefaultParams(n int) Params {
	return Params{
		OptSize: 20,
		MinSize: 18,
		MaxSize: 25,

		MinTm: 57.0,
		OptTm: 60.0,
		MaxTm: 63.0,

		NumReturn: n,
	}
}

// Request is a single design request for one template sequence.
type Request struct {
	ID       string
	Template string
	Params
}

// Response is the flat set of result tags returned by a Designer.
// Per-pair values are addressed by rank; see the Key functions.
type Response map[string]string

// Result tag formats, indexed by rank.
const (
	leftSeqFmt     = "PRIMER_LEFT_%d_SEQUENCE"
	rightSeqFmt    = "PRIMER_RIGHT_%d_SEQUENCE"
	leftTmFmt      = "PRIMER_LEFT_%d_TM"
	rightTmFmt     = "PRIMER_RIGHT_%d_TM"
	productSizeFmt = "PRIMER_PAIR_%d_PRODUCT_SIZE"
)

func LeftSequenceKey(rank int) string  { return fmt.Sprintf(leftSeqFmt, rank) }
func RightSequenceKey(rank int) string { return fmt.Sprintf(rightSeqFmt, rank) }
func LeftTmKey(rank int) string        { return fmt.Sprintf(leftTmFmt, rank) }
func RightTmKey(rank int) string       { return fmt.Sprintf(rightTmFmt, rank) }
func ProductSizeKey(rank int) string   { return fmt.Sprintf(productSizeFmt, rank) }

// Designer is a primer design capability.
type Designer interface {
	Design(Request) (Response, error)
}

// DesignerFunc is a function that satisfies Designer.
type DesignerFunc func(Request) (Response, error)

func (f DesignerFunc) Design(req Request) (Response, error) { return f(req) }

// Result is a single ranked primer pair for a sequence. Fields that the
// designer did not return are empty.
type Result struct {
	GeneID      string
	LeftPrimer  string
	RightPrimer string
	LeftTm      string
	RightTm     string
	ProductSize string

	// Err holds the design failure for the sequence when
	// failures are being isolated.
	Err string
}

// Invoke requests n primer pairs for the sequence seq named id and
// returns exactly n results, one per rank. Designer errors are returned
// wrapped with the sequence identifier.
func Invoke(d Designer, id, seq string, n int) ([]Result, error) {
	if n < 1 {
		return nil, errors.New("primer: number of pairs must be positive")
	}
	resp, err := d.Design(Request{ID: id, Template: seq, Params: DefaultParams(n)})
	if err != nil {
		return nil, &DesignError{ID: id, Err: err}
	}
	res := make([]Result, n)
	for i := range res {
		res[i] = Result{
			GeneID:      id,
			LeftPrimer:  resp[LeftSequenceKey(i)],
			RightPrimer: resp[RightSequenceKey(i)],
			LeftTm:      resp[LeftTmKey(i)],
			RightTm:     resp[RightTmKey(i)],
			ProductSize: resp[ProductSizeKey(i)],
		}
	}
	return res, nil
}

// DesignError is returned when a Designer fails for a sequence.
type DesignError struct {
	ID  string
	Err error
}

func (e *DesignError) Error() string {
	return fmt.Sprintf("primer: design failed for %q: %v", e.ID, e.Err)
}

func (e *DesignError) Unwrap() error { return e.Err }

// failed returns n result rows recording err for the sequence id.
func failed(id string, n int, err error) []Result {
	res := make([]Result, n)
	for i := range res {
		res[i] = Result{GeneID: id, Err: err.Error()}
	}
	return res
}
