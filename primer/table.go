// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primer

import (
	"encoding/csv"
	"io"
)

// Header is the column layout of a primer table.
var Header = []string{"gene_id", "left_primer", "right_primer", "left_tm", "right_tm", "product_size"}

// TableWriter writes primer results as comma-separated rows.
type TableWriter struct {
	w      *csv.Writer
	errCol bool
	header bool
}

// NewTableWriter returns a TableWriter writing to w. If withErrors is
// true an additional error column is written after the standard columns.
func NewTableWriter(w io.Writer, withErrors bool) *TableWriter {
	return &TableWriter{w: csv.NewWriter(w), errCol: withErrors}
}

// Write writes res to the table, preceded by the header on the
// first call.
func (t *TableWriter) Write(res ...Result) error {
	if !t.header {
		h := Header
		if t.errCol {
			h = append(h[:len(h):len(h)], "error")
		}
		if err := t.w.Write(h); err != nil {
			return err
		}
		t.header = true
	}
	for _, r := range res {
		row := []string{r.GeneID, r.LeftPrimer, r.RightPrimer, r.LeftTm, r.RightTm, r.ProductSize}
		if t.errCol {
			row = append(row, r.Err)
		}
		if err := t.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered rows to the underlying writer. A table with
// no results still gets its header.
func (t *TableWriter) Flush() error {
	if !t.header {
		if err := t.Write(); err != nil {
			return err
		}
	}
	t.w.Flush()
	return t.w.Error()
}
