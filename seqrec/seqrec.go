// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqrec provides a minimal structural FASTA parser that
// returns (identifier, sequence) pairs in file order.
//
// The parser performs no validation of sequence content. Anything that
// is not a header or a blank line becomes part of the current record's
// sequence, and a header followed directly by another header produces
// a record with an empty sequence.
package seqrec

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// maxLine is the longest single line the parser will accept.
const maxLine = 1 << 30

// Record is a single FASTA entry.
type Record struct {
	ID  string
	Seq string
}

// Parse reads FASTA formatted text from r and returns the records in the
// order their headers appear. The only errors returned are those of the
// underlying reader.
func Parse(r io.Reader) ([]Record, error) {
	var (
		recs  []Record
		id    string
		inRec bool
		parts []string
	)
	flush := func() {
		if inRec {
			recs = append(recs, Record{ID: id, Seq: strings.Join(parts, "")})
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			id = ""
			if f := strings.Fields(line[1:]); len(f) != 0 {
				id = f[0]
			}
			inRec = true
			parts = parts[:0]
			continue
		}
		parts = append(parts, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return recs, nil
}

// ParseFile opens the named file and parses it with Parse. Files with a
// .gz extension are decompressed.
func ParseFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(path) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("seqrec: failed to read %q: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	recs, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("seqrec: failed to read %q: %w", path, err)
	}
	return recs, nil
}

// Write writes recs to w in FASTA format, wrapping sequence lines at width
// letters. If width is less than one each sequence is written on a
// single line.
func Write(w io.Writer, recs []Record, width int) error {
	fw := fasta.NewWriter(w, width)
	for _, r := range recs {
		if width < 1 {
			fw = fasta.NewWriter(w, max(len(r.Seq), 1))
		}
		s := linear.NewSeq(r.ID, alphabet.BytesToLetters([]byte(r.Seq)), alphabet.DNA)
		if _, err := fw.Write(s); err != nil {
			return fmt.Errorf("seqrec: failed to write %q: %w", r.ID, err)
		}
	}
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
