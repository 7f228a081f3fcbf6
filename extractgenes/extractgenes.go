// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// extractgenes writes the sequences of a FASTA file whose identifiers
// are listed, one per line, in a gene list file.
//
// Usage:
//
//	extractgenes [options] <input.fasta> <gene_list.txt> <output.fasta>
//
// Sequences are written in the order they appear in the input. Listed
// identifiers that are not present in the input are ignored unless
// -missing is given.
package main

import (
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/genetools/extract"
	"github.com/biogo/genetools/idset"
)

var (
	width   = flag.Int("width", 60, "line width of output sequences.")
	missing = flag.Bool("missing", false, "log listed identifiers that were not found.")
	stats   = flag.Bool("stats", false, "log length statistics of written sequences.")
	help    = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <input.fasta> <gene_list.txt> <output.fasta>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() != 3 || *width < 1 {
		flag.Usage()
		os.Exit(2)
	}
	inf, listf, outf := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	ids, res, err := run(inf, listf, outf, *width)
	if err != nil {
		log.Fatal(err)
	}

	if *missing {
		for _, id := range res.Missing(ids) {
			log.Printf("not found: %s", id)
		}
	}
	if *stats {
		log.Printf("%+v", extract.Summarize(res.Lengths))
	}

	fmt.Println(summary(res.Written, outf))
}

// run extracts the sequences of inf listed in listf into outf.
func run(inf, listf, outf string, width int) (idset.Set, extract.Result, error) {
	ids, err := idset.LoadFile(listf)
	if err != nil {
		return nil, extract.Result{}, fmt.Errorf("failed to read gene list %q: %w", listf, err)
	}

	in, err := os.Open(inf)
	if err != nil {
		return nil, extract.Result{}, fmt.Errorf("failed to open %q: %w", inf, err)
	}
	defer in.Close()
	var r io.Reader = in
	if filepath.Ext(inf) == ".gz" {
		gz, err := gzip.NewReader(in)
		if err != nil {
			return nil, extract.Result{}, fmt.Errorf("failed to read %q: %w", inf, err)
		}
		defer gz.Close()
		r = gz
	}

	out, err := os.Create(outf)
	if err != nil {
		return nil, extract.Result{}, fmt.Errorf("failed to create %q: %w", outf, err)
	}
	res, err := extract.Filter(
		fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)),
		fasta.NewWriter(out, width),
		ids,
	)
	if err != nil {
		out.Close()
		return nil, res, err
	}
	if err = out.Close(); err != nil {
		return nil, res, fmt.Errorf("failed to close %q: %w", outf, err)
	}
	return ids, res, nil
}

func summary(n int, outf string) string {
	return fmt.Sprintf("Extraction complete: %d sequence written to '%s'", n, outf)
}
