// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// primerdesign designs PCR primer pairs for each sequence in a FASTA file
// using primer3 and writes them to a CSV table.
//
// Usage:
//
//	primerdesign [options] <input.fasta> <output.csv>
//
// The table has one row per requested primer pair per sequence with the
// columns gene_id, left_primer, right_primer, left_tm, right_tm and
// product_size. Pairs that primer3 could not find are written as empty
// fields. By default a sequence for which primer3 fails aborts the run;
// with -keep_going the failure is logged and recorded in an additional
// error column.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/genetools/primer"
	"github.com/biogo/genetools/primer3"
	"github.com/biogo/genetools/seqrec"
)

var (
	numReturn = flag.Int("num_return", 1, "number of primer pairs to return for each sequence.")
	cmd       = flag.String("primer3", "primer3_core", "primer3_core executable.")
	settings  = flag.String("settings", "", "primer3 settings file.")
	keepGoing = flag.Bool("keep_going", false, "record per-sequence design failures instead of aborting.")
	threads   = flag.Int("threads", 1, "number of concurrent primer3 instances to run.")
	help      = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <input.fasta> <output.csv>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() != 2 || *numReturn < 1 {
		flag.Usage()
		os.Exit(2)
	}
	inf, outf := flag.Arg(0), flag.Arg(1)

	b := primer.Batch{
		Designer: primer3.Designer{
			Command: primer3.Primer3{Cmd: *cmd, SettingsFile: *settings},
		},
		NumReturn: *numReturn,
		KeepGoing: *keepGoing,
		Threads:   *threads,
		Log:       log.New(os.Stderr, "", log.LstdFlags),
	}
	if err := run(inf, outf, b); err != nil {
		log.Fatal(err)
	}
}

// run designs primers for every sequence in inf and writes the table
// to outf. The table is only created once all designs have completed.
func run(inf, outf string, b primer.Batch) error {
	recs, err := seqrec.ParseFile(inf)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", inf, err)
	}
	res, err := b.Run(recs)
	if err != nil {
		return err
	}

	out, err := os.Create(outf)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", outf, err)
	}
	tw := primer.NewTableWriter(out, b.KeepGoing)
	err = tw.Write(res...)
	if err == nil {
		err = tw.Flush()
	}
	if err != nil {
		out.Close()
		return fmt.Errorf("failed to write %q: %w", outf, err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", outf, err)
	}
	return nil
}
