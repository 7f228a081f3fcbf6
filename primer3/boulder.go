// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primer3

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/genetools/primer"
)

// WriteBoulder writes req to w as a single Boulder-IO record.
func WriteBoulder(w io.Writer, req primer.Request) error {
	ftoa := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	tags := []struct{ key, val string }{
		{"SEQUENCE_ID", req.ID},
		{"SEQUENCE_TEMPLATE", req.Template},
		{"PRIMER_OPT_SIZE", strconv.Itoa(req.OptSize)},
		{"PRIMER_MIN_SIZE", strconv.Itoa(req.MinSize)},
		{"PRIMER_MAX_SIZE", strconv.Itoa(req.MaxSize)},
		{"PRIMER_MIN_TM", ftoa(req.MinTm)},
		{"PRIMER_OPT_TM", ftoa(req.OptTm)},
		{"PRIMER_MAX_TM", ftoa(req.MaxTm)},
		{"PRIMER_NUM_RETURN", strconv.Itoa(req.NumReturn)},
	}
	bw := bufio.NewWriter(w)
	for _, t := range tags {
		if strings.ContainsAny(t.val, "\r\n") {
			return fmt.Errorf("primer3: %s value contains a line break", t.key)
		}
		fmt.Fprintf(bw, "%s=%s\n", t.key, t.val)
	}
	bw.WriteString("=\n")
	return bw.Flush()
}

// ReadBoulder reads a single Boulder-IO record from r. If the input ends
// before the record terminator the tags read so far are returned with
// io.ErrUnexpectedEOF.
func ReadBoulder(r io.Reader) (primer.Response, error) {
	resp := make(primer.Response)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "=" {
			return resp, nil
		}
		i := strings.IndexByte(line, '=')
		if i < 0 {
			if line == "" {
				continue
			}
			return resp, fmt.Errorf("primer3: malformed Boulder-IO line %q", line)
		}
		resp[line[:i]] = line[i+1:]
	}
	if err := sc.Err(); err != nil {
		return resp, err
	}
	return resp, io.ErrUnexpectedEOF
}
