// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqrec

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestParse(c *check.C) {
	for i, t := range []struct {
		in   string
		want []Record
	}{
		{
			in:   ">g1\nAC\nGT\n\n>g2\nTTTT\n",
			want: []Record{{"g1", "ACGT"}, {"g2", "TTTT"}},
		},
		{
			in:   "",
			want: nil,
		},
		{
			in:   "ACGT\nTTTT\n",
			want: nil,
		},
		{
			in:   ">a\n>b\nCC\n",
			want: []Record{{"a", ""}, {"b", "CC"}},
		},
		{
			in:   ">a\n",
			want: []Record{{"a", ""}},
		},
		{
			in:   ">seq1 some description here\nACGT\n",
			want: []Record{{"seq1", "ACGT"}},
		},
		{
			in:   ">x\tdesc\n  AC  \n\t\n  GT\r\n",
			want: []Record{{"x", "ACGT"}},
		},
		{
			in:   ">junk\nAC-12 xx\n*\n",
			want: []Record{{"junk", "AC-12 xx*"}},
		},
		{
			in:   ">dup\nAA\n>dup\nCC\n",
			want: []Record{{"dup", "AA"}, {"dup", "CC"}},
		},
		{
			in:   ">\nAC\n",
			want: []Record{{"", "AC"}},
		},
		{
			in:   ">noeol\nACGT",
			want: []Record{{"noeol", "ACGT"}},
		},
	} {
		got, err := Parse(strings.NewReader(t.in))
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(got, check.DeepEquals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestBlankLineRobustness(c *check.C) {
	const clean = ">g1\nACGT\nTT\n>g2\nGGCC\n>g3\n>g4\nA\n"
	want, err := Parse(strings.NewReader(clean))
	c.Assert(err, check.Equals, nil)

	for i, in := range []string{
		"\n\n" + clean,
		clean + "\n\n   \n",
		">g1\n\nACGT\n\n\nTT\n\n>g2\nGGCC\n\n>g3\n\n>g4\n \nA\n",
		"\t\n>g1\nACGT\n \t \nTT\n>g2\n\nGGCC\n>g3\n>g4\nA\n\n",
	} {
		got, err := Parse(strings.NewReader(in))
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(got, check.DeepEquals, want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestRoundTrip(c *check.C) {
	for i, t := range []struct {
		recs  []Record
		width int
	}{
		{
			recs:  []Record{{"geneA", "ACGT"}, {"geneB", "TTTT"}, {"geneC", "GGCC"}},
			width: 60,
		},
		{
			recs: []Record{
				{"long", strings.Repeat("ACGTTGCA", 40)},
				{"short", "A"},
			},
			width: 7,
		},
		{
			recs:  []Record{{"x", strings.Repeat("N", 120)}},
			width: 60,
		},
	} {
		var buf bytes.Buffer
		err := Write(&buf, t.recs, t.width)
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))

		got, err := Parse(&buf)
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(got, check.DeepEquals, t.recs, check.Commentf("Test %d", i))

		// A second pass must be stable.
		var again bytes.Buffer
		c.Assert(Write(&again, got, t.width), check.Equals, nil)
		back, err := Parse(&again)
		c.Check(err, check.Equals, nil)
		c.Check(back, check.DeepEquals, t.recs, check.Commentf("Test %d", i))
	}
}

func (s *S) TestWriteSingleLine(c *check.C) {
	recs := []Record{{"a", strings.Repeat("ACGT", 50)}, {"b", "AC"}}
	for _, width := range []int{0, -1} {
		var buf bytes.Buffer
		c.Assert(Write(&buf, recs, width), check.Equals, nil)
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		c.Check(lines, check.DeepEquals, []string{">a", recs[0].Seq, ">b", "AC"}, check.Commentf("width %d", width))
		got, err := Parse(&buf)
		c.Check(err, check.Equals, nil)
		c.Check(got, check.DeepEquals, recs)
	}
}

func (s *S) TestParseFile(c *check.C) {
	dir := c.MkDir()
	const text = ">g1\nAC\nGT\n>g2\nTTTT\n"
	want := []Record{{"g1", "ACGT"}, {"g2", "TTTT"}}

	plain := filepath.Join(dir, "in.fa")
	c.Assert(os.WriteFile(plain, []byte(text), 0o644), check.Equals, nil)
	got, err := ParseFile(plain)
	c.Check(err, check.Equals, nil)
	c.Check(got, check.DeepEquals, want)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err = gz.Write([]byte(text))
	c.Assert(err, check.Equals, nil)
	c.Assert(gz.Close(), check.Equals, nil)
	zipped := filepath.Join(dir, "in.fa.gz")
	c.Assert(os.WriteFile(zipped, buf.Bytes(), 0o644), check.Equals, nil)
	got, err = ParseFile(zipped)
	c.Check(err, check.Equals, nil)
	c.Check(got, check.DeepEquals, want)

	_, err = ParseFile(filepath.Join(dir, "absent.fa"))
	c.Check(os.IsNotExist(err), check.Equals, true)
}
