// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package idset loads sets of sequence identifiers from line-oriented
// lists.
package idset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Set is a set of identifiers.
type Set map[string]struct{}

// New returns a Set holding the given identifiers.
func New(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Load reads one identifier per line from r. Lines are trimmed of
// surrounding white space and lines that are then empty are ignored.
func Load(r io.Reader) (Set, error) {
	s := make(Set)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if id := strings.TrimSpace(sc.Text()); id != "" {
			s.Add(id)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile loads a Set from the named file.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("idset: failed to read %q: %w", path, err)
	}
	return s, nil
}

func (s Set) Add(id string) { s[id] = struct{}{} }

// Has returns whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Len() int { return len(s) }

// Sorted returns the members of the set in lexical order.
func (s Set) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
