// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package primer3 provides a primer.Designer that runs the primer3_core
// program, exchanging Boulder-IO records over its standard streams.
package primer3

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/biogo/external"

	"github.com/biogo/genetools/primer"
)

// Primer3 builds a primer3_core command line.
type Primer3 struct {
	// Usage: primer3_core [--p3_settings_file=<file_path>] [--strict_tags] < input
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}primer3_core{{end}}"` // primer3_core

	SettingsFile string `buildarg:"{{if .}}--p3_settings_file={{.}}{{end}}"` // --p3_settings_file=<file_path>
	StrictTags   bool   `buildarg:"{{if .}}--strict_tags{{end}}"`            // --strict_tags
}

// BuildCommand returns an exec.Cmd built from the parameters in p.
func (p Primer3) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(p)
	if err != nil {
		return nil, err
	}
	if len(cl) == 0 {
		return nil, errors.New("primer3: empty command")
	}
	return exec.Command(cl[0], cl[1:]...), nil
}

// Designer is a primer.Designer backed by primer3_core.
type Designer struct {
	Command Primer3
}

// errorTag is the global error tag reported by primer3_core.
const errorTag = "PRIMER_ERROR"

// Design runs primer3_core for the request and returns its output tags.
// A PRIMER_ERROR tag in the output is returned as an error.
func (d Designer) Design(req primer.Request) (primer.Response, error) {
	var in bytes.Buffer
	if err := WriteBoulder(&in, req); err != nil {
		return nil, err
	}
	cmd, err := d.Command.BuildCommand()
	if err != nil {
		return nil, err
	}
	var out, stderr bytes.Buffer
	cmd.Stdin = &in
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	resp, readErr := ReadBoulder(&out)
	if msg := resp[errorTag]; msg != "" {
		return nil, fmt.Errorf("primer3: %s", msg)
	}
	if runErr != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("primer3: %v: %s", runErr, msg)
		}
		return nil, fmt.Errorf("primer3: %w", runErr)
	}
	if readErr != nil {
		return nil, fmt.Errorf("primer3: failed to read output: %w", readErr)
	}
	return resp, nil
}
