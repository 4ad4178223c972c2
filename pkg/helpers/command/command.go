// Zaparoo GameTDB
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo GameTDB.
//
// Zaparoo GameTDB is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo GameTDB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo GameTDB.  If not, see <http://www.gnu.org/licenses/>.

// Package command provides an abstraction over exec.Command for testability.
package command

import (
	"bytes"
	"context"
	"os/exec"
)

// Options configures how a helper process is started.
type Options struct {
	// HideWindow prevents a console window from appearing (Windows-only).
	// On non-Windows platforms, this field is ignored.
	HideWindow bool
}

// Result holds the separated output streams of a finished process.
type Result struct {
	Stdout []byte
	Stderr []byte
}

// Executor provides an abstraction over exec.Command for testability.
// This allows helper processes to be faked in tests without executing real
// system commands.
type Executor interface {
	// Capture runs a command to completion and returns stdout and stderr
	// separately. A non-zero exit status is returned as an error alongside
	// whatever output was produced.
	Capture(ctx context.Context, opts Options, name string, args ...string) (Result, error)

	// LookPath resolves an executable the same way the shell would.
	LookPath(file string) (string, error)
}

// RealExecutor uses actual exec.Command to execute system commands.
type RealExecutor struct{}

// Capture runs a system command using exec.CommandContext.
//
//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealExecutor) Capture(
	ctx context.Context,
	opts Options,
	name string,
	args ...string,
) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	configure(cmd, opts)

	err := cmd.Run()
	return Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, err
}

// LookPath wraps exec.LookPath.
//
//nolint:wrapcheck // exec.ErrNotFound must stay matchable
func (*RealExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
