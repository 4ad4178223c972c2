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

// Package wit resolves identity codes through the Wiimms ISO Tools helper for
// container formats that cannot be read at a fixed offset.
package wit

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/helpers/command"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultBinary is looked up on PATH when no explicit path is configured.
	DefaultBinary = "wit"
	id6Subcommand = "id6"
)

// ErrHelperMissing is a configuration error: the helper executable could not
// be found. It is not retried.
var ErrHelperMissing = errors.New("wit executable not found")

// Resolver runs `wit id6 <image>` and validates its output.
type Resolver struct {
	executor command.Executor
	binary   string
}

func NewResolver(executor command.Executor, binary string) *Resolver {
	if executor == nil {
		executor = &command.RealExecutor{}
	}
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}
	return &Resolver{
		executor: executor,
		binary:   binary,
	}
}

// Check verifies the helper can be found without running it.
func (r *Resolver) Check() (string, error) {
	path, err := r.executor.LookPath(r.binary)
	if err != nil {
		return "", fmt.Errorf("%w at %s: %w", ErrHelperMissing, r.binary, err)
	}
	return path, nil
}

// Resolve implements gameid.CodeSource. The helper's stderr is logged and
// never treated as a failure on its own.
func (r *Resolver) Resolve(ctx context.Context, path string) (gameid.ID6, error) {
	bin, err := r.Check()
	if err != nil {
		log.Error().Err(err).Msg("cannot inspect image without wit")
		return "", err
	}

	log.Debug().Str("helper", bin).Str("path", path).Msg("launching wit")

	res, err := r.executor.Capture(ctx, command.Options{HideWindow: true}, bin, id6Subcommand, path)
	logStderr(res.Stderr)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("wit interrupted: %w", ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("failed to run wit: %w", err)
		}
		log.Warn().Int("exit", exitErr.ExitCode()).Msgf("wit exited with error for: %s", path)
	}

	out := strings.TrimSpace(string(res.Stdout))
	id, ok := gameid.ParseID6String(out)
	if !ok {
		log.Debug().Str("output", out).Msgf("wit returned no valid id6 for: %s", path)
		return "", gameid.ErrNotFound
	}

	return id, nil
}

func logStderr(stderr []byte) {
	if len(stderr) == 0 {
		return
	}
	sc := bufio.NewScanner(bytes.NewReader(stderr))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			log.Warn().Msgf("wit stderr: %s", line)
		}
	}
}
