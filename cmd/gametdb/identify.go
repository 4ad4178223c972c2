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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid"
	"github.com/spf13/cobra"
)

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "identify <image>",
		Short: "Read an image's game ID and show its catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("failed to stat image: %w", err)
			}

			id, err := ctx.resolver().Resolve(cmd.Context(), path)
			if errors.Is(err, gameid.ErrNotFound) {
				return fmt.Errorf("no game ID found in %s", path)
			} else if err != nil {
				return err
			}

			cat, err := ctx.acquireCatalog(cmd.Context())
			if err != nil {
				return err
			}

			rec, ok := cat.Lookup(id.String())
			if !ok {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: not in catalog\n", id)
				return nil
			}

			printRecord(cmd.OutOrStdout(), rec, ctx.cfg.Language(), ctx.cfg.Cover())
			return nil
		},
	}
}
