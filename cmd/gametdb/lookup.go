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
	"strings"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid"
	"github.com/spf13/cobra"
)

// parseIDArg accepts a code in any case with surrounding whitespace.
func parseIDArg(arg string) (gameid.ID6, error) {
	id, ok := gameid.ParseID6String(strings.ToUpper(strings.TrimSpace(arg)))
	if !ok {
		return "", fmt.Errorf("invalid game ID: %q", arg)
	}
	return id, nil
}

func newLookupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <id6>",
		Short: "Show the catalog entry for a game ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}

			cat, err := ctx.acquireCatalog(cmd.Context())
			if err != nil {
				return err
			}

			rec, err := cat.Find(id)
			if errors.Is(err, catalog.ErrNoMatch) {
				return fmt.Errorf("%s: not in catalog", id)
			} else if err != nil {
				return err
			}

			printRecord(cmd.OutOrStdout(), rec, ctx.cfg.Language(), ctx.cfg.Cover())
			return nil
		},
	}
}
