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
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Search catalog titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.acquireCatalog(cmd.Context())
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			results := cat.Search(query, ctx.cfg.Language(), limit)
			if len(results) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no matches for %q\n", query)
				return nil
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					r.Record.ID,
					r.Title,
					deref(r.Record.Region),
					strconv.FormatFloat(float64(r.Score), 'f', 2, 32),
				})
			}
			renderTable(cmd.OutOrStdout(), []column{
				{header: "ID"},
				{header: "Title"},
				{header: "Region"},
				{header: "Score", align: text.AlignRight},
			}, rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum results, 0 for all")
	return cmd
}
