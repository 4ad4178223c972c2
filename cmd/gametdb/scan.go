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
	"os"
	"path/filepath"
	"sort"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/scanner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var (
		csvPath string
		jobs    int
		follow  bool
	)

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Identify every supported image under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.acquireCatalog(cmd.Context())
			if err != nil {
				return err
			}

			rows, err := scanner.Scan(cmd.Context(), args[0], ctx.resolver(), cat, scanner.Options{
				Language:       ctx.cfg.Language(),
				Jobs:           jobs,
				FollowSymlinks: follow,
			})
			if err != nil {
				return err
			}

			if csvPath != "" {
				if err := writeScanCSV(csvPath, rows); err != nil {
					return err
				}
				log.Info().Msgf("wrote %d rows to %s", len(rows), csvPath)
			} else {
				table := make([][]string, 0, len(rows))
				for _, r := range rows {
					table = append(table, []string{
						filepath.Base(r.Path), r.ID6, r.Title, r.Region, string(r.Status),
					})
				}
				renderTable(cmd.OutOrStdout(), []column{
					{header: "File"},
					{header: "ID"},
					{header: "Title"},
					{header: "Region"},
					{header: "Status"},
				}, table)
			}

			printSummary(cmd, scanner.Summary(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Write results to a CSV file instead of a table")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", scanner.DefaultJobs, "Number of images identified in parallel")
	cmd.Flags().BoolVar(&follow, "follow", false, "Follow symbolic links")
	return cmd
}

func writeScanCSV(path string, rows []scanner.Row) (err error) {
	f, err := os.Create(path) //nolint:gosec // user supplied output path
	if err != nil {
		return fmt.Errorf("failed to create csv: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close csv: %w", closeErr)
		}
	}()
	return scanner.WriteCSV(f, rows)
}

func printSummary(cmd *cobra.Command, summary map[scanner.Status]int) {
	statuses := make([]string, 0, len(summary))
	for s := range summary {
		statuses = append(statuses, string(s))
	}
	sort.Strings(statuses)

	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, []string{s, fmt.Sprint(summary[scanner.Status(s)])})
	}
	renderTable(cmd.OutOrStdout(), []column{
		{header: "Status"},
		{header: "Count", align: text.AlignRight},
	}, rows)
}
