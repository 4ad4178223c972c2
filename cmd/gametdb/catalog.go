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
	"time"

	"github.com/spf13/cobra"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the local GameTDB catalog",
	}
	cmd.AddCommand(newCatalogUpdateCommand(ctx))
	cmd.AddCommand(newCatalogInfoCommand(ctx))
	return cmd
}

func newCatalogUpdateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Download the latest catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := ctx.store.Path(cmd.Context(), true)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "catalog updated: %s\n", path)
			return nil
		},
	}
}

func newCatalogInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the state of the local catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := ctx.store.Info()
			if err != nil {
				return err
			}

			fields := [][2]string{
				{"Path", info.Path},
				{"Source", ctx.cfg.CatalogURL()},
				{"Present", strconv.FormatBool(info.Exists)},
				{"Stale", strconv.FormatBool(info.Stale)},
			}
			if info.Exists {
				fields = append(fields,
					[2]string{"Updated", info.ModTime.Format(time.RFC3339)},
					[2]string{"Age", info.Age.Truncate(time.Minute).String()},
					[2]string{"Size", strconv.FormatInt(info.Size, 10)},
				)

				cat, err := ctx.acquireCatalog(cmd.Context())
				if err != nil {
					return err
				}
				fields = append(fields, [2]string{"Games", strconv.Itoa(cat.Len())})
			}

			renderFields(cmd.OutOrStdout(), fields)
			return nil
		},
	}
}
