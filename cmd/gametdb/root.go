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
	"context"
	"io"

	"github.com/spf13/cobra"
)

// run executes the CLI with args and releases everything the command
// opened, whether or not it succeeded.
func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	cctx := &commandContext{}
	defer cctx.close()

	cmd := newRootCommand(cctx)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.ExecuteContext(ctx)
}

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gametdb",
		Short:         "Identify Wii and GameCube images against GameTDB",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return ctx.setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	flags.StringVar(&ctx.dataDirFlag, "data-dir", "", "Directory for the catalog, cache and logs")
	flags.StringVarP(&ctx.languageFlag, "language", "l", "", "Language for titles and covers (e.g. EN, de, French)")
	flags.BoolVar(&ctx.debugFlag, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newIdentifyCommand(ctx),
		newLookupCommand(ctx),
		newSearchCommand(ctx),
		newCoverCommand(ctx),
		newScanCommand(ctx),
		newCatalogCommand(ctx),
		newConfigCommand(ctx),
	)

	return rootCmd
}
