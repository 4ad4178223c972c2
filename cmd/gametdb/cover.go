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
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/covers"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/metadata"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newCoverCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "cover <image|id6>",
		Short: "Download cover art for an image or game ID",
		Long: "Download cover art for an image or game ID. Falls back through " +
			"other regions and the plain cover when the preferred art is missing.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := args[0]

			var file *metadata.File

			if _, statErr := os.Stat(arg); statErr == nil {
				session, err := ctx.provider().Open(cmd.Context(), arg)
				if err != nil {
					return err
				}
				defer session.Close()

				if session.Record() == nil {
					return fmt.Errorf("no catalog entry for %s", arg)
				}
				file, err = session.Cover(cmd.Context())
				if err != nil {
					return coverError(err, session.ID())
				}
			} else {
				id, err := parseIDArg(arg)
				if err != nil {
					return fmt.Errorf("not an image file or game ID: %s", arg)
				}
				cat, err := ctx.acquireCatalog(cmd.Context())
				if err != nil {
					return err
				}
				rec, err := cat.Find(id)
				if err != nil {
					return err
				}
				res, err := covers.Get(cmd.Context(), ctx.fetcher(), rec, ctx.cfg.Language(), ctx.cfg.Cover())
				if err != nil {
					return coverError(err, id)
				}
				file = &metadata.File{Name: id.String() + ".png", URL: res.URL, Data: res.Data}
			}

			dest := output
			if dest == "" {
				dest = file.Name
			} else if fi, err := os.Stat(dest); err == nil && fi.IsDir() {
				dest = filepath.Join(dest, file.Name)
			}

			if err := afero.WriteFile(ctx.fs, dest, file.Data, 0o644); err != nil {
				return fmt.Errorf("failed to write cover: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", file.URL, dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file or directory (default <id6>.png)")
	return cmd
}

func coverError(err error, id gameid.ID6) error {
	if errors.Is(err, covers.ErrNotFound) {
		return fmt.Errorf("no cover art available for %s", id)
	}
	return err
}
