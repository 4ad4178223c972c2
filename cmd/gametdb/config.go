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

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/covers"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid/wit"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/helpers/command"
	"github.com/spf13/cobra"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}
	cmd.AddCommand(newConfigShowCommand(ctx))
	cmd.AddCommand(newConfigSetCommand(ctx))
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ctx.cfg

			coverName, _ := covers.Preferences.Left(cfg.Cover())
			witStatus, err := wit.NewResolver(&command.RealExecutor{}, cfg.WitPath()).Check()
			if err != nil {
				witStatus = "not found"
			}

			renderFields(cmd.OutOrStdout(), [][2]string{
				{"Config file", cfg.Path()},
				{"Language", cfg.Language()},
				{"Cover", fmt.Sprintf("%s (%s)", cfg.Cover(), coverName)},
				{"wit", witStatus},
				{"Dolphin user dir", cfg.DolphinUserDir()},
				{"Catalog URL", cfg.CatalogURL()},
				{"Catalog max age", cfg.CatalogMaxAge().String()},
				{"Debug logging", strconv.FormatBool(cfg.DebugLogging())},
			})
			return nil
		},
	}
}

func newConfigSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting and save it",
		Long: "Change a setting and save it. Keys: language, cover, " +
			"dolphin_user_dir, debug_logging.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.cfg
			key, value := strings.ToLower(args[0]), args[1]

			var err error
			switch key {
			case "language":
				err = cfg.SetLanguage(value)
			case "cover":
				err = cfg.SetCover(value)
			case "dolphin_user_dir":
				cfg.SetDolphinUserDir(value)
			case "debug_logging":
				var enabled bool
				enabled, err = strconv.ParseBool(value)
				if err == nil {
					cfg.SetDebugLogging(enabled)
				}
			default:
				return fmt.Errorf("unknown setting: %s", args[0])
			}
			if err != nil {
				return err
			}

			if err := cfg.Save(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s to %s\n", key, cfg.Path())
			return nil
		},
	}
}
