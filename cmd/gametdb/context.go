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
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/config"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/covers"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/database/idcache"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid/dolphin"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid/wit"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/metadata"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/shared/httpclient"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// commandContext holds flags and the components built from them. It's set
// up once per invocation by the root command.
type commandContext struct {
	cfg     *config.Instance
	store   *catalog.Store
	holder  *catalog.Holder
	cache   *idcache.Cache
	fs      afero.Fs
	closers []func()

	configFlag   string
	dataDirFlag  string
	languageFlag string
	debugFlag    bool
}

func (c *commandContext) setup(logOut io.Writer) error {
	c.fs = afero.NewOsFs()

	if err := helpers.InitLogging(
		filepath.Join(c.dataDir(), "logs"),
		[]io.Writer{zerolog.ConsoleWriter{Out: logOut}},
	); err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	helpers.SetDebug(c.debugFlag)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	c.cfg = cfg
	helpers.SetDebug(c.debugFlag || cfg.DebugLogging())

	if lang := strings.TrimSpace(c.languageFlag); lang != "" {
		if err := cfg.SetLanguage(lang); err != nil {
			return err
		}
	}

	c.store = catalog.NewStore(c.dataDir(), catalog.StoreOptions{
		URL:    cfg.CatalogURL(),
		MaxAge: cfg.CatalogMaxAge(),
	})
	c.holder = catalog.NewHolder(c.store.Load)

	return nil
}

func (c *commandContext) loadConfig() (*config.Instance, error) {
	if path := strings.TrimSpace(c.configFlag); path != "" {
		return config.NewConfigFromPath(c.fs, path, config.BaseDefaults)
	}
	return config.NewConfig(c.fs, helpers.ConfigDir(), config.BaseDefaults)
}

func (c *commandContext) dataDir() string {
	if dir := strings.TrimSpace(c.dataDirFlag); dir != "" {
		return dir
	}
	return helpers.DataDir()
}

func (c *commandContext) close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// acquireCatalog leases the catalog, releasing it when the command ends.
func (c *commandContext) acquireCatalog(ctx context.Context) (*catalog.Catalog, error) {
	lease, err := c.holder.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, lease.Release)
	return lease.Catalog, nil
}

// resolver builds the identity resolver chain: fixed offsets, wit for the
// formats that need it, the Dolphin cache for RVZ/WAD when configured, and
// the persistent id cache in front of all of it.
func (c *commandContext) resolver() gameid.CodeSource {
	opts := []gameid.ResolverOption{
		gameid.WithExternal(wit.NewResolver(&command.RealExecutor{}, c.cfg.WitPath())),
	}

	if dir := c.cfg.DolphinUserDir(); dir != "" {
		gl, err := dolphin.Load(c.fs, dir)
		if err != nil {
			log.Warn().Err(err).Msg("dolphin game list cache unavailable")
		} else {
			opts = append(opts, gameid.WithFallback(gl))
		}
	}

	r := gameid.NewResolver(gameid.NewExtractor(c.fs), opts...)

	if c.cache == nil {
		cache, err := idcache.Open(filepath.Join(c.dataDir(), idcache.FileName))
		if err != nil {
			log.Warn().Err(err).Msg("id cache unavailable, continuing without it")
			return r
		}
		c.cache = cache
		c.closers = append(c.closers, func() {
			if err := cache.Close(); err != nil {
				log.Warn().Err(err).Msg("error closing id cache")
			}
			c.cache = nil
		})
	}
	return c.cache.Wrap(r, c.fs)
}

func (c *commandContext) fetcher() covers.Fetcher {
	return covers.NewHTTPFetcher(httpclient.NewClient())
}

func (c *commandContext) provider() *metadata.Provider {
	return metadata.NewProvider(c.holder, c.resolver(), c.fetcher(), c.cfg)
}
