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

// Package scanner identifies every supported image under a directory.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/helpers/syncutil"
	"github.com/charlievieth/fastwalk"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const DefaultJobs = 4

type Status string

const (
	StatusMatched Status = "matched"
	StatusNoMatch Status = "no_match"
	StatusNoID    Status = "no_id"
	StatusError   Status = "error"
)

// Row is the result for one image.
type Row struct {
	Path   string `csv:"path"`
	ID6    string `csv:"id6"`
	Title  string `csv:"title"`
	Region string `csv:"region"`
	Status Status `csv:"status"`
	Error  string `csv:"error"`
}

type Options struct {
	Language       string
	Jobs           int
	FollowSymlinks bool
}

// Scan walks root for supported images and identifies each one. Rows come
// back sorted by path. Failures for a single image are recorded in its row;
// only a walk failure or cancellation stops the scan.
func Scan(
	ctx context.Context,
	root string,
	resolver gameid.CodeSource,
	cat *catalog.Catalog,
	opts Options,
) ([]Row, error) {
	paths, err := findImages(root, opts.FollowSymlinks)
	if err != nil {
		return nil, err
	}
	log.Info().Msgf("found %d images under %s", len(paths), root)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = DefaultJobs
	}
	language := opts.Language
	if language == "" {
		language = catalog.EnglishLocale
	}

	rows := make([]Row, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = identify(ctx, path, resolver, cat, language)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan cancelled: %w", err)
	}
	return rows, nil
}

func identify(
	ctx context.Context,
	path string,
	resolver gameid.CodeSource,
	cat *catalog.Catalog,
	language string,
) Row {
	row := Row{Path: path}

	id, err := resolver.Resolve(ctx, path)
	switch {
	case errors.Is(err, gameid.ErrNotFound):
		row.Status = StatusNoID
		return row
	case err != nil:
		log.Error().Err(err).Msgf("failed to identify: %s", path)
		row.Status = StatusError
		row.Error = err.Error()
		return row
	}

	row.ID6 = id.String()
	rec, ok := cat.Lookup(row.ID6)
	if !ok {
		row.Status = StatusNoMatch
		return row
	}

	row.Status = StatusMatched
	row.Title, _ = catalog.Title(rec, language)
	if rec.Region != nil {
		row.Region = *rec.Region
	}
	return row
}

func findImages(root string, follow bool) ([]string, error) {
	var (
		mu    syncutil.Mutex
		paths []string
	)

	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("failed to read scan root: %w", err)
	}

	conf := fastwalk.Config{Follow: follow}
	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Msgf("skipping unreadable path: %s", path)
			return nil
		}
		if d.IsDir() || !gameid.IsSupported(path) {
			return nil
		}
		mu.Lock()
		paths = append(paths, path)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// Summary counts rows per status.
func Summary(rows []Row) map[Status]int {
	out := make(map[Status]int)
	for _, r := range rows {
		out[r.Status]++
	}
	return out
}

// WriteCSV writes rows with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
