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

// Package idcache persists resolved identity codes so images don't have to
// be read, or the external helper run, again.
package idcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketIDs = "ids"
	FileName  = "idcache.db"
)

type entry struct {
	ID6     string `json:"id6"`
	Size    int64  `json:"size"`
	ModTime int64  `json:"modTime"`
	Added   int64  `json:"added"`
}

// Cache maps absolute image paths to identity codes. An entry only counts
// while the file's size and modification time are unchanged.
type Cache struct {
	bdb *bolt.DB
}

// Open opens or creates the cache database at path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BucketIDs))
		return err
	})
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing bolt database")
		}
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Cache{bdb: db}, nil
}

func (c *Cache) Close() error {
	if err := c.bdb.Close(); err != nil {
		return fmt.Errorf("failed to close bolt database: %w", err)
	}
	return nil
}

// Get returns the cached code for path if fi still matches the file it was
// stored for.
func (c *Cache) Get(path string, fi os.FileInfo) (gameid.ID6, bool, error) {
	var e entry
	found := false

	err := c.bdb.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(BucketIDs)).Get([]byte(path))
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &e); err != nil {
			return fmt.Errorf("failed to unmarshal cache entry: %w", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to view bolt database: %w", err)
	}

	if !found || e.Size != fi.Size() || e.ModTime != fi.ModTime().UnixNano() {
		return "", false, nil
	}

	id, ok := gameid.ParseID6String(e.ID6)
	if !ok {
		return "", false, nil
	}
	return id, true, nil
}

// Put stores the code for path along with fi's size and modification time.
func (c *Cache) Put(path string, fi os.FileInfo, id gameid.ID6) error {
	data, err := json.Marshal(entry{
		ID6:     id.String(),
		Size:    fi.Size(),
		ModTime: fi.ModTime().UnixNano(),
		Added:   time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	err = c.bdb.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(BucketIDs)).Put([]byte(path), data)
	})
	if err != nil {
		return fmt.Errorf("failed to update bolt database: %w", err)
	}
	return nil
}

func (c *Cache) Delete(path string) error {
	err := c.bdb.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(BucketIDs)).Delete([]byte(path))
	})
	if err != nil {
		return fmt.Errorf("failed to update bolt database: %w", err)
	}
	return nil
}

// Len returns the number of stored entries, stale ones included.
func (c *Cache) Len() (int, error) {
	n := 0
	err := c.bdb.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(BucketIDs)).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to view bolt database: %w", err)
	}
	return n, nil
}

// Source is a gameid.CodeSource that checks the cache before asking next.
type Source struct {
	cache *Cache
	next  gameid.CodeSource
	fs    afero.Fs
}

// Wrap returns a caching CodeSource in front of next. fs is used to stat
// images and should be the filesystem next reads from.
func (c *Cache) Wrap(next gameid.CodeSource, fs afero.Fs) *Source {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Source{cache: c, next: next, fs: fs}
}

// Resolve implements gameid.CodeSource. Cache failures are logged and the
// lookup carries on uncached; only successful results are stored.
func (s *Source) Resolve(ctx context.Context, path string) (gameid.ID6, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	fi, statErr := s.fs.Stat(path)
	if statErr == nil {
		id, ok, err := s.cache.Get(key, fi)
		switch {
		case err != nil:
			log.Warn().Err(err).Msgf("error reading id cache: %s", key)
		case ok:
			log.Debug().Msgf("id cache hit: %s -> %s", key, id)
			return id, nil
		}
	}

	id, err := s.next.Resolve(ctx, path)
	if err != nil {
		return "", err
	}

	if statErr != nil {
		if !errors.Is(statErr, os.ErrNotExist) {
			log.Warn().Err(statErr).Msgf("error stating image, not caching: %s", path)
		}
		return id, nil
	}

	if err := s.cache.Put(key, fi, id); err != nil {
		log.Warn().Err(err).Msgf("error writing id cache: %s", key)
	}
	return id, nil
}
