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

// Package dolphin reads identity codes out of the Dolphin emulator's
// gamelist.cache, for images Dolphin has already scanned.
package dolphin

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// CachePath returns the location of gamelist.cache inside a Dolphin user folder.
func CachePath(userDir string) string {
	return filepath.Join(userDir, "Cache", "gamelist.cache")
}

// GameList is an in-memory copy of gamelist.cache.
type GameList struct {
	data []byte
}

// Load reads gamelist.cache from a Dolphin user folder.
func Load(fs afero.Fs, userDir string) (*GameList, error) {
	path := CachePath(userDir)
	log.Debug().Msgf("loading dolphin game list cache: %s", path)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game list cache: %w", err)
	}
	return &GameList{data: data}, nil
}

// NewGameList wraps raw cache bytes.
func NewGameList(data []byte) *GameList {
	return &GameList{data: data}
}

// cachePathKey formats an image path the way Dolphin stores it.
func cachePathKey(path string) []byte {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return []byte(strings.ReplaceAll(abs, "\\", "/"))
}

// Resolve implements gameid.CodeSource.
func (g *GameList) Resolve(_ context.Context, path string) (gameid.ID6, error) {
	return g.Find(cachePathKey(path))
}

// Find locates the entry for an already formatted image path and returns
// the first valid ID6 recorded after it.
func (g *GameList) Find(key []byte) (gameid.ID6, error) {
	if g == nil || len(g.data) == 0 || len(key) == 0 {
		return "", gameid.ErrNotFound
	}

	loc := bytes.Index(g.data, key)
	if loc < 4 {
		log.Warn().Msgf("path not in dolphin game list cache: %s", key)
		return "", gameid.ErrNotFound
	}

	r := &reader{data: g.data, pos: loc - 4}

	// m_file_path
	stored, ok := r.lengthPrefixed()
	if !ok || !bytes.Equal(stored, key) {
		log.Warn().Msgf("dolphin game list cache path is not an exact match: %s vs %s", key, stored)
		return "", gameid.ErrNotFound
	}

	// m_file_name, m_file_size, m_volume_size, then three 4 byte flags
	if _, ok := r.lengthPrefixed(); !ok {
		return "", gameid.ErrNotFound
	}
	if !r.skip(8 + 8 + 4 + 4 + 4) {
		return "", gameid.ErrNotFound
	}

	// the rest of the entry is dictionaries we don't parse, so scan for a
	// length-prefixed 6 byte string that validates as an ID6
	for i := r.pos; i+4+gameid.ID6Length <= len(g.data); i++ {
		if binary.LittleEndian.Uint32(g.data[i:]) != gameid.ID6Length {
			continue
		}
		if id, ok := gameid.ParseID6(g.data[i+4 : i+4+gameid.ID6Length]); ok {
			log.Debug().Msgf("found id6 in dolphin game list cache: %s", id)
			return id, nil
		}
	}

	log.Warn().Msgf("no valid id6 in dolphin game list cache for: %s", key)
	return "", gameid.ErrNotFound
}

type reader struct {
	data []byte
	pos  int
}

func (r *reader) lengthPrefixed() ([]byte, bool) {
	if r.pos+4 > len(r.data) {
		return nil, false
	}
	n := int(binary.LittleEndian.Uint32(r.data[r.pos:]))
	start := r.pos + 4
	if n < 0 || start+n > len(r.data) {
		return nil, false
	}
	r.pos = start + n
	return r.data[start:r.pos], true
}

func (r *reader) skip(n int) bool {
	if r.pos+n > len(r.data) {
		return false
	}
	r.pos += n
	return true
}
