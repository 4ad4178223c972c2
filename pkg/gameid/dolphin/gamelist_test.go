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

package dolphin

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lp(buf *bytes.Buffer, s string) {
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	buf.WriteString(s)
}

func cacheEntry(path, name, id6 string) []byte {
	var buf bytes.Buffer
	lp(&buf, path)
	lp(&buf, name)
	buf.Write(make([]byte, 8+8+4+4+4))
	// a dictionary with a 6 byte key that isn't a valid code
	lp(&buf, "en-gb!")
	lp(&buf, "Some Title")
	lp(&buf, id6)
	return buf.Bytes()
}

func TestGameList_Find(t *testing.T) {
	t.Parallel()

	data := append([]byte{0xde, 0xad, 0xbe, 0xef}, cacheEntry("/games/brawl.rvz", "brawl.rvz", "RSBE01")...)
	data = append(data, cacheEntry("/games/kart.rvz", "kart.rvz", "RMCP01")...)
	gl := NewGameList(data)

	id, err := gl.Find([]byte("/games/kart.rvz"))
	require.NoError(t, err)
	assert.Equal(t, gameid.ID6("RMCP01"), id)

	id, err = gl.Find([]byte("/games/brawl.rvz"))
	require.NoError(t, err)
	assert.Equal(t, gameid.ID6("RSBE01"), id)
}

func TestGameList_FindMissingPath(t *testing.T) {
	t.Parallel()

	gl := NewGameList(cacheEntry("/games/brawl.rvz", "brawl.rvz", "RSBE01"))

	_, err := gl.Find([]byte("/games/other.rvz"))
	require.ErrorIs(t, err, gameid.ErrNotFound)
}

func TestGameList_FindSubstringPath(t *testing.T) {
	t.Parallel()

	// "/games/brawl.rvz" is found inside the longer stored path but the
	// length prefix doesn't match it
	gl := NewGameList(cacheEntry("/games/brawl.rvz.bak", "brawl.rvz.bak", "RSBE01"))

	_, err := gl.Find([]byte("/games/brawl.rvz"))
	require.ErrorIs(t, err, gameid.ErrNotFound)
}

func TestGameList_FindNoValidID(t *testing.T) {
	t.Parallel()

	gl := NewGameList(cacheEntry("/games/brawl.rvz", "brawl.rvz", "rsbe01"))

	_, err := gl.Find([]byte("/games/brawl.rvz"))
	require.ErrorIs(t, err, gameid.ErrNotFound)
}

func TestGameList_Truncated(t *testing.T) {
	t.Parallel()

	entry := cacheEntry("/games/brawl.rvz", "brawl.rvz", "RSBE01")
	gl := NewGameList(entry[:30])

	_, err := gl.Find([]byte("/games/brawl.rvz"))
	require.ErrorIs(t, err, gameid.ErrNotFound)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, CachePath("/dolphin"),
		cacheEntry("/games/brawl.rvz", "brawl.rvz", "RSBE01"), 0o600))

	gl, err := Load(fs, "/dolphin")
	require.NoError(t, err)

	id, err := gl.Resolve(context.Background(), "/games/brawl.rvz")
	require.NoError(t, err)
	assert.Equal(t, gameid.ID6("RSBE01"), id)

	_, err = Load(fs, "/missing")
	require.Error(t, err)
}

func TestGameList_NilSafe(t *testing.T) {
	t.Parallel()

	var gl *GameList
	_, err := gl.Find([]byte("/games/brawl.rvz"))
	require.ErrorIs(t, err, gameid.ErrNotFound)
}
