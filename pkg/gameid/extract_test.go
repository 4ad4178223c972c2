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

package gameid

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, fs afero.Fs, path string, size int, patches map[int64]string) {
	t.Helper()
	data := make([]byte, size)
	for off, s := range patches {
		copy(data[off:], s)
	}
	require.NoError(t, afero.WriteFile(fs, path, data, 0o600))
}

func TestExtractor_OpticalKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind   Kind
		path   string
		offset int64
	}{
		{kind: KindISO, path: "/games/game.iso", offset: 0x0},
		{kind: KindRVZ, path: "/games/game.rvz", offset: 0x58},
		{kind: KindWBFS, path: "/games/game.wbfs", offset: 0x200},
		{kind: KindCISO, path: "/games/game.ciso", offset: 0x8000},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			writeImage(t, fs, tt.path, 0x9000, map[int64]string{tt.offset: "RSBE01"})

			id, err := NewExtractor(fs).Extract(tt.path, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, ID6("RSBE01"), id)
		})
	}
}

func TestExtractor_PackageConcatenatesWindows(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeImage(t, fs, "/games/channel.wad", 0x1000, map[int64]string{
		0xE90: "RSBE",
		0xE98: "01",
	})

	id, err := NewExtractor(fs).Extract("/games/channel.wad", KindWAD)
	require.NoError(t, err)
	assert.Equal(t, ID6("RSBE01"), id)
}

func TestExtractor_PackageGapIgnored(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	// bytes between the two windows are not part of the code
	writeImage(t, fs, "/games/channel.wad", 0x1000, map[int64]string{
		0xE90: "HAXA",
		0xE94: "zz!!",
		0xE98: "01",
	})

	id, err := NewExtractor(fs).Extract("/games/channel.wad", KindWAD)
	require.NoError(t, err)
	assert.Equal(t, ID6("HAXA01"), id)
}

func TestExtractor_InvalidBytesNotFound(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeImage(t, fs, "/games/notagame.iso", 0x100, map[int64]string{0: "rsbe01"})

	id, err := NewExtractor(fs).Extract("/games/notagame.iso", KindISO)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, id)
}

func TestExtractor_ShortFileNotFound(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeImage(t, fs, "/games/tiny.wbfs", 0x203, map[int64]string{0x200: "RSB"})

	_, err := NewExtractor(fs).Extract("/games/tiny.wbfs", KindWBFS)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestExtractor_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewExtractor(afero.NewMemMapFs()).Extract("/nope.iso", KindISO)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "failed to open image")
}

func TestExtractor_ExternalKindHasNoLayout(t *testing.T) {
	t.Parallel()

	_, err := NewExtractor(afero.NewMemMapFs()).Extract("/games/game.wdf", KindExternal)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestKindForPath(t *testing.T) {
	t.Parallel()

	kind, ok := KindForPath("/games/Super Smash Bros. Brawl.RVZ")
	require.True(t, ok)
	assert.Equal(t, KindRVZ, kind)

	kind, ok = KindForPath("C:/games/game.wdf")
	require.True(t, ok)
	assert.Equal(t, KindExternal, kind)

	_, ok = KindForPath("/games/readme.txt")
	assert.False(t, ok)
}

func TestLayout_Size(t *testing.T) {
	t.Parallel()

	for kind, layout := range layouts {
		if layout.Family == FamilyExternal {
			assert.Zero(t, layout.Size(), kind)
			continue
		}
		assert.Equal(t, ID6Length, layout.Size(), kind)
	}
}
