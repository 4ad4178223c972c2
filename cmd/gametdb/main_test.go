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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `<datafile>
<game><id>RSBE01</id><region>NTSC-U</region><languages>EN,FR</languages>
<locale lang="EN"><title>Super Smash Bros. Brawl</title><synopsis>Fight.</synopsis></locale>
<locale lang="FR"><title>Super Smash Bros. Brawl FR</title></locale>
<developer>SORA</developer></game>
<game><id>HABA</id><region>PAL</region><locale lang="DE"><title>Wii-Shop-Kanal</title></locale></game>
<game><id>RMCP01</id><region>PAL</region><locale lang="EN"><title>Mario Kart Wii</title></locale></game>
</datafile>`

const testConfig = `config_schema = 1
language = "EN"
cover = "cover"

[catalog]
url = "http://127.0.0.1:1/wiitdb.zip"
max_age_days = 0
`

type cliEnv struct {
	configPath string
	dataDir    string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	root := t.TempDir()
	env := &cliEnv{
		configPath: filepath.Join(root, "config", "gametdb.toml"),
		dataDir:    filepath.Join(root, "data"),
	}
	writeTestFile(t, env.configPath, []byte(testConfig))
	writeTestFile(t, filepath.Join(env.dataDir, "wiitdb.xml"), []byte(testDocument))
	return env
}

func writeTestFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func (e *cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--config", e.configPath, "--data-dir", e.dataDir}, args...)
	err := run(context.Background(), full, &out, &errOut)
	return out.String(), err
}

func TestLookup(t *testing.T) {
	env := newCLIEnv(t)

	t.Run("exact_id", func(t *testing.T) {
		out, err := env.run(t, "lookup", "rsbe01")
		require.NoError(t, err)
		assert.Contains(t, out, "Super Smash Bros. Brawl")
		assert.Contains(t, out, "SORA")
		assert.Contains(t, out, "https://art.gametdb.com/wii/cover/US/RSBE01.png")
	})

	t.Run("language_flag", func(t *testing.T) {
		out, err := env.run(t, "--language", "French", "lookup", "RSBE01")
		require.NoError(t, err)
		assert.Contains(t, out, "Super Smash Bros. Brawl FR")
	})

	t.Run("short_id_fallback", func(t *testing.T) {
		out, err := env.run(t, "lookup", "HABAEB")
		require.NoError(t, err)
		assert.Contains(t, out, "Wii-Shop-Kanal")
	})

	t.Run("invalid_id", func(t *testing.T) {
		_, err := env.run(t, "lookup", "bad")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid game ID")
	})

	t.Run("unknown_id", func(t *testing.T) {
		_, err := env.run(t, "lookup", "ZZZZ99")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not in catalog")
	})
}

func TestSearch(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "search", "mario", "kart")
	require.NoError(t, err)
	assert.Contains(t, out, "RMCP01")
	assert.NotContains(t, out, "RSBE01")

	out, err = env.run(t, "search", "zzzzzz")
	require.NoError(t, err)
	assert.Contains(t, out, "no matches")
}

func TestIdentify(t *testing.T) {
	env := newCLIEnv(t)
	images := t.TempDir()

	iso := filepath.Join(images, "brawl.iso")
	writeTestFile(t, iso, append([]byte("RSBE01"), make([]byte, 64)...))

	out, err := env.run(t, "identify", iso)
	require.NoError(t, err)
	assert.Contains(t, out, "RSBE01")
	assert.Contains(t, out, "Super Smash Bros. Brawl")

	junk := filepath.Join(images, "junk.iso")
	writeTestFile(t, junk, []byte("not a game at all"))
	_, err = env.run(t, "identify", junk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no game ID found")

	_, err = env.run(t, "identify", filepath.Join(images, "missing.iso"))
	require.Error(t, err)
}

func TestScan(t *testing.T) {
	env := newCLIEnv(t)
	images := t.TempDir()
	writeTestFile(t, filepath.Join(images, "a", "brawl.iso"), append([]byte("RSBE01"), make([]byte, 64)...))
	writeTestFile(t, filepath.Join(images, "b", "unknown.iso"), append([]byte("ZZZZ99"), make([]byte, 64)...))
	writeTestFile(t, filepath.Join(images, "b", "readme.txt"), []byte("ignored"))

	out, err := env.run(t, "scan", images)
	require.NoError(t, err)
	assert.Contains(t, out, "brawl.iso")
	assert.Contains(t, out, "matched")
	assert.Contains(t, out, "no_match")
	assert.NotContains(t, out, "readme.txt")

	csvPath := filepath.Join(t.TempDir(), "scan.csv")
	_, err = env.run(t, "scan", "--csv", csvPath, images)
	require.NoError(t, err)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "path,id6,title"))
}

func TestCatalogInfo(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "catalog", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "wiitdb.xml")
	assert.Contains(t, out, "Games")
	assert.Contains(t, out, "3")
}

func TestCatalogUpdate_DownloadFails(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run(t, "catalog", "update")
	require.Error(t, err)

	// existing copy is untouched
	data, err := os.ReadFile(filepath.Join(env.dataDir, "wiitdb.xml"))
	require.NoError(t, err)
	assert.Equal(t, testDocument, string(data))
}

func TestConfigSet(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run(t, "config", "set", "cover", "Disc Label")
	require.NoError(t, err)

	out, err := env.run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "disc (Disc Label)")

	_, err = env.run(t, "config", "set", "language", "klingon")
	require.Error(t, err)

	_, err = env.run(t, "config", "set", "nope", "1")
	require.Error(t, err)
}

func TestCoverRejectsBadArgument(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run(t, "cover", "not-an-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an image file or game ID")
}
