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
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"pgregory.net/rapid"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func drawCode(t *rapid.T, label string) []byte {
	idx := rapid.SliceOfN(rapid.IntRange(0, len(codeAlphabet)-1), ID6Length, ID6Length).Draw(t, label)
	out := make([]byte, len(idx))
	for i, n := range idx {
		out[i] = codeAlphabet[n]
	}
	return out
}

// TestPropertyValidID6AcceptsAlphabet verifies every 6 byte code over A-Z0-9 is accepted.
func TestPropertyValidID6AcceptsAlphabet(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		code := drawCode(t, "code")
		if !ValidID6(code) {
			t.Fatalf("expected %q to be valid", code)
		}
	})
}

// TestPropertyValidID6RejectsForeignByte verifies a single byte outside
// A-Z0-9 anywhere in the code causes rejection.
func TestPropertyValidID6RejectsForeignByte(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		code := drawCode(t, "code")
		pos := rapid.IntRange(0, ID6Length-1).Draw(t, "pos")
		bad := rapid.Byte().Filter(func(b byte) bool {
			return bytes.IndexByte([]byte(codeAlphabet), b) < 0
		}).Draw(t, "bad")

		code[pos] = bad
		if ValidID6(code) {
			t.Fatalf("expected %q to be rejected", code)
		}
	})
}

// TestPropertyExtractIgnoresBytesOutsideWindow verifies the optical recipe
// only depends on the 6 bytes at its offset.
func TestPropertyExtractIgnoresBytesOutsideWindow(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		code := drawCode(t, "code")
		noise := rapid.SliceOfN(rapid.Byte(), 0x200, 0x200).Draw(t, "noise")

		img := make([]byte, len(noise))
		copy(img, noise)
		copy(img[0x58:], code)

		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, "/games/test.rvz", img, 0o600); err != nil {
			t.Fatalf("write image: %v", err)
		}

		id, err := NewExtractor(fs).Extract("/games/test.rvz", KindRVZ)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(id) != string(code) {
			t.Fatalf("got %q, want %q", id, code)
		}
	})
}
