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
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Extractor reads identity codes from fixed offsets of image files.
type Extractor struct {
	fs afero.Fs
}

func NewExtractor(fs afero.Fs) *Extractor {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Extractor{fs: fs}
}

// Extract reads the layout windows for kind from path and validates the
// result. ErrNotFound is returned for short files and invalid bytes; other
// errors are I/O failures.
func (e *Extractor) Extract(path string, kind Kind) (ID6, error) {
	layout, ok := LayoutFor(kind)
	if !ok || len(layout.Windows) == 0 {
		return "", fmt.Errorf("%w: no fixed layout for %q", ErrUnsupported, kind)
	}

	f, err := e.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msgf("error closing image: %s", path)
		}
	}()

	candidate, err := readWindows(f, layout.Windows)
	if err != nil {
		return "", err
	}

	id, ok := ParseID6(candidate)
	if !ok {
		log.Debug().
			Str("path", path).
			Str("kind", string(kind)).
			Hex("candidate", candidate).
			Msg("candidate code failed validation")
		return "", ErrNotFound
	}

	return id, nil
}

func readWindows(r io.ReaderAt, windows []Window) ([]byte, error) {
	out := make([]byte, 0, ID6Length)
	for _, w := range windows {
		buf := make([]byte, w.Length)
		n, err := r.ReadAt(buf, w.Offset)
		if errors.Is(err, io.EOF) || (err == nil && n < w.Length) {
			// image is too short to contain the window
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s at 0x%x: %w", w.Role, w.Offset, err)
		}
		out = append(out, buf...)
	}
	return out, nil
}
