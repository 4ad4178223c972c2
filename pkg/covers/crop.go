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

package covers

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	// jpeg boxart decodes too
	_ "image/jpeg"

	"golang.org/x/image/draw"
)

// FrontCoverRatio is the share of a full boxart scan, measured from the
// right edge, taken up by the front cover.
const FrontCoverRatio = 483.0 / 1024.0

// CropFront keeps the front cover from full boxart and returns it as PNG.
func CropFront(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode boxart: %w", err)
	}

	b := src.Bounds()
	width := int(math.Round(float64(b.Dx()) * FrontCoverRatio))
	if width <= 0 {
		return nil, fmt.Errorf("boxart too narrow to crop: %dpx", b.Dx())
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, b.Dy()))
	srcRect := image.Rect(b.Max.X-width, b.Min.Y, b.Max.X, b.Max.Y)
	draw.Copy(dst, image.Point{}, src, srcRect, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode cover: %w", err)
	}
	return buf.Bytes(), nil
}
