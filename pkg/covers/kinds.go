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

// Package covers builds GameTDB cover art URLs and walks the fallback order
// used to find a cover that exists.
package covers

import (
	"strings"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/helpers/bimap"
)

// Kind is a cover art type as used in GameTDB URLs.
type Kind string

const (
	KindCover       Kind = "cover"
	KindCover3D     Kind = "cover3D"
	KindDisc        Kind = "disc"
	KindCoverFullHQ Kind = "coverfullHQ"
	KindCoverFull   Kind = "coverfull"
)

// CroppedPrefix marks a preference for boxart cropped down to the front
// cover after download.
const CroppedPrefix = "cropped_"

// Preference is a configured cover choice: a Kind, optionally cropped.
type Preference string

const (
	PreferenceCover         Preference = Preference(KindCover)
	PreferenceCover3D       Preference = Preference(KindCover3D)
	PreferenceDisc          Preference = Preference(KindDisc)
	PreferenceCoverFullHQ   Preference = Preference(KindCoverFullHQ)
	PreferenceCroppedFullHQ Preference = CroppedPrefix + Preference(KindCoverFullHQ)
	PreferenceCoverFull     Preference = Preference(KindCoverFull)

	DefaultPreference = PreferenceCroppedFullHQ
)

// Preferences maps display names to preference codes, in menu order.
var Preferences = bimap.MustNew(
	bimap.Pair[string, Preference]{Left: "Regular Cover (Small)", Right: PreferenceCover},
	bimap.Pair[string, Preference]{Left: "3D Cover (Small)", Right: PreferenceCover3D},
	bimap.Pair[string, Preference]{Left: "Disc Label", Right: PreferenceDisc},
	bimap.Pair[string, Preference]{Left: "HQ Boxart", Right: PreferenceCoverFullHQ},
	bimap.Pair[string, Preference]{Left: "HQ Boxart, cropped to cover only", Right: PreferenceCroppedFullHQ},
	bimap.Pair[string, Preference]{Left: "Full Boxart", Right: PreferenceCoverFull},
)

// Cropped reports whether the preference asks for a post-download crop.
func (p Preference) Cropped() bool {
	return strings.HasPrefix(string(p), CroppedPrefix)
}

// Kind returns the cover kind to download for the preference.
func (p Preference) Kind() Kind {
	return Kind(strings.TrimPrefix(string(p), CroppedPrefix))
}

// Valid reports whether p is one of the known preferences.
func (p Preference) Valid() bool {
	_, ok := Preferences.Left(p)
	return ok
}
