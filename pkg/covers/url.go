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
	"fmt"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/catalog"
)

// BaseURL is the root of the GameTDB art server for Wii and GameCube titles.
const BaseURL = "https://art.gametdb.com/wii"

// DefaultRegion is used for region values with no dedicated art folder.
const DefaultRegion = "EN"

// RegionCode picks the art folder for a record. PAL releases are split by
// language, so the requested locale is used when the record has it.
func RegionCode(rec *catalog.Record, locale string) string {
	if rec == nil || rec.Region == nil {
		return DefaultRegion
	}

	switch *rec.Region {
	case "NTSC-J":
		return "JA"
	case "NTSC-U":
		return "US"
	case "NTSC-K":
		return "KO"
	case "PAL":
		if rec.HasLanguage(locale) {
			return locale
		}
		if rec.HasLanguage(catalog.EnglishLocale) {
			return catalog.EnglishLocale
		}
		if len(rec.Languages) > 0 {
			return rec.Languages[0]
		}
		return DefaultRegion
	default:
		return DefaultRegion
	}
}

// URL returns the cover art location for a record. It does no I/O.
func URL(rec *catalog.Record, locale string, kind Kind) string {
	return fmt.Sprintf("%s/%s/%s/%s.png", BaseURL, kind, RegionCode(rec, locale), rec.ID)
}
