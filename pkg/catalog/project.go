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

package catalog

// EnglishLocale is the second fallback tier for localized text.
const EnglishLocale = "EN"

// Title returns the record title for locale, falling back to English and
// then to the first title in the document.
func Title(rec *Record, locale string) (string, bool) {
	if rec == nil {
		return "", false
	}
	return localized(rec.Titles, locale)
}

// Synopsis follows the same fallback as Title.
func Synopsis(rec *Record, locale string) (string, bool) {
	if rec == nil {
		return "", false
	}
	return localized(rec.Synopses, locale)
}

func localized(t LocalizedText, locale string) (string, bool) {
	if v, ok := t.Get(locale); ok {
		return v, true
	}
	if v, ok := t.Get(EnglishLocale); ok {
		return v, true
	}
	_, v, ok := t.First()
	return v, ok
}
