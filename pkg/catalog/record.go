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

// Record is one game entry of the catalog. Optional scalars are pointers so
// that a missing or unparsable attribute stays distinct from a parsed zero.
type Record struct {
	ID        string
	Platform  *string
	Region    *string
	Languages []string
	Titles    LocalizedText
	Synopses  LocalizedText
	Developer *string
	Publisher *string
	Date      Date
	Genres    []string
	Rating    *Rating
	Input     *Input
	Online    *Online
	Save      *Save
	ROM       *ROM
}

// HasLanguage reports whether code is in the record's language list.
func (r *Record) HasLanguage(code string) bool {
	for _, l := range r.Languages {
		if l == code {
			return true
		}
	}
	return false
}

// LocalizedText maps locale codes to text, remembering document order.
type LocalizedText struct {
	values map[string]string
	order  []string
}

// Set adds text for a locale. Only the first value for a locale is kept.
func (t *LocalizedText) Set(lang, text string) {
	if t.values == nil {
		t.values = make(map[string]string)
	}
	if _, ok := t.values[lang]; ok {
		return
	}
	t.values[lang] = text
	t.order = append(t.order, lang)
}

func (t LocalizedText) Get(lang string) (string, bool) {
	v, ok := t.values[lang]
	return v, ok
}

// First returns the entry that appeared first in the document.
func (t LocalizedText) First() (lang, text string, ok bool) {
	if len(t.order) == 0 {
		return "", "", false
	}
	lang = t.order[0]
	return lang, t.values[lang], true
}

// Langs returns the locale keys in document order.
func (t LocalizedText) Langs() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

func (t LocalizedText) Len() int {
	return len(t.order)
}

// Date is a release date where each part may be missing.
type Date struct {
	Year  *int
	Month *int
	Day   *int
}

func (d Date) IsZero() bool {
	return d.Year == nil && d.Month == nil && d.Day == nil
}

type Rating struct {
	Type       *string
	Value      *string
	Descriptor *string
}

type Input struct {
	Players  *int
	Required []string
	Optional []string
}

type Online struct {
	Players  *int
	Features []string
}

type Save struct {
	Blocks *int
}

type ROM struct {
	Version *string
	Size    *uint64
	Name    *string
	CRC     *string
	MD5     *string
	SHA1    *string
}
