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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/covers"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(d catalog.Date) string {
	if d.IsZero() {
		return ""
	}
	parts := make([]string, 0, 3)
	if d.Year != nil {
		parts = append(parts, strconv.Itoa(*d.Year))
	}
	if d.Month != nil {
		parts = append(parts, fmt.Sprintf("%02d", *d.Month))
	}
	if d.Day != nil {
		parts = append(parts, fmt.Sprintf("%02d", *d.Day))
	}
	return strings.Join(parts, "-")
}

// printRecord renders the localized view of a catalog record.
func printRecord(out io.Writer, rec *catalog.Record, locale string, pref covers.Preference) {
	title, _ := catalog.Title(rec, locale)
	synopsis, _ := catalog.Synopsis(rec, locale)

	fields := [][2]string{
		{"ID", rec.ID},
		{"Title", title},
		{"Platform", deref(rec.Platform)},
		{"Region", deref(rec.Region)},
		{"Languages", strings.Join(rec.Languages, ", ")},
		{"Developer", deref(rec.Developer)},
		{"Publisher", deref(rec.Publisher)},
		{"Released", formatDate(rec.Date)},
		{"Genres", strings.Join(rec.Genres, ", ")},
	}
	if rec.Rating != nil {
		rating := strings.TrimSpace(deref(rec.Rating.Type) + " " + deref(rec.Rating.Value))
		fields = append(fields, [2]string{"Rating", rating})
	}
	if rec.Input != nil && rec.Input.Players != nil {
		fields = append(fields, [2]string{"Players", strconv.Itoa(*rec.Input.Players)})
	}
	fields = append(fields,
		[2]string{"Cover", covers.URL(rec, locale, pref.Kind())},
		[2]string{"Synopsis", truncate(synopsis, 200)},
	)

	renderFields(out, fields)
}

func truncate(s string, n int) string {
	r := []rune(strings.Join(strings.Fields(s), " "))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-3]) + "..."
}
