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

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
)

// MinSimilarity is the Jaro-Winkler score a title needs to count as a fuzzy
// match.
const MinSimilarity float32 = 0.8

// SearchResult is a record matched by title.
type SearchResult struct {
	Record *Record
	Title  string
	Score  float32
}

// Search finds records by title in the given locale (with the usual
// fallback). Titles containing the query score 1 and come first; the rest
// are ranked by Jaro-Winkler similarity. Ties keep document order. A limit
// of zero or less returns every match.
func (c *Catalog) Search(query, locale string, limit int) []SearchResult {
	fold := cases.Fold()
	q := strings.TrimSpace(fold.String(query))
	if c == nil || q == "" {
		return nil
	}

	var results []SearchResult
	for i := range c.records {
		rec := &c.records[i]
		title, ok := Title(rec, locale)
		if !ok {
			continue
		}
		t := fold.String(title)

		var score float32
		if strings.Contains(t, q) {
			score = 1
		} else {
			score = edlib.JaroWinklerSimilarity(q, t)
			if score < MinSimilarity {
				continue
			}
			log.Debug().
				Str("query", query).
				Str("title", title).
				Float32("similarity", score).
				Msg("fuzzy title match")
		}

		results = append(results, SearchResult{Record: rec, Title: title, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
