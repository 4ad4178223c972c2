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

// Package catalog loads the GameTDB catalog document and resolves identity
// codes to game records.
package catalog

import (
	"errors"
	"fmt"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid"
	"github.com/rs/zerolog/log"
)

// ErrNoMatch means neither the full code nor its 4 character game code is in
// the catalog. It's an expected outcome.
var ErrNoMatch = errors.New("no catalog match")

// Catalog is an immutable, indexed set of records. It's safe for concurrent
// use once built.
type Catalog struct {
	records []Record
	// index holds the position of the first record with each id, so
	// duplicate ids resolve in document order
	index map[string]int
}

// New indexes records, keeping their order.
func New(records []Record) *Catalog {
	c := &Catalog{
		records: records,
		index:   make(map[string]int, len(records)),
	}
	dupes := 0
	for i := range records {
		id := records[i].ID
		if _, ok := c.index[id]; ok {
			dupes++
			continue
		}
		c.index[id] = i
	}
	if dupes > 0 {
		log.Debug().Msgf("catalog has %d records with duplicate ids", dupes)
	}
	return c
}

// Lookup finds the record for code. A record whose id equals code wins;
// otherwise a record whose id equals the first 4 characters of code.
func (c *Catalog) Lookup(code string) (*Record, bool) {
	if c == nil || code == "" {
		return nil, false
	}

	if i, ok := c.index[code]; ok {
		return &c.records[i], true
	}

	if len(code) > gameid.ShortIDLength {
		if i, ok := c.index[code[:gameid.ShortIDLength]]; ok {
			log.Debug().Msgf("matched %s by game code %s", code, c.records[i].ID)
			return &c.records[i], true
		}
	}

	log.Debug().Msgf("no catalog match for code: %s", code)
	return nil, false
}

// Find is Lookup for an ID6, returning ErrNoMatch on a miss.
func (c *Catalog) Find(id gameid.ID6) (*Record, error) {
	rec, ok := c.Lookup(id.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, id)
	}
	return rec, nil
}

// Len returns the number of records, duplicates included.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Records returns all records in document order. The slice must not be
// modified.
func (c *Catalog) Records() []Record {
	if c == nil {
		return nil
	}
	return c.records
}
