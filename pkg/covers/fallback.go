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
	"context"
	"errors"
	"fmt"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/catalog"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned by a Fetcher when there's no asset at a URL, and
// by Find when no candidate had one.
var ErrNotFound = errors.New("cover not found")

// Fetcher retrieves cover art. It must return an error wrapping ErrNotFound
// for a missing asset; any other error stops the search.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Candidate is one (locale, kind) pair to try.
type Candidate struct {
	Locale string
	Kind   Kind
	// Requested is false when the kind differs from the preferred one.
	Requested bool
}

// Candidates lists the (locale, kind) pairs to try in order: the locale,
// English, Australian, the plain cover in the locale, then every language
// the record lists. Pairs may repeat; a repeat costs one extra request.
func Candidates(rec *catalog.Record, locale string, preferred Kind) []Candidate {
	out := []Candidate{{Locale: locale, Kind: preferred, Requested: true}}
	if locale != "EN" {
		out = append(out, Candidate{Locale: "EN", Kind: preferred, Requested: true})
	}
	if locale != "AU" {
		out = append(out, Candidate{Locale: "AU", Kind: preferred, Requested: true})
	}
	if preferred != KindCover {
		out = append(out, Candidate{Locale: locale, Kind: KindCover, Requested: false})
	}
	if rec != nil {
		for _, lang := range rec.Languages {
			out = append(out, Candidate{Locale: lang, Kind: preferred, Requested: true})
		}
	}
	return out
}

// Result is the cover that was found.
type Result struct {
	URL  string
	Data []byte
	Candidate
}

// Find fetches the first cover that exists for rec, following Candidates.
// A not-found response moves on to the next candidate; any other error is
// returned as is, without trying the rest.
func Find(ctx context.Context, f Fetcher, rec *catalog.Record, locale string, pref Preference) (*Result, error) {
	if rec == nil {
		return nil, ErrNotFound
	}

	for _, c := range Candidates(rec, locale, pref.Kind()) {
		url := URL(rec, c.Locale, c.Kind)
		data, err := f.Fetch(ctx, url)
		if errors.Is(err, ErrNotFound) {
			log.Debug().Msgf("no cover at: %s", url)
			continue
		}
		if err != nil {
			log.Warn().Err(err).Msgf("cover fetch failed: %s", url)
			return nil, err
		}

		log.Debug().Msgf("found cover: %s", url)
		return &Result{URL: url, Data: data, Candidate: c}, nil
	}

	log.Debug().Msgf("no cover found for: %s", rec.ID)
	return nil, fmt.Errorf("%w: %s", ErrNotFound, rec.ID)
}

// Get runs Find and applies the front cover crop when the preference asks
// for it and the cover is in the requested kind. A crop failure falls back
// to the uncropped image.
func Get(ctx context.Context, f Fetcher, rec *catalog.Record, locale string, pref Preference) (*Result, error) {
	res, err := Find(ctx, f, rec, locale, pref)
	if err != nil {
		return nil, err
	}

	if pref.Cropped() && res.Requested {
		cropped, cropErr := CropFront(res.Data)
		if cropErr != nil {
			log.Error().Err(cropErr).Msgf("could not crop cover for: %s", rec.ID)
			return res, nil
		}
		res.Data = cropped
	}

	return res, nil
}
