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

// Package metadata ties identity resolution, catalog lookup and cover
// retrieval together for one game image at a time.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/covers"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/gameid"
	"github.com/rs/zerolog/log"
)

type Field string

const (
	FieldCover       Field = "cover"
	FieldName        Field = "name"
	FieldDescription Field = "description"
)

// Settings are the user preferences a session reads. *config.Instance
// satisfies it.
type Settings interface {
	Language() string
	Cover() covers.Preference
}

type Provider struct {
	holder   *catalog.Holder
	resolver gameid.CodeSource
	fetcher  covers.Fetcher
	settings Settings
}

func NewProvider(
	holder *catalog.Holder,
	resolver gameid.CodeSource,
	fetcher covers.Fetcher,
	settings Settings,
) *Provider {
	return &Provider{
		holder:   holder,
		resolver: resolver,
		fetcher:  fetcher,
		settings: settings,
	}
}

// Open starts a session for the image at path. An image with no identity or
// no catalog entry gives a session with no fields rather than an error.
// The session holds a catalog lease until Close.
func (p *Provider) Open(ctx context.Context, path string) (*Session, error) {
	lease, err := p.holder.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	s := &Session{
		lease:    lease,
		fetcher:  p.fetcher,
		language: p.settings.Language(),
		pref:     p.settings.Cover(),
		path:     path,
	}

	log.Debug().Msgf("getting metadata for: %s", path)
	id, err := p.resolver.Resolve(ctx, path)
	switch {
	case errors.Is(err, gameid.ErrNotFound):
		log.Debug().Err(err).Msgf("no game identity for: %s", path)
		return s, nil
	case err != nil:
		s.Close()
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	s.id = id
	if rec, ok := lease.Catalog.Lookup(id.String()); ok {
		s.record = rec
	}
	return s, nil
}

// Session is the metadata of one image.
type Session struct {
	lease    *catalog.Lease
	fetcher  covers.Fetcher
	record   *catalog.Record
	id       gameid.ID6
	language string
	path     string
	pref     covers.Preference
	once     sync.Once
}

// ID returns the resolved identity code, empty if none was found.
func (s *Session) ID() gameid.ID6 {
	return s.id
}

// Record returns the matched catalog record, or nil.
func (s *Session) Record() *catalog.Record {
	return s.record
}

// AvailableFields lists what the session can provide in the configured
// language.
func (s *Session) AvailableFields() []Field {
	if s.record == nil {
		return nil
	}
	fields := []Field{FieldCover}
	if _, ok := s.Name(); ok {
		fields = append(fields, FieldName)
	}
	if _, ok := s.Description(); ok {
		fields = append(fields, FieldDescription)
	}
	return fields
}

func (s *Session) Name() (string, bool) {
	return catalog.Title(s.record, s.language)
}

func (s *Session) Description() (string, bool) {
	return catalog.Synopsis(s.record, s.language)
}

// File is downloaded artwork.
type File struct {
	Name string
	URL  string
	Data []byte
}

// Cover downloads the cover for the configured preference.
func (s *Session) Cover(ctx context.Context) (*File, error) {
	if s.record == nil {
		return nil, covers.ErrNotFound
	}

	res, err := covers.Get(ctx, s.fetcher, s.record, s.language, s.pref)
	if err != nil {
		return nil, err
	}

	return &File{
		Name: s.id.String() + ".png",
		URL:  res.URL,
		Data: res.Data,
	}, nil
}

// Close releases the catalog lease. It's safe to call more than once.
func (s *Session) Close() {
	s.once.Do(s.lease.Release)
}
