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

package gameid

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// CodeSource produces an identity code for an image path by some means other
// than a fixed-offset read.
type CodeSource interface {
	Resolve(ctx context.Context, path string) (ID6, error)
}

// Resolver picks the right strategy for an image based on its extension.
type Resolver struct {
	extractor *Extractor
	external  CodeSource
	fallback  CodeSource
}

type ResolverOption func(*Resolver)

// WithExternal sets the helper used for kinds without a fixed layout.
func WithExternal(src CodeSource) ResolverOption {
	return func(r *Resolver) {
		r.external = src
	}
}

// WithFallback sets a source tried when a fixed-offset read of an RVZ or WAD
// image comes back empty.
func WithFallback(src CodeSource) ResolverOption {
	return func(r *Resolver) {
		r.fallback = src
	}
}

func NewResolver(extractor *Extractor, opts ...ResolverOption) *Resolver {
	r := &Resolver{extractor: extractor}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the identity code for path. Any error wrapping ErrNotFound
// is an expected outcome; everything else should be reported.
func (r *Resolver) Resolve(ctx context.Context, path string) (ID6, error) {
	kind, ok := KindForPath(path)
	if !ok {
		log.Warn().Msgf("unsupported image extension: %s", filepath.Ext(path))
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
	}

	layout, _ := LayoutFor(kind)
	log.Debug().
		Str("path", path).
		Str("kind", string(kind)).
		Str("family", layout.Family.String()).
		Msg("resolving game identity")

	if layout.Family == FamilyExternal {
		if r.external == nil {
			return "", fmt.Errorf("%w: no external helper configured", ErrUnsupported)
		}
		return r.external.Resolve(ctx, path)
	}

	id, err := r.extractor.Extract(path, kind)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	if r.fallback != nil && (kind == KindRVZ || kind == KindWAD) {
		log.Debug().Msgf("fixed offset read found no identity, trying fallback: %s", path)
		return r.fallback.Resolve(ctx, path)
	}

	return "", err
}
