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
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
)

// LoadFunc builds a catalog, usually by reading it from a Store.
type LoadFunc func(ctx context.Context) (*Catalog, error)

// Holder owns the shared catalog. The first Acquire loads it, later ones
// reuse it, and the last Release drops it.
//
// The load, the reference count and the clear on last release all happen
// under one lock, so a catalog is never cleared while a lease is counted.
// A lease keeps its own pointer: if every lease is released and a new
// Acquire races in right after, it triggers a fresh load while nothing else
// is holding the old catalog. Callers may see a reloaded catalog but never a
// half built one.
type Holder struct {
	load  LoadFunc
	cat   *Catalog
	refs  int
	loads int
	mu    syncutil.Mutex
}

func NewHolder(load LoadFunc) *Holder {
	return &Holder{load: load}
}

// Lease is one acquisition of the catalog.
type Lease struct {
	Catalog *Catalog
	holder  *Holder
	once    sync.Once
}

// Release gives the lease back. Calling it more than once is a no-op.
func (l *Lease) Release() {
	if l == nil {
		return
	}
	l.once.Do(l.holder.release)
}

// Acquire returns a lease on the catalog, loading it if nothing holds it.
// Concurrent callers block until a single load completes. A failed load
// leaves the holder empty and is retried by the next Acquire.
func (h *Holder) Acquire(ctx context.Context) (*Lease, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cat == nil {
		if h.load == nil {
			return nil, errors.New("catalog holder has no loader")
		}
		log.Debug().Msg("loading catalog")
		cat, err := h.load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		h.cat = cat
		h.loads++
		log.Info().Msgf("catalog loaded with %d records", cat.Len())
	}

	h.refs++
	return &Lease{Catalog: h.cat, holder: h}, nil
}

func (h *Holder) release() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.refs == 0 {
		log.Warn().Msg("catalog released more times than acquired")
		return
	}

	h.refs--
	if h.refs == 0 {
		log.Debug().Msg("last catalog lease released, dropping catalog")
		h.cat = nil
	}
}

// Refs returns the number of outstanding leases.
func (h *Holder) Refs() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.refs
}

// Loaded reports whether a catalog is currently held.
func (h *Holder) Loaded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cat != nil
}

// Loads returns how many times the loader has succeeded.
func (h *Holder) Loads() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loads
}
