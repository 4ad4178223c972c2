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
	"fmt"
	"time"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/shared/httpclient"
	"golang.org/x/time/rate"
)

const (
	// RequestsPerSecond caps requests to the art server. A fallback walk
	// can issue several requests for one cover.
	RequestsPerSecond = 4
	BurstSize         = 4
)

// HTTPFetcher downloads covers over HTTP.
type HTTPFetcher struct {
	Client  *httpclient.Client
	Limiter *rate.Limiter
}

func NewHTTPFetcher(client *httpclient.Client) *HTTPFetcher {
	if client == nil {
		client = httpclient.DefaultClient
	}
	return &HTTPFetcher{
		Client:  client,
		Limiter: rate.NewLimiter(rate.Every(time.Second/RequestsPerSecond), BurstSize),
	}
}

// Fetch implements Fetcher. 404 becomes ErrNotFound, other statuses are
// returned as *httpclient.StatusError. A nil Limiter disables throttling.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("cover request throttled: %w", err)
		}
	}

	data, err := f.Client.Fetch(ctx, url)
	if httpclient.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
