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

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCoverFetcher is a testify mock for covers.Fetcher.
type MockCoverFetcher struct {
	mock.Mock
}

// Fetch mocks a cover download. Return covers.ErrNotFound to make the
// fallback move on.
//
// Example:
//
//	f := &MockCoverFetcher{}
//	f.On("Fetch", mock.Anything, "https://art.gametdb.com/wii/cover/US/RSBE01.png").
//		Return([]byte("png"), nil)
func (m *MockCoverFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	called := m.Called(ctx, url)
	data, _ := called.Get(0).([]byte)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return data, called.Error(1)
}
