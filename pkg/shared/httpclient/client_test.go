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

package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(r.Header.Get("User-Agent")))
		case "/missing":
			http.NotFound(w, r)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClientWithTimeout(5 * time.Second)

	t.Run("ok", func(t *testing.T) {
		data, err := c.Fetch(context.Background(), srv.URL+"/ok")
		require.NoError(t, err)
		assert.Equal(t, DefaultUserAgent, string(data))
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := c.Fetch(context.Background(), srv.URL+"/missing")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("server_error", func(t *testing.T) {
		_, err := c.Fetch(context.Background(), srv.URL+"/boom")
		require.Error(t, err)
		assert.False(t, IsNotFound(err))

		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	})
}

func TestIsNotFound_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", &StatusError{URL: "x", StatusCode: http.StatusNotFound})
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(nil))
}

func TestClient_DownloadFile(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/file" {
			_, _ = w.Write([]byte("payload"))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewClient()

	t.Run("temp_then_rename", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		err := c.DownloadFile(context.Background(), DownloadFileArgs{
			Fs:         fs,
			URL:        srv.URL + "/file",
			OutputPath: "/data/out.bin",
			TempPath:   "/data/out.bin.tmp",
		})
		require.NoError(t, err)

		data, err := afero.ReadFile(fs, "/data/out.bin")
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))

		exists, err := afero.Exists(fs, "/data/out.bin.tmp")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("bad_status_writes_nothing", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		err := c.DownloadFile(context.Background(), DownloadFileArgs{
			Fs:         fs,
			URL:        srv.URL + "/nope",
			OutputPath: "/data/out.bin",
		})
		require.Error(t, err)
		assert.True(t, IsNotFound(err))

		exists, err := afero.Exists(fs, "/data/out.bin")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
