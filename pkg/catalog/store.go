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
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/shared/httpclient"
	"github.com/gofrs/flock"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	DefaultURL    = "https://www.gametdb.com/wiitdb.zip"
	DefaultMaxAge = 7 * 24 * time.Hour
	DocumentName  = "wiitdb.xml"
	archiveName   = "wiitdb.zip"
	lockRetry     = 250 * time.Millisecond
)

// Store keeps a local copy of the catalog document, downloading the archive
// when it's missing or stale.
type Store struct {
	fs       afero.Fs
	client   *httpclient.Client
	clock    clockwork.Clock
	dir      string
	url      string
	lockPath string
	maxAge   time.Duration
}

type StoreOptions struct {
	Fs     afero.Fs
	Client *httpclient.Client
	Clock  clockwork.Clock
	// URL of the zip archive. Defaults to DefaultURL.
	URL string
	// LockPath is a real file used to serialise downloads between
	// processes. Defaults to a file next to the document; empty with a
	// non-OS filesystem disables locking.
	LockPath string
	// MaxAge of the local copy before it's refreshed. Zero means never
	// refresh an existing copy.
	MaxAge time.Duration
}

func NewStore(dir string, opts StoreOptions) *Store {
	s := &Store{
		fs:       opts.Fs,
		client:   opts.Client,
		clock:    opts.Clock,
		dir:      dir,
		url:      strings.TrimSpace(opts.URL),
		lockPath: opts.LockPath,
		maxAge:   opts.MaxAge,
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
		if s.lockPath == "" {
			s.lockPath = filepath.Join(dir, archiveName+".lock")
		}
	}
	if s.client == nil {
		s.client = httpclient.NewClientWithTimeout(5 * time.Minute)
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.url == "" {
		s.url = DefaultURL
	}
	return s
}

// DocumentPath is where the extracted catalog document lives.
func (s *Store) DocumentPath() string {
	return filepath.Join(s.dir, DocumentName)
}

// Info describes the local copy.
type Info struct {
	ModTime time.Time
	Path    string
	Age     time.Duration
	Size    int64
	Exists  bool
	Stale   bool
}

func (s *Store) Info() (Info, error) {
	info := Info{Path: s.DocumentPath()}
	fi, err := s.fs.Stat(info.Path)
	if errors.Is(err, os.ErrNotExist) {
		info.Stale = true
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("failed to stat catalog: %w", err)
	}
	info.Exists = true
	info.ModTime = fi.ModTime()
	info.Size = fi.Size()
	info.Age = s.clock.Since(fi.ModTime())
	info.Stale = s.maxAge > 0 && info.Age > s.maxAge
	return info, nil
}

// Path returns the local document path, downloading a fresh copy first when
// force is set or the local copy is missing or stale. A failed refresh of
// an existing copy is logged and the old copy is used.
func (s *Store) Path(ctx context.Context, force bool) (string, error) {
	info, err := s.Info()
	if err != nil {
		return "", err
	}
	if !force && !info.Stale {
		return info.Path, nil
	}

	if err := s.refresh(ctx); err != nil {
		if info.Exists && !force {
			log.Warn().Err(err).Msg("catalog refresh failed, using existing copy")
			return info.Path, nil
		}
		return "", err
	}
	return info.Path, nil
}

// Load returns the parsed catalog from the local copy, refreshing as Path
// does.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	path, err := s.Path(ctx, false)
	if err != nil {
		return nil, err
	}
	return LoadFile(s.fs, path)
}

func (s *Store) refresh(ctx context.Context) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.fs.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	archivePath := filepath.Join(s.dir, archiveName)
	log.Info().Msgf("downloading catalog: %s", s.url)
	err = s.client.DownloadFile(ctx, httpclient.DownloadFileArgs{
		Fs:         s.fs,
		URL:        s.url,
		OutputPath: archivePath,
		TempPath:   archivePath + ".tmp",
	})
	if err != nil {
		return fmt.Errorf("failed to download catalog: %w", err)
	}
	defer func() {
		if removeErr := s.fs.Remove(archivePath); removeErr != nil {
			log.Warn().Err(removeErr).Msgf("error removing catalog archive: %s", archivePath)
		}
	}()

	return s.extract(archivePath)
}

func (s *Store) extract(archivePath string) error {
	f, err := s.fs.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open catalog archive: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msgf("error closing catalog archive: %s", archivePath)
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat catalog archive: %w", err)
	}

	zr, err := zip.NewReader(f, fi.Size())
	if err != nil {
		return fmt.Errorf("failed to read catalog archive: %w", err)
	}

	var entry *zip.File
	for _, zf := range zr.File {
		if strings.EqualFold(filepath.Base(zf.Name), DocumentName) {
			entry = zf
			break
		}
	}
	if entry == nil {
		return fmt.Errorf("catalog archive missing %s", DocumentName)
	}

	rc, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s in archive: %w", entry.Name, err)
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing archive entry")
		}
	}()

	docPath := s.DocumentPath()
	tmpPath := docPath + ".tmp"
	out, err := s.fs.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create catalog temp file: %w", err)
	}
	written, err := io.Copy(out, rc)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if removeErr := s.fs.Remove(tmpPath); removeErr != nil {
			log.Warn().Err(removeErr).Msgf("error removing catalog temp file: %s", tmpPath)
		}
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	if err := s.fs.Rename(tmpPath, docPath); err != nil {
		return fmt.Errorf("failed to replace catalog: %w", err)
	}

	log.Info().Msgf("catalog updated: %s (%d bytes)", docPath, written)
	return nil
}

func (s *Store) lock(ctx context.Context) (func(), error) {
	if s.lockPath == "" {
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.lockPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	fl := flock.New(s.lockPath)
	locked, err := fl.TryLockContext(ctx, lockRetry)
	if err != nil {
		return nil, fmt.Errorf("failed to lock catalog: %w", err)
	}
	if !locked {
		return nil, errors.New("catalog is locked by another process")
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			log.Warn().Err(err).Msgf("error unlocking catalog: %s", s.lockPath)
		}
	}, nil
}
