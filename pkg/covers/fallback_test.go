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
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/shared/httpclient"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	t.Parallel()

	rec := record("RSBP01", "PAL", "FR", "DE")

	t.Run("full_sequence", func(t *testing.T) {
		t.Parallel()
		got := Candidates(rec, "IT", KindCoverFullHQ)
		assert.Equal(t, []Candidate{
			{Locale: "IT", Kind: KindCoverFullHQ, Requested: true},
			{Locale: "EN", Kind: KindCoverFullHQ, Requested: true},
			{Locale: "AU", Kind: KindCoverFullHQ, Requested: true},
			{Locale: "IT", Kind: KindCover, Requested: false},
			{Locale: "FR", Kind: KindCoverFullHQ, Requested: true},
			{Locale: "DE", Kind: KindCoverFullHQ, Requested: true},
		}, got)
	})

	t.Run("english_locale_skips_english_tier", func(t *testing.T) {
		t.Parallel()
		got := Candidates(rec, "EN", KindCover)
		assert.Equal(t, []Candidate{
			{Locale: "EN", Kind: KindCover, Requested: true},
			{Locale: "AU", Kind: KindCover, Requested: true},
			{Locale: "FR", Kind: KindCover, Requested: true},
			{Locale: "DE", Kind: KindCover, Requested: true},
		}, got)
	})

	t.Run("au_locale_skips_au_tier", func(t *testing.T) {
		t.Parallel()
		got := Candidates(record("X", ""), "AU", KindDisc)
		assert.Equal(t, []Candidate{
			{Locale: "AU", Kind: KindDisc, Requested: true},
			{Locale: "EN", Kind: KindDisc, Requested: true},
			{Locale: "AU", Kind: KindCover, Requested: false},
		}, got)
	})
}

func notFound() error {
	return errors.Join(ErrNotFound, errors.New("404"))
}

func TestFind_FirstHitWins(t *testing.T) {
	t.Parallel()

	rec := record("RSBE01", "NTSC-U", "EN")
	f := &mocks.MockCoverFetcher{}
	f.On("Fetch", mock.Anything, "https://art.gametdb.com/wii/coverfullHQ/US/RSBE01.png").
		Return([]byte("art"), nil).Once()

	res, err := Find(context.Background(), f, rec, "DE", PreferenceCroppedFullHQ)
	require.NoError(t, err)
	assert.Equal(t, []byte("art"), res.Data)
	assert.True(t, res.Requested)
	f.AssertExpectations(t)
	f.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestFind_NotFoundAdvances(t *testing.T) {
	t.Parallel()

	// PAL record so each locale maps to its own folder
	rec := record("RSBP01", "PAL", "DE", "EN", "AU", "FR")
	f := &mocks.MockCoverFetcher{}
	base := "https://art.gametdb.com/wii/"
	f.On("Fetch", mock.Anything, base+"coverfullHQ/DE/RSBP01.png").Return(nil, notFound()).Once()
	f.On("Fetch", mock.Anything, base+"coverfullHQ/EN/RSBP01.png").Return(nil, notFound()).Once()
	f.On("Fetch", mock.Anything, base+"coverfullHQ/AU/RSBP01.png").Return(nil, notFound()).Once()
	f.On("Fetch", mock.Anything, base+"cover/DE/RSBP01.png").Return([]byte("plain"), nil).Once()

	res, err := Find(context.Background(), f, rec, "DE", PreferenceCoverFullHQ)
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), res.Data)
	assert.False(t, res.Requested)
	assert.Equal(t, KindCover, res.Kind)
	f.AssertExpectations(t)
}

func TestFind_OtherErrorAborts(t *testing.T) {
	t.Parallel()

	rec := record("RSBP01", "PAL", "DE", "EN")
	boom := &httpclient.StatusError{URL: "x", StatusCode: 503}
	f := &mocks.MockCoverFetcher{}
	f.On("Fetch", mock.Anything, "https://art.gametdb.com/wii/cover3D/DE/RSBP01.png").
		Return(nil, notFound()).Once()
	f.On("Fetch", mock.Anything, "https://art.gametdb.com/wii/cover3D/EN/RSBP01.png").
		Return(nil, boom).Once()

	_, err := Find(context.Background(), f, rec, "DE", PreferenceCover3D)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
	f.AssertExpectations(t)
	f.AssertNumberOfCalls(t, "Fetch", 2)
}

func TestFind_Exhausted(t *testing.T) {
	t.Parallel()

	rec := record("RSBE01", "NTSC-U", "EN")
	f := &mocks.MockCoverFetcher{}
	f.On("Fetch", mock.Anything, mock.Anything).Return(nil, notFound())

	_, err := Find(context.Background(), f, rec, "EN", PreferenceCover)
	require.ErrorIs(t, err, ErrNotFound)
	// EN, AU, then the record's one language
	f.AssertNumberOfCalls(t, "Fetch", 3)
}

func TestFind_NilRecord(t *testing.T) {
	t.Parallel()

	_, err := Find(context.Background(), &mocks.MockCoverFetcher{}, nil, "EN", PreferenceCover)
	require.ErrorIs(t, err, ErrNotFound)
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeWidth(t *testing.T, data []byte) int {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx()
}

func TestGet_CropsRequestedKind(t *testing.T) {
	t.Parallel()

	rec := record("RSBE01", "NTSC-U", "EN")
	f := &mocks.MockCoverFetcher{}
	f.On("Fetch", mock.Anything, mock.Anything).Return(encodePNG(t, 1024, 680), nil).Once()

	res, err := Get(context.Background(), f, rec, "EN", PreferenceCroppedFullHQ)
	require.NoError(t, err)
	assert.Equal(t, 483, decodeWidth(t, res.Data))
}

func TestGet_PlainCoverFallbackIsNotCropped(t *testing.T) {
	t.Parallel()

	rec := record("RSBE01", "NTSC-U")
	full := encodePNG(t, 160, 224)
	f := &mocks.MockCoverFetcher{}
	f.On("Fetch", mock.Anything, "https://art.gametdb.com/wii/cover/US/RSBE01.png").Return(full, nil)
	f.On("Fetch", mock.Anything, mock.Anything).Return(nil, notFound())

	res, err := Get(context.Background(), f, rec, "EN", PreferenceCroppedFullHQ)
	require.NoError(t, err)
	assert.False(t, res.Requested)
	assert.Equal(t, full, res.Data)
}

func TestGet_UncroppedPreference(t *testing.T) {
	t.Parallel()

	rec := record("RSBE01", "NTSC-U")
	full := encodePNG(t, 1024, 680)
	f := &mocks.MockCoverFetcher{}
	f.On("Fetch", mock.Anything, mock.Anything).Return(full, nil).Once()

	res, err := Get(context.Background(), f, rec, "EN", PreferenceCoverFullHQ)
	require.NoError(t, err)
	assert.Equal(t, full, res.Data)
}

func TestGet_BadImageKeepsOriginal(t *testing.T) {
	t.Parallel()

	rec := record("RSBE01", "NTSC-U")
	f := &mocks.MockCoverFetcher{}
	f.On("Fetch", mock.Anything, mock.Anything).Return([]byte("not an image"), nil).Once()

	res, err := Get(context.Background(), f, rec, "EN", PreferenceCroppedFullHQ)
	require.NoError(t, err)
	assert.Equal(t, []byte("not an image"), res.Data)
}
