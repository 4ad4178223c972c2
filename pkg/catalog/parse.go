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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// xml shapes mirror the catalog document; they're converted into Record
// straight away so the rest of the package never sees raw attributes.
type xmlGame struct {
	ID        string      `xml:"id"`
	Type      *string     `xml:"type"`
	Region    *string     `xml:"region"`
	Languages *string     `xml:"languages"`
	Locales   []xmlLocale `xml:"locale"`
	Developer *string     `xml:"developer"`
	Publisher *string     `xml:"publisher"`
	Dates     []xmlDate   `xml:"date"`
	Genre     *string     `xml:"genre"`
	Rating    *xmlRating  `xml:"rating"`
	Input     *xmlInput   `xml:"input"`
	WiFi      *xmlWiFi    `xml:"wi-fi"`
	Save      *xmlSave    `xml:"save"`
	ROMs      []xmlROM    `xml:"rom"`
}

type xmlLocale struct {
	Lang     string  `xml:"lang,attr"`
	Title    *string `xml:"title"`
	Synopsis *string `xml:"synopsis"`
}

type xmlDate struct {
	Year  *string `xml:"year,attr"`
	Month *string `xml:"month,attr"`
	Day   *string `xml:"day,attr"`
}

type xmlRating struct {
	Type        *string  `xml:"type,attr"`
	Value       *string  `xml:"value,attr"`
	Descriptors []string `xml:"descriptor"`
}

type xmlInput struct {
	Players  *string      `xml:"players,attr"`
	Controls []xmlControl `xml:"control"`
}

type xmlControl struct {
	Type     string `xml:"type,attr"`
	Required string `xml:"required,attr"`
}

type xmlWiFi struct {
	Players  *string  `xml:"players,attr"`
	Features []string `xml:"feature"`
}

type xmlSave struct {
	Blocks *string `xml:"blocks,attr"`
}

type xmlROM struct {
	Version *string `xml:"version,attr"`
	Size    *string `xml:"size,attr"`
	Name    *string `xml:"name,attr"`
	CRC     *string `xml:"crc,attr"`
	MD5     *string `xml:"md5,attr"`
	SHA1    *string `xml:"sha1,attr"`
}

// Parse streams a catalog document and builds a Catalog from every game
// element found, at any depth. Malformed fields are left absent; only a
// document that can't be tokenised is an error.
func Parse(r io.Reader) (*Catalog, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var records []Record
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog document: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "game" {
			continue
		}

		var g xmlGame
		if err := dec.DecodeElement(&g, &start); err != nil {
			return nil, fmt.Errorf("failed to decode game element: %w", err)
		}
		records = append(records, g.record())
	}

	log.Debug().Msgf("parsed %d catalog records", len(records))
	return New(records), nil
}

// LoadFile parses the catalog document at path.
func LoadFile(fs afero.Fs, path string) (*Catalog, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msgf("error closing catalog: %s", path)
		}
	}()
	return Parse(f)
}

func (g *xmlGame) record() Record {
	rec := Record{
		ID:        strings.TrimSpace(g.ID),
		Platform:  trimmed(g.Type),
		Region:    trimmed(g.Region),
		Developer: trimmed(g.Developer),
		Publisher: trimmed(g.Publisher),
	}

	if g.Languages != nil {
		rec.Languages = splitList(*g.Languages)
	}
	if g.Genre != nil {
		rec.Genres = splitList(*g.Genre)
	}

	for _, l := range g.Locales {
		if l.Title != nil {
			rec.Titles.Set(l.Lang, *l.Title)
		}
		if l.Synopsis != nil {
			rec.Synopses.Set(l.Lang, *l.Synopsis)
		}
	}

	if len(g.Dates) > 0 {
		d := g.Dates[0]
		rec.Date = Date{
			Year:  parseInt(d.Year),
			Month: parseInt(d.Month),
			Day:   parseInt(d.Day),
		}
	}

	if g.Rating != nil {
		rec.Rating = &Rating{
			Type:  g.Rating.Type,
			Value: g.Rating.Value,
		}
		if len(g.Rating.Descriptors) > 0 {
			desc := g.Rating.Descriptors[0]
			rec.Rating.Descriptor = &desc
		}
	}

	if g.Input != nil {
		in := &Input{Players: parseInt(g.Input.Players)}
		for _, c := range g.Input.Controls {
			if c.Type == "" {
				continue
			}
			if strings.EqualFold(c.Required, "true") {
				in.Required = append(in.Required, c.Type)
			} else {
				in.Optional = append(in.Optional, c.Type)
			}
		}
		rec.Input = in
	}

	if g.WiFi != nil {
		rec.Online = &Online{
			Players:  parseInt(g.WiFi.Players),
			Features: g.WiFi.Features,
		}
	}

	if g.Save != nil {
		rec.Save = &Save{Blocks: parseInt(g.Save.Blocks)}
	}

	if len(g.ROMs) > 0 {
		r := g.ROMs[0]
		rec.ROM = &ROM{
			Version: r.Version,
			Size:    parseUint(r.Size),
			Name:    r.Name,
			CRC:     r.CRC,
			MD5:     r.MD5,
			SHA1:    r.SHA1,
		}
	}

	return rec
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseInt(s *string) *int {
	if s == nil {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	return &v
}

func parseUint(s *string) *uint64 {
	if s == nil {
		return nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(*s), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
