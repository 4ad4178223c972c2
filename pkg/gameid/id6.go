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

// Package gameid extracts the six character GameTDB identity code (ID6) from
// disc and channel images.
package gameid

import (
	"errors"
	"fmt"
)

// ID6Length is the size of a full identity code: 4 byte game code followed
// by a 2 byte region/maker code.
const ID6Length = 6

// ShortIDLength is the size of the game code portion of an ID6. Some catalog
// entries (mostly channels) are keyed by this shortened code.
const ShortIDLength = 4

var (
	// ErrNotFound means no valid identity code could be determined. This is an
	// expected outcome for non-game files and is never fatal.
	ErrNotFound = errors.New("no game identity found")

	// ErrUnsupported is returned for file extensions with no known recipe.
	ErrUnsupported = fmt.Errorf("%w: unsupported container", ErrNotFound)
)

// ID6 is a validated identity code. The zero value is not a valid code.
type ID6 string

// ParseID6 validates raw bytes as an identity code.
func ParseID6(b []byte) (ID6, bool) {
	if !ValidID6(b) {
		return "", false
	}
	return ID6(b), true
}

// ParseID6String validates a string as an identity code. Surrounding
// whitespace is not trimmed here, callers decide how lenient to be.
func ParseID6String(s string) (ID6, bool) {
	return ParseID6([]byte(s))
}

// ValidID6 reports whether b is exactly six bytes of A-Z or 0-9.
func ValidID6(b []byte) bool {
	if len(b) != ID6Length {
		return false
	}
	for _, c := range b {
		if !isCodeByte(c) {
			return false
		}
	}
	return true
}

func isCodeByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (id ID6) String() string {
	return string(id)
}

// Short returns the 4 character game code without the region/maker suffix.
func (id ID6) Short() string {
	if len(id) < ShortIDLength {
		return string(id)
	}
	return string(id[:ShortIDLength])
}

// Maker returns the 2 character region/maker suffix.
func (id ID6) Maker() string {
	if len(id) < ID6Length {
		return ""
	}
	return string(id[ShortIDLength:])
}
