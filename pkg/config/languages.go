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

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/helpers/bimap"
	"golang.org/x/text/language"
)

const DefaultLanguage = "EN"

var ErrUnknownLanguage = errors.New("unknown language")

// Languages maps display names to the locale codes used by the catalog, in
// menu order.
var Languages = bimap.MustNew(
	bimap.Pair[string, string]{Left: "English", Right: "EN"},
	bimap.Pair[string, string]{Left: "German", Right: "DE"},
	bimap.Pair[string, string]{Left: "French", Right: "FR"},
	bimap.Pair[string, string]{Left: "Spanish", Right: "ES"},
	bimap.Pair[string, string]{Left: "Italian", Right: "IT"},
	bimap.Pair[string, string]{Left: "Dutch", Right: "NL"},
)

// NormalizeLanguage turns user input into an upper case two letter code.
// Display names from Languages are accepted as well as BCP 47 tags.
func NormalizeLanguage(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownLanguage)
	}

	for _, name := range Languages.Lefts() {
		if strings.EqualFold(name, s) {
			code, _ := Languages.Right(name)
			return code, nil
		}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownLanguage, s)
	}
	base, _ := tag.Base()
	return strings.ToUpper(base.String()), nil
}
