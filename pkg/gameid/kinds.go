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
	"path/filepath"
	"strings"
)

// Kind identifies an on-disk container format.
type Kind string

const (
	KindISO      Kind = "iso"
	KindRVZ      Kind = "rvz"
	KindWBFS     Kind = "wbfs"
	KindCISO     Kind = "ciso"
	KindWAD      Kind = "wad"
	KindExternal Kind = "external"
)

// Family groups kinds by how their identity is obtained.
type Family int

const (
	// FamilyUnknown is returned for kinds with no recipe.
	FamilyUnknown Family = iota
	// FamilyOpticalDisc images carry the ID6 verbatim at a fixed offset.
	FamilyOpticalDisc
	// FamilyPackage images carry the game code and maker code in separate
	// fields of the title metadata.
	FamilyPackage
	// FamilyExternal images need the external helper to be inspected.
	FamilyExternal
)

func (f Family) String() string {
	switch f {
	case FamilyOpticalDisc:
		return "optical"
	case FamilyPackage:
		return "package"
	case FamilyExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Role describes what part of the identity a window holds.
type Role string

const (
	RoleID6       Role = "id6"
	RoleGameCode  Role = "game_code"
	RoleMakerCode Role = "maker_code"
)

// Window is a fixed byte range read from the start of an image.
type Window struct {
	Role   Role
	Offset int64
	Length int
}

// Layout is the extraction recipe for one container kind. Windows are
// concatenated in order to form the candidate code.
type Layout struct {
	Kind    Kind
	Family  Family
	Windows []Window
}

// Size returns the total number of bytes the layout produces.
func (l Layout) Size() int {
	n := 0
	for _, w := range l.Windows {
		n += w.Length
	}
	return n
}

// Offsets are empirical, taken from where each format stores its copy of the
// disc header or title metadata.
var layouts = map[Kind]Layout{
	KindISO: {
		Kind:    KindISO,
		Family:  FamilyOpticalDisc,
		Windows: []Window{{Role: RoleID6, Offset: 0x0, Length: ID6Length}},
	},
	KindRVZ: {
		Kind:    KindRVZ,
		Family:  FamilyOpticalDisc,
		Windows: []Window{{Role: RoleID6, Offset: 0x58, Length: ID6Length}},
	},
	KindWBFS: {
		Kind:    KindWBFS,
		Family:  FamilyOpticalDisc,
		Windows: []Window{{Role: RoleID6, Offset: 0x200, Length: ID6Length}},
	},
	KindCISO: {
		Kind:    KindCISO,
		Family:  FamilyOpticalDisc,
		Windows: []Window{{Role: RoleID6, Offset: 0x8000, Length: ID6Length}},
	},
	KindWAD: {
		Kind:   KindWAD,
		Family: FamilyPackage,
		Windows: []Window{
			// TMD title ID, low word
			{Role: RoleGameCode, Offset: 0xE90, Length: ShortIDLength},
			// TMD group ID
			{Role: RoleMakerCode, Offset: 0xE98, Length: ID6Length - ShortIDLength},
		},
	},
	KindExternal: {
		Kind:   KindExternal,
		Family: FamilyExternal,
	},
}

var extensions = map[string]Kind{
	".iso":  KindISO,
	".gcm":  KindISO,
	".rvz":  KindRVZ,
	".wia":  KindRVZ,
	".wbfs": KindWBFS,
	".ciso": KindCISO,
	".wad":  KindWAD,
	".wbi":  KindExternal,
	".wdf":  KindExternal,
	".gcz":  KindExternal,
	".fst":  KindExternal,
}

// LayoutFor returns the recipe for a kind.
func LayoutFor(kind Kind) (Layout, bool) {
	l, ok := layouts[kind]
	return l, ok
}

// KindForPath picks the container kind from a file extension.
func KindForPath(path string) (Kind, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	kind, ok := extensions[ext]
	return kind, ok
}

// IsSupported reports whether the path has an extension the resolver handles.
func IsSupported(path string) bool {
	_, ok := KindForPath(path)
	return ok
}

// Extensions returns all supported extensions.
func Extensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext := range extensions {
		exts = append(exts, ext)
	}
	return exts
}
