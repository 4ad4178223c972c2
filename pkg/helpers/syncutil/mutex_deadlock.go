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

//go:build deadlock

// Package syncutil holds the lock types shared by the catalog holder, the
// config instance and the scanner. This build checks lock ordering and
// hold times with go-deadlock.
package syncutil

import (
	"time"

	"github.com/rs/zerolog/log"
	deadlock "github.com/sasha-s/go-deadlock"
)

// Detecting reports whether lock checking is compiled in.
const Detecting = true

// HoldTimeout must cover a catalog download and parse, both of which run
// under the holder's lock on first acquire.
const HoldTimeout = 3 * time.Minute

func init() {
	deadlock.Opts.DeadlockTimeout = HoldTimeout
	deadlock.Opts.LogBuf = log.Logger
}

type Mutex struct {
	deadlock.Mutex
}

type RWMutex struct {
	deadlock.RWMutex
}
