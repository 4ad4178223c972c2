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

// Package bimap provides an ordered, one-to-one mapping between display
// labels and codes.
package bimap

import (
	"errors"
	"fmt"
)

var ErrDuplicate = errors.New("duplicate bimap entry")

type Pair[L comparable, R comparable] struct {
	Left  L
	Right R
}

// BiMap keeps both directions of a mapping and remembers insertion order.
// It is immutable once built.
type BiMap[L comparable, R comparable] struct {
	forward map[L]R
	reverse map[R]L
	order   []Pair[L, R]
}

// New builds a BiMap from pairs. A left or right value appearing twice is
// an error since the mapping would no longer be invertible.
func New[L comparable, R comparable](pairs ...Pair[L, R]) (*BiMap[L, R], error) {
	m := &BiMap[L, R]{
		forward: make(map[L]R, len(pairs)),
		reverse: make(map[R]L, len(pairs)),
		order:   make([]Pair[L, R], 0, len(pairs)),
	}
	for _, p := range pairs {
		if _, ok := m.forward[p.Left]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, p.Left)
		}
		if _, ok := m.reverse[p.Right]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, p.Right)
		}
		m.forward[p.Left] = p.Right
		m.reverse[p.Right] = p.Left
		m.order = append(m.order, p)
	}
	return m, nil
}

// MustNew is New for package level tables.
func MustNew[L comparable, R comparable](pairs ...Pair[L, R]) *BiMap[L, R] {
	m, err := New(pairs...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *BiMap[L, R]) Right(left L) (R, bool) {
	r, ok := m.forward[left]
	return r, ok
}

func (m *BiMap[L, R]) Left(right R) (L, bool) {
	l, ok := m.reverse[right]
	return l, ok
}

func (m *BiMap[L, R]) Len() int {
	return len(m.order)
}

// Lefts returns left values in insertion order.
func (m *BiMap[L, R]) Lefts() []L {
	out := make([]L, len(m.order))
	for i, p := range m.order {
		out[i] = p.Left
	}
	return out
}

// Rights returns right values in insertion order.
func (m *BiMap[L, R]) Rights() []R {
	out := make([]R, len(m.order))
	for i, p := range m.order {
		out[i] = p.Right
	}
	return out
}

func (m *BiMap[L, R]) Pairs() []Pair[L, R] {
	out := make([]Pair[L, R], len(m.order))
	copy(out, m.order)
	return out
}
