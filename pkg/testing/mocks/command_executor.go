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

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/helpers/command"
	"github.com/stretchr/testify/mock"
)

// MockCommandExecutor is a testify mock for command.Executor.
// It allows testing code that runs helper processes without actually running them.
type MockCommandExecutor struct {
	mock.Mock
}

// Capture mocks running a command to completion.
//
// Example:
//
//	mockCmd := &MockCommandExecutor{}
//	mockCmd.On("Capture", mock.Anything, mock.Anything, "/usr/bin/wit", []string{"id6", "/g.wdf"}).
//		Return(command.Result{Stdout: []byte("RSBE01\n")}, nil)
func (m *MockCommandExecutor) Capture(
	ctx context.Context,
	opts command.Options,
	name string,
	args ...string,
) (command.Result, error) {
	called := m.Called(ctx, opts, name, args)
	res, _ := called.Get(0).(command.Result)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return res, called.Error(1)
}

// LookPath mocks executable resolution.
func (m *MockCommandExecutor) LookPath(file string) (string, error) {
	called := m.Called(file)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return called.String(0), called.Error(1)
}
