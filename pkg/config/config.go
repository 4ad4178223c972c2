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
	"os"
	"path/filepath"
	"time"

	"github.com/ZaparooProject/zaparoo-gametdb/pkg/catalog"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/covers"
	"github.com/ZaparooProject/zaparoo-gametdb/pkg/helpers/syncutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	CfgEnv        = "GAMETDB_CFG"
	CfgFile       = "gametdb.toml"
)

type Values struct {
	Language       string  `toml:"language" validate:"language"`
	Cover          string  `toml:"cover" validate:"cover"`
	WitPath        string  `toml:"wit_path,omitempty"`
	DolphinUserDir string  `toml:"dolphin_user_dir,omitempty"`
	Catalog        Catalog `toml:"catalog"`
	ConfigSchema   int     `toml:"config_schema"`
	DebugLogging   bool    `toml:"debug_logging"`
}

type Catalog struct {
	URL        string `toml:"url" validate:"omitempty,url"`
	MaxAgeDays int    `toml:"max_age_days" validate:"gte=0"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Language:     DefaultLanguage,
	Cover:        string(covers.DefaultPreference),
	Catalog: Catalog{
		URL:        catalog.DefaultURL,
		MaxAgeDays: int(catalog.DefaultMaxAge / (24 * time.Hour)),
	},
}

type Instance struct {
	fs       afero.Fs
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// NewConfig loads the config file from configDir, or from the path in
// GAMETDB_CFG, writing defaults first if it doesn't exist yet.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(fs afero.Fs, configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	return NewConfigFromPath(fs, cfgPath, defaults)
}

// NewConfigFromPath is NewConfig for an explicit file path.
//
//nolint:gocritic // config struct copied for immutability
func NewConfigFromPath(fs afero.Fs, cfgPath string, defaults Values) (*Instance, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	cfg := Instance{
		fs:       fs,
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	exists, err := afero.Exists(fs, cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !exists {
		log.Info().Msg("saving new default config to disk")

		if err := fs.MkdirAll(filepath.Dir(cfgPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	if lang, err := NormalizeLanguage(newVals.Language); err == nil {
		newVals.Language = lang
	}

	if err := Validate(&newVals); err != nil {
		return err
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) Path() string {
	return c.cfgPath
}

// Language is the preferred locale code, e.g. "EN".
func (c *Instance) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Language
}

// SetLanguage accepts a locale code, a tag like "de-DE" or a display name.
func (c *Instance) SetLanguage(lang string) error {
	code, err := NormalizeLanguage(lang)
	if err != nil {
		return err
	}
	if _, ok := Languages.Left(code); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Language = code
	return nil
}

func (c *Instance) Cover() covers.Preference {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return covers.Preference(c.vals.Cover)
}

// SetCover accepts a preference code or its display name.
func (c *Instance) SetCover(pref string) error {
	p := covers.Preference(pref)
	if !p.Valid() {
		byName, ok := covers.Preferences.Right(pref)
		if !ok {
			return fmt.Errorf("unknown cover preference: %s", pref)
		}
		p = byName
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Cover = string(p)
	return nil
}

func (c *Instance) WitPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.WitPath
}

func (c *Instance) DolphinUserDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DolphinUserDir
}

func (c *Instance) SetDolphinUserDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DolphinUserDir = dir
}

func (c *Instance) CatalogURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Catalog.URL
}

func (c *Instance) CatalogMaxAge() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.vals.Catalog.MaxAgeDays) * 24 * time.Hour
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}
