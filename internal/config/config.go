/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package config loads the user-editable YAML configuration and merges
// environment overrides on top. Layout constants configured here feed the
// engine's Tunables; they are never global state.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"journalpage/internal/layout"
)

// LoggingConfig mirrors internal/log Options.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// FontsConfig points at the font files used for measurement and rendering.
type FontsConfig struct {
	Dir   string `yaml:"dir"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// LayoutConfig overrides individual layout tunables. Zero values mean "keep
// the default"; all tunables are positive.
type LayoutConfig struct {
	ObstaclePadding float64 `yaml:"obstacle_padding"`
	MinSegmentWidth float64 `yaml:"min_segment_width"`
	SafetyMargin    float64 `yaml:"safety_margin"`
	BodyMinSize     float64 `yaml:"body_min_size"`
	BodyMaxSize     float64 `yaml:"body_max_size"`
	BodyStep        float64 `yaml:"body_step"`
}

// CacheConfig controls the persistent measurement width cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// AppConfig is the persisted configuration schema.
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Logging       LoggingConfig `yaml:"logging"`
	Fonts         FontsConfig   `yaml:"fonts"`
	Layout        LayoutConfig  `yaml:"layout"`
	Cache         CacheConfig   `yaml:"cache"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvLogLevel  = "JP_LOG_LEVEL"
	EnvLogFormat = "JP_LOG_FORMAT"
	EnvLogFile   = "JP_LOG_FILE"
	EnvFontsDir  = "JP_FONTS_DIR"
	EnvCachePath = "JP_CACHE_PATH"
	EnvBodyMax   = "JP_BODY_MAX_SIZE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "JournalPage")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "JournalPage")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "journalpage")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Tunables returns the engine tunables with this config's overrides applied.
func (c AppConfig) Tunables() layout.Tunables {
	t := layout.DefaultTunables()
	if c.Layout.ObstaclePadding > 0 {
		t.ObstaclePadding = c.Layout.ObstaclePadding
	}
	if c.Layout.MinSegmentWidth > 0 {
		t.MinSegmentWidth = c.Layout.MinSegmentWidth
	}
	if c.Layout.SafetyMargin > 0 {
		t.SafetyMargin = c.Layout.SafetyMargin
	}
	if c.Layout.BodyMinSize > 0 {
		t.BodyMinSize = c.Layout.BodyMinSize
	}
	if c.Layout.BodyMaxSize > 0 {
		t.BodyMaxSize = c.Layout.BodyMaxSize
	}
	if c.Layout.BodyStep > 0 {
		t.BodyStep = c.Layout.BodyStep
	}
	return t
}

func mergeInto(dst, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
	if src.Fonts.Dir != "" {
		dst.Fonts.Dir = src.Fonts.Dir
	}
	if src.Fonts.Title != "" {
		dst.Fonts.Title = src.Fonts.Title
	}
	if src.Fonts.Body != "" {
		dst.Fonts.Body = src.Fonts.Body
	}
	// layout overrides: copy non-zero values only
	if src.Layout.ObstaclePadding > 0 {
		dst.Layout.ObstaclePadding = src.Layout.ObstaclePadding
	}
	if src.Layout.MinSegmentWidth > 0 {
		dst.Layout.MinSegmentWidth = src.Layout.MinSegmentWidth
	}
	if src.Layout.SafetyMargin > 0 {
		dst.Layout.SafetyMargin = src.Layout.SafetyMargin
	}
	if src.Layout.BodyMinSize > 0 {
		dst.Layout.BodyMinSize = src.Layout.BodyMinSize
	}
	if src.Layout.BodyMaxSize > 0 {
		dst.Layout.BodyMaxSize = src.Layout.BodyMaxSize
	}
	if src.Layout.BodyStep > 0 {
		dst.Layout.BodyStep = src.Layout.BodyStep
	}
	dst.Cache.Enabled = src.Cache.Enabled
	if src.Cache.Path != "" {
		dst.Cache.Path = src.Cache.Path
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFontsDir)); v != "" {
		cfg.Fonts.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCachePath)); v != "" {
		cfg.Cache.Enabled = true
		cfg.Cache.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBodyMax)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.Layout.BodyMaxSize = n
		}
	}
}
