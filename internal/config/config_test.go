/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"testing"

	"journalpage/internal/layout"
)

func TestEnvOverridesLogging(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "JSON")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging overrides not applied: %+v", cfg.Logging)
	}
}

func TestEnvOverridesCachePath(t *testing.T) {
	t.Setenv(EnvCachePath, "/tmp/widths.sqlite")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Path != "/tmp/widths.sqlite" {
		t.Fatalf("cache override not applied: %+v", cfg.Cache)
	}
}

func TestEnvOverridesBodyMaxSize(t *testing.T) {
	t.Setenv(EnvBodyMax, "64")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Layout.BodyMaxSize != 64 {
		t.Fatalf("BodyMaxSize = %v, want 64", cfg.Layout.BodyMaxSize)
	}
	if got := cfg.Tunables().BodyMaxSize; got != 64 {
		t.Fatalf("Tunables().BodyMaxSize = %v, want 64", got)
	}
}

func TestMergeKeepsDefaultsForZeroValues(t *testing.T) {
	dst := Defaults()
	src := AppConfig{}
	src.Layout.SafetyMargin = 1.1
	mergeInto(&dst, &src)
	if dst.Layout.SafetyMargin != 1.1 {
		t.Fatalf("SafetyMargin was not merged")
	}
	if dst.Logging.Level != "info" {
		t.Fatalf("zero-valued src clobbered logging level: %+v", dst.Logging)
	}
}

func TestTunablesDefaultsWhenUnset(t *testing.T) {
	cfg := Defaults()
	if got, want := cfg.Tunables(), layout.DefaultTunables(); got != want {
		t.Fatalf("Tunables() = %+v, want defaults %+v", got, want)
	}
}

func TestConfigPathResolves(t *testing.T) {
	p, err := ConfigPath()
	if err != nil || p == "" {
		t.Fatalf("ConfigPath() = %q, %v", p, err)
	}
}
