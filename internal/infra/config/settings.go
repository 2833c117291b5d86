// Package config loads application settings. Precedence: settings.yml >
// environment (OMNIKIT_*) > built-in defaults. A .env file next to the
// working directory is folded into the environment first when present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"omnikit/internal/app"
	appconfig "omnikit/internal/app/config"
	"omnikit/internal/bridge"
)

// RawSettings mirrors settings.yml. Pointer fields distinguish "absent"
// from zero values so lower-precedence sources can fill the gaps.
type RawSettings struct {
	OsascriptBin *string `yaml:"osascript_bin"`
	TimeoutSec   *int    `yaml:"timeout_sec"`
	ChunkSize    *int    `yaml:"chunk_size"`
	AssetRoot    *string `yaml:"asset_root"`
	StderrLevel  *string `yaml:"stderr_level"`
}

// LoadSettings loads and merges configuration for the given paths layout.
// A missing settings.yml falls through to environment and defaults; a
// malformed one is an error rather than a silent default.
func LoadSettings(paths app.Paths) (*appconfig.AppConfig, error) {
	// Optional .env; a missing file is the normal case.
	_ = godotenv.Load()

	settings := &RawSettings{}
	configSource := "default"
	settingPath := ""

	if data, err := os.ReadFile(paths.Settings); err == nil {
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", paths.Settings, err)
		}
		configSource = "yaml"
		settingPath = paths.Settings
	}

	if applyEnv(settings) && configSource == "default" {
		configSource = "env"
	}
	applyDefaults(settings, paths)

	return appconfig.NewAppConfig(
		*settings.OsascriptBin, *settings.TimeoutSec, *settings.ChunkSize,
		*settings.AssetRoot, *settings.StderrLevel,
		configSource, settingPath,
	), nil
}

// applyEnv fills fields the settings file left absent from OMNIKIT_*
// variables. It reports whether any variable was consumed.
func applyEnv(settings *RawSettings) bool {
	used := false
	if settings.OsascriptBin == nil {
		if v := os.Getenv("OMNIKIT_OSASCRIPT_BIN"); v != "" {
			settings.OsascriptBin = &v
			used = true
		}
	}
	if settings.TimeoutSec == nil {
		if v := os.Getenv("OMNIKIT_TIMEOUT_SEC"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				settings.TimeoutSec = &n
				used = true
			}
		}
	}
	if settings.ChunkSize == nil {
		if v := os.Getenv("OMNIKIT_CHUNK_SIZE"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				settings.ChunkSize = &n
				used = true
			}
		}
	}
	if settings.AssetRoot == nil {
		if v := os.Getenv("OMNIKIT_ASSETS"); v != "" {
			settings.AssetRoot = &v
			used = true
		}
	}
	if settings.StderrLevel == nil {
		if v := os.Getenv("OMNIKIT_STDERR_LEVEL"); v != "" {
			settings.StderrLevel = &v
			used = true
		}
	}
	return used
}

// applyDefaults fills in defaults for any field still absent.
func applyDefaults(settings *RawSettings, paths app.Paths) {
	if settings.OsascriptBin == nil {
		v := bridge.DefaultOsascriptBin
		settings.OsascriptBin = &v
	}
	if settings.TimeoutSec == nil {
		v := 0 // no bridge-level timeout
		settings.TimeoutSec = &v
	}
	if settings.ChunkSize == nil {
		v := bridge.DefaultChunkSize
		settings.ChunkSize = &v
	}
	if settings.AssetRoot == nil {
		v := paths.Assets
		settings.AssetRoot = &v
	}
	if settings.StderrLevel == nil {
		v := "info"
		settings.StderrLevel = &v
	}
}
