// Package config provides read-only access to application configuration.
// The interface abstracts the configuration source (settings.yml, ENV,
// defaults) so callers never depend on how values were loaded.
package config

import "time"

// Config is the read-only view handed to commands and servers.
type Config interface {
	// Bridge settings
	OsascriptBin() string   // interpreter binary (OMNIKIT_OSASCRIPT_BIN)
	TimeoutSec() int        // subprocess timeout in seconds, 0 = none
	Timeout() time.Duration // subprocess timeout as Duration
	ChunkSize() int         // batch chunk ceiling (OMNIKIT_CHUNK_SIZE)

	// Paths
	AssetRoot() string // script fragment root (OMNIKIT_ASSETS)

	// Logging
	StderrLevel() string // stderr log level (OMNIKIT_STDERR_LEVEL)

	// Metadata
	ConfigSource() string // "yaml", "env", or "default"
	SettingPath() string  // path to settings.yml if loaded from file
}

// AppConfig is the concrete implementation of Config.
type AppConfig struct {
	osascriptBin string
	timeoutSec   int
	chunkSize    int
	assetRoot    string
	stderrLevel  string

	configSource string
	settingPath  string
}

// NewAppConfig creates an AppConfig. Typically called by the infra layer
// after loading and merging configuration sources.
func NewAppConfig(
	osascriptBin string, timeoutSec, chunkSize int,
	assetRoot, stderrLevel string,
	configSource, settingPath string,
) *AppConfig {
	return &AppConfig{
		osascriptBin: osascriptBin,
		timeoutSec:   timeoutSec,
		chunkSize:    chunkSize,
		assetRoot:    assetRoot,
		stderrLevel:  stderrLevel,
		configSource: configSource,
		settingPath:  settingPath,
	}
}

func (c *AppConfig) OsascriptBin() string { return c.osascriptBin }

func (c *AppConfig) TimeoutSec() int { return c.timeoutSec }

func (c *AppConfig) Timeout() time.Duration {
	return time.Duration(c.timeoutSec) * time.Second
}

func (c *AppConfig) ChunkSize() int { return c.chunkSize }

func (c *AppConfig) AssetRoot() string { return c.assetRoot }

func (c *AppConfig) StderrLevel() string { return c.stderrLevel }

func (c *AppConfig) ConfigSource() string { return c.configSource }

func (c *AppConfig) SettingPath() string { return c.settingPath }
