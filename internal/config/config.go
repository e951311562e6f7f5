package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "scrubber"

// Defaults applied by the Get accessors.
const (
	DefaultIcons            = "none"
	DefaultVolume           = 1.0
	DefaultSeekStep         = 5 * time.Second
	DefaultVolumeStep       = 0.05
	DefaultProgressInterval = 250 * time.Millisecond
	DefaultClickGrace       = 200 * time.Millisecond
	DefaultLogLevel         = "info"

	minProgressInterval = 20 * time.Millisecond
)

type Config struct {
	Icons            string        `koanf:"icons"`             // "nerd", "unicode", or "none"
	Volume           *float64      `koanf:"volume"`            // initial level, 0.0-1.0
	SeekStep         time.Duration `koanf:"seek_step"`         // left/right nudge
	VolumeStep       float64       `koanf:"volume_step"`       // up/down nudge
	ProgressInterval time.Duration `koanf:"progress_interval"` // engine progress events
	ClickGrace       time.Duration `koanf:"click_grace"`       // negative disables
	MPRIS            *bool         `koanf:"mpris"`             // D-Bus media controls (default: true)

	Log LogConfig `koanf:"log"`
}

// LogConfig holds logging configuration. Logging is off unless File is set.
type LogConfig struct {
	Level string `koanf:"level"` // logrus level name (default: "info")
	File  string `koanf:"file"`
	JSON  bool   `koanf:"json"`
}

// Load reads the config files in order of priority (last wins). explicit,
// when set, is loaded last and must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	if explicit != "" {
		path := expandPath(explicit)
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in log file
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/scrubber/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetIcons returns the icon style, defaulting to "none".
func (c *Config) GetIcons() string {
	if c.Icons == "" {
		return DefaultIcons
	}
	return c.Icons
}

// GetVolume returns the initial volume clamped to [0,1].
func (c *Config) GetVolume() float64 {
	if c.Volume == nil {
		return DefaultVolume
	}
	return min(max(*c.Volume, 0), 1)
}

// GetSeekStep returns the keyboard seek step.
func (c *Config) GetSeekStep() time.Duration {
	if c.SeekStep <= 0 {
		return DefaultSeekStep
	}
	return c.SeekStep
}

// GetVolumeStep returns the keyboard volume step.
func (c *Config) GetVolumeStep() float64 {
	if c.VolumeStep <= 0 || c.VolumeStep > 1 {
		return DefaultVolumeStep
	}
	return c.VolumeStep
}

// GetProgressInterval returns how often the engine reports its position.
func (c *Config) GetProgressInterval() time.Duration {
	if c.ProgressInterval <= 0 {
		return DefaultProgressInterval
	}
	return max(c.ProgressInterval, minProgressInterval)
}

// GetClickGrace returns the time slider's post-release window. Negative
// values are passed through and disable it.
func (c *Config) GetClickGrace() time.Duration {
	if c.ClickGrace == 0 {
		return DefaultClickGrace
	}
	return c.ClickGrace
}

// MPRISEnabled reports whether D-Bus media controls should be exported.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// GetLogConfig returns the logging configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.Level == "" {
		cfg.Level = DefaultLogLevel
	}
	return cfg
}
