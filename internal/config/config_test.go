//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

// isolate runs the test in an empty working directory with an empty
// XDG config home.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	xdg.Reload()
	t.Chdir(tmpDir)
	return tmpDir
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/logs/scrubber.log", filepath.Join(home, "logs", "scrubber.log")},
		{"absolute path unchanged", "/var/log/scrubber.log", "/var/log/scrubber.log"},
		{"relative path unchanged", "scrubber.log", "scrubber.log"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	tmpDir := isolate(t)
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() = %v, want 2 paths", paths)
	}
	expectedFirst := filepath.Join(tmpDir, "xdg", "scrubber", "config.toml")
	if paths[0] != expectedFirst {
		t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config

	if got := cfg.GetIcons(); got != "none" {
		t.Errorf("GetIcons() = %q", got)
	}
	if got := cfg.GetVolume(); got != 1.0 {
		t.Errorf("GetVolume() = %v", got)
	}
	if got := cfg.GetSeekStep(); got != 5*time.Second {
		t.Errorf("GetSeekStep() = %v", got)
	}
	if got := cfg.GetVolumeStep(); got != 0.05 {
		t.Errorf("GetVolumeStep() = %v", got)
	}
	if got := cfg.GetProgressInterval(); got != 250*time.Millisecond {
		t.Errorf("GetProgressInterval() = %v", got)
	}
	if got := cfg.GetClickGrace(); got != 200*time.Millisecond {
		t.Errorf("GetClickGrace() = %v", got)
	}
	if !cfg.MPRISEnabled() {
		t.Error("MPRISEnabled() = false, want true")
	}
	if got := cfg.GetLogConfig(); got.Level != "info" || got.File != "" || got.JSON {
		t.Errorf("GetLogConfig() = %+v", got)
	}
}

func TestAccessors_InvalidValues(t *testing.T) {
	over := 3.0
	under := -1.0
	off := false

	tests := []struct {
		name  string
		cfg   Config
		check func(t *testing.T, c Config)
	}{
		{"volume above 1 clamps", Config{Volume: &over}, func(t *testing.T, c Config) {
			if c.GetVolume() != 1 {
				t.Errorf("GetVolume() = %v, want 1", c.GetVolume())
			}
		}},
		{"volume below 0 clamps", Config{Volume: &under}, func(t *testing.T, c Config) {
			if c.GetVolume() != 0 {
				t.Errorf("GetVolume() = %v, want 0", c.GetVolume())
			}
		}},
		{"negative seek step", Config{SeekStep: -time.Second}, func(t *testing.T, c Config) {
			if c.GetSeekStep() != DefaultSeekStep {
				t.Errorf("GetSeekStep() = %v", c.GetSeekStep())
			}
		}},
		{"volume step above 1", Config{VolumeStep: 2}, func(t *testing.T, c Config) {
			if c.GetVolumeStep() != DefaultVolumeStep {
				t.Errorf("GetVolumeStep() = %v", c.GetVolumeStep())
			}
		}},
		{"progress interval floor", Config{ProgressInterval: time.Millisecond}, func(t *testing.T, c Config) {
			if c.GetProgressInterval() != 20*time.Millisecond {
				t.Errorf("GetProgressInterval() = %v", c.GetProgressInterval())
			}
		}},
		{"negative grace passes through", Config{ClickGrace: -1}, func(t *testing.T, c Config) {
			if c.GetClickGrace() >= 0 {
				t.Errorf("GetClickGrace() = %v, want negative", c.GetClickGrace())
			}
		}},
		{"mpris disabled", Config{MPRIS: &off}, func(t *testing.T, c Config) {
			if c.MPRISEnabled() {
				t.Error("MPRISEnabled() = true, want false")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.cfg)
		})
	}
}

func TestLoad_NoFiles(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Icons != "" || cfg.Volume != nil {
		t.Errorf("Load() with no files = %+v, want zero config", cfg)
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	isolate(t)

	configContent := `
icons = "nerd"
volume = 0.4
seek_step = "10s"
volume_step = 0.1
progress_interval = "100ms"
click_grace = "300ms"
mpris = false

[log]
level = "debug"
file = "~/scrubber.log"
json = true
`
	if err := os.WriteFile("config.toml", []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GetIcons() != "nerd" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "nerd")
	}
	if cfg.GetVolume() != 0.4 {
		t.Errorf("Volume = %v, want 0.4", cfg.GetVolume())
	}
	if cfg.GetSeekStep() != 10*time.Second {
		t.Errorf("SeekStep = %v, want 10s", cfg.GetSeekStep())
	}
	if cfg.GetVolumeStep() != 0.1 {
		t.Errorf("VolumeStep = %v, want 0.1", cfg.GetVolumeStep())
	}
	if cfg.GetProgressInterval() != 100*time.Millisecond {
		t.Errorf("ProgressInterval = %v, want 100ms", cfg.GetProgressInterval())
	}
	if cfg.GetClickGrace() != 300*time.Millisecond {
		t.Errorf("ClickGrace = %v, want 300ms", cfg.GetClickGrace())
	}
	if cfg.MPRISEnabled() {
		t.Error("MPRIS should be disabled")
	}

	home, _ := os.UserHomeDir()
	logCfg := cfg.GetLogConfig()
	if logCfg.Level != "debug" || !logCfg.JSON {
		t.Errorf("Log = %+v", logCfg)
	}
	if logCfg.File != filepath.Join(home, "scrubber.log") {
		t.Errorf("Log.File = %q, want expanded path", logCfg.File)
	}
}

func TestLoad_LaterFilesWin(t *testing.T) {
	tmpDir := isolate(t)

	xdgDir := filepath.Join(tmpDir, "xdg", "scrubber")
	if err := os.MkdirAll(xdgDir, 0o700); err != nil {
		t.Fatal(err)
	}
	write := func(path, content string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("could not write %s: %v", path, err)
		}
	}
	write(filepath.Join(xdgDir, "config.toml"), "icons = \"unicode\"\nvolume_step = 0.2\n")
	write("config.toml", "icons = \"nerd\"\n")
	explicit := filepath.Join(tmpDir, "explicit.toml")
	write(explicit, "volume = 0.5\n")

	cfg, err := Load(explicit)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q, want nerd from ./config.toml", cfg.Icons)
	}
	if cfg.GetVolumeStep() != 0.2 {
		t.Errorf("VolumeStep = %v, want 0.2 from the XDG file", cfg.GetVolumeStep())
	}
	if cfg.GetVolume() != 0.5 {
		t.Errorf("Volume = %v, want 0.5 from the explicit file", cfg.GetVolume())
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	if _, err := Load("does-not-exist.toml"); err == nil {
		t.Error("Load() expected error for missing explicit config")
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	isolate(t)

	if err := os.WriteFile("config.toml", []byte("invalid = [[["), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	if _, err := Load(""); err == nil {
		t.Error("Load() expected error for invalid TOML, got nil")
	}
}
