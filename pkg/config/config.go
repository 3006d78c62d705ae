package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full application configuration. It is read-only after
// load; mutable user preferences live in State.
type Config struct {
	General       GeneralConfig       `toml:"general"`
	Theme         ThemeConfig         `toml:"theme"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// GeneralConfig holds paths and the tick cadence.
type GeneralConfig struct {
	// LogFile is where slog output goes. The TUI owns the terminal, so
	// logs never go to stderr in TUI mode.
	LogFile string `toml:"log_file"`

	// PatternDir holds custom pattern TOML files merged over the
	// builtins at startup.
	PatternDir string `toml:"pattern_dir"`

	// StateFile is the persisted preference store.
	StateFile string `toml:"state_file"`

	// TickInterval is the render/engine tick cadence. The engine
	// measures real deltas, so a late tick is corrected, not lost.
	TickInterval Duration `toml:"tick_interval"`

	LogLevel string `toml:"log_level"`
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	Name string `toml:"name"`
}

// NotificationsConfig holds the notification defaults applied when no
// state file exists yet.
type NotificationsConfig struct {
	Icon string `toml:"icon"` // optional toast icon path
}

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/pattern-timer/config.toml
//  2. ~/.config/pattern-timer/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	return DefaultConfig(), nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	configDir := filepath.Join(xdgConfigHome(home), "pattern-timer")
	stateDir := filepath.Join(xdgStateHome(home), "pattern-timer")

	return &Config{
		General: GeneralConfig{
			LogFile:      filepath.Join(stateDir, "pattern-timer.log"),
			PatternDir:   filepath.Join(configDir, "patterns"),
			StateFile:    filepath.Join(stateDir, "state.yaml"),
			TickInterval: Duration{1 * time.Second},
			LogLevel:     "info",
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config
// values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PATTERN_TIMER_LOG_FILE"); v != "" {
		cfg.General.LogFile = v
	}
	if v := os.Getenv("PATTERN_TIMER_THEME"); v != "" {
		cfg.Theme.Name = v
	}
}

func configSearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "pattern-timer", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "pattern-timer", "config.toml"))
	}
	return paths
}

func xdgConfigHome(home string) string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(home, ".config")
}

func xdgStateHome(home string) string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(home, ".local", "state")
}
