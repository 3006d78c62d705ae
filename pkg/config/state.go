package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// State is the mutable preference store, persisted across restarts. It
// mirrors the process-wide notification preferences plus the last
// selected pattern so the timer view reopens where the user left it.
type State struct {
	NotificationsEnabled bool `yaml:"notifications_enabled"`
	SoundEnabled         bool `yaml:"sound_enabled"`

	// NotificationsPermission is one of granted, denied, default.
	NotificationsPermission string `yaml:"notifications_permission"`

	LastPatternID string `yaml:"last_pattern,omitempty"`
}

// DefaultState returns the preferences used before the user has saved
// anything: both channels enabled, permission undecided.
func DefaultState() State {
	return State{
		NotificationsEnabled:    true,
		SoundEnabled:            true,
		NotificationsPermission: "default",
	}
}

// LoadState reads the state file. A missing file yields DefaultState; a
// corrupt file is an error so user preferences are not silently wiped.
func LoadState(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultState(), nil
		}
		return DefaultState(), fmt.Errorf("config: read state: %w", err)
	}

	s := DefaultState()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultState(), fmt.Errorf("config: parse state: %w", err)
	}
	if !validPermission(s.NotificationsPermission) {
		s.NotificationsPermission = "default"
	}
	return s, nil
}

// SaveState writes the state file atomically (temp file then rename) so
// a crash mid-write cannot corrupt the store. Parent directories are
// created as needed.
func SaveState(path string, s State) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: encode state: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("config: write state: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("config: write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("config: write state: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("config: write state: %w", err)
	}
	return nil
}

func validPermission(p string) bool {
	switch p {
	case "granted", "denied", "default":
		return true
	}
	return false
}
