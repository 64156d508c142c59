// Package settings loads process-level settings: where the store lives, how
// often the dashboard ticks, and whether use cases are logged. The daily
// quota is user data and lives in the store, not here.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Settings holds all quotabank settings.
type Settings struct {
	DBPath         string `toml:"db_path,omitempty"`
	TickIntervalMs int    `toml:"tick_interval_ms"`
	LogUseCases    bool   `toml:"log_use_cases"`
}

// Default returns the settings used when no file or env override exists.
func Default() Settings {
	return Settings{
		DBPath:         defaultDBPath(),
		TickIntervalMs: 1000,
	}
}

// TickInterval returns the dashboard tick as a duration, never below 50ms.
func (s Settings) TickInterval() time.Duration {
	ms := s.TickIntervalMs
	if ms < 50 {
		ms = 50
	}
	return time.Duration(ms) * time.Millisecond
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".quotabank", "quotabank.db")
	}
	return filepath.Join(home, ".quotabank", "quotabank.db")
}

// Dir returns the XDG-compliant settings directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quotabank")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "quotabank")
}

// Path returns the full path to the settings file.
func Path() string {
	return filepath.Join(Dir(), "settings.toml")
}

// Load reads the settings file at Path and applies env overrides.
func Load() (Settings, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the settings file at path, returning defaults if it doesn't
// exist, then applies QUOTABANK_* environment overrides.
func LoadFrom(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), &s); err != nil {
			return Default(), fmt.Errorf("parsing settings: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return s, fmt.Errorf("reading settings: %w", err)
	}

	applyEnv(&s)
	if s.DBPath == "" {
		s.DBPath = defaultDBPath()
	}
	return s, nil
}

func applyEnv(s *Settings) {
	if v := os.Getenv("QUOTABANK_DB"); v != "" {
		s.DBPath = v
	}
	if v := os.Getenv("QUOTABANK_TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.TickIntervalMs = n
		}
	}
	if v := os.Getenv("QUOTABANK_LOG_USE_CASES"); v != "" {
		s.LogUseCases, _ = strconv.ParseBool(v)
	}
}

// Save writes s to path, creating the directory if needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// Exists returns true if a settings file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
