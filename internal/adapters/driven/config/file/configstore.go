// Package file persists client settings as a TOML file.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ConfigStore = (*Store)(nil)

// fileSettings is the on-disk TOML shape.
type fileSettings struct {
	Server struct {
		URL               string  `toml:"url"`
		RequestsPerSecond float64 `toml:"requests_per_second"`
		Burst             int     `toml:"burst"`
	} `toml:"server"`
}

// Store reads and writes settings at a fixed TOML path.
type Store struct {
	mu       sync.Mutex
	filePath string
}

// NewStore creates a config store rooted at configDir. If configDir is
// empty, it defaults to ~/.leadline/config.toml.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		configDir = filepath.Join(home, ".leadline")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	return &Store{filePath: filepath.Join(configDir, "config.toml")}, nil
}

// Load reads settings from disk. A missing file yields the defaults.
func (s *Store) Load() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("read config: %w", err)
	}

	var fs fileSettings
	if err := toml.Unmarshal(data, &fs); err != nil {
		return domain.Settings{}, fmt.Errorf("parse config: %w", err)
	}

	settings := domain.DefaultSettings()
	if fs.Server.URL != "" {
		settings.ServerURL = fs.Server.URL
	}
	if fs.Server.RequestsPerSecond > 0 {
		settings.RequestsPerSecond = fs.Server.RequestsPerSecond
	}
	if fs.Server.Burst > 0 {
		settings.Burst = fs.Server.Burst
	}
	return settings, nil
}

// Save persists settings to disk immediately.
func (s *Store) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fs fileSettings
	fs.Server.URL = settings.ServerURL
	fs.Server.RequestsPerSecond = settings.RequestsPerSecond
	fs.Server.Burst = settings.Burst

	data, err := toml.Marshal(fs)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// Write with restricted permissions
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.filePath
}
