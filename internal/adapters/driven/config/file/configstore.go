package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileName is the configuration file inside the config directory.
const fileName = "config.toml"

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Configuration is stored in a TOML file within the fgdc2sb config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
}

// fileConfig is the on-disk layout. Settings are grouped into tables:
//
//	[convert]
//	source_url = "https://..."
//	store_results = true
//	pretty_json = false
//	workers = 4
//
//	[storage]
//	data_dir = "/var/lib/fgdc2sb"
type fileConfig struct {
	Convert convertTable `toml:"convert"`
	Storage storageTable `toml:"storage"`
}

type convertTable struct {
	SourceURL    string `toml:"source_url,omitempty"`
	StoreResults bool   `toml:"store_results"`
	PrettyJSON   bool   `toml:"pretty_json"`
	Workers      int    `toml:"workers,omitempty"`
}

type storageTable struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.fgdc2sb/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".fgdc2sb")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, fileName),
	}, nil
}

// Load reads settings from the TOML file.
// A missing file yields the default settings.
func (s *ConfigStore) Load() (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file yet - that's fine, use defaults
			return settings, nil
		}
		return settings, err
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return settings, fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	settings.SourceURL = cfg.Convert.SourceURL
	settings.StoreResults = cfg.Convert.StoreResults
	settings.PrettyJSON = cfg.Convert.PrettyJSON
	if cfg.Convert.Workers > 0 {
		settings.Workers = cfg.Convert.Workers
	}
	settings.DataDir = cfg.Storage.DataDir
	return settings, nil
}

// Save persists settings to the TOML file.
func (s *ConfigStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := fileConfig{
		Convert: convertTable{
			SourceURL:    settings.SourceURL,
			StoreResults: settings.StoreResults,
			PrettyJSON:   settings.PrettyJSON,
			Workers:      settings.Workers,
		},
		Storage: storageTable{
			DataDir: settings.DataDir,
		},
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
