package driven

import "github.com/custodia-labs/fgdc2sb/internal/core/domain"

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Load reads settings from storage.
	// A missing configuration file yields domain.DefaultSettings.
	Load() (domain.Settings, error)

	// Save persists settings to storage, creating the directory if needed.
	Save(settings domain.Settings) error

	// Path returns the configuration file path.
	Path() string
}
