package driving

import "github.com/custodia-labs/fgdc2sb/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (domain.Settings, error)

	// Set validates and persists a single setting.
	// Returns domain.ErrUnknownSetting for unrecognised keys and
	// domain.ErrInvalidInput for values of the wrong shape.
	Set(key, value string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// Path returns where settings are stored.
	Path() string
}
