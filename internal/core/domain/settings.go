package domain

// Settings holds user configuration for conversions.
type Settings struct {
	// SourceURL is added as the "Original Source" link of every record
	// unless a conversion overrides it.
	SourceURL string `toml:"source_url"`

	// DataDir is where the item database lives. Empty means the default.
	DataDir string `toml:"data_dir"`

	// StoreResults saves every converted record to the item store.
	StoreResults bool `toml:"store_results"`

	// PrettyJSON indents JSON output even when stdout is not a terminal.
	PrettyJSON bool `toml:"pretty_json"`

	// Workers bounds concurrent conversions in a batch.
	Workers int `toml:"workers"`
}

// DefaultWorkers is the batch concurrency when none is configured.
const DefaultWorkers = 4

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Workers: DefaultWorkers,
	}
}

// Settings keys accepted by the settings service.
const (
	SettingSourceURL    = "source_url"
	SettingDataDir      = "data_dir"
	SettingStoreResults = "store_results"
	SettingPrettyJSON   = "pretty_json"
	SettingWorkers      = "workers"
)

// SettingKeys lists all settings keys in display order.
func SettingKeys() []string {
	return []string{SettingSourceURL, SettingDataDir, SettingStoreResults, SettingPrettyJSON, SettingWorkers}
}

// EffectiveWorkers returns Workers, or the default when unset.
func (s Settings) EffectiveWorkers() int {
	if s.Workers <= 0 {
		return DefaultWorkers
	}
	return s.Workers
}
