package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change conversion settings.

Available keys:
  source_url     - "Original Source" link added to every record
  data_dir       - directory of the item database
  store_results  - save every converted record (true/false)
  pretty_json    - always indent JSON output (true/false)
  workers        - concurrent conversions in a batch`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(headingStyle.Render("Current Settings"))
	for _, key := range domain.SettingKeys() {
		cmd.Println(keyValue(key, settingValue(settings, key)))
	}
	if path := settingsService.Path(); path != "" {
		cmd.Println()
		cmd.Println(mutedStyle.Render("Config file: " + path))
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

// settingValue formats one setting for display.
func settingValue(s domain.Settings, key string) string {
	switch key {
	case domain.SettingSourceURL:
		return orNotSet(s.SourceURL)
	case domain.SettingDataDir:
		return orNotSet(s.DataDir)
	case domain.SettingStoreResults:
		return strconv.FormatBool(s.StoreResults)
	case domain.SettingPrettyJSON:
		return strconv.FormatBool(s.PrettyJSON)
	case domain.SettingWorkers:
		return strconv.Itoa(s.EffectiveWorkers())
	}
	return ""
}

func orNotSet(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
