// Package cli provides the fgdc2sb command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driving"
	"github.com/custodia-labs/fgdc2sb/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. They are set by the ServiceFactory
// before any command runs.
var (
	conversionService driving.ConversionService
	itemService       driving.ItemService
	settingsService   driving.SettingsService
)

// Services groups the driving ports the CLI needs.
type Services struct {
	Conversion driving.ConversionService
	Items      driving.ItemService
	Settings   driving.SettingsService
}

// ServiceFactory builds the services for a config directory. An empty
// directory means the default. The returned cleanup releases stores.
type ServiceFactory func(configDir string) (Services, func(), error)

var (
	verbose   bool
	configDir string

	factory ServiceFactory
	cleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "fgdc2sb",
	Short: "Convert FGDC metadata into ScienceBase item records",
	Long: `fgdc2sb converts FGDC CSDGM XML metadata records into ScienceBase
item JSON: citation, contacts, web links, dates, tags and bounding box.

Converted records can be kept in a local item store and inspected later.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.fgdc2sb)")
}

// Execute builds services with f and runs the root command.
func Execute(f ServiceFactory) error {
	factory = f
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.Execute()
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if factory == nil {
		return nil
	}

	services, done, err := factory(configDir)
	if err != nil {
		return err
	}
	setServices(services)
	cleanup = done
	return nil
}

func setServices(s Services) {
	conversionService = s.Conversion
	itemService = s.Items
	settingsService = s.Settings
}
