// Command fgdc2sb converts FGDC CSDGM metadata into ScienceBase item JSON.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/custodia-labs/fgdc2sb/internal/adapters/driven/config/file"
	"github.com/custodia-labs/fgdc2sb/internal/adapters/driven/email"
	"github.com/custodia-labs/fgdc2sb/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fgdc2sb/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/fgdc2sb/internal/adapters/driving/cli"
	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driven"
	"github.com/custodia-labs/fgdc2sb/internal/core/services"
	"github.com/custodia-labs/fgdc2sb/internal/logger"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc"
)

const (
	exitError = 1
	exitPanic = 3
)

func main() {
	// Recover from panics to exit with a stack trace
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(exitPanic)
		}
	}()

	if err := cli.Execute(buildServices); err != nil {
		os.Exit(exitError)
	}
}

// buildServices wires adapters into services for one CLI invocation.
func buildServices(configDir string) (cli.Services, func(), error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("opening config: %w", err)
	}
	settings, err := configStore.Load()
	if err != nil {
		return cli.Services{}, nil, err
	}

	var itemStore driven.ItemStore
	cleanup := func() {}
	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		logger.Warn("item store unavailable, using memory: %v", err)
		itemStore = memory.NewItemStore()
	} else {
		logger.Debug("item store: %s", store.Path())
		itemStore = store
		cleanup = func() { _ = store.Close() }
	}

	registry := services.NewNormaliserRegistry(fgdc.New(email.NewValidator()))

	return cli.Services{
		Conversion: services.NewConversionService(registry, itemStore, configStore),
		Items:      services.NewItemService(itemStore),
		Settings:   services.NewSettingsService(configStore),
	}, cleanup, nil
}
