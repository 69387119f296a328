package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fgdc2sb/internal/adapters/driven/email"
	"github.com/custodia-labs/fgdc2sb/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fgdc2sb/internal/core/services"
	"github.com/custodia-labs/fgdc2sb/internal/logger"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc"
)

// testStores exposes the in-memory stores behind the test services.
type testStores struct {
	items  *memory.ItemStore
	config *memory.ConfigStore
}

// setupTestServices wires real services over in-memory stores and
// returns a cleanup restoring the previous services and flags.
func setupTestServices() (*testStores, func()) {
	stores := &testStores{
		items:  memory.NewItemStore(),
		config: memory.NewConfigStore(),
	}
	registry := services.NewNormaliserRegistry(fgdc.New(email.NewValidator()))

	prev := Services{Conversion: conversionService, Items: itemService, Settings: settingsService}
	setServices(Services{
		Conversion: services.NewConversionService(registry, stores.items, stores.config),
		Items:      services.NewItemService(stores.items),
		Settings:   services.NewSettingsService(stores.config),
	})

	return stores, func() {
		setServices(prev)
		resetFlags()
	}
}

func resetFlags() {
	convertOutput = ""
	convertParentID = ""
	convertSourceURL = ""
	convertStore = false
	convertPretty = false
	verbose = false
	configDir = ""
	logger.SetVerbose(false)
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "fgdc2sb", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "convert")
	assert.Contains(t, names, "items")
	assert.Contains(t, names, "settings")
	assert.Contains(t, names, "version")
}

func TestExecute_UsesFactory(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	var gotDir string
	cleaned := false
	f := func(dir string) (Services, func(), error) {
		gotDir = dir
		return Services{Settings: services.NewSettingsService(memory.NewConfigStore())}, func() { cleaned = true }, nil
	}

	rootCmd.SetArgs([]string{"settings", "show", "--config-dir", "/tmp/fgdc2sb-test"})
	rootCmd.SetOut(new(bytes.Buffer))
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		factory = nil
	}()

	require.NoError(t, Execute(f))
	assert.Equal(t, "/tmp/fgdc2sb-test", gotDir)
	assert.True(t, cleaned)
}

func TestExecute_FactoryError(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	f := func(string) (Services, func(), error) {
		return Services{}, nil, errors.New("boom")
	}

	rootCmd.SetArgs([]string{"version"})
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		factory = nil
	}()

	err := Execute(f)
	assert.EqualError(t, err, "boom")
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := run(t, "version", "--verbose")
	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}
