package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driving"
)

var (
	convertOutput    string
	convertParentID  string
	convertSourceURL string
	convertStore     bool
	convertPretty    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.xml>...",
	Short: "Convert FGDC XML files to item JSON",
	Long: `Converts one or more FGDC CSDGM XML files into ScienceBase item JSON.

With a single file the record is written to stdout, or to --output.
With several files --output names a directory that receives one
<name>.json per input; without it the records are printed as a JSON array.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file (or directory for several inputs)")
	convertCmd.Flags().StringVar(&convertParentID, "parent-id", "", "parent item ID, overriding the larger work link")
	convertCmd.Flags().StringVar(&convertSourceURL, "source-url", "", "URL of the original metadata, added as a self link")
	convertCmd.Flags().BoolVar(&convertStore, "store", false, "save converted records to the item store")
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", false, "indent JSON output")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	opts := driving.ConvertOptions{
		ParentID:  convertParentID,
		SourceURL: convertSourceURL,
		Store:     convertStore,
	}
	pretty := convertPretty || prettyFromSettings() || isTerminal(cmd.OutOrStdout())

	ctx := context.Background()
	if len(args) == 1 {
		result, err := conversionService.ConvertFile(ctx, args[0], opts)
		if err != nil {
			return fmt.Errorf("convert failed: %w", err)
		}
		if err := writeRecord(cmd, convertOutput, result.Record, pretty); err != nil {
			return err
		}
		reportStored(cmd, *result)
		return nil
	}

	results := conversionService.ConvertBatch(ctx, args, opts)
	return writeBatch(cmd, results, pretty)
}

func writeBatch(cmd *cobra.Command, results []driving.ConversionResult, pretty bool) error {
	if convertOutput != "" {
		if err := os.MkdirAll(convertOutput, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var records []any
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			cmd.PrintErrln(errorStyle.Render("✗ " + result.Source + ": " + result.Err.Error()))
			continue
		}

		if convertOutput == "" {
			records = append(records, result.Record)
		} else {
			path := filepath.Join(convertOutput, jsonName(result.Source))
			if err := writeRecord(cmd, path, result.Record, pretty); err != nil {
				return err
			}
			cmd.PrintErrln(successStyle.Render("✓ "+result.Source) + mutedStyle.Render(" -> "+path))
		}
		reportStored(cmd, result)
	}

	if convertOutput == "" {
		if records == nil {
			records = []any{}
		}
		if err := writeRecord(cmd, "", records, pretty); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(results))
	}
	return nil
}

// writeRecord encodes v as JSON to path, or to the command output when
// path is empty.
func writeRecord(cmd *cobra.Command, path string, v any, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // output is not sensitive
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func reportStored(cmd *cobra.Command, result driving.ConversionResult) {
	if result.StoredID != "" {
		cmd.PrintErrln(mutedStyle.Render("stored " + result.Source + " as " + result.StoredID))
	}
}

// jsonName maps "dir/record.xml" to "record.json".
func jsonName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}

func prettyFromSettings() bool {
	if settingsService == nil {
		return false
	}
	settings, err := settingsService.Get()
	if err != nil {
		return false
	}
	return settings.PrettyJSON
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}
