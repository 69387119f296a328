package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("fgdc2sb version %s\n", version)
		cmd.Println(mutedStyle.Render(runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
