package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	logLevel string
	logPath  string
)

var rootCmd = &cobra.Command{
	Use:   "toggledemo",
	Short: "Segmented toggle button demo",
	Long: `toggledemo shows a segmented toggle button in a one-screen SDL app.

Examples:
  toggledemo run                          # Projects / Upcoming, single select
  toggledemo run --mode multiple          # Each option toggles independently
  toggledemo run --config demo.toml       # Options, theme and locale from a file
  ENVIRONMENT=DEV toggledemo run          # Windowed 1024x768 with keyboard input`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-path", "", "write logs to this file as well as stdout")
}
