package cmd

import (
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/togglebutton/internal/app"
	"github.com/BrandonKowalski/togglebutton/internal/config"
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton"
)

var (
	configPath string
	mode       string
	locale     string
	cannoli    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the demo window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if cfg.LogPath != "" {
			togglebutton.SetLogPath(cfg.LogPath)
		}
		togglebutton.SetRawLogLevel(cfg.LogLevel)
		logger := togglebutton.GetLogger()

		demo, err := app.Build(cfg, logger)
		if err != nil {
			logger.Error("Invalid demo configuration", "error", err)
			return err
		}

		_, err = demo.Run()
		return err
	},
}

// loadConfig reads --config, if given, and lets explicit flags override it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("locale") {
		cfg.Locale = locale
	}
	if flags.Changed("cannoli") {
		cfg.Cannoli = cannoli
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-path") {
		cfg.LogPath = logPath
	}

	return cfg, cfg.Validate()
}

func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	runCmd.Flags().StringVarP(&mode, "mode", "m", "single", "selection mode: none, single or multiple")
	runCmd.Flags().StringVarP(&locale, "locale", "l", "", "language for labels, e.g. en, de, es")
	runCmd.Flags().BoolVar(&cannoli, "cannoli", false, "use the Cannoli theme")
	rootCmd.AddCommand(runCmd)
}
