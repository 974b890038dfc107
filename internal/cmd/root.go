// Package cmd wires the ashview command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/ashview/ashview/internal/cli"
	"github.com/ashview/ashview/internal/logging"
	"github.com/ashview/ashview/internal/output"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	format     string
	colorMode  string
	noProgress bool
	debug      bool

	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// validFormats contains the valid output format strings.
var validFormats = []string{"human", "json"}

var rootCmd = &cobra.Command{
	Use:   "ashview",
	Short: "ASH security scan report viewer and assembler",
	Long: `View AWS Automated Security Helper (ASH) scan results as a filterable
dashboard in the terminal, and assemble the browser dashboard plus scan data
into one self-contained HTML report.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cli.InitColors(cli.ColorMode(colorMode))
		output.SyncStylesWithColorMode()

		if err := logging.Init(debug); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		if _, err := output.GetFormatter(format); err != nil {
			return fmt.Errorf("invalid --format value %q: must be one of %v", format, validFormats)
		}
		return nil
	},
}

// SetVersion stamps build metadata onto the root command.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// Execute runs the command tree. Errors are surfaced here, once, so
// command code never prints them itself.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		cli.PrintError(err.Error())
	}
	return err
}

func init() {
	// Project-local .env may supply ASHVIEW_* defaults; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&format, "format", getEnvOrDefault("ASHVIEW_FORMAT", "human"), "Output format: human, json")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", getEnvOrDefault("ASHVIEW_COLOR", "auto"), "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "Disable progress indicators")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
