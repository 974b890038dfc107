package cmd

import (
	"fmt"
	"os"

	"github.com/ashview/ashview/internal/assemble"
	"github.com/ashview/ashview/internal/config"
	"github.com/ashview/ashview/internal/output"
	"github.com/spf13/cobra"
)

var distDir string

var assembleCmd = &cobra.Command{
	Use:   "assemble [data.json] [output.html]",
	Short: "Assemble a self-contained HTML report",
	Long: `Inline the compiled dashboard bundle and the scan-results JSON into a
single HTML file that works when opened straight from the filesystem.

The asset directory must contain exactly one JavaScript bundle (*.js). A
stylesheet (*.css) is optional; builds may inline CSS into the bundle.`,
	Example: `  # Conventional paths (sample-data.json -> ash-report.html)
  ashview assemble

  # Explicit data and output paths
  ashview assemble scan-results.json report.html --dist dist/assets`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.DefaultFileName)
		if err != nil {
			return err
		}

		dataPath := cfg.DataPath
		outputPath := cfg.OutputPath
		if len(args) > 0 {
			dataPath = args[0]
		}
		if len(args) > 1 {
			outputPath = args[1]
		}
		dist := distDir
		if dist == "" {
			dist = cfg.DistDir
		}

		opts := assemble.Options{DistDir: dist, NoProgress: noProgress}
		if err := assemble.Assemble(dataPath, outputPath, opts); err != nil {
			return err
		}

		styles := output.GetStyles()
		fmt.Fprintf(os.Stdout, "%s\n", styles.SuccessText.Render(fmt.Sprintf("✓ Report written to %s", outputPath)))
		return nil
	},
}

func init() {
	assembleCmd.Flags().StringVar(&distDir, "dist", "", "Directory holding compiled dashboard assets (default from .ashview.yaml or dist/assets)")
	rootCmd.AddCommand(assembleCmd)
}
