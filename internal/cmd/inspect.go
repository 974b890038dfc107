package cmd

import (
	"fmt"
	"os"

	"github.com/ashview/ashview/internal/output"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [report.json|report.html]",
	Short: "Pretty-print the raw scan data",
	Long: `Print the scan-results JSON with syntax highlighting. For an assembled
HTML report this shows the data block embedded in the document, exactly as
the dashboard loader sees it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := rawInput(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, output.HighlightJSON(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
