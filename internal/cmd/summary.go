package cmd

import (
	"os"

	"github.com/ashview/ashview/internal/output"
	"github.com/ashview/ashview/internal/report"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [report.json|report.html]",
	Short: "Show the severity dashboard for a scan",
	Long: `Render the dashboard header: per-severity counts, total findings and
the contributing tools. Counts are always derived from the findings list,
not from the metadata's totalFindings field.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := loadInput(args)
		if err != nil {
			return err
		}
		output.WriteSummary(rep, os.Stdout, report.ToolAll)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
