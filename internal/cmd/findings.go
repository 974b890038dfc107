package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ashview/ashview/internal/annotate"
	"github.com/ashview/ashview/internal/cli"
	"github.com/ashview/ashview/internal/logging"
	"github.com/ashview/ashview/internal/model"
	"github.com/ashview/ashview/internal/output"
	"github.com/ashview/ashview/internal/report"
	"github.com/spf13/cobra"
)

var (
	toolFilter     string
	severityFilter []string
	groupBy        string
	repoPath       string
)

// validGroupBy contains the valid group-by options.
var validGroupBy = []string{"none", "severity", "tool"}

var findingsCmd = &cobra.Command{
	Use:   "findings [report.json|report.html]",
	Short: "List findings with severity and tool filters",
	Long: `Render the filterable findings list. Both filter axes are combined:
a finding appears only when its tool matches the active tool filter and its
severity is in the selected set. Passing an HTML report reads the scan data
embedded in it.`,
	Example: `  # Everything from an assembled report
  ashview findings ash-report.html

  # Only critical and high Grype findings, as JSON
  ashview findings scan.json --tool Grype --severity CRITICAL,HIGH --format json

  # Group by severity and annotate with git blame
  ashview findings scan.json --group-by severity --repo .`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		for _, g := range validGroupBy {
			if groupBy == g {
				return nil
			}
		}
		return fmt.Errorf("invalid --group-by value %q: must be one of %v", groupBy, validGroupBy)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := loadInput(args)
		if err != nil {
			return err
		}

		sel := buildSelection()
		opts := output.FormatOptions{
			Selection: sel,
			GroupBy:   groupBy,
		}

		if format == "json" {
			if groupBy != "none" {
				cli.PrintWarning("--group-by is ignored with --format json")
			}
			if repoPath != "" {
				cli.PrintWarning("--repo is ignored with --format json")
			}
		} else if repoPath != "" {
			opts.Blame = blameFindings(rep, sel, repoPath)
		}

		formatter, err := output.GetFormatter(format)
		if err != nil {
			return err
		}
		return formatter.Format(rep, os.Stdout, opts)
	},
}

// buildSelection translates the filter flags into a Selection. Severity
// values are uppercased before matching; values outside the known four are
// kept as-is and simply never match.
func buildSelection() report.Selection {
	sel := report.NewSelection()
	sel.SelectTool(toolFilter)

	if len(severityFilter) > 0 {
		set := report.SeveritySet{}
		for _, raw := range severityFilter {
			set[model.Severity(strings.ToUpper(strings.TrimSpace(raw)))] = true
		}
		sel.Severities = set
	}
	return sel
}

// blameFindings annotates the filtered findings with blame info keyed by
// their index in the filtered list. Failures degrade to no annotation.
func blameFindings(rep *model.Report, sel report.Selection, repo string) map[int]*annotate.BlameInfo {
	annotator, err := annotate.Open(repo)
	if err != nil {
		logging.L().Warnf("git blame unavailable: %v", err)
		return nil
	}

	blame := make(map[int]*annotate.BlameInfo)
	for i, f := range report.Filter(rep.Findings, sel) {
		if info := annotator.Finding(f); info != nil {
			blame[i] = info
		}
	}
	return blame
}

func init() {
	findingsCmd.Flags().StringVar(&toolFilter, "tool", report.ToolAll, "Show only findings from this tool (exact match), or \"all\"")
	findingsCmd.Flags().StringSliceVar(&severityFilter, "severity", nil, "Severity selection (comma-separated): CRITICAL, HIGH, MEDIUM, LOW (default: all)")
	findingsCmd.Flags().StringVar(&groupBy, "group-by", "none", "Group findings by: none, severity, tool")
	findingsCmd.Flags().StringVar(&repoPath, "repo", "", "Repository path for git blame enrichment")
	rootCmd.AddCommand(findingsCmd)
}
