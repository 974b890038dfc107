package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ashview/ashview/internal/annotate"
	"github.com/ashview/ashview/internal/model"
	"github.com/ashview/ashview/internal/report"
	"github.com/ashview/ashview/internal/util"
	"github.com/mattn/go-runewidth"
)

// HumanFormatter renders the terminal dashboard: scan header, severity
// summary, tool tabs and the filtered findings list.
type HumanFormatter struct{}

// findingGroup is one rendered section when grouping is active.
type findingGroup struct {
	Label    string
	Findings []model.Finding
	// offsets map positions within Findings back to indexes in the
	// filtered list, so blame annotations survive regrouping.
	offsets []int
}

// WriteSummary renders the dashboard header alone: banner, scan metadata,
// the severity summary box and the tool tab strip.
func WriteSummary(rep *model.Report, w io.Writer, activeTool string) {
	styles := GetStyles()

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "%s\n", styles.HeaderBanner.Render("ASH SECURITY SCAN REPORT"))
	fmt.Fprintf(w, "\n")
	renderMetadata(w, rep.Metadata, styles)
	fmt.Fprintf(w, "\n")

	renderSummary(w, rep.Findings, styles)
	fmt.Fprintf(w, "\n")
	renderToolTabs(w, rep.Findings, activeTool, styles)
	fmt.Fprintf(w, "\n")
}

func (f *HumanFormatter) Format(rep *model.Report, w io.Writer, opts FormatOptions) error {
	styles := GetStyles()

	WriteSummary(rep, w, opts.Selection.ActiveTool)

	if len(rep.Findings) == 0 {
		fmt.Fprintf(w, "%s\n\n", styles.SuccessText.Render("✓ No findings reported."))
		return nil
	}

	filtered := report.Filter(rep.Findings, opts.Selection)
	if len(filtered) == 0 {
		fmt.Fprintf(w, "%s\n\n", styles.WarningText.Render("No findings match the current filters."))
		return nil
	}

	fmt.Fprintf(w, "%s\n\n", styles.SectionTitle.Render(fmt.Sprintf("FINDINGS (%d)", len(filtered))))

	if opts.GroupBy != "" && opts.GroupBy != "none" {
		renderGroups(w, groupFindings(filtered, opts.GroupBy), styles, opts)
	} else {
		for i, finding := range filtered {
			if i > 0 {
				fmt.Fprintf(w, "%s\n", styles.MutedText.Render(strings.Repeat("─", BoxWidth)))
			}
			renderFinding(w, finding, styles, opts.Blame[i])
		}
	}
	fmt.Fprintf(w, "\n")

	return nil
}

func renderMetadata(w io.Writer, meta model.ScanMetadata, styles *Styles) {
	if meta.ScanDate != "" {
		fmt.Fprintf(w, "Scan Date:   %s\n", meta.ScanDate)
	}
	if meta.Duration != nil {
		fmt.Fprintf(w, "Duration:    %s\n", styles.Duration.Render(util.FormatDuration(*meta.Duration)))
	}
	if meta.Version != nil {
		fmt.Fprintf(w, "Version:     %s\n", *meta.Version)
	}
	if len(meta.Tools) > 0 {
		fmt.Fprintf(w, "Tools:       %s\n", strings.Join(meta.Tools, ", "))
	}
}

// renderSummary draws the severity dashboard box, sized to the terminal.
// Counts always come from the findings list, never from
// metadata.totalFindings.
func renderSummary(w io.Writer, findings []model.Finding, styles *Styles) {
	counts := report.CountBySeverity(findings)
	// Border and horizontal padding eat four columns.
	inner := TerminalWidth() - 4

	rows := []string{
		"📊 SCAN SUMMARY",
		strings.Repeat("─", inner),
		styles.Bold.Render(fmt.Sprintf("Total Findings: %d", len(findings))),
		"",
	}
	for _, sev := range model.Severities {
		cfg, _ := model.Config(sev)
		label := fmt.Sprintf("%s %s", cfg.Icon, util.TitleCase(string(sev)))
		count := fmt.Sprintf("%d", counts[sev])
		// Pad by display width so the double-width icons keep the count
		// column aligned.
		gap := inner - runewidth.StringWidth(label) - runewidth.StringWidth(count)
		if gap < 1 {
			gap = 1
		}
		rows = append(rows, styles.SeverityText(sev).Render(label)+strings.Repeat(" ", gap)+count)
	}

	fmt.Fprintf(w, "%s\n", styles.SummaryBox.Render(strings.Join(rows, "\n")))
}

// renderToolTabs prints the tool tab strip: "All Tools" plus one tab per
// distinct tool in first-occurrence order, each with its findings count.
func renderToolTabs(w io.Writer, findings []model.Finding, activeTool string, styles *Styles) {
	tools := report.DistinctTools(findings)
	counts := report.CountByTool(findings)

	tabs := make([]string, 0, len(tools)+1)

	all := fmt.Sprintf("All Tools (%d)", len(findings))
	if activeTool == report.ToolAll {
		tabs = append(tabs, styles.TabActive.Render(all))
	} else {
		tabs = append(tabs, styles.TabInactive.Render(all))
	}

	for _, tool := range tools {
		tab := fmt.Sprintf("%s (%d)", tool, counts[tool])
		if tool == activeTool {
			tabs = append(tabs, styles.TabActive.Render(tab))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(tab))
		}
	}

	fmt.Fprintf(w, "%s\n", strings.Join(tabs, "  |  "))
}

func renderGroups(w io.Writer, groups []findingGroup, styles *Styles, opts FormatOptions) {
	for gi, group := range groups {
		if gi > 0 {
			fmt.Fprintf(w, "\n")
		}
		fmt.Fprintf(w, "%s\n\n", styles.SectionTitle.Render(fmt.Sprintf("%s (%d)", group.Label, len(group.Findings))))
		for i, finding := range group.Findings {
			if i > 0 {
				fmt.Fprintf(w, "%s\n", styles.MutedText.Render(strings.Repeat("─", BoxWidth)))
			}
			renderFinding(w, finding, styles, opts.Blame[group.offsets[i]])
		}
	}
}

func renderFinding(w io.Writer, finding model.Finding, styles *Styles, blame *annotate.BlameInfo) {
	badge := styles.SeverityBadge(finding.Severity).Render(string(finding.Severity))
	fmt.Fprintf(w, "%s %s\n", badge, styles.FindingHeader.Render(finding.Message))
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "  Tool:           %s\n", finding.Tool)

	location := finding.Location
	if finding.LineNumber != nil {
		location = fmt.Sprintf("%s:%d", location, *finding.LineNumber)
	}
	fmt.Fprintf(w, "  Location:       %s\n", styles.LocationFg.Render(location))

	if finding.CVE != nil {
		cve := *finding.CVE
		if finding.Score != nil {
			cve = fmt.Sprintf("%s (score %.1f)", cve, *finding.Score)
		}
		fmt.Fprintf(w, "  CVE:            %s\n", cve)
	} else if finding.Score != nil {
		fmt.Fprintf(w, "  Score:          %.1f\n", *finding.Score)
	}

	if finding.Pattern != nil {
		fmt.Fprintf(w, "  Pattern:        %s\n", *finding.Pattern)
	}
	if finding.Description != nil {
		fmt.Fprintf(w, "  Description:    %s\n", *finding.Description)
	}
	if finding.Recommendation != nil {
		fmt.Fprintf(w, "  Recommendation: %s\n", *finding.Recommendation)
	}
	if blame != nil {
		fmt.Fprintf(w, "  Git Blame:      %s <%s> (%s, %s)\n",
			blame.Author, blame.Email, blame.Date, blame.CommitSHA)
	}
	fmt.Fprintf(w, "\n")
}

// groupFindings partitions the filtered list. Severity groups are ordered
// CRITICAL..LOW with unknown severities last; tool groups keep
// first-occurrence order.
func groupFindings(findings []model.Finding, groupBy string) []findingGroup {
	byKey := make(map[string]*findingGroup)
	var order []string

	for i, f := range findings {
		var key, label string
		switch groupBy {
		case "severity":
			key = string(f.Severity)
			label = key
			if cfg, ok := model.Config(f.Severity); ok {
				label = fmt.Sprintf("%s %s", cfg.Icon, key)
			}
		case "tool":
			key = f.Tool
			label = f.Tool
		default:
			key = "all"
			label = "All"
		}

		g, ok := byKey[key]
		if !ok {
			g = &findingGroup{Label: label}
			byKey[key] = g
			order = append(order, key)
		}
		g.Findings = append(g.Findings, f)
		g.offsets = append(g.offsets, i)
	}

	if groupBy == "severity" {
		sort.SliceStable(order, func(i, j int) bool {
			return model.Priority(model.Severity(order[i])) > model.Priority(model.Severity(order[j]))
		})
	}

	groups := make([]findingGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byKey[key])
	}
	return groups
}
