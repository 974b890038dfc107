// Package report implements the aggregation and filtering engine over a
// scan's findings list. Everything here is a pure projection: no state,
// no mutation of the input, identical output for identical input.
package report

import (
	"github.com/ashview/ashview/internal/model"
)

// CountBySeverity tallies findings per severity. All four known severities
// are always present in the result, zero when absent from the input.
// Findings with an unrecognized severity land in no bucket, so the counts
// sum to the number of recognized-severity findings, never more than
// len(findings).
func CountBySeverity(findings []model.Finding) map[model.Severity]int {
	counts := map[model.Severity]int{
		model.SeverityCritical: 0,
		model.SeverityHigh:     0,
		model.SeverityMedium:   0,
		model.SeverityLow:      0,
	}
	for _, f := range findings {
		if f.Severity.Known() {
			counts[f.Severity]++
		}
	}
	return counts
}

// TotalRecognized sums the per-severity counts, i.e. the number of findings
// whose severity is one of the known four.
func TotalRecognized(findings []model.Finding) int {
	total := 0
	for _, c := range CountBySeverity(findings) {
		total += c
	}
	return total
}

// DistinctTools returns the unique tool identifiers in first-occurrence
// order. The order is deliberately not alphabetical: tool tabs keep a
// stable, input-derived ordering across renders.
func DistinctTools(findings []model.Finding) []string {
	seen := make(map[string]bool, len(findings))
	var tools []string
	for _, f := range findings {
		if !seen[f.Tool] {
			seen[f.Tool] = true
			tools = append(tools, f.Tool)
		}
	}
	return tools
}

// CountByTool tallies findings per tool identifier, keyed exactly
// (case-sensitive) like the tool filter.
func CountByTool(findings []model.Finding) map[string]int {
	counts := make(map[string]int, len(findings))
	for _, f := range findings {
		counts[f.Tool]++
	}
	return counts
}
