package report

import (
	"github.com/ashview/ashview/internal/model"
)

// ToolAll is the active-tool sentinel meaning "no tool filter".
const ToolAll = "all"

// SeveritySet is the set of severities currently enabled. An empty set is
// valid and matches nothing.
type SeveritySet map[model.Severity]bool

// NewSeveritySet builds a set from the given severities.
func NewSeveritySet(severities ...model.Severity) SeveritySet {
	s := make(SeveritySet, len(severities))
	for _, sev := range severities {
		s[sev] = true
	}
	return s
}

// AllSeverities returns a set with all four known severities enabled.
func AllSeverities() SeveritySet {
	return NewSeveritySet(model.Severities...)
}

// Selection is the transient view state driving the filtered findings list:
// one active tool tab plus the severity toggle set. The two axes are
// independent; both predicates are ANDed when filtering.
type Selection struct {
	ActiveTool string
	Severities SeveritySet
}

// NewSelection returns the default selection: all tools, all severities.
func NewSelection() Selection {
	return Selection{
		ActiveTool: ToolAll,
		Severities: AllSeverities(),
	}
}

// ToggleSeverity flips membership of sev in the selection set: enabled
// severities are removed, disabled ones added.
func (s *Selection) ToggleSeverity(sev model.Severity) {
	if s.Severities == nil {
		s.Severities = SeveritySet{}
	}
	if s.Severities[sev] {
		delete(s.Severities, sev)
	} else {
		s.Severities[sev] = true
	}
}

// SelectTool replaces the active tool tab. Passing ToolAll (or "") resets
// the tool axis to "all tools"; the severity axis is untouched.
func (s *Selection) SelectTool(tool string) {
	if tool == "" {
		tool = ToolAll
	}
	s.ActiveTool = tool
}

// Filter returns the findings passing both the tool and the severity
// predicate, preserving input order. Tool matching is exact and
// case-sensitive. The input slice is never modified.
func Filter(findings []model.Finding, sel Selection) []model.Finding {
	filtered := make([]model.Finding, 0, len(findings))
	for _, f := range findings {
		if sel.ActiveTool != ToolAll && f.Tool != sel.ActiveTool {
			continue
		}
		if !sel.Severities[f.Severity] {
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered
}
