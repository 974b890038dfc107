// Package model defines the ASH scan report data types.
package model

type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Severities lists the known severity values in descending display order.
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
}

// Known reports whether s is one of the four recognized severity values.
// Matching is exact; findings carrying anything else stay in the findings
// list but are excluded from severity buckets.
func (s Severity) Known() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Finding is one scanner-reported issue. Optional fields are pointers so
// that "field omitted by the producing tool" survives JSON round-trips
// distinctly from "field present but empty".
type Finding struct {
	Tool           string   `json:"tool"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Location       string   `json:"location"`
	Description    *string  `json:"description,omitempty"`
	Recommendation *string  `json:"recommendation,omitempty"`
	LineNumber     *int     `json:"lineNumber,omitempty"`
	Pattern        *string  `json:"pattern,omitempty"`
	CVE            *string  `json:"cve,omitempty"`
	Score          *float64 `json:"score,omitempty"`
}

// ScanMetadata carries scan-level context. TotalFindings is whatever the
// scanner wrote and may disagree with len(Report.Findings); displayed counts
// are always derived from the findings slice, never from this field.
type ScanMetadata struct {
	ScanDate      string   `json:"scanDate"`
	TotalFindings int      `json:"totalFindings"`
	Tools         []string `json:"tools"`
	Duration      *float64 `json:"duration,omitempty"`
	Version       *string  `json:"version,omitempty"`
}

// Report is the unit persisted to JSON and embedded into the generated
// HTML artifact. Once constructed it is treated as immutable; every view
// is a pure projection over it.
type Report struct {
	Findings []Finding    `json:"findings"`
	Metadata ScanMetadata `json:"metadata"`
}
