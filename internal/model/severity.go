package model

// SeverityConfig is per-severity display metadata. The table below is the
// single source of truth for colors, icons and ordering; it is built once
// and never mutated.
type SeverityConfig struct {
	Color    string // hex color token, shared with the terminal palette
	Icon     string
	Priority int // LOW=1 .. CRITICAL=4
}

var severityConfigs = map[Severity]SeverityConfig{
	SeverityCritical: {Color: "#DC2626", Icon: "🔴", Priority: 4},
	SeverityHigh:     {Color: "#EA580C", Icon: "🟠", Priority: 3},
	SeverityMedium:   {Color: "#CA8A04", Icon: "🟡", Priority: 2},
	SeverityLow:      {Color: "#2563EB", Icon: "🔵", Priority: 1},
}

// Config returns the display metadata for a severity. The second return
// is false for unrecognized values; callers get a zero config and must
// not treat that as fatal.
func Config(s Severity) (SeverityConfig, bool) {
	c, ok := severityConfigs[s]
	return c, ok
}

// Priority returns the numeric priority of a severity, 0 for unknown
// values so they sort after LOW.
func Priority(s Severity) int {
	return severityConfigs[s].Priority
}
