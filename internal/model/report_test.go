package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSeverityKnown(t *testing.T) {
	tests := []struct {
		severity Severity
		known    bool
	}{
		{SeverityCritical, true},
		{SeverityHigh, true},
		{SeverityMedium, true},
		{SeverityLow, true},
		{"INFO", false},
		{"critical", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.severity.Known(); got != tt.known {
			t.Errorf("Known(%q) = %v, want %v", tt.severity, got, tt.known)
		}
	}
}

func TestSeverityConfigTable(t *testing.T) {
	seenPriorities := map[int]Severity{}
	for _, sev := range Severities {
		cfg, ok := Config(sev)
		if !ok {
			t.Fatalf("no config for %s", sev)
		}
		if cfg.Priority < 1 || cfg.Priority > 4 {
			t.Errorf("%s priority %d outside 1-4", sev, cfg.Priority)
		}
		if prev, dup := seenPriorities[cfg.Priority]; dup {
			t.Errorf("%s and %s share priority %d", sev, prev, cfg.Priority)
		}
		seenPriorities[cfg.Priority] = sev
		if !strings.HasPrefix(cfg.Color, "#") || len(cfg.Color) != 7 {
			t.Errorf("%s color %q is not a hex token", sev, cfg.Color)
		}
		if cfg.Icon == "" {
			t.Errorf("%s has no icon", sev)
		}
	}

	if Priority(SeverityLow) != 1 {
		t.Errorf("LOW priority = %d, want 1", Priority(SeverityLow))
	}
	if Priority(SeverityCritical) != 4 {
		t.Errorf("CRITICAL priority = %d, want 4", Priority(SeverityCritical))
	}
}

func TestSeverityConfig_UnknownSeverity(t *testing.T) {
	if _, ok := Config("BANANAS"); ok {
		t.Error("Config should report unknown severities")
	}
	if Priority("BANANAS") != 0 {
		t.Errorf("unknown priority = %d, want 0", Priority("BANANAS"))
	}
}

func TestFinding_OptionalFieldsAbsentVsEmpty(t *testing.T) {
	// Absent fields stay absent through a round-trip.
	absent := Finding{
		Tool:     "Grype",
		Severity: SeverityHigh,
		Message:  "msg",
		Location: "pom.xml",
	}
	data, err := json.Marshal(absent)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "description") {
		t.Errorf("absent description serialized: %s", data)
	}
	if strings.Contains(string(data), "lineNumber") {
		t.Errorf("absent lineNumber serialized: %s", data)
	}

	// Present-but-empty is a different value than absent.
	empty := ""
	withEmpty := absent
	withEmpty.Description = &empty
	data, err = json.Marshal(withEmpty)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"description":""`) {
		t.Errorf("empty description dropped: %s", data)
	}

	var back Finding
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Description == nil || *back.Description != "" {
		t.Error("empty description did not survive the round-trip")
	}
	if back.Recommendation != nil {
		t.Error("absent recommendation materialized on the round-trip")
	}
}

func TestFinding_NumericOptionalsRoundTrip(t *testing.T) {
	line := 14
	score := 0.0
	f := Finding{
		Tool:       "git-secrets",
		Severity:   SeverityCritical,
		Message:    "key committed",
		Location:   "deploy.env",
		LineNumber: &line,
		Score:      &score,
	}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Finding
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.LineNumber == nil || *back.LineNumber != 14 {
		t.Error("lineNumber lost")
	}
	// A zero score is meaningful and distinct from "no score".
	if back.Score == nil || *back.Score != 0.0 {
		t.Error("zero score lost")
	}
}
