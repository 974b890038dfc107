package report

import (
	"reflect"
	"testing"

	"github.com/ashview/ashview/internal/model"
)

func TestCountBySeverity(t *testing.T) {
	tests := []struct {
		name     string
		findings []model.Finding
		expected map[model.Severity]int
	}{
		{
			name:     "empty list yields all four zero buckets",
			findings: []model.Finding{},
			expected: map[model.Severity]int{
				model.SeverityCritical: 0,
				model.SeverityHigh:     0,
				model.SeverityMedium:   0,
				model.SeverityLow:      0,
			},
		},
		{
			name: "mixed severities",
			findings: []model.Finding{
				{Severity: model.SeverityCritical, Tool: "Grype"},
				{Severity: model.SeverityCritical, Tool: "Grype"},
				{Severity: model.SeverityHigh, Tool: "git-secrets"},
				{Severity: model.SeverityLow, Tool: "git-secrets"},
			},
			expected: map[model.Severity]int{
				model.SeverityCritical: 2,
				model.SeverityHigh:     1,
				model.SeverityMedium:   0,
				model.SeverityLow:      1,
			},
		},
		{
			name: "unrecognized severity lands in no bucket",
			findings: []model.Finding{
				{Severity: "BANANAS", Tool: "Grype"},
				{Severity: model.SeverityMedium, Tool: "Grype"},
			},
			expected: map[model.Severity]int{
				model.SeverityCritical: 0,
				model.SeverityHigh:     0,
				model.SeverityMedium:   1,
				model.SeverityLow:      0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := CountBySeverity(tt.findings)
			if !reflect.DeepEqual(counts, tt.expected) {
				t.Errorf("CountBySeverity() = %v, want %v", counts, tt.expected)
			}
		})
	}
}

func TestCountBySeverity_SumNeverExceedsInput(t *testing.T) {
	findings := []model.Finding{
		{Severity: model.SeverityCritical},
		{Severity: "UNKNOWN"},
		{Severity: model.SeverityLow},
		{Severity: ""},
	}

	sum := 0
	for _, c := range CountBySeverity(findings) {
		sum += c
	}
	if sum != 2 {
		t.Errorf("recognized-severity sum = %d, want 2", sum)
	}
	if sum > len(findings) {
		t.Errorf("sum %d exceeds findings length %d", sum, len(findings))
	}
	if got := TotalRecognized(findings); got != sum {
		t.Errorf("TotalRecognized() = %d, want %d", got, sum)
	}
}

func TestCountBySeverity_OrderIndependent(t *testing.T) {
	forward := []model.Finding{
		{Severity: model.SeverityCritical},
		{Severity: model.SeverityHigh},
		{Severity: model.SeverityLow},
	}
	reversed := []model.Finding{
		{Severity: model.SeverityLow},
		{Severity: model.SeverityHigh},
		{Severity: model.SeverityCritical},
	}

	if !reflect.DeepEqual(CountBySeverity(forward), CountBySeverity(reversed)) {
		t.Error("counts should not depend on findings order")
	}
}

func TestCountBySeverity_Idempotent(t *testing.T) {
	findings := []model.Finding{
		{Severity: model.SeverityHigh},
		{Severity: model.SeverityMedium},
	}

	first := CountBySeverity(findings)
	second := CountBySeverity(findings)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated invocation differs: %v vs %v", first, second)
	}
}

func TestDistinctTools(t *testing.T) {
	tests := []struct {
		name     string
		findings []model.Finding
		expected []string
	}{
		{
			name:     "empty list",
			findings: nil,
			expected: nil,
		},
		{
			name: "first-occurrence order preserved",
			findings: []model.Finding{
				{Tool: "Grype"},
				{Tool: "Grype"},
				{Tool: "git-secrets"},
				{Tool: "git-secrets"},
			},
			expected: []string{"Grype", "git-secrets"},
		},
		{
			name: "not alphabetical",
			findings: []model.Finding{
				{Tool: "Semgrep"},
				{Tool: "Bandit"},
				{Tool: "Checkov"},
				{Tool: "Bandit"},
			},
			expected: []string{"Semgrep", "Bandit", "Checkov"},
		},
		{
			name: "tool names are case-sensitive",
			findings: []model.Finding{
				{Tool: "grype"},
				{Tool: "Grype"},
			},
			expected: []string{"grype", "Grype"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tools := DistinctTools(tt.findings)
			if !reflect.DeepEqual(tools, tt.expected) {
				t.Errorf("DistinctTools() = %v, want %v", tools, tt.expected)
			}
		})
	}
}

func TestDistinctTools_NoDuplicates(t *testing.T) {
	findings := []model.Finding{
		{Tool: "Grype"}, {Tool: "Semgrep"}, {Tool: "Grype"}, {Tool: "Semgrep"}, {Tool: "Grype"},
	}

	tools := DistinctTools(findings)
	seen := map[string]bool{}
	for _, tool := range tools {
		if seen[tool] {
			t.Errorf("duplicate tool %q in %v", tool, tools)
		}
		seen[tool] = true
	}
}

func TestCountByTool(t *testing.T) {
	findings := []model.Finding{
		{Tool: "Grype"},
		{Tool: "Grype"},
		{Tool: "git-secrets"},
	}

	counts := CountByTool(findings)
	if counts["Grype"] != 2 {
		t.Errorf("Grype count = %d, want 2", counts["Grype"])
	}
	if counts["git-secrets"] != 1 {
		t.Errorf("git-secrets count = %d, want 1", counts["git-secrets"])
	}
	if len(counts) != 2 {
		t.Errorf("len(counts) = %d, want 2", len(counts))
	}
}
