package model

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ashview/ashview/internal/logging"
)

// DataScriptID tags the JSON block inside a generated report so loaders
// (this package and the in-browser dashboard alike) can find it.
const DataScriptID = "scan-data"

//go:embed sample.json
var sampleJSON []byte

// SampleJSON returns the raw built-in sample dataset.
func SampleJSON() []byte {
	return sampleJSON
}

// SampleReport returns the built-in fallback dataset. The embedded JSON is
// validated by tests, so a decode failure here means a broken build.
func SampleReport() *Report {
	r, err := ParseReport(sampleJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded sample report is invalid: %v", err))
	}
	return r
}

// ParseReport decodes a Report from raw JSON and logs a single warning
// when findings carry severities outside the known four. Such findings
// stay in the list; only severity bucketing ignores them.
func ParseReport(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report JSON: %w", err)
	}

	unknown := 0
	for _, f := range r.Findings {
		if !f.Severity.Known() {
			unknown++
		}
	}
	if unknown > 0 {
		logging.L().Warnf("%d finding(s) have an unrecognized severity and will be excluded from severity counts", unknown)
	}

	return &r, nil
}

// LoadReport reads a Report from path. JSON files are parsed directly; HTML
// files are searched for the tagged data block a generated report embeds.
// Mirroring the browser loader, content that is present but unparsable (or
// an HTML file without a data block) falls back to the built-in sample with
// a warning. An unreadable path is an error.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		embedded, ok := ExtractEmbedded(data)
		if !ok {
			logging.L().Warnf("%s has no embedded scan data, using sample data", path)
			return SampleReport(), nil
		}
		data = embedded
	}

	r, err := ParseReport(data)
	if err != nil {
		logging.L().Warnf("%s: %v, using sample data", path, err)
		return SampleReport(), nil
	}
	return r, nil
}

// ExtractEmbedded pulls the raw JSON out of the tagged script block of a
// generated report document. Returns false when the block is absent.
func ExtractEmbedded(html []byte) ([]byte, bool) {
	open := []byte(fmt.Sprintf(`<script id=%q type="application/json">`, DataScriptID))
	start := bytes.Index(html, open)
	if start < 0 {
		return nil, false
	}
	rest := html[start+len(open):]
	end := bytes.Index(rest, []byte("</script>"))
	if end < 0 {
		return nil, false
	}
	return bytes.TrimSpace(rest[:end]), true
}
