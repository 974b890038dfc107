package output

import (
	"encoding/json"
	"io"

	"github.com/ashview/ashview/internal/model"
	"github.com/ashview/ashview/internal/report"
)

// JSONFormatter emits the filtered report as indented JSON. Metadata is
// passed through untouched; the findings list is the filtered view.
type JSONFormatter struct{}

// Format writes the filtered report to w.
func (f *JSONFormatter) Format(rep *model.Report, w io.Writer, opts FormatOptions) error {
	filtered := model.Report{
		Findings: report.Filter(rep.Findings, opts.Selection),
		Metadata: rep.Metadata,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(filtered)
}
