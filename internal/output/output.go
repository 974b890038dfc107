package output

import (
	"fmt"
	"io"

	"github.com/ashview/ashview/internal/annotate"
	"github.com/ashview/ashview/internal/model"
	"github.com/ashview/ashview/internal/report"
)

// FormatOptions carry the view state a formatter renders: the filter
// selection plus presentation choices.
type FormatOptions struct {
	// Selection drives which findings appear. Formatters apply it with
	// report.Filter, so output order follows the findings list.
	Selection report.Selection
	// GroupBy is one of "none", "severity", "tool".
	GroupBy string
	// Blame maps indexes of the filtered findings list to blame info,
	// when the caller enriched findings from a repository.
	Blame map[int]*annotate.BlameInfo
}

// Formatter renders a report for one output format.
type Formatter interface {
	Format(rep *model.Report, w io.Writer, opts FormatOptions) error
}

// GetFormatter returns the formatter for a --format value.
func GetFormatter(format string) (Formatter, error) {
	switch format {
	case "human":
		return &HumanFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
