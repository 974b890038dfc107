// Package output renders scan reports for the terminal.
package output

import (
	"os"

	"github.com/ashview/ashview/internal/cli"
	"github.com/ashview/ashview/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette - Tailwind hex tokens, shared with model.SeverityConfig so
// the terminal dashboard and the HTML dashboard agree on severity colors.
// AdaptiveColor selects the Light/Dark variant from the terminal background.
var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"} // green-600 / green-500
	colorMuted   = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#6B7280"} // gray-600 / gray-500
	colorAccent  = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#7C3AED"} // purple-600
	colorBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"} // gray-300 / gray-700
	colorBright  = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#FFFFFF"} // gray-800 / white
)

// Styles holds all lipgloss styles for consistent formatting.
type Styles struct {
	// Per-severity badge (colored background) and text (colored foreground)
	// styles, keyed by the four known severities.
	Badge map[model.Severity]lipgloss.Style
	Text  map[model.Severity]lipgloss.Style

	// Section headers
	HeaderBanner  lipgloss.Style
	SectionTitle  lipgloss.Style
	FindingHeader lipgloss.Style

	// Tool tabs
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Status indicators
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	MutedText   lipgloss.Style

	// Summary dashboard
	SummaryBox lipgloss.Style

	// Miscellaneous
	Bold       lipgloss.Style
	LocationFg lipgloss.Style
	Duration   lipgloss.Style
}

// DefaultStyles returns the default style configuration. Severity colors
// come straight from the model's severity table.
func DefaultStyles() *Styles {
	badges := make(map[model.Severity]lipgloss.Style, len(model.Severities))
	texts := make(map[model.Severity]lipgloss.Style, len(model.Severities))
	for _, sev := range model.Severities {
		cfg, _ := model.Config(sev)
		c := lipgloss.Color(cfg.Color)
		badges[sev] = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(c).
			Padding(0, 1)
		texts[sev] = lipgloss.NewStyle().Bold(true).Foreground(c)
	}

	return &Styles{
		Badge: badges,
		Text:  texts,

		HeaderBanner:  lipgloss.NewStyle().Bold(true).Foreground(colorBright),
		SectionTitle:  lipgloss.NewStyle().Bold(true).Foreground(colorBright),
		FindingHeader: lipgloss.NewStyle().Bold(true).Foreground(colorBright),

		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true),
		TabInactive: lipgloss.NewStyle().Foreground(colorMuted),

		SuccessText: lipgloss.NewStyle().Foreground(colorSuccess),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}),
		MutedText:   lipgloss.NewStyle().Foreground(colorMuted),

		SummaryBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),

		Bold:       lipgloss.NewStyle().Bold(true),
		LocationFg: lipgloss.NewStyle().Bold(true).Foreground(colorBright),
		Duration:   lipgloss.NewStyle().Bold(true),
	}
}

// NoColorStyles returns styles with all formatting disabled (for --color=never).
func NoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	badges := make(map[model.Severity]lipgloss.Style, len(model.Severities))
	texts := make(map[model.Severity]lipgloss.Style, len(model.Severities))
	for _, sev := range model.Severities {
		badges[sev] = plain
		texts[sev] = plain
	}
	return &Styles{
		Badge: badges,
		Text:  texts,

		HeaderBanner:  plain,
		SectionTitle:  plain,
		FindingHeader: plain,

		TabActive:   plain,
		TabInactive: plain,

		SuccessText: plain,
		WarningText: plain,
		MutedText:   plain,

		// The box outline is structure, not color; keep it.
		SummaryBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			Padding(0, 1),

		Bold:       plain,
		LocationFg: plain,
		Duration:   plain,
	}
}

// currentStyles holds the active style set
var currentStyles *Styles

// lipglossInitialized tracks whether the lipgloss renderer has been configured
var lipglossInitialized bool

// GetStyles returns the current style set based on color mode
func GetStyles() *Styles {
	if currentStyles == nil {
		SyncStylesWithColorMode()
	}
	return currentStyles
}

// SyncStylesWithColorMode updates the styles based on the current color mode
func SyncStylesWithColorMode() {
	// Initialize lipgloss renderer once (configure to output to stderr)
	if !lipglossInitialized {
		lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stderr))
		lipglossInitialized = true
	}

	if cli.ColorsEnabled() {
		currentStyles = DefaultStyles()
		if cli.ColorsForced() {
			// --color=always: force TrueColor regardless of TTY detection
			lipgloss.SetColorProfile(termenv.TrueColor)
		} else {
			lipgloss.SetColorProfile(lipgloss.ColorProfile())
		}
	} else {
		currentStyles = NoColorStyles()
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// SeverityText returns the text style for a severity, falling back to the
// muted style for unrecognized values.
func (s *Styles) SeverityText(severity model.Severity) lipgloss.Style {
	if st, ok := s.Text[severity]; ok {
		return st
	}
	return s.MutedText
}

// SeverityBadge returns the badge style for a severity, falling back to the
// muted style for unrecognized values.
func (s *Styles) SeverityBadge(severity model.Severity) lipgloss.Style {
	if st, ok := s.Badge[severity]; ok {
		return st
	}
	return s.MutedText
}

// Box drawing constants for consistency
const (
	BoxWidth    = 63  // Default summary box width (fallback)
	MinBoxWidth = 60  // Minimum usable width
	MaxBoxWidth = 120 // Cap to prevent overly wide output
	BoxPadding  = 4   // Margin from terminal edge
)

// TerminalWidth detects the current terminal width with fallbacks.
// Returns BoxWidth if detection fails (non-TTY, pipe, etc.)
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil || w <= 0 {
		return BoxWidth
	}
	usable := w - BoxPadding
	if usable < MinBoxWidth {
		return MinBoxWidth
	}
	if usable > MaxBoxWidth {
		return MaxBoxWidth
	}
	return usable
}
