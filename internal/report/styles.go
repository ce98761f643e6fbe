package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal summary output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for section headers.
	Header lipgloss.Style

	// TableHeader styles the header row of the summary table.
	TableHeader lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Pass styles pass counts.
	Pass lipgloss.Style

	// Fail styles non-zero fail counts.
	Fail lipgloss.Style

	// Removed styles non-zero removed counts.
	Removed lipgloss.Style

	// SummaryLabel styles totals-line labels.
	SummaryLabel lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Pass:    lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		Fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Removed: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),

		SummaryLabel: lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
