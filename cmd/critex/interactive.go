package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/unbound-force/critex/internal/critique"
	"github.com/unbound-force/critex/internal/report"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// summaryModel is the Bubble Tea model for browsing critique records.
type summaryModel struct {
	records  []critique.Record
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newSummaryModel(records []critique.Record) summaryModel {
	h := help.New()
	content := renderSummaryContent(records)
	return summaryModel{
		records: records,
		help:    h,
		keys:    defaultKeyMap,
		content: content,
	}
}

func renderSummaryContent(records []critique.Record) string {
	var sb strings.Builder

	removed := 0
	for _, rec := range records {
		if rec.Removed {
			removed++
		}
	}

	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("Critique Report: %d record(s), %d removed",
			len(records), removed)))
	sb.WriteString("\n\n")

	sb.WriteString(renderSummaryTable(report.Summarize(records)))
	sb.WriteString("\n\n")

	for i, rec := range records {
		sb.WriteString(tuiHeaderStyle.Render(fmt.Sprintf(
			"=== Problem %d (Paper: %s, Index: %d) ===",
			i+1, rec.PaperID, rec.ProblemIndex)))
		sb.WriteString("\n")
		sb.WriteString("    " + renderRecordStatus(rec))
		sb.WriteString("\n")

		if len(rec.Critiques) == 0 {
			sb.WriteString(statusStyle.Render("    No critiques recorded."))
			sb.WriteString("\n\n")
			continue
		}

		sb.WriteString(renderCritiqueTable(rec))
		sb.WriteString("\n\n")
	}

	return sb.String()
}

func renderSummaryTable(s report.Summary) string {
	rows := make([][]string, 0, 4)
	for _, row := range s.Rows() {
		rows = append(rows, []string{
			row.Label,
			fmt.Sprintf("%d", row.Pass),
			fmt.Sprintf("%d", row.Fail),
			fmt.Sprintf("%d", row.Removed),
			row.PassRate,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tuiBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tuiHeaderStyle
			}
			switch col {
			case 1:
				return passStyle
			case 2:
				return failStyle
			case 3:
				return removedStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("CATEGORY", "PASS", "FAIL", "REMOVED", "PASS RATE").
		Rows(rows...)

	return t.String()
}

// renderRecordStatus returns the one-line outcome for a record using
// the removed > excluded > refined precedence.
func renderRecordStatus(rec critique.Record) string {
	switch {
	case rec.Removed:
		return failStyle.Render("REMOVED: " + rec.RemovalReasonText())
	case !rec.Included:
		return failStyle.Render("EXCLUDED from dataset")
	case rec.RefinementSucceeded():
		return passStyle.Render("Refined")
	default:
		return failStyle.Render("Refinement failed")
	}
}

func renderCritiqueTable(rec critique.Record) string {
	rows := make([][]string, 0, len(critique.Categories))
	for _, cat := range critique.Categories {
		res, ok := rec.Critiques[cat]
		if !ok {
			continue
		}
		status := "error"
		if res != nil && !res.HasError() {
			if res.Flag(cat) {
				status = "pass"
			} else {
				status = "fail"
			}
		}
		rows = append(rows, []string{
			string(cat),
			status,
			fmt.Sprintf("%d", len(res.IssueList())),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tuiBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tuiHeaderStyle
			}
			if col == 1 && row >= 0 && row < len(rows) {
				switch rows[row][1] {
				case "pass":
					return passStyle
				case "fail", "error":
					return failStyle
				}
			}
			return lipgloss.NewStyle()
		}).
		Headers("CATEGORY", "STATUS", "ISSUES").
		Rows(rows...)

	return t.String()
}

func (m summaryModel) Init() tea.Cmd {
	return nil
}

func (m summaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 2
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m summaryModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveSummary launches the Bubble Tea TUI for browsing
// critique records.
func runInteractiveSummary(records []critique.Record) error {
	model := newSummaryModel(records)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
