package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/unbound-force/critex/internal/critique"
)

// WriteText writes the critique summary as human-readable styled text
// to the writer. Output uses lipgloss for color and formatting when
// the output is a TTY; degrades gracefully for pipes and CI.
func WriteText(w io.Writer, records []critique.Record) error {
	s := DefaultStyles()
	summary := Summarize(records)

	var b strings.Builder

	fmt.Fprintln(&b, s.Header.Render("=== Critique Summary ==="))
	fmt.Fprintln(&b)

	rows := make([][]string, 0, 4)
	for _, row := range summary.Rows() {
		rows = append(rows, []string{
			row.Label,
			fmt.Sprintf("%d", row.Pass),
			fmt.Sprintf("%d", row.Fail),
			fmt.Sprintf("%d", row.Removed),
			row.PassRate,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if row >= 0 && row < len(rows) {
				switch col {
				case 1:
					return s.Pass
				case 2:
					if rows[row][2] != "0" {
						return s.Fail
					}
				case 3:
					if rows[row][3] != "0" {
						return s.Removed
					}
				}
			}
			return lipgloss.NewStyle()
		}).
		Headers("CATEGORY", "PASS", "FAIL", "REMOVED", "PASS RATE").
		Rows(rows...)

	fmt.Fprintln(&b, t)

	removed, excluded := 0, 0
	for _, rec := range records {
		if rec.Removed {
			removed++
		} else if !rec.Included {
			excluded++
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "%s  %d\n", s.SummaryLabel.Render("Records:"), len(records))
	fmt.Fprintf(&b, "%s  %d\n", s.SummaryLabel.Render("Removed:"), removed)
	fmt.Fprintf(&b, "%s  %d\n", s.SummaryLabel.Render("Excluded:"), excluded)

	_, err := io.WriteString(w, b.String())
	return err
}
