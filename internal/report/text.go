package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// textFormatter renders the report as a terminal table with a styled
// summary line.
type textFormatter struct {
	color bool
}

// NewText creates a new terminal text formatter.
func NewText(color bool) Formatter {
	return &textFormatter{color: color}
}

func (f *textFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString(f.title("Plagiarism Check Results"))
	b.WriteString("\n\n")

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Student Pair", "Similarity", "Plagiarized"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	for _, result := range report.Results {
		flag := "No"
		if report.Flagged(result.Score) {
			flag = f.flagged("Yes")
		}
		tw.AppendRow(table.Row{
			fmt.Sprintf("%s vs %s", result.NameA, result.NameB),
			fmt.Sprintf("%.2f%%", result.Score*100),
			flag,
		})
	}

	b.WriteString(tw.Render())
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Documents: %d | Pairs: %d | Threshold: %.0f%% | Flagged: %d\n",
		report.DocumentCount, len(report.Results),
		report.Threshold*100, report.FlaggedCount())

	return []byte(b.String()), nil
}

func (f *textFormatter) title(s string) string {
	if !f.color {
		return s
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")).Render(s)
}

func (f *textFormatter) flagged(s string) string {
	if !f.color {
		return s
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")).Render(s)
}
