package report

import (
	"fmt"
	"strings"
)

// markdownFormatter renders the report as a markdown document, useful for
// CI logs and sharing results in issues.
type markdownFormatter struct{}

// NewMarkdown creates a new markdown formatter.
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Plagiarism Check Results\n\n")
	fmt.Fprintf(&b, "- **Documents**: %d\n", report.DocumentCount)
	fmt.Fprintf(&b, "- **Pairs compared**: %d\n", len(report.Results))
	fmt.Fprintf(&b, "- **Threshold**: %.0f%%\n", report.Threshold*100)
	fmt.Fprintf(&b, "- **Flagged**: %d\n\n", report.FlaggedCount())

	b.WriteString("| Student Pair | Similarity | Plagiarized |\n")
	b.WriteString("|--------------|-----------:|-------------|\n")

	for _, result := range report.Results {
		flag := "No"
		if report.Flagged(result.Score) {
			flag = "**Yes**"
		}
		fmt.Fprintf(&b, "| %s vs %s | %.2f%% | %s |\n",
			result.NameA, result.NameB, result.Score*100, flag)
	}

	return []byte(b.String()), nil
}
