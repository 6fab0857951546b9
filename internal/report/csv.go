package report

import (
	"fmt"
	"strings"
)

// csvFormatter renders the persisted CSV report format:
//
//	Student Pair,Similarity Percentage,Plagiarized
//	"alice.txt vs bob.txt",87.50%,Yes
//
// The pair field is always quoted, so rows are assembled by hand rather
// than through encoding/csv, which only quotes fields that need it.
type csvFormatter struct{}

// NewCSV creates a new CSV formatter.
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder
	b.WriteString("Student Pair,Similarity Percentage,Plagiarized\n")

	for _, result := range report.Results {
		flag := "No"
		if report.Flagged(result.Score) {
			flag = "Yes"
		}
		fmt.Fprintf(&b, "\"%s vs %s\",%.2f%%,%s\n",
			result.NameA, result.NameB, result.Score*100, flag)
	}

	return []byte(b.String()), nil
}
