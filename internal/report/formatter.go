package report

import (
	"fmt"

	"github.com/yildizm/simcheck/internal/vectorize"
)

// Report bundles scored pairs with the flagging threshold. The similarity
// engine only produces raw scores; threshold policy lives here.
type Report struct {
	Results       []vectorize.PairResult
	Threshold     float64
	DocumentCount int
}

// Flagged reports whether a score crosses the plagiarism threshold.
// The comparison is strictly greater-than: a score exactly at the
// threshold is not flagged.
func (r *Report) Flagged(score float64) bool {
	return score > r.Threshold
}

// FlaggedCount returns the number of pairs above the threshold.
func (r *Report) FlaggedCount() int {
	count := 0
	for _, result := range r.Results {
		if r.Flagged(result.Score) {
			count++
		}
	}
	return count
}

// Formatter renders a report into bytes for a given output format.
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// New returns the formatter for the named format.
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "csv":
		return NewCSV(), nil
	case "json":
		return NewJSON(), nil
	case "text":
		return NewText(color), nil
	case "markdown":
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use csv, json, text, or markdown)", format)
	}
}
