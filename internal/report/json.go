package report

import "encoding/json"

// jsonFormatter renders the report as indented JSON.
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter.
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// JSONOutput is the top-level JSON report structure.
type JSONOutput struct {
	Summary *SummaryOutput `json:"summary"`
	Pairs   []*PairOutput  `json:"pairs"`
}

// SummaryOutput summarizes the comparison run.
type SummaryOutput struct {
	DocumentCount int     `json:"document_count"`
	PairCount     int     `json:"pair_count"`
	Threshold     float64 `json:"threshold"`
	FlaggedCount  int     `json:"flagged_count"`
}

// PairOutput is one scored document pair.
type PairOutput struct {
	DocumentA   string  `json:"document_a"`
	DocumentB   string  `json:"document_b"`
	Similarity  float64 `json:"similarity"`
	Plagiarized bool    `json:"plagiarized"`
}

func (f *jsonFormatter) Format(report *Report) ([]byte, error) {
	pairs := make([]*PairOutput, 0, len(report.Results))
	for _, result := range report.Results {
		pairs = append(pairs, &PairOutput{
			DocumentA:   result.NameA,
			DocumentB:   result.NameB,
			Similarity:  result.Score,
			Plagiarized: report.Flagged(result.Score),
		})
	}

	output := &JSONOutput{
		Summary: &SummaryOutput{
			DocumentCount: report.DocumentCount,
			PairCount:     len(report.Results),
			Threshold:     report.Threshold,
			FlaggedCount:  report.FlaggedCount(),
		},
		Pairs: pairs,
	}

	return json.MarshalIndent(output, "", "  ")
}
