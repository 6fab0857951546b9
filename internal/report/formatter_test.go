package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/yildizm/simcheck/internal/vectorize"
)

func sampleReport() *Report {
	return &Report{
		Results: []vectorize.PairResult{
			{NameA: "alice.txt", NameB: "bob.txt", Score: 0.875},
			{NameA: "alice.txt", NameB: "carol.txt", Score: 0.7},
			{NameA: "bob.txt", NameB: "carol.txt", Score: 0.125},
		},
		Threshold:     0.7,
		DocumentCount: 3,
	}
}

func TestCSVFormat(t *testing.T) {
	out, err := NewCSV().Format(sampleReport())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	expected := "Student Pair,Similarity Percentage,Plagiarized\n" +
		"\"alice.txt vs bob.txt\",87.50%,Yes\n" +
		"\"alice.txt vs carol.txt\",70.00%,No\n" +
		"\"bob.txt vs carol.txt\",12.50%,No\n"

	if string(out) != expected {
		t.Errorf("CSV output mismatch:\ngot:\n%s\nwant:\n%s", out, expected)
	}
}

func TestCSVFormatEmptyResults(t *testing.T) {
	out, err := NewCSV().Format(&Report{Threshold: 0.7})
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if string(out) != "Student Pair,Similarity Percentage,Plagiarized\n" {
		t.Errorf("expected header-only output, got %q", out)
	}
}

func TestFlaggedStrictInequality(t *testing.T) {
	r := &Report{Threshold: 0.7}

	tests := []struct {
		name  string
		score float64
		want  bool
	}{
		{"below threshold", 0.69, false},
		{"exactly at threshold", 0.7, false},
		{"above threshold", 0.700001, true},
		{"identical documents", 1.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Flagged(tt.score); got != tt.want {
				t.Errorf("Flagged(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	out, err := NewJSON().Format(sampleReport())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var parsed JSONOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if parsed.Summary.DocumentCount != 3 {
		t.Errorf("document_count = %d, want 3", parsed.Summary.DocumentCount)
	}
	if parsed.Summary.PairCount != 3 {
		t.Errorf("pair_count = %d, want 3", parsed.Summary.PairCount)
	}
	if parsed.Summary.FlaggedCount != 1 {
		t.Errorf("flagged_count = %d, want 1", parsed.Summary.FlaggedCount)
	}
	if !parsed.Pairs[0].Plagiarized {
		t.Error("first pair should be flagged")
	}
	if parsed.Pairs[1].Plagiarized {
		t.Error("pair at exactly the threshold must not be flagged")
	}
}

func TestTextFormat(t *testing.T) {
	out, err := NewText(false).Format(sampleReport())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	s := string(out)
	for _, want := range []string{
		"alice.txt vs bob.txt", "87.50%", "Threshold: 70%", "Flagged: 1",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("text output missing %q:\n%s", want, s)
		}
	}
}

func TestMarkdownFormat(t *testing.T) {
	out, err := NewMarkdown().Format(sampleReport())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	s := string(out)
	if !strings.Contains(s, "| alice.txt vs bob.txt | 87.50% | **Yes** |") {
		t.Errorf("markdown output missing flagged row:\n%s", s)
	}
	if !strings.Contains(s, "| bob.txt vs carol.txt | 12.50% | No |") {
		t.Errorf("markdown output missing unflagged row:\n%s", s)
	}
}

func TestNewFormatterFactory(t *testing.T) {
	for _, format := range []string{"csv", "json", "text", "markdown"} {
		if _, err := New(format, false); err != nil {
			t.Errorf("New(%q) error: %v", format, err)
		}
	}

	if _, err := New("xml", false); err == nil {
		t.Error("expected error for unsupported format")
	}
}
