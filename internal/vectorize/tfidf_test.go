package vectorize

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestTermFrequency(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected map[string]float64
	}{
		{
			name:     "empty document",
			tokens:   nil,
			expected: map[string]float64{},
		},
		{
			name:   "uniform frequencies",
			tokens: []string{"heap", "stack", "queue", "deque"},
			expected: map[string]float64{
				"heap": 0.25, "stack": 0.25, "queue": 0.25, "deque": 0.25,
			},
		},
		{
			name:   "repeated term",
			tokens: []string{"graph", "graph", "graph", "node"},
			expected: map[string]float64{
				"graph": 0.75, "node": 0.25,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := TermFrequency(tt.tokens)
			if len(tf) != len(tt.expected) {
				t.Fatalf("TermFrequency() has %d entries, want %d", len(tf), len(tt.expected))
			}
			for term, want := range tt.expected {
				if got := tf[term]; math.Abs(got-want) > epsilon {
					t.Errorf("TermFrequency()[%q] = %v, want %v", term, got, want)
				}
			}
		})
	}
}

func TestInverseDocFrequency(t *testing.T) {
	docs := [][]string{
		{"sorting", "algorithms"},
		{"sorting", "networks"},
		{"sorting", "hashing"},
	}
	vocab := Vocabulary(docs)
	idf := InverseDocFrequency(docs, vocab)

	// A term present in every document carries zero information.
	if got := idf["sorting"]; math.Abs(got) > epsilon {
		t.Errorf("idf[sorting] = %v, want 0", got)
	}

	// A term present in one of three documents scores log10(3).
	want := math.Log10(3)
	for _, term := range []string{"algorithms", "networks", "hashing"} {
		if got := idf[term]; math.Abs(got-want) > epsilon {
			t.Errorf("idf[%s] = %v, want %v", term, got, want)
		}
	}
}

func TestInverseDocFrequencyZeroCoverage(t *testing.T) {
	docs := [][]string{{"recursion"}}

	// A vocabulary term no document contains is defined as 0.0, not log(inf).
	idf := InverseDocFrequency(docs, []string{"recursion", "phantom"})
	if got := idf["phantom"]; got != 0.0 {
		t.Errorf("idf[phantom] = %v, want 0.0", got)
	}
}

func TestInverseDocFrequencyEmptyCorpus(t *testing.T) {
	idf := InverseDocFrequency(nil, nil)
	if len(idf) != 0 {
		t.Errorf("expected empty idf map for empty corpus, got %d entries", len(idf))
	}
}

func TestComputeVectors(t *testing.T) {
	docs := [][]string{
		{"tree", "tree", "graph"},
		{"graph", "cycle"},
	}

	vectors := ComputeVectors(docs)
	if len(vectors) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(vectors))
	}

	// "tree" appears only in doc 0: tf 2/3, idf log10(2).
	want := (2.0 / 3.0) * math.Log10(2)
	if got := vectors[0]["tree"]; math.Abs(got-want) > epsilon {
		t.Errorf("vectors[0][tree] = %v, want %v", got, want)
	}

	// "graph" appears in both docs, so its idf and weight are zero.
	if got := vectors[0]["graph"]; math.Abs(got) > epsilon {
		t.Errorf("vectors[0][graph] = %v, want 0", got)
	}

	// Terms absent from a document have no entry at all.
	if _, ok := vectors[1]["tree"]; ok {
		t.Error("vectors[1] should not contain an entry for absent term")
	}
}

func TestComputeVectorsEmptyCorpus(t *testing.T) {
	vectors := ComputeVectors(nil)
	if len(vectors) != 0 {
		t.Errorf("expected no vectors for empty corpus, got %d", len(vectors))
	}
}

func TestComputeVectorsEmptyDocument(t *testing.T) {
	vectors := ComputeVectors([][]string{{}, {"linked", "list"}})
	if len(vectors) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(vectors))
	}
	if len(vectors[0]) != 0 {
		t.Errorf("empty document should produce an empty vector, got %v", vectors[0])
	}
}
