package textproc

import (
	"reflect"
	"testing"
)

func TestPreprocess(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "empty input",
			text:     "",
			expected: []string{},
		},
		{
			name:     "whitespace only",
			text:     "   \n\t  ",
			expected: []string{},
		},
		{
			name:     "lowercasing",
			text:     "Binary SEARCH Tree",
			expected: []string{"binary", "search", "tree"},
		},
		{
			name:     "punctuation stripped to whitespace",
			text:     "stacks, queues; and (deques)!",
			expected: []string{"stacks", "queues", "deques"},
		},
		{
			name:     "stopwords removed",
			text:     "data structures are useful",
			expected: []string{"data", "structures", "useful"},
		},
		{
			name:     "hyphenated words split",
			text:     "depth-first search",
			expected: []string{"depth", "search"}, // "first" is a stopword
		},
		{
			name:     "digits kept",
			text:     "chapter 12 covers b-trees",
			expected: []string{"chapter", "12", "covers", "b", "trees"},
		},
		{
			name:     "only stopwords",
			text:     "the and of to",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Preprocess(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Preprocess(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestPreprocessExtraStopWords(t *testing.T) {
	n := NewNormalizer("Lorem", "ipsum ")

	got := n.Preprocess("lorem ipsum dolor")
	want := []string{"dolor"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Preprocess() = %v, want %v", got, want)
	}
}

func TestIsStopWord(t *testing.T) {
	n := NewNormalizer()

	if !n.IsStopWord("The") {
		t.Error("expected The to be a stopword")
	}
	if n.IsStopWord("algorithm") {
		t.Error("algorithm should not be a stopword")
	}
}
