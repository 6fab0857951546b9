package vectorize

import (
	"reflect"
	"testing"
)

func TestVocabulary(t *testing.T) {
	tests := []struct {
		name     string
		docs     [][]string
		expected []string
	}{
		{
			name:     "empty corpus",
			docs:     nil,
			expected: []string{},
		},
		{
			name:     "single document",
			docs:     [][]string{{"binary", "search", "tree"}},
			expected: []string{"binary", "search", "tree"},
		},
		{
			name: "duplicates collapse across documents",
			docs: [][]string{
				{"data", "structures", "data"},
				{"structures", "algorithms"},
			},
			expected: []string{"algorithms", "data", "structures"},
		},
		{
			name:     "empty documents contribute nothing",
			docs:     [][]string{{}, {"heap"}, {}},
			expected: []string{"heap"},
		},
		{
			name: "lexicographic ordering",
			docs: [][]string{{"zebra", "apple", "mango"}},
			expected: []string{"apple", "mango", "zebra"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocab := Vocabulary(tt.docs)
			if !reflect.DeepEqual(vocab, tt.expected) {
				t.Errorf("Vocabulary() = %v, want %v", vocab, tt.expected)
			}
		})
	}
}
