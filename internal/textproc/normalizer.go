package textproc

import (
	"regexp"
	"strings"
)

// nonWord matches runs of characters that are neither letters nor digits;
// they are replaced by spaces before tokenization.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Normalizer turns raw document text into a sequence of lowercase,
// punctuation-stripped, stopword-filtered tokens. The stopword set is built
// once at construction and never mutated, so a single Normalizer may be
// shared freely.
type Normalizer struct {
	stopWords map[string]struct{}
}

// NewNormalizer creates a normalizer with the default English stopword set.
// Extra stopwords are merged in lowercase.
func NewNormalizer(extraStopWords ...string) *Normalizer {
	stopWords := make(map[string]struct{}, len(defaultStopWords)+len(extraStopWords))
	for _, w := range defaultStopWords {
		stopWords[w] = struct{}{}
	}
	for _, w := range extraStopWords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			stopWords[w] = struct{}{}
		}
	}
	return &Normalizer{stopWords: stopWords}
}

// Preprocess runs the full cleaning pipeline: lowercase, punctuation
// stripped to whitespace, whitespace tokenization, stopword and empty
// token removal.
func (n *Normalizer) Preprocess(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := nonWord.ReplaceAllString(lowered, " ")

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, token := range fields {
		if _, stop := n.stopWords[token]; stop {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens
}

// IsStopWord reports whether the normalizer filters the given token.
func (n *Normalizer) IsStopWord(token string) bool {
	_, ok := n.stopWords[strings.ToLower(token)]
	return ok
}
