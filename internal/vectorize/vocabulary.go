package vectorize

import "sort"

// Vocabulary returns the set of distinct terms across all documents as a
// lexicographically sorted slice. Sorting keeps iteration order reproducible
// across runs; the TF-IDF weights themselves do not depend on it.
func Vocabulary(docs [][]string) []string {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, term := range doc {
			seen[term] = struct{}{}
		}
	}

	vocab := make([]string, 0, len(seen))
	for term := range seen {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	return vocab
}
