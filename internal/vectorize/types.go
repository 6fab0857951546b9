package vectorize

import "strconv"

// WeightVector is a sparse TF-IDF vector keyed by term. Terms absent from
// the document carry no entry; their weight is zero by definition, and
// dot products and magnitudes are unaffected by the omission.
type WeightVector map[string]float64

// PairResult holds the similarity score for one unordered document pair.
type PairResult struct {
	NameA string
	NameB string
	Score float64
}

// fallbackName synthesizes a stable display name for a document index
// that has no entry in the name list.
func fallbackName(index int) string {
	return "Document" + strconv.Itoa(index)
}
