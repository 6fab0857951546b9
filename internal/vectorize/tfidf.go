package vectorize

import "math"

// TermFrequency computes the term frequency map for a single document:
// count(term) / total tokens. An empty document yields an empty map, which
// later becomes a zero-magnitude vector.
func TermFrequency(tokens []string) map[string]float64 {
	tf := make(map[string]float64)
	if len(tokens) == 0 {
		return tf
	}

	counts := make(map[string]int)
	for _, term := range tokens {
		counts[term]++
	}

	total := float64(len(tokens))
	for term, count := range counts {
		tf[term] = float64(count) / total
	}

	return tf
}

// InverseDocFrequency computes log10(totalDocs / docCount) for every
// vocabulary term, where docCount is the number of documents containing the
// term at least once. A term with zero document coverage gets 0.0 instead
// of log of infinity.
func InverseDocFrequency(docs [][]string, vocab []string) map[string]float64 {
	idf := make(map[string]float64, len(vocab))
	if len(docs) == 0 {
		return idf
	}

	docCounts := make(map[string]int)
	for _, doc := range docs {
		unique := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			unique[term] = struct{}{}
		}
		for term := range unique {
			docCounts[term]++
		}
	}

	totalDocs := float64(len(docs))
	for _, term := range vocab {
		if count := docCounts[term]; count > 0 {
			idf[term] = math.Log10(totalDocs / float64(count))
		} else {
			idf[term] = 0.0
		}
	}

	return idf
}

// ComputeVectors builds one sparse TF-IDF vector per document, in input
// order. Only terms present in a document carry entries; a term appearing
// in every document keeps an explicit 0.0 weight from its zero IDF.
func ComputeVectors(docs [][]string) []WeightVector {
	vectors := make([]WeightVector, 0, len(docs))
	if len(docs) == 0 {
		return vectors
	}

	vocab := Vocabulary(docs)
	idf := InverseDocFrequency(docs, vocab)

	for _, doc := range docs {
		tf := TermFrequency(doc)
		vec := make(WeightVector, len(tf))
		for term, freq := range tf {
			vec[term] = freq * idf[term]
		}
		vectors = append(vectors, vec)
	}

	return vectors
}
