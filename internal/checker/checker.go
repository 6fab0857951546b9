// Package checker wires the comparison pipeline together: documents are
// normalized into token sequences, vectorized with TF-IDF, and scored
// pairwise by cosine similarity.
package checker

import (
	"github.com/yildizm/simcheck/internal/corpus"
	"github.com/yildizm/simcheck/internal/textproc"
	"github.com/yildizm/simcheck/internal/vectorize"
)

// Result holds the outcome of one comparison run.
type Result struct {
	Documents []*corpus.Document
	Pairs     []vectorize.PairResult
	Engine    *vectorize.Engine
}

// Run compares the given documents and returns every pairwise similarity
// score. Documents whose content normalizes to zero tokens stay in the
// corpus; they simply score 0.0 against everything.
func Run(documents []*corpus.Document, extraStopWords ...string) *Result {
	normalizer := textproc.NewNormalizer(extraStopWords...)

	tokenized := make([][]string, len(documents))
	names := make([]string, len(documents))
	for i, doc := range documents {
		tokenized[i] = normalizer.Preprocess(doc.Content)
		names[i] = doc.Name
	}

	vectors := vectorize.ComputeVectors(tokenized)
	engine := vectorize.NewEngine(vectors, names)

	return &Result{
		Documents: documents,
		Pairs:     engine.CompareAll(),
		Engine:    engine,
	}
}
