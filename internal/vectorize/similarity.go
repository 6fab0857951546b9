package vectorize

import "math"

// Engine computes pairwise cosine similarity over a fixed set of document
// vectors. Vectors and names are never mutated after construction, so an
// Engine is safe for concurrent use without locking.
type Engine struct {
	vectors []WeightVector
	names   []string
}

// NewEngine creates an engine over index-aligned vectors and display names.
// The name list may be shorter than the vector list; missing entries fall
// back to a synthesized "DocumentN" name.
func NewEngine(vectors []WeightVector, names []string) *Engine {
	return &Engine{
		vectors: vectors,
		names:   names,
	}
}

// Len returns the number of documents held by the engine.
func (e *Engine) Len() int {
	return len(e.vectors)
}

// DotProduct sums weightA*weightB over terms present in both sparse
// vectors. It iterates the smaller map and probes the larger, bounding the
// cost by the sparser vector's size.
func DotProduct(a, b WeightVector) float64 {
	smaller, larger := a, b
	if len(b) < len(a) {
		smaller, larger = b, a
	}

	var sum float64
	for term, wa := range smaller {
		if wb, ok := larger[term]; ok {
			sum += wa * wb
		}
	}

	return sum
}

// Magnitude returns the Euclidean (L2) norm of a sparse vector.
func Magnitude(v WeightVector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// CosineSimilarity returns the cosine similarity of documents i and j.
// Out-of-range indices yield 0.0 rather than a panic, since indices may
// come from outside callers. Comparing a document with itself yields 1.0
// unconditionally. A zero-magnitude vector (empty document) compares as
// 0.0 against everything.
func (e *Engine) CosineSimilarity(i, j int) float64 {
	if i < 0 || i >= len(e.vectors) || j < 0 || j >= len(e.vectors) {
		return 0.0
	}
	if i == j {
		return 1.0
	}

	dot := DotProduct(e.vectors[i], e.vectors[j])
	magI := Magnitude(e.vectors[i])
	magJ := Magnitude(e.vectors[j])

	if magI == 0.0 || magJ == 0.0 {
		return 0.0
	}

	// All weights are non-negative, so the quotient lands in [0, 1].
	return dot / (magI * magJ)
}

// CompareAll scores every unordered document pair (i, j) with i < j exactly
// once, in nested-iteration order: all pairs with the smaller i first, then
// increasing j. For N documents it returns N*(N-1)/2 results.
func (e *Engine) CompareAll() []PairResult {
	numDocs := len(e.vectors)

	results := make([]PairResult, 0, numDocs*(numDocs-1)/2)
	for i := 0; i < numDocs; i++ {
		for j := i + 1; j < numDocs; j++ {
			results = append(results, PairResult{
				NameA: e.name(i),
				NameB: e.name(j),
				Score: e.CosineSimilarity(i, j),
			})
		}
	}

	return results
}

func (e *Engine) name(i int) string {
	if i < len(e.names) {
		return e.names[i]
	}
	return fallbackName(i)
}
