package textproc

// defaultStopWords lists common English words carrying no signal for
// document comparison.
var defaultStopWords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
	"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
	"to", "was", "will", "with", "this", "but", "they", "have",
	"had", "what", "said", "each", "which", "their", "time", "if",
	"up", "out", "many", "then", "them", "these", "so", "some", "her",
	"would", "make", "like", "into", "him", "two", "more",
	"very", "after", "words", "long", "than", "first", "been", "call",
	"who", "oil", "sit", "now", "find", "down", "day", "did", "get",
	"come", "made", "may", "part",
}
