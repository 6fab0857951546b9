package corpus

import "time"

// Document is one loaded submission. Created once by the scanner and never
// mutated afterwards; the comparison pipeline only reads it.
type Document struct {
	Name    string
	Path    string
	Content string
	Size    int64
	ModTime time.Time
}
