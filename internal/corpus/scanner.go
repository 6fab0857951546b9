package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// readableExtensions are formats the scanner can extract text from.
var readableExtensions = map[string]bool{
	".txt": true,
}

// recognizedExtensions are formats the scanner accepts as submissions.
// Binary formats are recognized so the user gets a warning instead of the
// file silently disappearing from the report.
var recognizedExtensions = map[string]bool{
	".txt":  true,
	".pdf":  true,
	".docx": true,
}

// IsSupported reports whether a file name carries a recognized submission
// extension.
func IsSupported(name string) bool {
	return recognizedExtensions[strings.ToLower(filepath.Ext(name))]
}

// defaultExcludeDirs are directory names skipped when the caller does not
// configure an exclusion list.
var defaultExcludeDirs = []string{"node_modules", ".git", ".svn", "vendor"}

// Scanner collects submission documents from a directory or an explicit
// file list.
type Scanner struct {
	excludeDirs []string
}

// NewScanner creates a scanner. The given directory names (glob patterns
// allowed) are skipped while scanning; with none, the default exclusions
// apply.
func NewScanner(excludeDirs ...string) *Scanner {
	if len(excludeDirs) == 0 {
		excludeDirs = defaultExcludeDirs
	}
	return &Scanner{excludeDirs: excludeDirs}
}

// ScanDirectory walks dir recursively and loads every readable submission
// file. Hidden and excluded directories are skipped. Unreadable or
// unsupported files produce a warning on stderr and are skipped; the scan
// itself only fails when the directory cannot be walked. Results are sorted
// by name for a stable comparison order.
func (s *Scanner) ScanDirectory(dir string) ([]*Document, error) {
	var documents []*Document

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			for _, exclude := range s.excludeDirs {
				if matched, _ := filepath.Match(exclude, name); matched {
					return filepath.SkipDir
				}
			}
			if strings.HasPrefix(name, ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !recognizedExtensions[ext] {
			return nil
		}

		doc, err := s.ScanFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", path, err)
			return nil
		}
		if doc != nil {
			documents = append(documents, doc)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", dir, err)
	}

	sort.Slice(documents, func(i, j int) bool {
		return documents[i].Name < documents[j].Name
	})

	return documents, nil
}

// ScanFiles loads an explicit list of submission files. Unlike directory
// scanning, a file that cannot be read is a hard error: the caller named it
// and should hear about the failure.
func (s *Scanner) ScanFiles(paths []string) ([]*Document, error) {
	documents := make([]*Document, 0, len(paths))

	for _, path := range paths {
		doc, err := s.ScanFile(path)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			fmt.Fprintf(os.Stderr, "Warning: %s has no readable content, skipping\n", path)
			continue
		}
		documents = append(documents, doc)
	}

	return documents, nil
}

// ScanFile loads a single submission. It returns (nil, nil) for files whose
// content is empty after extraction, matching the pipeline rule that empty
// files carry no signal and are dropped before tokenization.
func (s *Scanner) ScanFile(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	content, err := extractText(path)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, nil
	}

	return &Document{
		Name:    filepath.Base(path),
		Path:    path,
		Content: content,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// extractText dispatches on file extension. Only plain text is readable;
// binary document formats are recognized but produce a warning and no
// content.
func extractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt":
		data, err := os.ReadFile(path) //nolint:gosec // submission paths come from the user
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", path, err)
		}
		return string(data), nil
	case ".pdf", ".docx":
		fmt.Fprintf(os.Stderr, "Warning: %s reading not supported, file %s cannot be read\n",
			strings.TrimPrefix(ext, "."), path)
		return "", nil
	default:
		return "", fmt.Errorf("unsupported file type %q for %s", ext, path)
	}
}
