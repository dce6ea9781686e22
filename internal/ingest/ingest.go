// Package ingest extracts plain text from uploaded manuscript files so
// the chapter segmenter can work on it. Headings found in the source
// format are preserved as markdown-style "# " lines, which is exactly
// the marker the segmenter recognizes.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned for file types no extractor handles.
var ErrUnsupported = errors.New("unsupported file type")

// Extract reads the file at path and returns its text content. The
// extractor is chosen by extension: plain text and markdown pass
// through unchanged, PDF and EPUB are converted to text with headings
// marked as "# " lines.
func Extract(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md", ".markdown", ".text":
		return extractPlain(path)
	case ".pdf":
		return extractPDF(path)
	case ".epub":
		return extractEPUB(path)
	case ".docx", ".doc":
		return "", fmt.Errorf("%w: %s (convert to PDF, EPUB, or markdown)", ErrUnsupported, ext)
	default:
		return "", fmt.Errorf("%w: %s (use PDF, EPUB, TXT, or MD)", ErrUnsupported, ext)
	}
}

// extractPlain reads a text file as UTF-8, replacing invalid bytes.
func extractPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
