package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Page is one page of extracted text. Number is 1-based; it is 0 for
// formats without a page concept (plain text, markdown).
type Page struct {
	Number int
	Text   string
}

// ExtractPages detects the file type and returns per-page text, falling
// back to OCR for scanned PDFs and images.
func ExtractPages(path string) ([]Page, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return []Page{{Number: 0, Text: string(b)}}, nil
	case ".pdf":
		pages, err := ExtractPDFPages(path)
		if err == nil && hasText(pages) {
			return pages, nil
		}
		// scanned PDF: no text layer
		return ExtractPagesWithOCR(path)
	case ".png", ".jpg", ".jpeg":
		return ExtractPagesWithOCR(path)
	default:
		return nil, errors.New("unsupported file type")
	}
}

func hasText(pages []Page) bool {
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			return true
		}
	}
	return false
}
