package ingestion

import (
	"fmt"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ExtractPDFPages reads the text layer of a PDF page by page. Pages whose
// text layer is empty are kept with empty text so callers can decide to
// OCR the whole document instead.
func ExtractPDFPages(path string) ([]Page, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]Page, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			text = ""
		}
		pages = append(pages, Page{Number: i, Text: strings.TrimSpace(text)})
	}
	return pages, nil
}
