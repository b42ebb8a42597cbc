package ingestion

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ExtractPagesWithOCR runs OCR on images or scanned PDFs. PDFs are
// converted to per-page PNGs with pdftoppm (poppler) first, so the page
// numbering survives the OCR path too.
func ExtractPagesWithOCR(path string) ([]Page, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" {
		tmpPrefix := filepath.Join(os.TempDir(), "docqa_pdfimg")
		cmd := exec.Command("pdftoppm", "-png", path, tmpPrefix)
		if err := cmd.Run(); err != nil {
			return nil, fmt.Errorf("pdftoppm convert failed: %w", err)
		}
		matches, err := filepath.Glob(tmpPrefix + "-*.png")
		if err != nil {
			return nil, err
		}
		// pdftoppm suffixes are zero-padded, so lexical order is page order
		sort.Strings(matches)
		var pages []Page
		for i, m := range matches {
			text, err := runTesseract(m)
			if err != nil {
				continue
			}
			pages = append(pages, Page{Number: i + 1, Text: text})
		}
		return pages, nil
	}
	text, err := runTesseract(path)
	if err != nil {
		return nil, err
	}
	return []Page{{Number: 0, Text: text}}, nil
}

func runTesseract(imgPath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetImage(imgPath); err != nil {
		return "", err
	}
	text, err := client.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
