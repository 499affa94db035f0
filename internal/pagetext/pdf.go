package pagetext

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

// PDFSource extracts per-page text from PDF rulebooks. It tries the Go
// library first, then falls back to pdftotext if enabled and available.
type PDFSource struct {
	FallbackPdftotext bool
}

func (s *PDFSource) Pages(r io.Reader, filename string) ([]rulebook.PageText, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "campaign-console-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	pages, err := extractPDFPages(tmpPath)
	if err != nil && s.FallbackPdftotext {
		pages, err = extractPdftotextPages(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	return pages, nil
}

func extractPDFPages(path string) ([]rulebook.PageText, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pages []rulebook.PageText
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, rulebook.PageText{Text: text, PageNumber: i})
	}
	return pages, nil
}

func extractPdftotextPages(path string) ([]rulebook.PageText, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}

	// pdftotext separates pages with form feeds.
	var pages []rulebook.PageText
	for i, page := range strings.Split(string(out), "\f") {
		pages = append(pages, rulebook.PageText{Text: page, PageNumber: i + 1})
	}
	return pages, nil
}
