package pagetext

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

// Source extracts the ordered per-page text sequence from an uploaded
// rulebook. Implementations never return pages out of order; empty pages
// are allowed and skipped downstream.
type Source interface {
	Pages(r io.Reader, filename string) ([]rulebook.PageText, error)
}

// SupportedExtensions lists file extensions this service can ingest.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
	".csv":  true,
}

// ForFile returns the appropriate page-text source for a filename.
func ForFile(filename string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".pdf":
		return &PDFSource{}, nil
	case ".docx":
		return &DOCXSource{}, nil
	case ".csv":
		return &CSVSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// syntheticPageRunes is the page budget for formats that have no physical
// pages (docx, markdown, html, plain text without form feeds).
const syntheticPageRunes = 4000

// paginate splits flowed text into synthetic pages at paragraph boundaries
// so that no paragraph is cut across a page. Page numbers start at 1.
func paginate(text string) []rulebook.PageText {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var pages []rulebook.PageText
	var current strings.Builder
	currentRunes := 0
	pageNum := 1

	flush := func() {
		t := strings.TrimSpace(current.String())
		if t != "" {
			pages = append(pages, rulebook.PageText{Text: t, PageNumber: pageNum})
			pageNum++
		}
		current.Reset()
		currentRunes = 0
	}

	for _, para := range strings.Split(text, "\n\n") {
		paraRunes := len([]rune(para))
		if currentRunes > 0 && currentRunes+paraRunes > syntheticPageRunes {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
		currentRunes += paraRunes
	}
	flush()

	return pages
}
