package pagetext

import (
	"io"
	"strings"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

// TextSource handles plain text files. Text extractors commonly separate
// pages with form feeds; when present they define the page boundaries,
// otherwise the text is paginated synthetically.
type TextSource struct{}

func (s *TextSource) Pages(r io.Reader, filename string) ([]rulebook.PageText, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(data)

	if strings.Contains(text, "\f") {
		var pages []rulebook.PageText
		for i, page := range strings.Split(text, "\f") {
			page = strings.TrimSpace(page)
			if page == "" {
				continue
			}
			pages = append(pages, rulebook.PageText{Text: page, PageNumber: i + 1})
		}
		return pages, nil
	}

	return paginate(text), nil
}
