package pagetext

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

// csvRowsPerPage bounds how many data rows land on one synthetic page so
// a large stat table still segments into retrievable chunks.
const csvRowsPerPage = 20

// CSVSource handles CSV files, typically exported stat tables. Each row
// is rendered as one tab-separated line under a repeated header row, so
// the downstream table-pattern detector sees them as tabular text.
type CSVSource struct{}

func (s *CSVSource) Pages(r io.Reader, filename string) ([]rulebook.PageText, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := strings.Join(records[0], "\t")
	dataRows := records[1:]
	if len(dataRows) == 0 {
		if strings.TrimSpace(header) == "" {
			return nil, nil
		}
		return []rulebook.PageText{{Text: header, PageNumber: 1}}, nil
	}

	var pages []rulebook.PageText
	for i := 0; i < len(dataRows); i += csvRowsPerPage {
		end := i + csvRowsPerPage
		if end > len(dataRows) {
			end = len(dataRows)
		}
		var buf strings.Builder
		buf.WriteString(header)
		buf.WriteByte('\n')
		for _, row := range dataRows[i:end] {
			buf.WriteString(strings.Join(row, "\t"))
			buf.WriteByte('\n')
		}
		pages = append(pages, rulebook.PageText{
			Text:       strings.TrimSpace(buf.String()),
			PageNumber: len(pages) + 1,
		})
	}
	return pages, nil
}
