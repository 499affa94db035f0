package segment

import (
	"strings"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

// Assemble runs the segmenter over a whole source document and stitches
// the results into one chunk list with a single monotonic order index.
// When sections were recovered, each section body is segmented with the
// section's start page as representative page; otherwise each raw page is
// segmented independently. The transform is pure: same input, same output.
func Assemble(pages []rulebook.PageText, sections []rulebook.Section, cfg Config) []rulebook.Chunk {
	var chunks []rulebook.Chunk
	index := 0

	if len(sections) > 0 {
		for _, sec := range sections {
			if strings.TrimSpace(sec.Text) == "" {
				continue // structural marker, nothing to chunk
			}
			span := Span{
				Text:        sec.Text,
				Page:        sec.PageStart,
				SectionPath: sec.SectionPath,
				SectionID:   sec.Title,
			}
			cs := Segment(span, index, cfg)
			index += len(cs)
			chunks = append(chunks, cs...)
		}
		return chunks
	}

	for _, pg := range pages {
		if strings.TrimSpace(pg.Text) == "" {
			continue
		}
		cs := Segment(Span{Text: pg.Text, Page: pg.PageNumber}, index, cfg)
		index += len(cs)
		chunks = append(chunks, cs...)
	}
	return chunks
}
