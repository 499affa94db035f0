package segment

import (
	"strings"
	"unicode/utf8"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

// wordBoundaryRadius is how far (in runes) the segmenter searches around
// the target offset for a whitespace fallback when no natural break point
// lands inside the size window.
const wordBoundaryRadius = 50

// Span is one logical unit of text handed to the segmenter: a whole
// section body or a whole raw page. Page is the representative page for
// every chunk cut from the span.
type Span struct {
	Text        string
	Page        int
	SectionPath []string
	SectionID   string
}

// Segment partitions a span into ordered, overlapping chunks within the
// configured size bounds. Chunks are annotated with keywords and score
// hints and indexed starting at startIndex. A span that fits TargetSize is
// emitted whole; a span with no usable break point is emitted as a single
// oversized chunk rather than truncated.
func Segment(span Span, startIndex int, cfg Config) []rulebook.Chunk {
	cfg = cfg.normalized()

	trimmed := strings.TrimSpace(span.Text)
	if trimmed == "" {
		return nil
	}
	if utf8.RuneCountInString(trimmed) <= cfg.TargetSize {
		return []rulebook.Chunk{makeChunk(trimmed, span, startIndex)}
	}

	runes := []rune(span.Text)
	breaks := breakPoints(runes)

	var chunks []rulebook.Chunk
	index := startIndex
	cur := 0
	for cur < len(runes) {
		bp := findBreakPoint(runes, breaks, cur, cfg)
		piece := strings.TrimSpace(string(runes[cur:bp]))
		if piece != "" {
			chunks = append(chunks, makeChunk(piece, span, index))
			index++
		}
		if bp >= len(runes) {
			break
		}
		// Rewind by the overlap budget so boundary content appears whole in
		// the next chunk. If the rewind would not move forward (break point
		// landed just past MinSize), continue from the break point itself to
		// guarantee termination.
		next := bp - cfg.OverlapSize
		if next <= cur {
			next = bp
		}
		cur = next
	}
	return chunks
}

// findBreakPoint picks where the chunk starting at cur should end:
// the natural break point closest to cur+TargetSize inside the
// (cur+MinSize, cur+MaxSize) window; failing that, a nearby word boundary;
// failing that, the end of the span.
func findBreakPoint(runes []rune, breaks []int, cur int, cfg Config) int {
	targetEnd := cur + cfg.TargetSize
	lo := cur + cfg.MinSize
	hi := cur + cfg.MaxSize

	best := -1
	for _, b := range breaks {
		if b <= lo {
			continue
		}
		if b >= hi {
			break
		}
		if best == -1 || abs(b-targetEnd) < abs(best-targetEnd) {
			best = b
		}
	}
	if best != -1 {
		return best
	}
	if targetEnd >= len(runes) {
		return len(runes)
	}
	if w := nearestWhitespace(runes, targetEnd, wordBoundaryRadius, cur); w != -1 {
		return w
	}
	// No break point, no word boundary in reach: one oversized chunk beats
	// losing text.
	return len(runes)
}

func makeChunk(text string, span Span, index int) rulebook.Chunk {
	return rulebook.Chunk{
		Text:        text,
		PageStart:   span.Page,
		PageEnd:     span.Page,
		SectionPath: span.SectionPath,
		SectionID:   span.SectionID,
		OrderIndex:  index,
		Keywords:    ExtractKeywords(text),
		Hints:       AnalyzeScoreHints(text),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
