package segment

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

const (
	minHeaderLen = 3
	maxHeaderLen = 80
)

// docLine is one line of the flattened page sequence.
type docLine struct {
	text string
	page int
}

// headerRule is one header heuristic: a predicate plus the outline level it
// assigns. Rules are tried in order; the first match wins. Levels are kept
// for a future nested outline — sections are flat today.
type headerRule struct {
	name  string
	match func(line string, next string, hasNext bool) (level int, ok bool)
}

var numberedHeadingRe = regexp.MustCompile(`^((?:\d+\.)+)\s*[A-Z]`)

var headerRules = []headerRule{
	{name: "all-caps", match: matchAllCaps},
	{name: "numbered", match: matchNumberedHeading},
	{name: "title-before-blank", match: matchTitleBeforeBlank},
}

// matchAllCaps accepts lines like "COMBAT" or "CLOSE COMBAT WEAPONS":
// entirely uppercase with at least one letter.
func matchAllCaps(line string, _ string, _ bool) (int, bool) {
	if strings.ToUpper(line) != line {
		return 0, false
	}
	for _, r := range line {
		if unicode.IsLetter(r) {
			return 1, true
		}
	}
	return 0, false
}

// matchNumberedHeading accepts dotted numeric prefixes like "2.1. Combat".
// The level is the number of dot separators in the prefix.
func matchNumberedHeading(line string, _ string, _ bool) (int, bool) {
	m := numberedHeadingRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	return strings.Count(m[1], "."), true
}

// matchTitleBeforeBlank accepts title-case lines that do not end a sentence
// and are followed by a blank line (or nothing), e.g. a bolded heading the
// text extractor flattened to plain text.
func matchTitleBeforeBlank(line string, next string, hasNext bool) (int, bool) {
	runes := []rune(line)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) || !unicode.IsLower(runes[1]) {
		return 0, false
	}
	if strings.HasSuffix(line, ".") {
		return 0, false
	}
	if hasNext && strings.TrimSpace(next) != "" {
		return 0, false
	}
	return 2, true
}

// classifyHeader runs a line through the rule table. Lines outside the
// plausible header length are never headers.
func classifyHeader(line string, next string, hasNext bool) (int, bool) {
	trimmed := strings.TrimSpace(line)
	if len([]rune(trimmed)) < minHeaderLen || len([]rune(trimmed)) > maxHeaderLen {
		return 0, false
	}
	for _, rule := range headerRules {
		if level, ok := rule.match(trimmed, next, hasNext); ok {
			return level, true
		}
	}
	return 0, false
}

type headerHit struct {
	lineIdx int
	level   int
}

// ExtractSections recovers a flat outline from the ordered page sequence
// using formatting heuristics. Each detected header yields one Section
// whose body is everything up to the next header; a header with nothing
// under it is still emitted as a structural marker with no text. Documents
// where no header is detected yield an empty slice, and the caller falls
// back to page-based chunking.
func ExtractSections(pages []rulebook.PageText) []rulebook.Section {
	var lines []docLine
	for _, pg := range pages {
		if strings.TrimSpace(pg.Text) == "" {
			continue
		}
		for _, raw := range strings.Split(pg.Text, "\n") {
			lines = append(lines, docLine{text: raw, page: pg.PageNumber})
		}
	}
	if len(lines) == 0 {
		return nil
	}

	var hits []headerHit
	for i, ln := range lines {
		next := ""
		hasNext := i+1 < len(lines)
		if hasNext {
			next = lines[i+1].text
		}
		if level, ok := classifyHeader(ln.text, next, hasNext); ok {
			hits = append(hits, headerHit{lineIdx: i, level: level})
		}
	}

	sections := make([]rulebook.Section, 0, len(hits))
	for h, hit := range hits {
		bodyEnd := len(lines)
		if h+1 < len(hits) {
			bodyEnd = hits[h+1].lineIdx
		}

		var body []string
		for _, ln := range lines[hit.lineIdx+1 : bodyEnd] {
			body = append(body, ln.text)
		}
		text := strings.TrimSpace(strings.Join(body, "\n"))

		pageStart := lines[hit.lineIdx].page
		pageEnd := lines[bodyEnd-1].page
		if pageEnd < pageStart {
			pageEnd = pageStart
		}

		title := strings.TrimSpace(lines[hit.lineIdx].text)
		sections = append(sections, rulebook.Section{
			Title:       title,
			SectionPath: []string{title},
			PageStart:   pageStart,
			PageEnd:     pageEnd,
			Text:        text,
		})
	}
	return sections
}
