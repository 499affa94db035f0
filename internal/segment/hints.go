package segment

import (
	"regexp"
	"strings"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

var (
	rollRangeRe   = regexp.MustCompile(`\b[1-6]\s*[-–]\s*[1-6]\b`)
	d6TokenRe     = regexp.MustCompile(`\b[Dd]66?\b`)
	numberedRowRe = regexp.MustCompile(`^\s*\d+[.\s]`)
	listMarkerRe  = regexp.MustCompile(`^\s*(?:[-•*]|\d+\))\s+`)
	diceRe        = regexp.MustCompile(`\b\d*[dD]\d+(?:\s*\+\s*\d+)?\b`)
)

// hintDetector pairs a structural signal with the flag it sets. Detectors
// are independent and order-insensitive.
type hintDetector struct {
	name   string
	detect func(text string, lines []string) bool
	apply  func(*rulebook.ScoreHints)
}

var hintDetectors = []hintDetector{
	{
		name: "rollRanges",
		detect: func(text string, _ []string) bool {
			return rollRangeRe.MatchString(text) || d6TokenRe.MatchString(text)
		},
		apply: func(h *rulebook.ScoreHints) { h.HasRollRanges = true },
	},
	{
		name: "tablePattern",
		detect: func(text string, lines []string) bool {
			if strings.Contains(text, "\t") {
				return true
			}
			return countMatching(lines, numberedRowRe) > 3
		},
		apply: func(h *rulebook.ScoreHints) { h.HasTablePattern = true },
	},
	{
		name: "listPattern",
		detect: func(_ string, lines []string) bool {
			return countMatching(lines, listMarkerRe) > 3
		},
		apply: func(h *rulebook.ScoreHints) { h.HasListPattern = true },
	},
	{
		name: "diceNotation",
		detect: func(text string, _ []string) bool {
			return diceRe.MatchString(text)
		},
		apply: func(h *rulebook.ScoreHints) { h.HasDiceNotation = true },
	},
}

// AnalyzeScoreHints scans a span for the structural signals the downstream
// relevance scorer weights. Flags are only ever set, never cleared, so a
// zero ScoreHints means nothing was detected.
func AnalyzeScoreHints(text string) rulebook.ScoreHints {
	var hints rulebook.ScoreHints
	if text == "" {
		return hints
	}
	lines := strings.Split(text, "\n")
	for _, det := range hintDetectors {
		if det.detect(text, lines) {
			det.apply(&hints)
		}
	}
	return hints
}

func countMatching(lines []string, re *regexp.Regexp) int {
	n := 0
	for _, line := range lines {
		if re.MatchString(line) {
			n++
		}
	}
	return n
}
