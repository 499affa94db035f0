package segment

import (
	"strings"
	"unicode"
)

// breakPoints returns the rune offsets of natural segmentation boundaries:
// each offset is the start of the first non-blank line following a run of
// one or more blank lines. Offsets are ascending.
func breakPoints(runes []rune) []int {
	var points []int
	lineStart := 0
	afterBlank := false
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && runes[i] != '\n' {
			continue
		}
		line := string(runes[lineStart:i])
		if strings.TrimSpace(line) == "" {
			afterBlank = true
		} else {
			if afterBlank && lineStart > 0 {
				points = append(points, lineStart)
			}
			afterBlank = false
		}
		lineStart = i + 1
	}
	return points
}

// nearestWhitespace finds the whitespace rune closest to target within the
// given radius, constrained to the open interval (min, len(runes)). Returns
// -1 when no word boundary is in reach.
func nearestWhitespace(runes []rune, target, radius, min int) int {
	for d := 0; d <= radius; d++ {
		for _, pos := range [2]int{target + d, target - d} {
			if pos > min && pos < len(runes) && unicode.IsSpace(runes[pos]) {
				return pos
			}
		}
	}
	return -1
}
