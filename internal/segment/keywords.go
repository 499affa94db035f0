package segment

import (
	"sort"
	"strings"
)

// vocabulary is the fixed set of domain terms chunks are tagged with.
// Matching is lowercase substring containment, so multi-word terms match
// anywhere in a span. Kept as data so the list can grow without touching
// the matcher.
var vocabulary = []string{
	"advance",
	"armour",
	"attack",
	"blackpowder",
	"campaign",
	"characteristic",
	"charge",
	"climb",
	"combat",
	"critical hit",
	"d6",
	"damage",
	"dice",
	"experience",
	"exploration",
	"fear",
	"flee",
	"frenzy",
	"henchman",
	"hero",
	"hire",
	"income",
	"initiative",
	"injury",
	"knocked down",
	"leadership",
	"melee",
	"morale",
	"movement",
	"out of action",
	"parry",
	"psychology",
	"rally",
	"range",
	"recruit",
	"roll",
	"rout",
	"save",
	"shooting",
	"skill",
	"strength",
	"stun",
	"terror",
	"to hit",
	"toughness",
	"warband",
	"weapon",
	"wound",
	"wyrdstone",
}

// ExtractKeywords returns the deduplicated, sorted set of vocabulary terms
// occurring anywhere in the span. No stemming, no tokenization.
func ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var matched []string
	for _, term := range vocabulary {
		if strings.Contains(lower, term) {
			matched = append(matched, term)
		}
	}
	sort.Strings(matched)
	return matched
}
