package segment

import (
	"reflect"
	"testing"
)

func TestExtractKeywords_MatchesDomainTerms(t *testing.T) {
	text := "Combat Rules. Roll 1d6 to hit."
	got := ExtractKeywords(text)

	for _, want := range []string{"combat", "roll", "to hit"} {
		if !containsString(got, want) {
			t.Errorf("expected keywords to contain %q, got %v", want, got)
		}
	}
}

func TestExtractKeywords_CaseInsensitive(t *testing.T) {
	got := ExtractKeywords("WARBAND recruitment and Wyrdstone hunting")
	if !containsString(got, "warband") {
		t.Errorf("expected warband in %v", got)
	}
	if !containsString(got, "wyrdstone") {
		t.Errorf("expected wyrdstone in %v", got)
	}
}

func TestExtractKeywords_DeduplicatesRepeats(t *testing.T) {
	got := ExtractKeywords("roll roll roll the dice, then roll again")
	count := 0
	for _, k := range got {
		if k == "roll" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one 'roll', got %d in %v", count, got)
	}
}

func TestExtractKeywords_NoMatches(t *testing.T) {
	if got := ExtractKeywords("the quick brown fox"); len(got) != 0 {
		t.Errorf("expected no keywords, got %v", got)
	}
	if got := ExtractKeywords(""); got != nil {
		t.Errorf("expected nil for empty text, got %v", got)
	}
}

func TestExtractKeywords_Idempotent(t *testing.T) {
	text := "Charge! Roll a D6 for each wound."
	first := ExtractKeywords(text)
	second := ExtractKeywords(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %v vs %v", first, second)
	}
}

func containsString(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
