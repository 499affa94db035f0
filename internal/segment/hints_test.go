package segment

import (
	"strings"
	"testing"
)

func TestAnalyzeScoreHints_RollRanges(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"numeric range", "3-4: You are wounded", true},
		{"range with spaces", "On a 1 - 2 the model falls", true},
		{"explicit d6 token", "Roll a D6 for each model", true},
		{"d66 token", "Consult the D66 table", true},
		{"dice notation is not a range token", "Roll 1d6 to hit", false},
		{"out of dice range", "pages 7-9 cover movement", false},
		{"plain text", "no ranges here", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeScoreHints(tt.text)
			if got.HasRollRanges != tt.want {
				t.Errorf("HasRollRanges = %v, want %v", got.HasRollRanges, tt.want)
			}
		})
	}
}

func TestAnalyzeScoreHints_TablePattern(t *testing.T) {
	tabbed := "Result\tEffect\n1\tMiss\n2\tHit"
	if got := AnalyzeScoreHints(tabbed); !got.HasTablePattern {
		t.Error("expected tab-separated lines to set HasTablePattern")
	}

	numbered := "1. Stunned\n2. Knocked down\n3. Wounded\n4. Out of action"
	if got := AnalyzeScoreHints(numbered); !got.HasTablePattern {
		t.Error("expected >3 numbered rows to set HasTablePattern")
	}

	few := "1. Stunned\n2. Knocked down"
	if got := AnalyzeScoreHints(few); got.HasTablePattern {
		t.Error("two numbered rows should not set HasTablePattern")
	}
}

func TestAnalyzeScoreHints_ListPattern(t *testing.T) {
	bullets := strings.Repeat("- one item here\n", 5)
	if got := AnalyzeScoreHints(bullets); !got.HasListPattern {
		t.Error("expected 5 bullet lines to set HasListPattern")
	}

	numbered := "1) first\n2) second\n3) third\n4) fourth"
	if got := AnalyzeScoreHints(numbered); !got.HasListPattern {
		t.Error("expected numbered-list markers to set HasListPattern")
	}

	three := "- a\n- b\n- c"
	if got := AnalyzeScoreHints(three); got.HasListPattern {
		t.Error("three bullets should not set HasListPattern")
	}
}

func TestAnalyzeScoreHints_DiceNotation(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Roll 2d6+1 for damage", true},
		{"Roll 1d6 to hit", true},
		{"takes D3 wounds", true},
		{"wounded in the leg", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := AnalyzeScoreHints(tt.text); got.HasDiceNotation != tt.want {
			t.Errorf("%q: HasDiceNotation = %v, want %v", tt.text, got.HasDiceNotation, tt.want)
		}
	}
}

func TestAnalyzeScoreHints_Independent(t *testing.T) {
	text := "1) roll 2d6\n2) on 3-4 stun\n3) re-roll\n4) done\nA\tB"
	got := AnalyzeScoreHints(text)
	if !got.HasRollRanges || !got.HasTablePattern || !got.HasListPattern || !got.HasDiceNotation {
		t.Errorf("expected all hints set, got %+v", got)
	}
}

func TestAnalyzeScoreHints_Idempotent(t *testing.T) {
	text := "On 3-4 take 1d6 hits.\n1) first\n2) second"
	if AnalyzeScoreHints(text) != AnalyzeScoreHints(text) {
		t.Error("repeated analysis differs")
	}
}

func TestAnalyzeScoreHints_ZeroValueMeansNothingDetected(t *testing.T) {
	got := AnalyzeScoreHints("calm prose about terrain placement")
	if !got.Empty() {
		t.Errorf("expected no hints, got %+v", got)
	}
}
