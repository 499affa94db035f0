package segment

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

func TestAssemble_PageFallbackWhenNoSections(t *testing.T) {
	pages := []rulebook.PageText{
		{Text: "Combat Rules. Roll 1d6 to hit.", PageNumber: 1},
	}
	sections := ExtractSections(pages)
	if len(sections) != 0 {
		t.Fatalf("expected no sections, got %d", len(sections))
	}

	chunks := Assemble(pages, sections, DefaultConfig())
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	c := chunks[0]
	if c.SectionID != "" || c.SectionPath != nil {
		t.Errorf("page-based chunk should carry no section reference, got %q %v", c.SectionID, c.SectionPath)
	}
	if !c.Hints.HasDiceNotation {
		t.Error("expected dice notation hint")
	}
	if !containsString(c.Keywords, "roll") || !containsString(c.Keywords, "combat") {
		t.Errorf("keywords = %v", c.Keywords)
	}
}

func TestAssemble_SectionDriven(t *testing.T) {
	pages := []rulebook.PageText{
		{Text: "SHOOTING\nDeclare targets, then roll to hit.", PageNumber: 7},
		{Text: "CLOSE COMBAT\nModels in contact fight.\nINJURIES", PageNumber: 8},
	}
	sections := ExtractSections(pages)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	chunks := Assemble(pages, sections, DefaultConfig())
	// INJURIES has no body, so only two sections chunk.
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].SectionID != "SHOOTING" || chunks[1].SectionID != "CLOSE COMBAT" {
		t.Errorf("section ids = %q, %q", chunks[0].SectionID, chunks[1].SectionID)
	}
	if chunks[0].PageStart != 7 || chunks[1].PageStart != 8 {
		t.Errorf("pages = %d, %d", chunks[0].PageStart, chunks[1].PageStart)
	}
}

func TestAssemble_OrderIndexContiguous(t *testing.T) {
	body := strings.Repeat("The warband fights through the ruined city streets. ", 60)
	pages := []rulebook.PageText{
		{Text: "MOVEMENT\n" + body, PageNumber: 1},
		{Text: "SHOOTING\n" + body, PageNumber: 2},
		{Text: "COMBAT\n" + body, PageNumber: 3},
	}
	sections := ExtractSections(pages)
	chunks := Assemble(pages, sections, Config{TargetSize: 500, MinSize: 100, MaxSize: 800, OverlapSize: 50})

	if len(chunks) < 6 {
		t.Fatalf("expected many chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.OrderIndex != i {
			t.Fatalf("chunk %d has order index %d", i, c.OrderIndex)
		}
		if c.PageStart > c.PageEnd {
			t.Errorf("chunk %d: page range %d..%d", i, c.PageStart, c.PageEnd)
		}
	}
}

func TestAssemble_SkipsEmptyPages(t *testing.T) {
	pages := []rulebook.PageText{
		{Text: "", PageNumber: 1},
		{Text: "some plain rules text without any headers.", PageNumber: 2},
		{Text: "  \n ", PageNumber: 3},
	}
	chunks := Assemble(pages, nil, DefaultConfig())
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].PageStart != 2 {
		t.Errorf("page = %d, want 2", chunks[0].PageStart)
	}
}

func TestAssemble_EmptyInputYieldsZeroChunks(t *testing.T) {
	if chunks := Assemble(nil, nil, DefaultConfig()); len(chunks) != 0 {
		t.Errorf("expected zero chunks, got %d", len(chunks))
	}
}

func TestAssemble_DeterministicAcrossConcurrentRuns(t *testing.T) {
	body := strings.Repeat("Roll 2d6 on the injury table after the battle. ", 80)
	pages := []rulebook.PageText{
		{Text: "INJURIES\n" + body, PageNumber: 1},
		{Text: "EXPERIENCE\n" + body, PageNumber: 2},
	}
	sections := ExtractSections(pages)
	cfg := Config{TargetSize: 400, MinSize: 100, MaxSize: 600, OverlapSize: 50}
	want := Assemble(pages, sections, cfg)

	var wg sync.WaitGroup
	results := make([][]rulebook.Chunk, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Assemble(pages, ExtractSections(pages), cfg)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !reflect.DeepEqual(got, want) {
			t.Errorf("concurrent run %d differs from sequential result", i)
		}
	}
}
