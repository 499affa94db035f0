package pagetext

import (
	"strings"
	"testing"
)

func TestTextSource_FormFeedPages(t *testing.T) {
	input := "COMBAT\nroll to hit\fSHOOTING\ndeclare targets\fINJURIES\nroll on the table"
	s := &TextSource{}
	pages, err := s.Pages(strings.NewReader(input), "rules.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	for i, pg := range pages {
		if pg.PageNumber != i+1 {
			t.Errorf("page %d: number %d", i, pg.PageNumber)
		}
	}
	if !strings.HasPrefix(pages[1].Text, "SHOOTING") {
		t.Errorf("page 2 = %q", pages[1].Text)
	}
}

func TestTextSource_FormFeedSkipsEmptyPages(t *testing.T) {
	input := "first page\f\f  \fsecond page"
	s := &TextSource{}
	pages, err := s.Pages(strings.NewReader(input), "rules.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	// Page numbers preserve the original positions, gaps allowed.
	if pages[0].PageNumber != 1 || pages[1].PageNumber != 4 {
		t.Errorf("page numbers = %d, %d", pages[0].PageNumber, pages[1].PageNumber)
	}
}

func TestTextSource_SyntheticPagination(t *testing.T) {
	para := strings.Repeat("words of rules text here. ", 40) // ~1000 runes
	input := strings.Join([]string{para, para, para, para, para, para}, "\n\n")
	s := &TextSource{}
	pages, err := s.Pages(strings.NewReader(input), "rules.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) < 2 {
		t.Fatalf("expected synthetic page split, got %d pages", len(pages))
	}
	for i, pg := range pages {
		if pg.PageNumber != i+1 {
			t.Errorf("page %d: number %d", i, pg.PageNumber)
		}
		if strings.TrimSpace(pg.Text) == "" {
			t.Errorf("page %d is blank", i)
		}
	}
}

func TestTextSource_EmptyInput(t *testing.T) {
	s := &TextSource{}
	pages, err := s.Pages(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("expected 0 pages, got %d", len(pages))
	}
}

func TestPaginate_ParagraphsNotSplit(t *testing.T) {
	para := strings.Repeat("x", 3000)
	pages := paginate(para + "\n\n" + para)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if len(pages[0].Text) != 3000 || len(pages[1].Text) != 3000 {
		t.Errorf("paragraph was split: %d / %d", len(pages[0].Text), len(pages[1].Text))
	}
}
