package rulebook

// PageText is one page of extracted rulebook text, as delivered by a
// page-text source. Pages arrive in ascending PageNumber order; gaps are
// allowed, empty pages are allowed.
type PageText struct {
	Text       string `json:"text"`
	PageNumber int    `json:"page_number"`
}

// Section is a recovered structural unit of a rulebook: a detected header
// plus the body text captured up to the next header. Text == "" means the
// section is a pure structural marker with no captured body.
type Section struct {
	Title       string   `json:"title"`
	SectionPath []string `json:"section_path"`
	PageStart   int      `json:"page_start"`
	PageEnd     int      `json:"page_end"`
	Text        string   `json:"text,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Chunk is a bounded-size slice of section or page text, the atomic unit
// the rule-lookup feature retrieves. SectionID is the owning section's
// title (name-based back-reference); it is empty for page-based chunks.
type Chunk struct {
	Text        string     `json:"text"`
	PageStart   int        `json:"page_start"`
	PageEnd     int        `json:"page_end"`
	SectionPath []string   `json:"section_path,omitempty"`
	SectionID   string     `json:"section_id,omitempty"`
	OrderIndex  int        `json:"order_index"`
	Keywords    []string   `json:"keywords,omitempty"`
	Hints       ScoreHints `json:"score_hints,omitzero"`
}

// ScoreHints are structural signals precomputed for the downstream
// relevance scorer. A zero flag means "not detected" and is omitted from
// JSON, which downstream treats the same as false.
type ScoreHints struct {
	HasRollRanges   bool `json:"hasRollRanges,omitempty"`
	HasTablePattern bool `json:"hasTablePattern,omitempty"`
	HasListPattern  bool `json:"hasListPattern,omitempty"`
	HasDiceNotation bool `json:"hasDiceNotation,omitempty"`
}

// Empty reports whether no hint fired.
func (h ScoreHints) Empty() bool {
	return !h.HasRollRanges && !h.HasTablePattern && !h.HasListPattern && !h.HasDiceNotation
}
