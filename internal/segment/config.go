package segment

// Config controls chunk sizing. All sizes are in runes.
type Config struct {
	TargetSize  int // Preferred chunk size.
	MinSize     int // Natural break points closer than this are ignored.
	MaxSize     int // Hard ceiling, except for indivisible spans.
	OverlapSize int // Text shared between adjacent chunks.
}

// DefaultConfig returns sensible defaults for rulebook text.
func DefaultConfig() Config {
	return Config{
		TargetSize:  1000,
		MinSize:     200,
		MaxSize:     1500,
		OverlapSize: 150,
	}
}

// normalized fills in zero or inconsistent values so the segmenter always
// operates with MinSize < TargetSize < MaxSize and OverlapSize < MinSize.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.TargetSize <= 0 {
		c.TargetSize = d.TargetSize
	}
	if c.MinSize <= 0 || c.MinSize >= c.TargetSize {
		c.MinSize = c.TargetSize / 5
		if c.MinSize < 1 {
			c.MinSize = 1
		}
	}
	if c.MaxSize <= c.TargetSize {
		c.MaxSize = c.TargetSize + c.TargetSize/2
	}
	if c.OverlapSize < 0 || c.OverlapSize >= c.MinSize {
		c.OverlapSize = c.MinSize / 2
	}
	return c
}
