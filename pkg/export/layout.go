package export

// Layout fixes the vertical geometry of a rendered notice document.
// Units match the PDF renderer (millimetres on A4 portrait).
type Layout struct {
	StartY       float64 // cursor position after the document header
	TopY         float64 // cursor reset position on a fresh page
	BreakY       float64 // a block starting below this line forces a page break
	LineHeight   float64 // height of one wrapped message line
	TitleAdvance float64 // space consumed by the title line
	MetaAdvance  float64 // space consumed by the posted-by line
	BlockGap     float64 // trailing gap after each block
}

// DefaultLayout mirrors the geometry of the printed notice board document.
func DefaultLayout() Layout {
	return Layout{
		StartY:       50,
		TopY:         20,
		BreakY:       250,
		LineHeight:   6,
		TitleAdvance: 8,
		MetaAdvance:  6,
		BlockGap:     10,
	}
}

// Block describes one notice in layout terms: everything that matters for
// pagination is the number of wrapped message lines.
type Block struct {
	MessageLines int
}

// Height returns the vertical space the block consumes.
func (b Block) Height(l Layout) float64 {
	return l.TitleAdvance + l.MetaAdvance + float64(b.MessageLines)*l.LineHeight + l.BlockGap
}

// Placement records where a block lands in the paginated document.
type Placement struct {
	Page int // 1-based page number
	Y    float64
}

// Plan computes deterministic placements for the given blocks. A block that
// would start past the break line opens a new page and the cursor resets to
// the top margin. The block itself may still overflow the page bottom; only
// the starting position is considered, matching the printed document.
func Plan(blocks []Block, l Layout) []Placement {
	placements := make([]Placement, 0, len(blocks))
	page := 1
	cursor := l.StartY

	for _, block := range blocks {
		if cursor > l.BreakY {
			page++
			cursor = l.TopY
		}
		placements = append(placements, Placement{Page: page, Y: cursor})
		cursor += block.Height(l)
	}

	return placements
}

// PageCount returns the number of pages the plan spans. An empty plan still
// occupies the single page carrying the document header.
func PageCount(placements []Placement) int {
	pages := 1
	for _, p := range placements {
		if p.Page > pages {
			pages = p.Page
		}
	}
	return pages
}
