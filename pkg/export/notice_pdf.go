package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Content geometry shared with the printed notice board.
const (
	contentLeft  = 14.0
	contentWidth = 180.0
)

// NoticeBlock is one notice prepared for printing.
type NoticeBlock struct {
	Title    string
	Category string
	PostedBy string
	Date     time.Time
	Message  string
}

// NoticeDocument is a fully described printable notice board.
type NoticeDocument struct {
	Title       string
	GeneratedAt time.Time
	Blocks      []NoticeBlock
}

// NoticePDF renders notice documents with a deterministic paginated layout.
type NoticePDF struct {
	layout Layout
}

// NewNoticePDF constructs a renderer using the default layout.
func NewNoticePDF() *NoticePDF {
	return &NoticePDF{layout: DefaultLayout()}
}

// Render produces the PDF bytes for the document and the number of pages
// the paginated layout spans.
func (e *NoticePDF) Render(doc NoticeDocument) ([]byte, int, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(contentLeft, 20, doc.Title)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(contentLeft, 30, fmt.Sprintf("Generated on: %s", doc.GeneratedAt.Format("2006-01-02 15:04")))

	// Wrap every message up front so pagination is decided by the pure
	// planner rather than interleaved with drawing.
	pdf.SetFont("Helvetica", "", 10)
	wrapped := make([][]string, len(doc.Blocks))
	blocks := make([]Block, len(doc.Blocks))
	for i, block := range doc.Blocks {
		lines := pdf.SplitText(block.Message, contentWidth)
		wrapped[i] = lines
		blocks[i] = Block{MessageLines: len(lines)}
	}

	placements := Plan(blocks, e.layout)
	currentPage := 1
	for i, block := range doc.Blocks {
		placement := placements[i]
		for currentPage < placement.Page {
			pdf.AddPage()
			currentPage++
		}

		y := placement.Y
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Text(contentLeft, y, fmt.Sprintf("%s [%s]", block.Title, block.Category))
		y += e.layout.TitleAdvance

		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(contentLeft, y, fmt.Sprintf("Posted: %s | By: %s", block.Date.Format("2006-01-02"), block.PostedBy))
		y += e.layout.MetaAdvance

		for _, line := range wrapped[i] {
			pdf.Text(contentLeft, y, line)
			y += e.layout.LineHeight
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, 0, fmt.Errorf("render notice pdf: %w", err)
	}
	return buf.Bytes(), PageCount(placements), nil
}
