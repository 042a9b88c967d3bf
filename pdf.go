package travelplan

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/avence/go-travelplan/internal/dateutil"
)

// Document metadata constants.
const (
	docTitle  = "Travel Plan"
	docAuthor = "Travel Guide"
)

// Fixed header layout, emitted at the top of page 1 before any content.
const (
	headerFontSize   = 18
	headerSpaceAfter = 12
	metaFontSize     = 10
	metaSpacerHeight = 10
)

// coreFont is the built-in font family used for all text. Core fonts avoid
// font file dependencies and keep output deterministic.
const coreFont = "Helvetica"

// List rendering constants.
const (
	bulletGlyph    = "•"
	bulletColWidth = 12.0
)

// keepWithHeading is the vertical space reserved below a heading for the
// first line of its following content, so a heading is not stranded at the
// bottom of a page. Best effort only.
const keepWithHeading = 12.0

// renderPDF lays out the block sequence on fixed letter pages and returns
// the finished document bytes. The whole document is buffered in memory, so
// a failed render never leaves a partial artifact behind.
//
// Output is deterministic for identical (blocks, sheet, geom, generatedAt);
// the timestamp is the only input that varies between otherwise identical
// renders.
func renderPDF(blocks []Block, sheet StyleSheet, geom Geometry, generatedAt time.Time) ([]byte, error) {
	doc, err := buildDocument(blocks, sheet, geom, generatedAt)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFRender, err)
	}
	return buf.Bytes(), nil
}

// buildDocument places the header and every block, handling page breaks.
// Callers own the final Output call; tests use the returned document to
// inspect page counts.
func buildDocument(blocks []Block, sheet StyleSheet, geom Geometry, generatedAt time.Time) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle(docTitle, true)
	pdf.SetAuthor(docAuthor, true)
	pdf.SetCreationDate(generatedAt)
	pdf.SetMargins(geom.MarginLeft, geom.MarginTop, geom.MarginRight)
	pdf.SetAutoPageBreak(true, geom.MarginBottom)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	writeHeader(pdf, tr, geom, generatedAt)

	for i, b := range blocks {
		style, err := sheet.lookup(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}

		switch b.Kind {
		case KindBlank:
			// Trailing space on a page is not worth a fresh page.
			if y := pdf.GetY() + b.Height; y <= geom.maxY() {
				pdf.SetY(y)
			}

		case KindHeading:
			writeHeading(pdf, tr, geom, b, style)

		case KindParagraph:
			writeParagraph(pdf, tr, geom, b, style)

		case KindList:
			writeList(pdf, tr, geom, b, style)
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrPDFRender, pdf.Error())
	}
	return pdf, nil
}

// writeHeader emits the fixed document title and generation timestamp.
func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, geom Geometry, generatedAt time.Time) {
	pdf.SetFont(coreFont, "B", headerFontSize)
	pdf.MultiCell(geom.contentWidth(), headerFontSize*1.2, tr(docTitle), "", "C", false)
	pdf.SetY(pdf.GetY() + headerSpaceAfter)

	pdf.SetFont(coreFont, "", metaFontSize)
	meta := "Generated: " + dateutil.Timestamp(generatedAt)
	pdf.MultiCell(geom.contentWidth(), metaFontSize*1.2, tr(meta), "", "L", false)
	pdf.SetY(pdf.GetY() + metaSpacerHeight)
}

func writeHeading(pdf *fpdf.Fpdf, tr func(string) string, geom Geometry, b Block, style Style) {
	pdf.SetFont(coreFont, fontStyle(style), style.FontSize)

	text := tr(b.Text)
	height := textHeight(pdf, text, geom.contentWidth(), style.leading())
	pageBreakIfNeeded(pdf, geom, style.SpaceBefore+height+style.SpaceAfter+keepWithHeading)

	applySpaceBefore(pdf, geom, style)
	pdf.MultiCell(geom.contentWidth(), style.leading(), text, "", "L", false)
	pdf.SetY(pdf.GetY() + style.SpaceAfter)
}

func writeParagraph(pdf *fpdf.Fpdf, tr func(string) string, geom Geometry, b Block, style Style) {
	pdf.SetFont(coreFont, fontStyle(style), style.FontSize)

	text := tr(b.Text)
	height := textHeight(pdf, text, geom.contentWidth(), style.leading())
	pageBreakIfNeeded(pdf, geom, style.SpaceBefore+height+style.SpaceAfter)

	applySpaceBefore(pdf, geom, style)
	pdf.MultiCell(geom.contentWidth(), style.leading(), text, "", "L", false)
	pdf.SetY(pdf.GetY() + style.SpaceAfter)
}

// writeList renders each item as an indented, bullet-prefixed entry. Items
// wrap within the remaining content width and may reflow across a page
// boundary individually, but an item that fits on a fresh page is never
// split.
func writeList(pdf *fpdf.Fpdf, tr func(string) string, geom Geometry, b Block, style Style) {
	pdf.SetFont(coreFont, fontStyle(style), style.FontSize)

	itemWidth := geom.contentWidth() - style.Indent - bulletColWidth
	for _, item := range b.Items {
		text := tr(item)
		height := textHeight(pdf, text, itemWidth, style.leading())
		pageBreakIfNeeded(pdf, geom, height)

		pdf.SetX(geom.MarginLeft + style.Indent)
		pdf.CellFormat(bulletColWidth, style.leading(), tr(bulletGlyph), "", 0, "L", false, 0, "")
		pdf.MultiCell(itemWidth, style.leading(), text, "", "L", false)
	}
}

// textHeight estimates the wrapped height of text at the given width using
// the current font. Empty text still occupies one line.
func textHeight(pdf *fpdf.Fpdf, text string, width, leading float64) float64 {
	lines := len(pdf.SplitText(text, width))
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * leading
}

// pageBreakIfNeeded starts a new page when the next h points do not fit
// above the bottom margin. A block taller than a full page is left in place:
// the automatic page break reflows its wrapped lines instead.
func pageBreakIfNeeded(pdf *fpdf.Fpdf, geom Geometry, h float64) {
	if pdf.GetY()+h <= geom.maxY() {
		return
	}
	if h > geom.maxY()-geom.MarginTop {
		return
	}
	pdf.AddPage()
}

// applySpaceBefore advances the cursor by the style's leading space, except
// at the top of a page where it would only push content down.
func applySpaceBefore(pdf *fpdf.Fpdf, geom Geometry, style Style) {
	if style.SpaceBefore == 0 {
		return
	}
	if pdf.GetY() <= geom.MarginTop+0.1 {
		return
	}
	pdf.SetY(pdf.GetY() + style.SpaceBefore)
}

// fontStyle maps a Style to the fpdf style string.
func fontStyle(s Style) string {
	if s.Bold {
		return "B"
	}
	return ""
}
