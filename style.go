package travelplan

import "fmt"

// Style holds the typographic attributes for one block kind.
// All dimensions are in points.
type Style struct {
	FontSize    float64
	Bold        bool
	SpaceBefore float64
	SpaceAfter  float64
	Indent      float64 // left indent, used by list items
}

// leading returns the line height for the style. The 1.2 factor matches
// common body-text leading.
func (s Style) leading() float64 {
	return s.FontSize * 1.2
}

// StyleKey identifies a style table entry. Level is zero for every kind
// except headings.
type StyleKey struct {
	Kind  BlockKind
	Level int
}

// StyleSheet maps block kinds to styles. Loaded once per render and treated
// as immutable; a lookup miss is a fatal render error, never a silent skip.
type StyleSheet map[StyleKey]Style

// lookup returns the style for a block, or ErrMissingStyle when the sheet
// has no entry for its kind.
func (s StyleSheet) lookup(b Block) (Style, error) {
	key := StyleKey{Kind: b.Kind}
	if b.Kind == KindHeading {
		key.Level = b.Level
	}
	style, ok := s[key]
	if !ok {
		return Style{}, fmt.Errorf("%w: %s", ErrMissingStyle, b.Kind)
	}
	return style, nil
}

// DefaultStyleSheet returns the standard print styles: level-2 headings
// larger and bolder than level-3, ~10pt body text, indented bullet items.
func DefaultStyleSheet() StyleSheet {
	return StyleSheet{
		{Kind: KindHeading, Level: 2}: {FontSize: 14, Bold: true, SpaceBefore: 12, SpaceAfter: 6},
		{Kind: KindHeading, Level: 3}: {FontSize: 12, Bold: true, SpaceBefore: 8, SpaceAfter: 4},
		{Kind: KindParagraph}:         {FontSize: 10},
		{Kind: KindList}:              {FontSize: 10, Indent: 12},
		{Kind: KindBlank}:             {},
	}
}

// Page geometry in points (1 inch = 72 pt). The layout is fixed: letter
// pages with 0.5 inch side margins and 0.7 inch top and bottom margins.
const (
	pageWidthPt  = 612.0
	pageHeightPt = 792.0

	sideMarginPt    = 36.0 // 0.5 inch left and right
	topBottomMargin = 50.4 // 0.7 inch top and bottom
)

// Geometry describes the fixed page dimensions and margins applied uniformly
// to the whole document.
type Geometry struct {
	Width        float64
	Height       float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
}

// LetterGeometry returns the single page layout this package targets.
func LetterGeometry() Geometry {
	return Geometry{
		Width:        pageWidthPt,
		Height:       pageHeightPt,
		MarginLeft:   sideMarginPt,
		MarginRight:  sideMarginPt,
		MarginTop:    topBottomMargin,
		MarginBottom: topBottomMargin,
	}
}

// contentWidth returns the horizontal space available to block content.
func (g Geometry) contentWidth() float64 {
	return g.Width - g.MarginLeft - g.MarginRight
}

// maxY returns the vertical cursor limit before a page break is required.
func (g Geometry) maxY() float64 {
	return g.Height - g.MarginBottom
}
