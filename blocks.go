package travelplan

import "strings"

// BlockKind identifies the layout role of a classified line group.
type BlockKind int

// Block kinds emitted by BuildBlocks.
const (
	KindBlank BlockKind = iota
	KindHeading
	KindList
	KindParagraph
)

// String returns a human-readable kind name for error messages.
func (k BlockKind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindHeading:
		return "heading"
	case KindList:
		return "list"
	case KindParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Spacer heights in points.
const (
	blankHeight      = 6 // one blank source line
	listSpacerHeight = 4 // emitted after every list block
)

// Block is one classified unit of content ready for layout. Exactly one of
// the payload fields is meaningful for a given Kind: Text for headings and
// paragraphs, Items for lists, Height for blank spacers.
type Block struct {
	Kind   BlockKind
	Level  int      // heading level, 2 or 3
	Text   string   // heading or paragraph text
	Items  []string // list item texts, in source order
	Height float64  // spacer height in points
}

// bulletMarkers are the accepted unordered-list markers. The rendered output
// always uses the bullet glyph regardless of which marker appeared in the
// source.
const bulletMarkers = "-*•"

// isBulletLine reports whether the line, after left-trim, starts with a
// bullet marker. A marker with no trailing text still counts.
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, r := range trimmed {
		return strings.ContainsRune(bulletMarkers, r)
	}
	return false
}

// bulletItemText strips the single leading marker character and surrounding
// whitespace from a bullet line, yielding the item text. A bare marker yields
// the empty string; the item is kept, not dropped.
func bulletItemText(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	for i, r := range trimmed {
		if i == 0 && strings.ContainsRune(bulletMarkers, r) {
			continue
		}
		return strings.TrimSpace(trimmed[i:])
	}
	return ""
}

// BuildBlocks classifies Markdown text into an ordered block sequence.
//
// The classifier makes a single forward pass with no backtracking. Each line
// becomes a Blank, Heading (## or ###), list item, or Paragraph; consecutive
// bullet lines collapse into one flat ListBlock followed by a small Blank
// spacer. A heading marker without its trailing space is plain paragraph
// text. Leading whitespace on bullet lines is ignored for grouping; there is
// no nested-list detection. Blank lines end a bullet group, so two groups
// separated by a blank line stay separate blocks.
//
// BuildBlocks is total: it never fails, and empty input yields an empty
// slice. Output order equals source line order.
func BuildBlocks(markdown string) []Block {
	var blocks []Block

	lines := strings.Split(markdown, "\n")
	// A single trailing newline terminates the last line; it is not an
	// extra blank line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	i := 0
	for i < len(lines) {
		line := strings.TrimRight(lines[i], " \t\r")

		switch {
		case strings.TrimSpace(line) == "":
			blocks = append(blocks, Block{Kind: KindBlank, Height: blankHeight})
			i++

		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{
				Kind:  KindHeading,
				Level: 2,
				Text:  strings.TrimSpace(line[3:]),
			})
			i++

		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{
				Kind:  KindHeading,
				Level: 3,
				Text:  strings.TrimSpace(line[4:]),
			})
			i++

		case isBulletLine(line):
			var items []string
			for i < len(lines) && isBulletLine(strings.TrimRight(lines[i], " \t\r")) {
				items = append(items, bulletItemText(strings.TrimRight(lines[i], " \t\r")))
				i++
			}
			blocks = append(blocks,
				Block{Kind: KindList, Items: items},
				Block{Kind: KindBlank, Height: listSpacerHeight},
			)

		default:
			blocks = append(blocks, Block{Kind: KindParagraph, Text: line})
			i++
		}
	}

	return blocks
}
