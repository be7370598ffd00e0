// Package docx writes minimal WordprocessingML (.docx) packages.
//
// The model is deliberately small: a document is an ordered list of
// paragraphs, each paragraph owns styled text runs or a page break, and
// structural roles (title, headings, list items) are expressed through a
// fixed set of named styles. Everything a paragraph needs for rendering is
// captured at append time; serialization is a single pass with no
// timestamps or other nondeterministic content, so the same document
// always produces byte-identical output.
package docx

import "io"

// Named paragraph styles defined in the package's styles part.
const (
	StyleNormal     = ""
	StyleTitle      = "Title"
	StyleHeading1   = "Heading1"
	StyleHeading2   = "Heading2"
	StyleHeading3   = "Heading3"
	StyleListBullet = "ListBullet"
	StyleListNumber = "ListNumber"
)

// Paragraph justification values.
const (
	AlignDefault = ""
	AlignCenter  = "center"
)

// Run is a span of text with uniform character formatting.
type Run struct {
	Text   string
	Bold   bool
	Italic bool

	// Size is the font size in points; zero keeps the style's size.
	Size int

	// Color is a six-digit hex RGB value without a leading '#';
	// empty keeps the style's color.
	Color string
}

// Paragraph is one block of the document body.
type Paragraph struct {
	// Style names one of the Style* constants; empty means body text.
	Style string

	// Align sets paragraph justification; empty means the style default.
	Align string

	Runs []Run

	// PageBreak renders the paragraph as a manual page break instead
	// of text content. Runs and Style are ignored when set.
	PageBreak bool
}

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	var s string
	for _, r := range p.Runs {
		s += r.Text
	}
	return s
}

// StyleSet carries the colors the named styles resolve to. The zero value
// is not useful; start from DefaultStyles.
type StyleSet struct {
	// Accent colors the title and level-1 headings.
	Accent string

	// Secondary colors level-2 headings.
	Secondary string
}

// DefaultStyles returns the stock report palette.
func DefaultStyles() StyleSet {
	return StyleSet{Accent: "003366", Secondary: "0066CC"}
}

// Document is an in-memory .docx under construction. Construct with New,
// append paragraphs in render order, then serialize once with WriteTo.
// A Document is not safe for concurrent use and is not reusable after
// serialization in the sense that further appends are not reflected in
// bytes already written.
type Document struct {
	styles StyleSet
	paras  []Paragraph
}

// New returns an empty document using the given style palette.
func New(styles StyleSet) *Document {
	return &Document{styles: styles}
}

// AddParagraph appends p to the document body.
func (d *Document) AddParagraph(p Paragraph) {
	d.paras = append(d.paras, p)
}

// AddText appends a single-run paragraph with the given style.
func (d *Document) AddText(style, text string) {
	d.paras = append(d.paras, Paragraph{Style: style, Runs: []Run{{Text: text}}})
}

// AddHeading appends a heading paragraph at level 1, 2 or 3.
// Out-of-range levels clamp to the nearest valid level.
func (d *Document) AddHeading(text string, level int) {
	style := StyleHeading1
	switch {
	case level <= 1:
		style = StyleHeading1
	case level == 2:
		style = StyleHeading2
	default:
		style = StyleHeading3
	}
	d.AddText(style, text)
}

// AddPageBreak appends a manual page break.
func (d *Document) AddPageBreak() {
	d.paras = append(d.paras, Paragraph{PageBreak: true})
}

// Paragraphs returns the body in append order. The returned slice is the
// document's backing store; callers must not modify it.
func (d *Document) Paragraphs() []Paragraph {
	return d.paras
}

// WriteTo serializes the document as a complete .docx package.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return writePackage(w, d)
}
