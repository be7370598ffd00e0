// Package template assembles the report template: a fixed document
// skeleton carrying docxtemplater placeholder tags, serialized as a .docx
// for a downstream rendering engine to fill with per-assessment data.
//
// The template is built as a tree. Repeating regions are Section nodes
// that own their repeated content, so an opening marker without a
// matching close is impossible to construct; markers only come into
// existence during serialization, as a pair. A flat validator re-checks
// marker balance on the serialized block sequence anyway, so a future
// emission bug fails the build instead of shipping a corrupt contract.
package template

import (
	"fmt"

	"github.com/m365assess/reportgen/pkg/docx"
	"github.com/m365assess/reportgen/pkg/tags"
)

// Node is one structural element of the template tree.
type Node interface {
	emit(doc *docx.Document)
}

// Paragraph is a single text-bearing block. Style and Align use the
// docx package's constants. Each placeholder tag must sit entirely
// within one run; the renderer's text extraction cannot see tags split
// across run boundaries.
type Paragraph struct {
	Style string
	Align string
	Runs  []docx.Run
}

func (p Paragraph) emit(doc *docx.Document) {
	doc.AddParagraph(docx.Paragraph{Style: p.Style, Align: p.Align, Runs: p.Runs})
}

// PageBreak is a manual page break between report sections.
type PageBreak struct{}

func (PageBreak) emit(doc *docx.Document) {
	doc.AddPageBreak()
}

// Spacer is an empty paragraph used for vertical separation.
type Spacer struct{}

func (Spacer) emit(doc *docx.Document) {
	doc.AddParagraph(docx.Paragraph{})
}

// Section is a repeating region named after an iterable in the
// render-time data. Its children are emitted between an opening and a
// closing marker paragraph, repeated once per element at render time.
// Plain marks sections over plain-value iterables, whose content
// references the current element with the literal-item tag.
type Section struct {
	Name     string
	Plain    bool
	Children []Node
}

func (s Section) emit(doc *docx.Document) {
	doc.AddText(docx.StyleNormal, tags.Open(s.Name))
	for _, child := range s.Children {
		child.emit(doc)
	}
	doc.AddText(docx.StyleNormal, tags.Close(s.Name))
}

// maxSectionDepth is the deepest nesting the template grammar uses:
// an outer iterable whose repeated fragment contains one more level.
const maxSectionDepth = 2

// validateTree enforces the grammar invariants the tree cannot express
// on its own. inPlain tracks whether the innermost enclosing section
// iterates plain values.
func validateTree(nodes []Node, depth int, inPlain bool) error {
	for _, n := range nodes {
		switch node := n.(type) {
		case Paragraph:
			for _, run := range node.Runs {
				for _, tag := range tags.Extract(run.Text) {
					switch tag.Kind {
					case tags.KindSectionOpen, tags.KindSectionClose:
						return fmt.Errorf("%w: raw section marker %q in paragraph text; use a Section node", ErrAssembly, run.Text)
					case tags.KindItem:
						if !inPlain {
							return fmt.Errorf("%w: literal-item tag outside a plain-value section", ErrAssembly)
						}
					}
				}
			}
		case Section:
			if !tags.ValidIdent(node.Name) {
				return fmt.Errorf("%w: invalid section identifier %q", ErrAssembly, node.Name)
			}
			if depth+1 > maxSectionDepth {
				return fmt.Errorf("%w: section %q nested deeper than %d levels", ErrAssembly, node.Name, maxSectionDepth)
			}
			if node.Plain {
				for _, child := range node.Children {
					if _, ok := child.(Section); ok {
						return fmt.Errorf("%w: plain-value section %q cannot contain nested sections", ErrAssembly, node.Name)
					}
				}
			}
			if err := validateTree(node.Children, depth+1, node.Plain); err != nil {
				return err
			}
		}
	}
	return nil
}
