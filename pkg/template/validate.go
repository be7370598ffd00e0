package template

import (
	"fmt"

	"github.com/m365assess/reportgen/pkg/docx"
	"github.com/m365assess/reportgen/pkg/tags"
)

// ValidateBalance checks section marker pairing across a serialized
// block sequence: every opening marker has exactly one matching close
// with the same identifier, the close appears in a later block, and
// pairs nest properly. The tree construction makes violations
// unreachable through the public API; this re-check catches emission
// bugs before they reach a renderer, where an unbalanced marker
// silently corrupts every generated report.
func ValidateBalance(paras []docx.Paragraph) error {
	type openMarker struct {
		name  string
		block int
	}
	var stack []openMarker

	for i, p := range paras {
		for _, tag := range tags.Extract(p.Text()) {
			switch tag.Kind {
			case tags.KindSectionOpen:
				stack = append(stack, openMarker{name: tag.Name, block: i})
			case tags.KindSectionClose:
				if len(stack) == 0 {
					return fmt.Errorf("%w: closing marker %s without an open section (block %d)",
						ErrAssembly, tags.Close(tag.Name), i)
				}
				top := stack[len(stack)-1]
				if top.name != tag.Name {
					return fmt.Errorf("%w: closing marker %s while section %q is open (block %d)",
						ErrAssembly, tags.Close(tag.Name), top.name, i)
				}
				if top.block == i {
					return fmt.Errorf("%w: section %q opens and closes in the same block (block %d)",
						ErrAssembly, tag.Name, i)
				}
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return fmt.Errorf("%w: section %q opened at block %d is never closed",
			ErrAssembly, top.name, top.block)
	}
	return nil
}
