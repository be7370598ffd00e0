package template

import (
	"bytes"
	"fmt"

	"github.com/m365assess/reportgen/pkg/docx"
	"github.com/m365assess/reportgen/pkg/iohelper"
	"github.com/m365assess/reportgen/pkg/tags"
)

// Build assembles the report template and persists it at path in one
// step, returning the written location. Each call starts from a fresh
// document; nothing is shared between invocations.
func Build(cfg Config, path string) (string, error) {
	tmpl, err := Assemble(cfg)
	if err != nil {
		return "", err
	}
	if err := tmpl.WriteFile(path); err != nil {
		return "", err
	}
	return path, nil
}

// Template is an assembled report template, ready to serialize. Obtain
// one from Assemble; the zero value is not usable.
type Template struct {
	cfg   Config
	nodes []Node
}

// Document serializes the tree to its flat block sequence and re-checks
// section marker balance on the result. The returned document is fully
// deterministic: building the same template twice yields byte-identical
// serializations.
func (t *Template) Document() (*docx.Document, error) {
	doc := docx.New(docx.StyleSet{Accent: t.cfg.Accent, Secondary: t.cfg.Secondary})
	for _, n := range t.nodes {
		n.emit(doc)
	}
	if err := ValidateBalance(doc.Paragraphs()); err != nil {
		return nil, err
	}
	return doc, nil
}

// Bytes returns the complete .docx package contents.
func (t *Template) Bytes() ([]byte, error) {
	doc, err := t.Document()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile persists the template at path, replacing any existing file.
// The write is atomic: a failure never leaves a partial file at path.
func (t *Template) WriteFile(path string) error {
	data, err := t.Bytes()
	if err != nil {
		return err
	}
	if err := iohelper.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

// Paragraphs returns the serialized flat block sequence. Used by tests
// and the balance validator; rendering consumers read the .docx instead.
func (t *Template) Paragraphs() ([]docx.Paragraph, error) {
	doc, err := t.Document()
	if err != nil {
		return nil, err
	}
	return doc.Paragraphs(), nil
}

// Tags returns every placeholder tag the template emits, in block order.
func (t *Template) Tags() ([]tags.Tag, error) {
	paras, err := t.Paragraphs()
	if err != nil {
		return nil, err
	}
	var out []tags.Tag
	for _, p := range paras {
		out = append(out, tags.Extract(p.Text())...)
	}
	return out, nil
}
