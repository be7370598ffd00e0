// Package tags emits and recognizes docxtemplater placeholder tags.
//
// The grammar has four tag kinds:
//
//	{name}           scalar substitution
//	{#name}…{/name}  section markers around a repeated fragment
//	{name.length}    element count of an iterable
//	{.}              the current element inside a plain-value section
//
// This package only produces syntactically well-formed tag text and
// recognizes tags in already-emitted text (for balance checking). It does
// not resolve tags against data; that is the rendering engine's job.
package tags

import "regexp"

// Kind identifies one of the four tag forms in the grammar.
type Kind int

const (
	// KindScalar is a {name} substitution tag.
	KindScalar Kind = iota
	// KindSectionOpen is a {#name} marker.
	KindSectionOpen
	// KindSectionClose is a {/name} marker.
	KindSectionClose
	// KindLength is a {name.length} derived-count tag.
	KindLength
	// KindItem is the {.} literal-item tag.
	KindItem
)

// Tag is one recognized placeholder occurrence.
type Tag struct {
	Kind Kind
	// Name is the tag identifier. Empty for KindItem.
	Name string
}

// identPattern matches the identifiers the rendering engine accepts:
// lowercase snake_case starting with a letter.
var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// tagPattern finds every brace-delimited tag in a block of text.
var tagPattern = regexp.MustCompile(`\{(\.|[#/]?[a-z][a-z0-9_]*(?:\.length)?)\}`)

// ValidIdent reports whether name is a legal tag identifier.
func ValidIdent(name string) bool {
	return identPattern.MatchString(name)
}

// Scalar returns the substitution tag for name, e.g. "{customer_name}".
func Scalar(name string) string {
	return "{" + name + "}"
}

// Open returns the section opening marker for name, e.g. "{#themes}".
func Open(name string) string {
	return "{#" + name + "}"
}

// Close returns the section closing marker for name, e.g. "{/themes}".
func Close(name string) string {
	return "{/" + name + "}"
}

// Length returns the derived element-count tag for name,
// e.g. "{failed_findings.length}".
func Length(name string) string {
	return "{" + name + ".length}"
}

// Item returns the literal-item tag "{.}", valid only inside a section
// whose iterable yields plain values.
func Item() string {
	return "{.}"
}

// Extract returns every tag occurring in text, in order of appearance.
// Text without tags yields an empty slice.
func Extract(text string) []Tag {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	out := make([]Tag, 0, len(matches))
	for _, m := range matches {
		body := m[1]
		switch {
		case body == ".":
			out = append(out, Tag{Kind: KindItem})
		case body[0] == '#':
			out = append(out, Tag{Kind: KindSectionOpen, Name: body[1:]})
		case body[0] == '/':
			out = append(out, Tag{Kind: KindSectionClose, Name: body[1:]})
		case len(body) > len(".length") && body[len(body)-len(".length"):] == ".length":
			out = append(out, Tag{Kind: KindLength, Name: body[:len(body)-len(".length")]})
		default:
			out = append(out, Tag{Kind: KindScalar, Name: body})
		}
	}
	return out
}
