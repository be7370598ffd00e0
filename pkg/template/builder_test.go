package template

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m365assess/reportgen/pkg/contract"
	"github.com/m365assess/reportgen/pkg/docx"
	"github.com/m365assess/reportgen/pkg/tags"
)

func mustAssemble(t *testing.T) *Template {
	t.Helper()
	tmpl, err := Assemble(DefaultConfig())
	require.NoError(t, err)
	return tmpl
}

func mustParagraphs(t *testing.T) []docx.Paragraph {
	t.Helper()
	paras, err := mustAssemble(t).Paragraphs()
	require.NoError(t, err)
	return paras
}

func paragraphTexts(paras []docx.Paragraph) []string {
	out := make([]string, len(paras))
	for i, p := range paras {
		out[i] = p.Text()
	}
	return out
}

func indexOf(texts []string, want string) int {
	for i, s := range texts {
		if s == want {
			return i
		}
	}
	return -1
}

func TestAssembleBlockOrder(t *testing.T) {
	paras := mustParagraphs(t)
	texts := paragraphTexts(paras)

	require.NotEmpty(t, paras)
	assert.Equal(t, docx.StyleTitle, paras[0].Style)
	assert.Equal(t, "Microsoft 365 Security Assessment", texts[0])

	// Cover -> executive summary -> roadmap -> detailed findings -> appendix.
	order := []string{
		"Microsoft 365 Security Assessment",
		"Executive Summary",
		"Remediation Roadmap",
		"Detailed Findings by Security Theme",
		"Appendix",
	}
	last := -1
	for _, heading := range order {
		idx := indexOf(texts, heading)
		require.GreaterOrEqual(t, idx, 0, "missing block %q", heading)
		assert.Greater(t, idx, last, "%q out of order", heading)
		last = idx
	}
}

// Every opening section marker must have exactly one matching close, in a
// later block, at the same nesting depth.
func TestSectionMarkersBalanced(t *testing.T) {
	paras := mustParagraphs(t)

	type open struct {
		name  string
		block int
		depth int
	}
	var stack []open
	closed := make(map[string]int)

	for i, p := range paras {
		for _, tag := range tags.Extract(p.Text()) {
			switch tag.Kind {
			case tags.KindSectionOpen:
				stack = append(stack, open{name: tag.Name, block: i, depth: len(stack)})
			case tags.KindSectionClose:
				require.NotEmpty(t, stack, "close %q with no open section", tag.Name)
				top := stack[len(stack)-1]
				assert.Equal(t, top.name, tag.Name, "crossed section markers")
				assert.Greater(t, i, top.block, "close for %q not in a later block", tag.Name)
				stack = stack[:len(stack)-1]
				closed[tag.Name]++
			}
		}
	}

	assert.Empty(t, stack, "unclosed sections remain")
	for name, n := range closed {
		assert.Equal(t, 1, n, "section %q closed %d times", name, n)
	}
}

func TestSectionMarkersOccupyOwnBlocks(t *testing.T) {
	for _, p := range mustParagraphs(t) {
		text := p.Text()
		for _, tag := range tags.Extract(text) {
			switch tag.Kind {
			case tags.KindSectionOpen:
				assert.Equal(t, tags.Open(tag.Name), text)
			case tags.KindSectionClose:
				assert.Equal(t, tags.Close(tag.Name), text)
			}
		}
	}
}

func TestNestingDepthAtMostTwo(t *testing.T) {
	depth, maxDepth := 0, 0
	for _, p := range mustParagraphs(t) {
		for _, tag := range tags.Extract(p.Text()) {
			switch tag.Kind {
			case tags.KindSectionOpen:
				depth++
				if depth > maxDepth {
					maxDepth = depth
				}
			case tags.KindSectionClose:
				depth--
			}
		}
	}
	assert.Equal(t, 0, depth)
	assert.Equal(t, 2, maxDepth)
}

// scopedTags walks the serialized template and collects, per enclosing
// section ("" for top level), the scalar, length, and item tags emitted
// in that scope.
func scopedTags(paras []docx.Paragraph) (scalars map[string]map[string]bool, lengths map[string]map[string]bool, items map[string]int) {
	scalars = map[string]map[string]bool{}
	lengths = map[string]map[string]bool{}
	items = map[string]int{}
	record := func(m map[string]map[string]bool, scope, name string) {
		if m[scope] == nil {
			m[scope] = map[string]bool{}
		}
		m[scope][name] = true
	}

	var stack []string
	for _, p := range paras {
		for _, tag := range tags.Extract(p.Text()) {
			scope := ""
			if len(stack) > 0 {
				scope = stack[len(stack)-1]
			}
			switch tag.Kind {
			case tags.KindSectionOpen:
				stack = append(stack, tag.Name)
			case tags.KindSectionClose:
				stack = stack[:len(stack)-1]
			case tags.KindScalar:
				record(scalars, scope, tag.Name)
			case tags.KindLength:
				record(lengths, scope, tag.Name)
			case tags.KindItem:
				items[scope]++
			}
		}
	}
	return scalars, lengths, items
}

func setOf(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}

// The emitted tag inventory must match the render-time data contract
// exactly: no missing, no extra, no misspelled identifiers.
func TestTagInventoryMatchesContract(t *testing.T) {
	scalars, lengths, items := scopedTags(mustParagraphs(t))

	assert.Equal(t, setOf(contract.ScalarFields()), scalars[""], "top-level scalars")

	for _, section := range []string{"priority_themes", "roadmap", "themes", "failed_findings"} {
		assert.Equal(t, setOf(contract.ElementFields(section)), scalars[section], "scalars in %s", section)
	}

	// The only derived count lives in the themes scope.
	assert.Equal(t, map[string]map[string]bool{"themes": {"failed_findings": true}}, lengths)

	// Literal items appear only in the plain-value sections.
	assert.Equal(t, map[string]int{"remediation_steps": 1, "operational_notes": 1}, items)
	assert.True(t, contract.PlainIterable("remediation_steps"))
	assert.True(t, contract.PlainIterable("operational_notes"))
	assert.Empty(t, scalars["remediation_steps"])
	assert.Empty(t, scalars["operational_notes"])
}

func TestSectionNamesMatchContractIterables(t *testing.T) {
	var topLevel []string
	depth := 0
	for _, p := range mustParagraphs(t) {
		for _, tag := range tags.Extract(p.Text()) {
			switch tag.Kind {
			case tags.KindSectionOpen:
				if depth == 0 {
					topLevel = append(topLevel, tag.Name)
				}
				depth++
			case tags.KindSectionClose:
				depth--
			}
		}
	}
	assert.Equal(t, contract.IterableFields(), topLevel)
}

func TestAssembleDeterministic(t *testing.T) {
	first, err := mustAssemble(t).Bytes()
	require.NoError(t, err)
	second, err := mustAssemble(t).Bytes()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssembleAppliesConfig(t *testing.T) {
	tmpl, err := Assemble(Config{
		ProductName:     "Acme Tenant Review",
		Accent:          "101010",
		Secondary:       "202020",
		MethodologyText: "Custom methodology narrative.",
		ToolName:        "acme-assess",
	})
	require.NoError(t, err)

	paras, err := tmpl.Paragraphs()
	require.NoError(t, err)
	texts := paragraphTexts(paras)

	assert.Equal(t, "Acme Tenant Review", texts[0])
	assert.GreaterOrEqual(t, indexOf(texts, "Custom methodology narrative."), 0)
	assert.GreaterOrEqual(t, indexOf(texts, "Tool: acme-assess"), 0)
}

func TestValidateTreeRejectsRawMarkers(t *testing.T) {
	nodes := []Node{para("{#themes}")}
	err := validateTree(nodes, 0, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAssembly))
	assert.True(t, strings.Contains(err.Error(), "themes"))
}

func TestValidateTreeRejectsItemOutsidePlainSection(t *testing.T) {
	err := validateTree([]Node{para("{.}")}, 0, false)
	assert.True(t, errors.Is(err, ErrAssembly))

	err = validateTree([]Node{Section{Name: "themes", Children: []Node{para("{.}")}}}, 0, false)
	assert.True(t, errors.Is(err, ErrAssembly))
}

func TestValidateTreeAcceptsItemInPlainSection(t *testing.T) {
	nodes := []Node{Section{Name: "remediation_steps", Plain: true, Children: []Node{para("{.}")}}}
	assert.NoError(t, validateTree(nodes, 0, false))
}

func TestValidateTreeRejectsDeepNesting(t *testing.T) {
	nodes := []Node{Section{Name: "a", Children: []Node{
		Section{Name: "b", Children: []Node{
			Section{Name: "c"},
		}},
	}}}
	err := validateTree(nodes, 0, false)
	assert.True(t, errors.Is(err, ErrAssembly))
}

func TestValidateTreeRejectsInvalidSectionName(t *testing.T) {
	for _, name := range []string{"", "Themes", "bad-name", "9x"} {
		err := validateTree([]Node{Section{Name: name}}, 0, false)
		assert.True(t, errors.Is(err, ErrAssembly), "name %q", name)
	}
}

func TestValidateTreeRejectsSectionInsidePlainSection(t *testing.T) {
	nodes := []Node{Section{Name: "remediation_steps", Plain: true, Children: []Node{
		Section{Name: "inner"},
	}}}
	err := validateTree(nodes, 0, false)
	assert.True(t, errors.Is(err, ErrAssembly))
}
