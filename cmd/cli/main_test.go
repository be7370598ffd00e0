package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m365assess/reportgen/pkg/jsonutil"
)

func TestRunGeneratesTemplate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report_template.docx")

	code := run([]string{"-o", out, "-quiet"})
	assert.Equal(t, exitOK, code)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunWritesContractFixture(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report_template.docx")
	fixture := filepath.Join(dir, "contract.json")

	code := run([]string{"-o", out, "-contract", fixture, "-quiet"})
	assert.Equal(t, exitOK, code)

	raw, err := os.ReadFile(fixture)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, jsonutil.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "customer_name")
	assert.Contains(t, decoded, "themes")
}

func TestRunAppliesTemplateConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "template.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
branding:
  product_name: Acme Tenant Review
`), 0o644))
	out := filepath.Join(dir, "report_template.docx")

	code := run([]string{"-o", out, "-config", cfgPath, "-quiet"})
	assert.Equal(t, exitOK, code)

	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestRunMissingOutputPath(t *testing.T) {
	assert.Equal(t, exitUsage, run([]string{}))
}

func TestRunUnknownFlag(t *testing.T) {
	assert.Equal(t, exitUsage, run([]string{"-definitely-not-a-flag"}))
}

func TestRunUnwritableTarget(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "report_template.docx")
	assert.Equal(t, exitError, run([]string{"-o", out, "-quiet"}))

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}
