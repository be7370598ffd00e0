package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	opts := Options{OutputPath: "out/report_template.docx"}
	assert.NoError(t, opts.Validate())

	err := (&Options{}).Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRequired))
}

func TestDefaultTemplateConfig(t *testing.T) {
	cfg := DefaultTemplateConfig()
	assert.Equal(t, "Microsoft 365 Security Assessment", cfg.Branding.ProductName)
	assert.Equal(t, "#003366", cfg.Branding.AccentColor)
	assert.Equal(t, "#0066CC", cfg.Branding.SecondaryColor)
	assert.Contains(t, cfg.Methodology.Description, "ScubaGear")
	assert.Equal(t, "ScubaGear via m365-assess wrapper", cfg.Methodology.ToolName)
}

func TestLoadTemplateConfigEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadTemplateConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplateConfig(), cfg)
}

func TestLoadTemplateConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
branding:
  product_name: Acme Tenant Review
  accent_color: "#101010"
methodology:
  tool_name: acme-assess
`), 0o644))

	cfg, err := LoadTemplateConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Acme Tenant Review", cfg.Branding.ProductName)
	assert.Equal(t, "#101010", cfg.Branding.AccentColor)
	assert.Equal(t, "acme-assess", cfg.Methodology.ToolName)

	// Unset fields keep defaults.
	assert.Equal(t, "#0066CC", cfg.Branding.SecondaryColor)
	assert.Contains(t, cfg.Methodology.Description, "ScubaGear")
}

func TestLoadTemplateConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, os.WriteFile(path, []byte("branding: [not: a: mapping"), 0o644))

	_, err := LoadTemplateConfig(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestLoadTemplateConfigInvalidColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
branding:
  accent_color: blue
`), 0o644))

	_, err := LoadTemplateConfig(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestLoadTemplateConfigMissingFile(t *testing.T) {
	_, err := LoadTemplateConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "003366", HexColor("#003366"))
	assert.Equal(t, "003366", HexColor("003366"))
	assert.Equal(t, "", HexColor(""))
}
