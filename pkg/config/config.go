// Package config holds CLI options and the optional YAML template
// configuration (branding text, style colors, methodology wording).
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Options holds the CLI configuration for one generator invocation.
type Options struct {
	// OutputPath is where the generated template is written. Required.
	OutputPath string

	// ConfigFile optionally points to a YAML template configuration.
	ConfigFile string

	// ContractPath, when set, additionally writes the sample
	// render-data fixture as JSON to this path.
	ContractPath string

	// Quiet suppresses styled terminal output.
	Quiet bool
}

// Validate checks that required options are present.
func (o *Options) Validate() error {
	if o.OutputPath == "" {
		return fmt.Errorf("%w: output path (-o)", ErrMissingRequired)
	}
	return nil
}

// TemplateConfig customizes the fixed text and palette of the generated
// template. Placeholder tag names are never configurable; they are the
// renderer's data contract.
type TemplateConfig struct {
	Branding    BrandingConfig    `yaml:"branding"`
	Methodology MethodologyConfig `yaml:"methodology"`
}

// BrandingConfig holds the static branding text and colors.
type BrandingConfig struct {
	// ProductName is the cover page title.
	ProductName string `yaml:"product_name"`

	// AccentColor is the title/heading-1 color (hex, e.g. "#003366").
	AccentColor string `yaml:"accent_color"`

	// SecondaryColor is the heading-2 color.
	SecondaryColor string `yaml:"secondary_color"`
}

// MethodologyConfig holds the appendix's methodology wording.
type MethodologyConfig struct {
	// ToolName appears in the assessment metadata.
	ToolName string `yaml:"tool_name"`

	// Description is the methodology narrative paragraph.
	Description string `yaml:"description"`
}

// DefaultTemplateConfig returns the stock M365 assessment branding.
func DefaultTemplateConfig() TemplateConfig {
	return TemplateConfig{
		Branding: BrandingConfig{
			ProductName:    "Microsoft 365 Security Assessment",
			AccentColor:    "#003366",
			SecondaryColor: "#0066CC",
		},
		Methodology: MethodologyConfig{
			ToolName: "ScubaGear via m365-assess wrapper",
			Description: "This assessment was conducted using ScubaGear, an automated security configuration " +
				"assessment tool developed by CISA. ScubaGear evaluates Microsoft 365 configurations " +
				"against the Secure Cloud Business Applications (SCuBA) security baseline.",
		},
	}
}

var colorPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// LoadTemplateConfig reads a YAML template config from path and fills
// unset fields with defaults. An empty path returns the defaults.
func LoadTemplateConfig(path string) (TemplateConfig, error) {
	cfg := DefaultTemplateConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read template config %s: %w", path, err)
	}

	var loaded TemplateConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	if loaded.Branding.ProductName != "" {
		cfg.Branding.ProductName = loaded.Branding.ProductName
	}
	if loaded.Branding.AccentColor != "" {
		cfg.Branding.AccentColor = loaded.Branding.AccentColor
	}
	if loaded.Branding.SecondaryColor != "" {
		cfg.Branding.SecondaryColor = loaded.Branding.SecondaryColor
	}
	if loaded.Methodology.ToolName != "" {
		cfg.Methodology.ToolName = loaded.Methodology.ToolName
	}
	if loaded.Methodology.Description != "" {
		cfg.Methodology.Description = loaded.Methodology.Description
	}

	for _, c := range []string{cfg.Branding.AccentColor, cfg.Branding.SecondaryColor} {
		if !colorPattern.MatchString(c) {
			return cfg, fmt.Errorf("%w: color %q is not a 6-digit hex value", ErrInvalidConfig, c)
		}
	}
	return cfg, nil
}

// HexColor strips the leading '#' from a color value for use in
// WordprocessingML, which expects bare RRGGBB.
func HexColor(c string) string {
	if len(c) > 0 && c[0] == '#' {
		return c[1:]
	}
	return c
}
