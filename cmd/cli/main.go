// Command reportgen generates the M365 security-assessment report
// template: a .docx skeleton carrying docxtemplater placeholder tags,
// later filled with per-assessment data by a rendering engine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/m365assess/reportgen/pkg/config"
	"github.com/m365assess/reportgen/pkg/contract"
	"github.com/m365assess/reportgen/pkg/iohelper"
	"github.com/m365assess/reportgen/pkg/template"
	"github.com/m365assess/reportgen/pkg/ui"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts config.Options

	fs := flag.NewFlagSet("reportgen", flag.ContinueOnError)
	fs.StringVar(&opts.OutputPath, "o", "", "Output path for the generated .docx template (required)")
	fs.StringVar(&opts.ConfigFile, "config", "", "Optional YAML template configuration (branding, colors, methodology)")
	fs.StringVar(&opts.ContractPath, "contract", "", "Also write the sample render-data fixture as JSON to this path")
	fs.BoolVar(&opts.Quiet, "quiet", false, "Suppress terminal output")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: reportgen -o <path> [-config <yaml>] [-contract <path>] [-quiet]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if err := opts.Validate(); err != nil {
		ui.Errorf("%v", err)
		fs.Usage()
		return exitUsage
	}

	if err := generate(opts); err != nil {
		if !opts.Quiet {
			ui.Errorf("%v", err)
		}
		return exitError
	}

	if !opts.Quiet {
		ui.Successf("Template created: %s", opts.OutputPath)
		if opts.ContractPath != "" {
			ui.Successf("Contract fixture created: %s", opts.ContractPath)
		}
		ui.Mutedf("Tags: scalars like {customer_name}, sections {#themes}...{/themes}, counts {failed_findings.length}, items {.}")
	}
	return exitOK
}

func generate(opts config.Options) error {
	tc, err := config.LoadTemplateConfig(opts.ConfigFile)
	if err != nil {
		return err
	}

	if _, err := template.Build(template.Config{
		ProductName:     tc.Branding.ProductName,
		Accent:          config.HexColor(tc.Branding.AccentColor),
		Secondary:       config.HexColor(tc.Branding.SecondaryColor),
		MethodologyText: tc.Methodology.Description,
		ToolName:        tc.Methodology.ToolName,
	}, opts.OutputPath); err != nil {
		return err
	}

	if opts.ContractPath != "" {
		fixture, err := contract.MarshalFixture(contract.Sample())
		if err != nil {
			return fmt.Errorf("encode contract fixture: %w", err)
		}
		if err := iohelper.WriteFileAtomic(opts.ContractPath, fixture, 0o644); err != nil {
			return fmt.Errorf("write contract fixture: %w", err)
		}
	}
	return nil
}
