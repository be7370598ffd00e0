package template

import (
	"github.com/m365assess/reportgen/pkg/docx"
	"github.com/m365assess/reportgen/pkg/tags"
)

// Config holds the static content knobs of the template: branding text,
// heading palette, and methodology wording. Placeholder tag names are
// fixed; they are the renderer's data contract and are not configurable.
type Config struct {
	// ProductName is the cover page title.
	ProductName string

	// Accent and Secondary are bare RRGGBB hex values for the heading
	// styles.
	Accent    string
	Secondary string

	// MethodologyText is the appendix narrative.
	MethodologyText string

	// ToolName appears in the appendix metadata.
	ToolName string
}

// DefaultConfig returns the stock M365 assessment template content.
func DefaultConfig() Config {
	return Config{
		ProductName: "Microsoft 365 Security Assessment",
		Accent:      "003366",
		Secondary:   "0066CC",
		MethodologyText: "This assessment was conducted using ScubaGear, an automated security configuration " +
			"assessment tool developed by CISA. ScubaGear evaluates Microsoft 365 configurations " +
			"against the Secure Cloud Business Applications (SCuBA) security baseline.",
		ToolName: "ScubaGear via m365-assess wrapper",
	}
}

// Assemble constructs the full report template tree in its fixed block
// order: cover page, executive summary, remediation roadmap, detailed
// findings, appendix. The order is part of the report's meaning;
// reordering blocks reorders the delivered report.
func Assemble(cfg Config) (*Template, error) {
	if cfg.ProductName == "" {
		cfg = DefaultConfig()
	}

	var nodes []Node
	nodes = append(nodes, coverPage(cfg)...)
	nodes = append(nodes, executiveSummary()...)
	nodes = append(nodes, remediationRoadmap()...)
	nodes = append(nodes, detailedFindings()...)
	nodes = append(nodes, appendix(cfg)...)

	if err := validateTree(nodes, 0, false); err != nil {
		return nil, err
	}
	return &Template{cfg: cfg, nodes: nodes}, nil
}

func coverPage(cfg Config) []Node {
	return []Node{
		Paragraph{Style: docx.StyleTitle, Align: docx.AlignCenter, Runs: []docx.Run{{Text: cfg.ProductName}}},
		Paragraph{Align: docx.AlignCenter, Runs: []docx.Run{{Text: tags.Scalar("customer_name"), Size: 16, Color: "444444"}}},
		Paragraph{Align: docx.AlignCenter, Runs: []docx.Run{{Text: tags.Scalar("assessment_date"), Size: 12, Color: "666666"}}},
		Spacer{},
		Paragraph{Align: docx.AlignCenter, Runs: []docx.Run{{Text: "Prepared by: " + tags.Scalar("team_name"), Size: 11, Italic: true}}},
		PageBreak{},
	}
}

func executiveSummary() []Node {
	return []Node{
		heading1("Executive Summary"),
		para("This report presents the findings of a comprehensive security assessment of " +
			tags.Scalar("customer_name") + "'s Microsoft 365 environment conducted on " +
			tags.Scalar("assessment_date") + ". The assessment evaluated security configurations " +
			"across identity management, email protection, data security, and collaboration " +
			"settings against Microsoft and CISA security baselines."),

		heading2("Overall Security Posture"),
		labeled("Security Score: ", tags.Scalar("security_score")+"%"),
		labeled("Risk Level: ", tags.Scalar("risk_level")),
		Spacer{},
		para(tags.Scalar("assessment_summary")),

		heading2("Findings Summary"),
		labeled("Total Controls Assessed: ", tags.Scalar("total_findings")),
		labeled("✓ Passed: ", tags.Scalar("passed_count")),
		labeled("✗ Failed: ", tags.Scalar("failed_count")),
		labeled("○ Not Applicable: ", tags.Scalar("na_count")),

		heading3("Failed Findings by Severity"),
		para("Critical: " + tags.Scalar("critical_count")),
		para("High: " + tags.Scalar("high_count")),
		para("Medium: " + tags.Scalar("medium_count")),
		para("Low: " + tags.Scalar("low_count")),

		heading2("Score Movement"),
		para(tags.Scalar("score_movement_message")),

		heading2("Priority Areas"),
		para("Based on the assessment findings, the following security themes have been " +
			"prioritized for remediation:"),
		Section{Name: "priority_themes", Children: []Node{
			bullet(tags.Scalar("title") + " (" + tags.Scalar("priority") + ") - " +
				tags.Scalar("failed_count") + " failed controls"),
		}},
		PageBreak{},
	}
}

func remediationRoadmap() []Node {
	return []Node{
		heading1("Remediation Roadmap"),
		para("The following roadmap outlines a phased approach to addressing identified " +
			"security gaps, organized by priority level and recommended timeline."),

		heading2("Prioritized Themes"),
		Section{Name: "roadmap", Children: []Node{
			labeled(tags.Scalar("priority")+": ", tags.Scalar("theme")+" ("+
				tags.Scalar("window")+") - "+tags.Scalar("failed_count")+" findings"),
		}},
		PageBreak{},
	}
}

func detailedFindings() []Node {
	return []Node{
		heading1("Detailed Findings by Security Theme"),
		para("This section provides detailed analysis of each security theme, including " +
			"business context, specific findings, and actionable remediation guidance."),

		Section{Name: "themes", Children: []Node{
			Paragraph{Style: docx.StyleHeading2, Runs: []docx.Run{{Text: tags.Scalar("title")}}},
			labeled("Priority: ", tags.Scalar("priority")+" ("+tags.Scalar("window")+")"),
			labeled("Risk Level: ", tags.Scalar("risk_level")),
			labeled("Pass Rate: ", tags.Scalar("pass_rate")+"%"),

			heading3("Business Rationale"),
			para(tags.Scalar("business_rationale")),
			heading3("Business Impact"),
			para(tags.Scalar("business_impact")),

			heading3("Failed Controls (" + tags.Length("failed_findings") + ")"),
			Section{Name: "failed_findings", Children: []Node{
				bullet(tags.Scalar("control_id") + ": " + tags.Scalar("title") +
					" (Severity: " + tags.Scalar("severity") + ")"),
			}},

			heading3("Recommendation Summary"),
			para(tags.Scalar("recommendation_summary")),

			heading3("Remediation Steps"),
			Section{Name: "remediation_steps", Plain: true, Children: []Node{
				numbered(tags.Item()),
			}},

			heading3("Operational Notes"),
			Section{Name: "operational_notes", Plain: true, Children: []Node{
				bullet(tags.Item()),
			}},

			Spacer{},
		}},
		PageBreak{},
	}
}

func appendix(cfg Config) []Node {
	return []Node{
		heading1("Appendix"),

		heading2("Assessment Methodology"),
		para(cfg.MethodologyText),

		heading2("Assessment Metadata"),
		para("Tenant ID: " + tags.Scalar("tenant_id")),
		para("Assessment Date: " + tags.Scalar("assessment_date")),
		para("Run ID: " + tags.Scalar("run_id")),
		para("Tool: " + cfg.ToolName),
	}
}

func heading1(text string) Node {
	return Paragraph{Style: docx.StyleHeading1, Runs: []docx.Run{{Text: text}}}
}

func heading2(text string) Node {
	return Paragraph{Style: docx.StyleHeading2, Runs: []docx.Run{{Text: text}}}
}

func heading3(text string) Node {
	return Paragraph{Style: docx.StyleHeading3, Runs: []docx.Run{{Text: text}}}
}

func para(text string) Node {
	return Paragraph{Runs: []docx.Run{{Text: text}}}
}

func bullet(text string) Node {
	return Paragraph{Style: docx.StyleListBullet, Runs: []docx.Run{{Text: text}}}
}

func numbered(text string) Node {
	return Paragraph{Style: docx.StyleListNumber, Runs: []docx.Run{{Text: text}}}
}

// labeled builds a paragraph with a bold label run followed by a value
// run, the "Label: {tag}" pattern used throughout the summary blocks.
func labeled(label, value string) Node {
	return Paragraph{Runs: []docx.Run{
		{Text: label, Bold: true},
		{Text: value},
	}}
}
