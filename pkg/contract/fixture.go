package contract

import "github.com/m365assess/reportgen/pkg/jsonutil"

// Empty returns a ReportData with every iterable present but empty. A
// conforming renderer must accept it and produce zero repetitions of
// every section.
func Empty() ReportData {
	return ReportData{
		PriorityThemes: []PriorityTheme{},
		Roadmap:        []RoadmapEntry{},
		Themes:         []Theme{},
	}
}

// Sample returns a small, fully populated ReportData suitable for
// exercising a renderer against the generated template.
func Sample() ReportData {
	return ReportData{
		CustomerName:         "Contoso Ltd",
		AssessmentDate:       "2025-06-15",
		TeamName:             "Cloud Security Practice",
		SecurityScore:        72,
		RiskLevel:            "Medium",
		AssessmentSummary:    "The tenant's baseline posture is sound, with gaps concentrated in legacy authentication and external sharing controls.",
		TotalFindings:        118,
		PassedCount:          85,
		FailedCount:          27,
		NACount:              6,
		CriticalCount:        2,
		HighCount:            9,
		MediumCount:          11,
		LowCount:             5,
		ScoreMovementMessage: "Score improved 6 points since the previous assessment.",
		TenantID:             "3f2504e0-4f89-11d3-9a0c-0305e82c3301",
		RunID:                "run-2025-06-15-001",
		PriorityThemes: []PriorityTheme{
			{Title: "Identity & Access", Priority: "P1", FailedCount: 8},
			{Title: "Email Protection", Priority: "P2", FailedCount: 6},
		},
		Roadmap: []RoadmapEntry{
			{Priority: "P1", Theme: "Identity & Access", Window: "0-30 days", FailedCount: 8},
			{Priority: "P2", Theme: "Email Protection", Window: "30-60 days", FailedCount: 6},
		},
		Themes: []Theme{
			{
				Title:                 "Identity & Access",
				Priority:              "P1",
				Window:                "0-30 days",
				RiskLevel:             "High",
				PassRate:              64,
				BusinessRationale:     "Identity is the primary attack surface for cloud tenants.",
				BusinessImpact:        "Compromised credentials grant access to mail, files, and admin surfaces.",
				RecommendationSummary: "Enforce phishing-resistant MFA and retire legacy authentication.",
				FailedFindings: []FailedFinding{
					{ControlID: "MS.AAD.3.1v1", Title: "Phishing-resistant MFA not enforced", Severity: "Critical"},
					{ControlID: "MS.AAD.1.1v1", Title: "Legacy authentication enabled", Severity: "High"},
				},
				RemediationSteps: []string{
					"Create a conditional access policy requiring phishing-resistant MFA for all users.",
				},
				OperationalNotes: []string{},
			},
		},
	}
}

// MarshalFixture encodes data as indented JSON for renderer-side testing.
func MarshalFixture(data ReportData) ([]byte, error) {
	return jsonutil.MarshalIndent(data, "  ")
}
