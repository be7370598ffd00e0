// Package contract declares the render-time data contract for the report
// template: the exact record shape a template-rendering engine resolves
// placeholder tags against. The template generator and its tests both
// derive tag inventories from these types, so a renamed or misspelled
// field shows up as a test failure instead of a silently unresolved tag
// in a delivered report.
//
// JSON tag names are the placeholder identifiers. They are exact-match
// and case-sensitive; the same name always carries the same meaning
// wherever it appears.
package contract

import "reflect"

// ReportData is the top-level record the rendering engine receives.
type ReportData struct {
	CustomerName         string `json:"customer_name"`
	AssessmentDate       string `json:"assessment_date"`
	TeamName             string `json:"team_name"`
	SecurityScore        int    `json:"security_score"`
	RiskLevel            string `json:"risk_level"`
	AssessmentSummary    string `json:"assessment_summary"`
	TotalFindings        int    `json:"total_findings"`
	PassedCount          int    `json:"passed_count"`
	FailedCount          int    `json:"failed_count"`
	NACount              int    `json:"na_count"`
	CriticalCount        int    `json:"critical_count"`
	HighCount            int    `json:"high_count"`
	MediumCount          int    `json:"medium_count"`
	LowCount             int    `json:"low_count"`
	ScoreMovementMessage string `json:"score_movement_message"`
	TenantID             string `json:"tenant_id"`
	RunID                string `json:"run_id"`

	PriorityThemes []PriorityTheme `json:"priority_themes"`
	Roadmap        []RoadmapEntry  `json:"roadmap"`
	Themes         []Theme         `json:"themes"`
}

// PriorityTheme is one entry of the executive summary's priority list.
type PriorityTheme struct {
	Title       string `json:"title"`
	Priority    string `json:"priority"`
	FailedCount int    `json:"failed_count"`
}

// RoadmapEntry is one phased remediation item.
type RoadmapEntry struct {
	Priority    string `json:"priority"`
	Theme       string `json:"theme"`
	Window      string `json:"window"`
	FailedCount int    `json:"failed_count"`
}

// Theme is one security theme in the detailed findings section.
// RemediationSteps and OperationalNotes are plain-value iterables: inside
// their sections the template references the current element itself.
type Theme struct {
	Title                 string          `json:"title"`
	Priority              string          `json:"priority"`
	Window                string          `json:"window"`
	RiskLevel             string          `json:"risk_level"`
	PassRate              int             `json:"pass_rate"`
	BusinessRationale     string          `json:"business_rationale"`
	BusinessImpact        string          `json:"business_impact"`
	RecommendationSummary string          `json:"recommendation_summary"`
	FailedFindings        []FailedFinding `json:"failed_findings"`
	RemediationSteps      []string        `json:"remediation_steps"`
	OperationalNotes      []string        `json:"operational_notes"`
}

// FailedFinding is one failed control inside a theme.
type FailedFinding struct {
	ControlID string `json:"control_id"`
	Title     string `json:"title"`
	Severity  string `json:"severity"`
}

// ScalarFields returns the top-level scalar placeholder identifiers, in
// declaration order.
func ScalarFields() []string {
	return scalarNames(reflect.TypeOf(ReportData{}))
}

// IterableFields returns the top-level iterable identifiers, in
// declaration order.
func IterableFields() []string {
	var out []string
	t := reflect.TypeOf(ReportData{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type.Kind() == reflect.Slice {
			out = append(out, f.Tag.Get("json"))
		}
	}
	return out
}

// ElementFields returns the scalar identifiers of one element of the
// named iterable, resolving nested iterables anywhere in the contract.
// Plain-value iterables (elements with no fields) and unknown names
// return nil.
func ElementFields(iterable string) []string {
	elem, ok := elementType(reflect.TypeOf(ReportData{}), iterable)
	if !ok || elem.Kind() != reflect.Struct {
		return nil
	}
	return scalarNames(elem)
}

// PlainIterable reports whether the named iterable yields plain values
// rather than records.
func PlainIterable(iterable string) bool {
	elem, ok := elementType(reflect.TypeOf(ReportData{}), iterable)
	return ok && elem.Kind() != reflect.Struct
}

func scalarNames(t reflect.Type) []string {
	var out []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type.Kind() != reflect.Slice {
			out = append(out, f.Tag.Get("json"))
		}
	}
	return out
}

// elementType finds the slice field tagged name, searching struct-typed
// element shapes recursively.
func elementType(t reflect.Type, name string) (reflect.Type, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type.Kind() != reflect.Slice {
			continue
		}
		if f.Tag.Get("json") == name {
			return f.Type.Elem(), true
		}
		if f.Type.Elem().Kind() == reflect.Struct {
			if elem, ok := elementType(f.Type.Elem(), name); ok {
				return elem, true
			}
		}
	}
	return nil, false
}
