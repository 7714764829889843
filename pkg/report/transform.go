package report

import (
	"strings"
	"time"

	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/finding"
)

// Default timestamp format (RFC3339).
const defaultTimestampFormat = "2006-01-02T15:04:05Z07:00"

// Sentinel values for synthetic manual rows.
const (
	manualResourceID   = "manual_check"
	manualResourceName = "Manual check"
	manualCheckID      = "manual"
	manualStatusText   = "Manual check"
)

// Options configures a transform run.
type Options struct {
	// AssessmentDate stamps the synthetic manual rows. Callers supply
	// the report-generation time; the zero value renders as an empty
	// field. Finding-derived rows always carry the finding's own
	// timestamp instead.
	AssessmentDate time.Time

	// TimestampFormat overrides the RFC3339 rendering of timestamps.
	TimestampFormat string
}

// Transform flattens findings into compliance rows for the named
// framework. Output order is deterministic: findings in input order,
// requirements and attributes in definition order, then one MANUAL row
// per attribute of every requirement with no automated checks.
//
// A finding that satisfies no requirement of the framework contributes
// no rows. A requirement with no attributes contributes no rows.
func Transform(findings []finding.Finding, fw *compliance.Framework, frameworkName string, opts Options) []Row {
	if fw == nil {
		return nil
	}
	format := opts.TimestampFormat
	if format == "" {
		format = defaultTimestampFormat
	}

	var rows []Row
	for i := range findings {
		f := &findings[i]
		satisfied := make(map[string]bool)
		for _, id := range f.RequirementIDs(frameworkName) {
			satisfied[id] = true
		}
		if len(satisfied) == 0 {
			continue
		}
		for ri := range fw.Requirements {
			req := &fw.Requirements[ri]
			if !satisfied[req.ID] {
				continue
			}
			for _, attr := range req.Attributes {
				row := newRow(fw, req, attr)
				row.Provider = f.Provider
				row.AccountID = f.AccountUID
				row.Region = f.Region
				row.AssessmentDate = formatTime(f.Timestamp, format)
				row.Status = f.Status
				row.StatusExtended = f.StatusExtended
				row.ResourceID = f.ResourceUID
				row.ResourceName = f.ResourceName
				row.CheckID = f.CheckID
				row.Muted = f.Muted
				rows = append(rows, row)
			}
		}
	}

	// Requirements without automated checks are always reported, with
	// or without findings.
	for ri := range fw.Requirements {
		req := &fw.Requirements[ri]
		if !req.IsManual() {
			continue
		}
		for _, attr := range req.Attributes {
			row := newRow(fw, req, attr)
			row.Provider = strings.ToLower(fw.Provider)
			row.AssessmentDate = formatTime(opts.AssessmentDate, format)
			row.Status = finding.StatusManual
			row.StatusExtended = manualStatusText
			row.ResourceID = manualResourceID
			row.ResourceName = manualResourceName
			row.CheckID = manualCheckID
			rows = append(rows, row)
		}
	}

	return rows
}

// newRow fills the framework, requirement, and attribute fields shared
// by finding-derived and manual rows.
func newRow(fw *compliance.Framework, req *compliance.Requirement, attr compliance.Attribute) Row {
	return Row{
		Description:               fw.Description,
		RequirementID:             req.ID,
		RequirementDescription:    req.Description,
		AttributeName:             attr.Name,
		AttributeQuestionID:       attr.QuestionID,
		AttributePracticeID:       attr.PracticeID,
		AttributeSection:          attr.Section,
		AttributeSubSection:       attr.SubSection,
		AttributeLevelOfRisk:      attr.LevelOfRisk,
		AttributeAssessmentMethod: attr.AssessmentMethod,
		AttributeDescription:      attr.Description,
		AttributeGuidanceURL:      attr.GuidanceURL,
	}
}

func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
