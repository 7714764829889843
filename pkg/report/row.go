package report

import (
	"strconv"

	"github.com/complymap/complymap/pkg/finding"
)

// Row is one flattened compliance record destined for one report line.
// Field order here is the column order of every serialized report;
// Columns and Record must stay aligned with it.
type Row struct {
	Provider                  string         `json:"provider"`
	Description               string         `json:"description"`
	AccountID                 string         `json:"account_id"`
	Region                    string         `json:"region"`
	AssessmentDate            string         `json:"assessment_date"`
	RequirementID             string         `json:"requirement_id"`
	RequirementDescription    string         `json:"requirement_description"`
	AttributeName             string         `json:"attribute_name"`
	AttributeQuestionID       string         `json:"attribute_question_id,omitempty"`
	AttributePracticeID       string         `json:"attribute_practice_id,omitempty"`
	AttributeSection          string         `json:"attribute_section,omitempty"`
	AttributeSubSection       string         `json:"attribute_sub_section,omitempty"`
	AttributeLevelOfRisk      string         `json:"attribute_level_of_risk,omitempty"`
	AttributeAssessmentMethod string         `json:"attribute_assessment_method,omitempty"`
	AttributeDescription      string         `json:"attribute_description,omitempty"`
	AttributeGuidanceURL      string         `json:"attribute_guidance_url,omitempty"`
	Status                    finding.Status `json:"status"`
	StatusExtended            string         `json:"status_extended"`
	ResourceID                string         `json:"resource_id"`
	ResourceName              string         `json:"resource_name"`
	CheckID                   string         `json:"check_id"`
	Muted                     bool           `json:"muted"`
}

// columns defines the report header, upper-cased per the delimited
// report format. Order matches the Row field declaration order.
var columns = []string{
	"PROVIDER",
	"DESCRIPTION",
	"ACCOUNTID",
	"REGION",
	"ASSESSMENTDATE",
	"REQUIREMENTS_ID",
	"REQUIREMENTS_DESCRIPTION",
	"REQUIREMENTS_ATTRIBUTES_NAME",
	"REQUIREMENTS_ATTRIBUTES_QUESTIONID",
	"REQUIREMENTS_ATTRIBUTES_PRACTICEID",
	"REQUIREMENTS_ATTRIBUTES_SECTION",
	"REQUIREMENTS_ATTRIBUTES_SUBSECTION",
	"REQUIREMENTS_ATTRIBUTES_LEVELOFRISK",
	"REQUIREMENTS_ATTRIBUTES_ASSESSMENTMETHOD",
	"REQUIREMENTS_ATTRIBUTES_DESCRIPTION",
	"REQUIREMENTS_ATTRIBUTES_IMPLEMENTATIONGUIDANCEURL",
	"STATUS",
	"STATUSEXTENDED",
	"RESOURCEID",
	"RESOURCENAME",
	"CHECKID",
	"MUTED",
}

// Columns returns the report header columns in serialization order.
// The returned slice is a copy; callers may modify it.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// Record returns the row's field values as strings, in Columns order.
func (r Row) Record() []string {
	return []string{
		r.Provider,
		r.Description,
		r.AccountID,
		r.Region,
		r.AssessmentDate,
		r.RequirementID,
		r.RequirementDescription,
		r.AttributeName,
		r.AttributeQuestionID,
		r.AttributePracticeID,
		r.AttributeSection,
		r.AttributeSubSection,
		r.AttributeLevelOfRisk,
		r.AttributeAssessmentMethod,
		r.AttributeDescription,
		r.AttributeGuidanceURL,
		string(r.Status),
		r.StatusExtended,
		r.ResourceID,
		r.ResourceName,
		r.CheckID,
		strconv.FormatBool(r.Muted),
	}
}
