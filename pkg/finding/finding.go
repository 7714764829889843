package finding

import "time"

// Finding is one evaluated security-check result for one resource.
//
// Compliance maps a framework name to the requirement identifiers this
// finding satisfies within that framework. A framework absent from the
// map means the finding satisfies nothing there.
type Finding struct {
	Provider       string              `json:"provider"`
	AccountUID     string              `json:"account_uid"`
	Region         string              `json:"region"`
	Timestamp      time.Time           `json:"timestamp"`
	Compliance     map[string][]string `json:"compliance,omitempty"`
	Status         Status              `json:"status"`
	StatusExtended string              `json:"status_extended,omitempty"`
	ResourceUID    string              `json:"resource_uid"`
	ResourceName   string              `json:"resource_name,omitempty"`
	CheckID        string              `json:"check_id"`
	Muted          bool                `json:"muted,omitempty"`
}

// RequirementIDs returns the requirement identifiers this finding
// satisfies for the named framework. Unknown frameworks yield nil.
func (f *Finding) RequirementIDs(framework string) []string {
	return f.Compliance[framework]
}
