package finding

// Status represents the outcome of a security check.
// All values are uppercase strings matching the wire format used by
// scanning engines and expected in serialized reports.
type Status string

const (
	// StatusPass indicates the resource satisfied the check.
	StatusPass Status = "PASS"

	// StatusFail indicates the resource violated the check.
	StatusFail Status = "FAIL"

	// StatusManual marks synthetic rows for requirements that no
	// automated check can satisfy.
	StatusManual Status = "MANUAL"

	// StatusInfo indicates an informational result with no pass/fail
	// judgement attached.
	StatusInfo Status = "INFO"
)

// IsValid reports whether s is a recognized check status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPass, StatusFail, StatusManual, StatusInfo:
		return true
	}
	return false
}

// String returns the status as a string.
func (s Status) String() string {
	return string(s)
}
