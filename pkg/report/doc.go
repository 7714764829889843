// Package report flattens security findings into per-framework
// compliance rows. Each row is one (finding × requirement × attribute)
// combination; requirements no automated check can satisfy are emitted
// as synthetic MANUAL rows so the report always covers the whole
// framework.
package report
