// Package output defines the writer contract shared by all report
// serializers. Writers persist flattened compliance rows to a format
// such as delimited text or JSON; the CLI picks writers by format and
// treats them uniformly through RowWriter.
package output

import "github.com/complymap/complymap/pkg/report"

// RowWriter is the interface for all report writers.
type RowWriter interface {
	// WriteRows writes the rows to the output. An empty row set is a
	// no-op success: no header, no bytes.
	WriteRows(rows []report.Row) error

	// Flush ensures all buffered rows are written.
	Flush() error

	// Close flushes the writer and releases the destination. Writers
	// own their destination once handed to them; Close must release it
	// on every path and be safe to call more than once.
	Close() error
}
