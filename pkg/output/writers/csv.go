// Package writers provides report writers for the supported output
// formats: delimited text (the canonical compliance report format) and
// JSON for programmatic consumers.
package writers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/complymap/complymap/pkg/output"
	"github.com/complymap/complymap/pkg/report"
)

// Compile-time interface check.
var _ output.RowWriter = (*CSVWriter)(nil)

// UTF-8 BOM for Excel compatibility.
const utf8BOM = "\xEF\xBB\xBF"

// Compliance reports use semicolons so requirement descriptions can
// contain commas without quoting.
const defaultDelimiter = ';'

// CSVWriter writes compliance rows as delimited text. The header is
// the static column list from the report package, upper-cased; every
// data line carries the same field count in the same order.
type CSVWriter struct {
	w             io.Writer
	csvWriter     *csv.Writer
	mu            sync.Mutex
	opts          CSVOptions
	logger        *slog.Logger
	headerWritten bool
	closed        bool
}

// CSVOptions configures the CSV writer behavior.
type CSVOptions struct {
	// Delimiter sets the field delimiter character.
	// Default is semicolon when zero value.
	Delimiter rune

	// ExcelCompatible adds a UTF-8 BOM so Excel renders Unicode
	// resource names correctly.
	ExcelCompatible bool

	// SanitizeFormulas prevents CSV injection by prefixing dangerous
	// leading characters (= + - @ TAB CR) with a quote.
	SanitizeFormulas bool

	// Logger receives write diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// NewCSVWriter creates a CSV writer over w. Nothing is written until
// the first non-empty WriteRows call. The writer is safe for
// concurrent use.
func NewCSVWriter(w io.Writer, opts CSVOptions) *CSVWriter {
	if opts.Delimiter == 0 {
		opts.Delimiter = defaultDelimiter
	}

	var csvWriter *csv.Writer
	if w != nil {
		csvWriter = csv.NewWriter(w)
		csvWriter.Comma = opts.Delimiter
	}

	return &CSVWriter{
		w:         w,
		csvWriter: csvWriter,
		opts:      opts,
		logger:    orDefault(opts.Logger),
	}
}

// WriteRows writes the rows, emitting the header before the first one.
// An empty row set, an absent destination, or a closed writer is a
// no-op success.
func (cw *CSVWriter) WriteRows(rows []report.Row) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.w == nil || cw.closed || len(rows) == 0 {
		return nil
	}

	if !cw.headerWritten {
		if cw.opts.ExcelCompatible {
			if _, err := cw.w.Write([]byte(utf8BOM)); err != nil {
				return fmt.Errorf("csv: bom: %w", err)
			}
		}
		if err := cw.csvWriter.Write(report.Columns()); err != nil {
			return fmt.Errorf("csv: header: %w", err)
		}
		cw.headerWritten = true
	}

	for i := range rows {
		record := rows[i].Record()
		if cw.opts.SanitizeFormulas {
			for j, field := range record {
				record[j] = sanitizeForCSV(field)
			}
		}
		if err := cw.csvWriter.Write(record); err != nil {
			return fmt.Errorf("csv: row %d: %w", i, err)
		}
	}

	cw.csvWriter.Flush()
	if err := cw.csvWriter.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	return nil
}

// Flush flushes the CSV writer's internal buffer.
func (cw *CSVWriter) Flush() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	if cw.csvWriter == nil || cw.closed {
		return nil
	}
	cw.csvWriter.Flush()
	return cw.csvWriter.Error()
}

// Close flushes buffered rows and closes the underlying writer when it
// implements io.Closer. Close is idempotent; later calls return nil.
func (cw *CSVWriter) Close() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.closed || cw.w == nil {
		return nil
	}
	cw.closed = true

	cw.csvWriter.Flush()
	if err := cw.csvWriter.Error(); err != nil {
		if closer, ok := cw.w.(io.Closer); ok {
			closer.Close()
		}
		return fmt.Errorf("csv: flush: %w", err)
	}

	if closer, ok := cw.w.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("csv: close: %w", err)
		}
	}
	return nil
}

// WriteReport serializes rows to w as a delimited compliance report,
// releasing w on every path, error paths included. A nil destination
// or empty row set writes nothing and succeeds. Failures are logged to
// the options logger and returned; callers wanting the historical
// swallow-and-log behavior can discard the error.
func WriteReport(w io.WriteCloser, rows []report.Row, opts CSVOptions) (err error) {
	if w == nil || len(rows) == 0 {
		return nil
	}

	cw := NewCSVWriter(w, opts)
	defer func() {
		if cerr := cw.Close(); cerr != nil {
			cw.logger.Error("compliance report close failed", slog.String("error", cerr.Error()))
			if err == nil {
				err = cerr
			}
		}
	}()

	if err = cw.WriteRows(rows); err != nil {
		cw.logger.Error("compliance report write failed", slog.String("error", err.Error()))
	}
	return err
}

// sanitizeForCSV prevents CSV injection by prefixing dangerous
// characters. This is a SECURITY feature to prevent formula execution
// in spreadsheets.
func sanitizeForCSV(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

// orDefault returns l if non-nil, otherwise slog.Default().
func orDefault(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}
