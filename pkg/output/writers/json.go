package writers

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/complymap/complymap/pkg/jsonutil"
	"github.com/complymap/complymap/pkg/output"
	"github.com/complymap/complymap/pkg/report"
)

// Compile-time interface check.
var _ output.RowWriter = (*JSONWriter)(nil)

// JSONWriter writes compliance rows as a single JSON array, one object
// per row with the same field set as the delimited format. Suitable
// for jq pipelines and programmatic consumers.
type JSONWriter struct {
	w      io.Writer
	mu     sync.Mutex
	opts   JSONOptions
	logger *slog.Logger
	closed bool
}

// JSONOptions configures the JSON writer behavior.
type JSONOptions struct {
	// Pretty enables indented output.
	Pretty bool

	// Logger receives write diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// NewJSONWriter creates a JSON writer over w.
// The writer is safe for concurrent use.
func NewJSONWriter(w io.Writer, opts JSONOptions) *JSONWriter {
	return &JSONWriter{
		w:      w,
		opts:   opts,
		logger: orDefault(opts.Logger),
	}
}

// WriteRows writes the rows as one JSON array followed by a newline.
// An empty row set, an absent destination, or a closed writer is a
// no-op success.
func (jw *JSONWriter) WriteRows(rows []report.Row) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	if jw.w == nil || jw.closed || len(rows) == 0 {
		return nil
	}

	encoder := jsonutil.NewStreamEncoder(jw.w)
	if jw.opts.Pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("json: encode: %w", err)
	}
	return nil
}

// Flush is a no-op; the JSON writer does not buffer.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close closes the underlying writer when it implements io.Closer.
// Close is idempotent; later calls return nil.
func (jw *JSONWriter) Close() error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	if jw.closed || jw.w == nil {
		return nil
	}
	jw.closed = true

	if closer, ok := jw.w.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("json: close: %w", err)
		}
	}
	return nil
}
