package writers

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONWriter(t *testing.T) {
	t.Run("writes rows as a JSON array", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w := NewJSONWriter(buf, JSONOptions{Logger: discardLogger})

		if err := w.WriteRows(makeRows(2)); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}

		var decoded []map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(decoded) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(decoded))
		}
		if decoded[0]["requirement_id"] != "R1" {
			t.Errorf("requirement_id = %v", decoded[0]["requirement_id"])
		}
		if decoded[0]["status"] != "PASS" {
			t.Errorf("status = %v", decoded[0]["status"])
		}
	})

	t.Run("empty rows write nothing", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w := NewJSONWriter(buf, JSONOptions{Logger: discardLogger})
		if err := w.WriteRows(nil); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("close closes the underlying writer", func(t *testing.T) {
		rc := &recordingCloser{}
		w := NewJSONWriter(rc, JSONOptions{Logger: discardLogger})
		if err := w.WriteRows(makeRows(1)); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
		if !rc.closed {
			t.Error("underlying writer not closed")
		}
	})

	t.Run("pretty output is indented", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w := NewJSONWriter(buf, JSONOptions{Pretty: true, Logger: discardLogger})
		if err := w.WriteRows(makeRows(1)); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if !bytes.Contains(buf.Bytes(), []byte("\n  ")) {
			t.Error("expected indented output")
		}
	})
}
