package finding

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/complymap/complymap/pkg/jsonutil"
)

// ErrInvalidFinding is returned when a findings line cannot be decoded.
// Callers should use errors.Is() to check for it.
var ErrInvalidFinding = errors.New("finding: invalid finding record")

// Larger than bufio's default; extended statuses can carry long
// resource ARNs and error text.
const maxLineSize = 1024 * 1024

// LoadJSONL reads findings from r, one JSON object per line.
// Blank lines are skipped. Decoding stops at the first malformed line,
// returning the findings decoded so far along with the error.
func LoadJSONL(r io.Reader) ([]Finding, error) {
	var findings []Finding

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var f Finding
		if err := jsonutil.Unmarshal([]byte(raw), &f); err != nil {
			return findings, fmt.Errorf("%w: line %d: %v", ErrInvalidFinding, line, err)
		}
		findings = append(findings, f)
	}
	if err := scanner.Err(); err != nil {
		return findings, fmt.Errorf("reading findings: %w", err)
	}
	return findings, nil
}

// LoadFile reads findings from a JSONL file at path.
func LoadFile(path string) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening findings file: %w", err)
	}
	defer f.Close()
	return LoadJSONL(f)
}
