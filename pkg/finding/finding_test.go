package finding

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStatusIsValid(t *testing.T) {
	valid := []Status{StatusPass, StatusFail, StatusManual, StatusInfo}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []Status{"", "pass", "WARN"} {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestRequirementIDs(t *testing.T) {
	f := Finding{
		Compliance: map[string][]string{"X": {"R1", "R2"}},
	}
	if got := f.RequirementIDs("X"); len(got) != 2 {
		t.Errorf("expected 2 requirement ids, got %v", got)
	}
	if got := f.RequirementIDs("Y"); got != nil {
		t.Errorf("unknown framework should yield nil, got %v", got)
	}
}

func TestLoadJSONL(t *testing.T) {
	t.Run("decodes one finding per line", func(t *testing.T) {
		input := strings.Join([]string{
			`{"provider":"aws","account_uid":"1","region":"eu-west-1","timestamp":"2026-08-25T10:00:00Z","status":"PASS","resource_uid":"arn:1","check_id":"check_a","compliance":{"X":["R1"]}}`,
			``,
			`{"provider":"aws","account_uid":"2","region":"us-east-1","status":"FAIL","resource_uid":"arn:2","check_id":"check_b","muted":true}`,
		}, "\n")

		findings, err := LoadJSONL(strings.NewReader(input))
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(findings) != 2 {
			t.Fatalf("expected 2 findings, got %d", len(findings))
		}

		first := findings[0]
		if first.AccountUID != "1" || first.Status != StatusPass {
			t.Errorf("first finding = %+v", first)
		}
		want := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
		if !first.Timestamp.Equal(want) {
			t.Errorf("timestamp = %v, want %v", first.Timestamp, want)
		}
		if got := first.RequirementIDs("X"); len(got) != 1 || got[0] != "R1" {
			t.Errorf("requirement ids = %v", got)
		}

		if !findings[1].Muted {
			t.Error("second finding should be muted")
		}
	})

	t.Run("reports the offending line on bad input", func(t *testing.T) {
		input := `{"provider":"aws","status":"PASS"}` + "\n" + `{not json}`

		findings, err := LoadJSONL(strings.NewReader(input))
		if !errors.Is(err, ErrInvalidFinding) {
			t.Fatalf("expected ErrInvalidFinding, got %v", err)
		}
		if !strings.Contains(err.Error(), "line 2") {
			t.Errorf("error should name the line: %v", err)
		}
		if len(findings) != 1 {
			t.Errorf("expected the valid prefix to be returned, got %d findings", len(findings))
		}
	})

	t.Run("empty input yields no findings", func(t *testing.T) {
		findings, err := LoadJSONL(strings.NewReader(""))
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(findings) != 0 {
			t.Errorf("expected no findings, got %d", len(findings))
		}
	})
}
