package ui

import (
	"strings"
	"testing"

	"github.com/complymap/complymap/pkg/finding"
	"github.com/complymap/complymap/pkg/report"
)

func TestSummarize(t *testing.T) {
	rows := []report.Row{
		{Status: finding.StatusPass},
		{Status: finding.StatusPass, Muted: true},
		{Status: finding.StatusFail},
		{Status: finding.StatusManual},
	}

	s := Summarize("X", "run-1", rows)
	if s.Total != 4 || s.Pass != 2 || s.Fail != 1 || s.Manual != 1 || s.Muted != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.Framework != "X" || s.ReportID != "run-1" {
		t.Errorf("summary metadata = %+v", s)
	}
}

func TestRenderNoColor(t *testing.T) {
	s := Summary{ReportID: "run-1", Framework: "X", Total: 3, Pass: 1, Fail: 1, Manual: 1}
	out := s.Render(true)

	for _, want := range []string{"X compliance report", "run-1", "Pass", "Fail", "Manual"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("no-color output contains ANSI escapes")
	}
}
