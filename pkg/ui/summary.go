package ui

import (
	"fmt"
	"strings"

	"github.com/complymap/complymap/pkg/finding"
	"github.com/complymap/complymap/pkg/report"
)

// Summary holds the row counts of a completed report run.
type Summary struct {
	ReportID  string
	Framework string
	Total     int
	Pass      int
	Fail      int
	Manual    int
	Muted     int
}

// Summarize counts rows by status for the run summary.
func Summarize(frameworkName, reportID string, rows []report.Row) Summary {
	s := Summary{
		ReportID:  reportID,
		Framework: frameworkName,
		Total:     len(rows),
	}
	for i := range rows {
		switch rows[i].Status {
		case finding.StatusPass:
			s.Pass++
		case finding.StatusFail:
			s.Fail++
		case finding.StatusManual:
			s.Manual++
		}
		if rows[i].Muted {
			s.Muted++
		}
	}
	return s
}

// Render formats the summary for the terminal. With noColor set the
// output is plain text.
func (s Summary) Render(noColor bool) string {
	var b strings.Builder

	title := fmt.Sprintf("%s compliance report", s.Framework)
	if noColor {
		b.WriteString(title + "\n")
	} else {
		b.WriteString(TitleStyle.Render(title) + "\n")
	}

	lines := []struct {
		label  string
		value  string
		status string
	}{
		{"Report ID", s.ReportID, ""},
		{"Rows", fmt.Sprintf("%d", s.Total), ""},
		{"Pass", fmt.Sprintf("%d", s.Pass), "PASS"},
		{"Fail", fmt.Sprintf("%d", s.Fail), "FAIL"},
		{"Manual", fmt.Sprintf("%d", s.Manual), "MANUAL"},
		{"Muted", fmt.Sprintf("%d", s.Muted), ""},
	}

	for _, l := range lines {
		if noColor {
			fmt.Fprintf(&b, "  %-10s %s\n", l.label, l.value)
			continue
		}
		value := StatValueStyle.Render(l.value)
		if l.status != "" {
			value = StatusStyle(l.status).Render(l.value)
		}
		fmt.Fprintf(&b, "  %s %s\n", StatLabelStyle.Render(fmt.Sprintf("%-10s", l.label)), value)
	}

	return b.String()
}
