package tui

import (
	"YT_watchtime/internal/core/domain"
	"strconv"
	"strings"
)

// RenderSummary formats the report lines printed at the end of a run.
func RenderSummary(s domain.Summary) string {
	var b strings.Builder

	if s.Count > 0 {
		b.WriteString(summaryLabelStyle.Render("From:"))
		b.WriteString(" " + summaryValueStyle.Render(s.From))
		b.WriteString(" until " + summaryValueStyle.Render(s.Until))
		b.WriteString("\n")
	}

	b.WriteString(summaryLabelStyle.Render("Total amount of videos:"))
	b.WriteString(" " + summaryValueStyle.Render(strconv.Itoa(s.Count)))
	b.WriteString("\n")

	b.WriteString(summaryLabelStyle.Render("Total watchtime:"))
	b.WriteString(" " + summaryValueStyle.Render(domain.FormatWatchtime(s.TotalSeconds)))
	b.WriteString("\n")

	return b.String()
}
