package views

import (
	"html"
	"strings"
	"time"
)

// esc escapes a string for safe HTML interpolation.
func esc(s string) string { return html.EscapeString(s) }

// formatDate renders an ISO date as "02 January 2006". Dates in any other
// shape are shown verbatim since static posts choose their own format.
func formatDate(date string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return date
	}
	return t.Format("02 January 2006")
}

// attr escapes a string for use inside a double-quoted attribute.
func attr(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", " ")
}
