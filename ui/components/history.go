package components

import (
	"strings"

	"github.com/krishi-officer/krishicli/internal/models"
	"github.com/krishi-officer/krishicli/ui/styles"
)

// maxHistoryDisplayLen caps how much of a past query the history list shows.
const maxHistoryDisplayLen = 100

// RenderHistory draws the bounded session history, most recent first.
func RenderHistory(entries []models.HistoryEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.SectionTitleStyle().Render("Recent Questions") + "\n")

	entryStyle := styles.HistoryStyle()
	for _, entry := range entries {
		line := TruncateQuery(entry.Query) + "  [" + entry.Status + "]"
		b.WriteString(entryStyle.Render(line) + "\n")
	}
	b.WriteString("\n")

	return b.String()
}

// TruncateQuery cuts a query to 100 characters for display, marking the cut
// with an ellipsis. Shorter queries pass through unchanged.
func TruncateQuery(query string) string {
	runes := []rune(query)
	if len(runes) <= maxHistoryDisplayLen {
		return query
	}
	return string(runes[:maxHistoryDisplayLen]) + "..."
}
