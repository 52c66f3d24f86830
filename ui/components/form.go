package components

import (
	"strings"

	"github.com/krishi-officer/krishicli/internal/models"
	"github.com/krishi-officer/krishicli/ui/styles"
)

// RenderForm draws the question and location inputs with the focused field
// highlighted. The cursor marker sits in whichever field has focus.
func RenderForm(query, location string, focus models.FormField, loading bool, width int) string {
	var b strings.Builder

	label := styles.LabelStyle()

	queryText := query
	locationText := location
	if !loading {
		if focus == models.FieldQuery {
			queryText += "█"
		} else {
			locationText += "█"
		}
	}

	b.WriteString(label.Render("Question") + "\n")
	b.WriteString(styles.InputStyle(width, focus == models.FieldQuery && !loading).Render(queryText) + "\n")
	b.WriteString(label.Render("Location (optional)") + "\n")
	b.WriteString(styles.InputStyle(width, focus == models.FieldLocation && !loading).Render(locationText) + "\n")

	if loading {
		b.WriteString(label.Render("Submitting...") + "\n")
	} else {
		b.WriteString(label.Render("Enter submit · Tab switch field · F1-F3 samples · Esc quit") + "\n")
	}

	return b.String()
}
