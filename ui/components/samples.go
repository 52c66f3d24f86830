package components

import (
	"fmt"
	"strings"

	"github.com/krishi-officer/krishicli/internal/models"
	"github.com/krishi-officer/krishicli/ui/styles"
)

// RenderSamples lists the canned questions with their F-key bindings.
func RenderSamples(samples []models.SampleQuestion) string {
	if len(samples) == 0 {
		return ""
	}

	var b strings.Builder
	sampleStyle := styles.SampleStyle()

	for i, sample := range samples {
		line := fmt.Sprintf("F%d  %s — %s", i+1, sample.Text, sample.Description)
		b.WriteString(sampleStyle.Render(line) + "\n")
	}
	b.WriteString("\n")

	return b.String()
}
