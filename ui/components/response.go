package components

import (
	"fmt"
	"strings"

	"github.com/krishi-officer/krishicli/internal/models"
	"github.com/krishi-officer/krishicli/internal/utils"
	"github.com/krishi-officer/krishicli/ui/styles"
)

// RenderResponse projects the current response into its display sections.
// Optional fields that are absent omit their section entirely.
func RenderResponse(response *models.QueryResponse) string {
	if response == nil {
		return ""
	}

	var b strings.Builder

	title := styles.SectionTitleStyle()

	b.WriteString(title.Render("Your Question") + "\n")
	b.WriteString(styles.QuestionStyle().Render(response.OriginalText) + "\n\n")

	if response.TranslatedText != "" {
		b.WriteString(title.Render("Translation") + "\n")
		b.WriteString(styles.QuestionStyle().Render(response.TranslatedText) + "\n\n")
	}

	if response.Intent != "" {
		b.WriteString(title.Render("Detected Intent") + "\n")
		b.WriteString(styles.QuestionStyle().Render(formatIntent(response.Intent, response.Confidence)) + "\n\n")
	}

	if len(response.Recommendations) > 0 {
		b.WriteString(title.Render("Recommendations") + "\n")
		b.WriteString(RenderRecommendations(response.Recommendations))
	}

	if badges := AgentBadgeLines(response.AgentResponses); len(badges) > 0 {
		b.WriteString(title.Render("Agent Status") + "\n")
		for _, badge := range badges {
			b.WriteString("  " + badge + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderRecommendations draws one block per recommendation string. Advisory
// text comes back with light markdown, so each block is styled before boxing.
func RenderRecommendations(recommendations []string) string {
	var b strings.Builder
	blockStyle := styles.RecommendationStyle()

	for _, recommendation := range recommendations {
		b.WriteString(blockStyle.Render(utils.RenderAdvisoryText(recommendation)) + "\n\n")
	}

	return b.String()
}

// AgentBadgeLines builds one status badge per agent present in the response.
// An agent missing from the payload gets no line at all; each present agent's
// badge reflects only that agent's own success signal.
func AgentBadgeLines(agents *models.AgentResponses) []string {
	if agents == nil {
		return nil
	}

	var lines []string

	if agents.Translation != nil {
		lines = append(lines, agentBadge("Translation Agent", agents.Translation.Success))
	}
	if agents.Analysis != nil {
		lines = append(lines, agentBadge("Query Understanding Agent", agents.Analysis.Succeeded()))
	}
	if agents.Advice != nil {
		lines = append(lines, agentBadge("Agriculture Advisor Agent", agents.Advice.Success))
	}

	return lines
}

func agentBadge(name string, success bool) string {
	if success {
		return name + " " + styles.SuccessBadgeStyle().Render("[OK]")
	}
	return name + " " + styles.FailureBadgeStyle().Render("[FAILED]")
}

// RenderError draws the single error banner for a failed submission cycle.
func RenderError(message string) string {
	if message == "" {
		return ""
	}
	return styles.ErrorBannerStyle().Render("Error: "+message) + "\n\n"
}

func formatIntent(intent string, confidence *float64) string {
	if confidence == nil {
		return intent
	}
	return fmt.Sprintf("%s (%.0f%% confidence)", intent, *confidence*100)
}
