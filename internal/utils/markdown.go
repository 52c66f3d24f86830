package utils

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func boldStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func italicStyle() lipgloss.Style {
	return lipgloss.NewStyle().Italic(true)
}

func headingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func codeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Padding(0, 1)
}

var (
	headingRegex     = regexp.MustCompile(`^#{1,3}\s+(.*)`)
	orderedListRegex = regexp.MustCompile(`^(\d+)\.\s+(.*)`)
	boldRegex        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRegex      = regexp.MustCompile(`_([^_]+)_`)
	inlineCodeRegex  = regexp.MustCompile("`([^`]+)`")
)

// RenderAdvisoryText applies the light markdown the advisor agent emits:
// headings, ordered and unordered lists, bold, italic and inline code.
// Anything else passes through untouched.
func RenderAdvisoryText(text string) string {
	var result strings.Builder

	for _, line := range strings.Split(text, "\n") {
		switch {
		case headingRegex.MatchString(line):
			heading := headingRegex.FindStringSubmatch(line)[1]
			result.WriteString(headingStyle().Render(renderInline(heading)))
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			result.WriteString("• " + renderInline(line[2:]))
		case orderedListRegex.MatchString(line):
			parts := orderedListRegex.FindStringSubmatch(line)
			result.WriteString(parts[1] + ". " + renderInline(parts[2]))
		default:
			result.WriteString(renderInline(line))
		}
		result.WriteString("\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}

func renderInline(line string) string {
	line = inlineCodeRegex.ReplaceAllStringFunc(line, func(match string) string {
		return codeStyle().Render(strings.Trim(match, "`"))
	})
	line = boldRegex.ReplaceAllStringFunc(line, func(match string) string {
		return boldStyle().Render(strings.Trim(match, "*"))
	})
	line = italicRegex.ReplaceAllStringFunc(line, func(match string) string {
		return italicStyle().Render(strings.Trim(match, "_"))
	})
	return line
}
