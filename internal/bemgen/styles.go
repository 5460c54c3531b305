package bemgen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yacobolo/bemto"
)

// Terminal styles shared by the reporter and the render command.
// Lipgloss degrades colors based on terminal capabilities.
var (
	// StyleCyan marks locations, headers and entity prefixes.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed marks errors.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow marks warnings and caret indicators.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen marks modifier classes.
	StyleGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	// StyleGray marks linter names, hints and plain classes.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// HighlightClasses colors a rendered class string: the entity prefix, its
// modifier classes and the plain classes each get their own style.
func HighlightClasses(value string, sep bemto.Separators, useColors bool) string {
	tokens := strings.Fields(value)
	if !useColors || len(tokens) == 0 {
		return value
	}

	prefix := tokens[0]
	out := make([]string, 0, len(tokens))
	out = append(out, StyleCyan.Render(prefix))
	for _, token := range tokens[1:] {
		if strings.HasPrefix(token, prefix+sep.Modifier) {
			out = append(out, StyleGreen.Render(token))
		} else {
			out = append(out, StyleGray.Render(token))
		}
	}
	return strings.Join(out, " ")
}
