package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/turtle/foundation/turtle/parser"
)

var (
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorAccent  = lipgloss.Color("#F59E0B") // Amber
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	errorLabel = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	okLabel = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Bold(true)

	warnLabel = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	gutterStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	caretStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)

// renderSyntaxError shows a syntax error with the offending source line and
// a caret under the column:
//
//	error: line 3: syntax error: found ":=", expecting factor
//	  --> square.tt:3:9
//	   |
//	 3 | forward := 5
//	   |         ^
func renderSyntaxError(name, source string, se *parser.SyntaxError) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", errorLabel.Render("error:"), se.Error())
	fmt.Fprintf(&sb, "%s %s:%d:%d\n", gutterStyle.Render("  -->"), name, se.Line, se.Column)

	lines := strings.Split(source, "\n")
	if se.Line < 1 || se.Line > len(lines) {
		return sb.String()
	}

	text := strings.TrimRight(lines[se.Line-1], "\r")
	number := fmt.Sprintf("%d", se.Line)
	pad := strings.Repeat(" ", len(number))

	fmt.Fprintf(&sb, "%s\n", gutterStyle.Render(pad+" |"))
	fmt.Fprintf(&sb, "%s %s\n", gutterStyle.Render(number+" |"), expandTabs(text))

	column := se.Column
	if column < 1 {
		column = 1
	}
	indent := strings.Repeat(" ", caretOffset(text, column))
	fmt.Fprintf(&sb, "%s %s%s\n", gutterStyle.Render(pad+" |"), indent, caretStyle.Render("^"))

	return sb.String()
}

// caretOffset returns the display offset of a 1-based byte column with tabs
// expanded to four spaces
func caretOffset(line string, column int) int {
	prefix := line
	if column-1 < len(line) {
		prefix = line[:column-1]
	}
	offset := utf8.RuneCountInString(expandTabs(prefix))
	if column-1 > len(line) {
		offset += column - 1 - len(line)
	}
	return offset
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
