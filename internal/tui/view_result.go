package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/lpg/internal/form"
)

// renderOutput wraps text to width and paints the highlighted source line.
// It returns the content and the display line where the highlight starts.
func renderOutput(text string, width int, span form.Span, highlighted bool) (string, int) {
	var b strings.Builder
	display, target := 0, 0

	for i, line := range strings.Split(text, "\n") {
		wrapped := wrapText(line, width)
		height := strings.Count(wrapped, "\n") + 1
		if highlighted && i == span.Line {
			target = display
			wrapped = styleHighlight.Render(wrapped)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(wrapped)
		display += height
	}

	return b.String(), target
}

func (a *App) renderOutputPane() string {
	s := a.state
	border := colorPrimary
	if s.highlighted {
		border = colorWarning
	}
	return styleBox.Copy().
		Width(s.output.Width + 2).
		BorderForeground(border).
		Render(s.output.View())
}

func (a *App) renderStatus() string {
	s := a.state
	var parts []string

	if s.prompt != "" {
		st := statsOf(s.prompt)
		parts = append(parts, fmt.Sprintf("%d kata  ~%d token", st.words, st.tokens))
		if pct := s.output.ScrollPercent(); s.output.TotalLineCount() > s.output.Height {
			parts = append(parts, fmt.Sprintf("%3.0f%%", pct*100))
		}
	}

	switch s.copy.Status() {
	case form.Pending:
		parts = append(parts, "Copying...")
	case form.Succeeded:
		parts = append(parts, lipgloss.NewStyle().Foreground(colorSuccess).Bold(true).Render("Copied!"))
	case form.Failed:
		parts = append(parts, "Copy failed, select the text manually")
	}

	parts = append(parts, "[tab] Next  [ctrl+y] Copy  [ctrl+x] Clear  [ctrl+s] Settings  [esc] Quit")
	return styleStatusBar.Render(strings.Join(parts, "  |  "))
}
