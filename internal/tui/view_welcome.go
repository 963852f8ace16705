package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
 ██╗     ██████╗  ██████╗
 ██║     ██╔══██╗██╔════╝
 ██║     ██████╔╝██║  ███╗
 ██║     ██╔═══╝ ██║   ██║
 ███████╗██║     ╚██████╔╝
 ╚══════╝╚═╝      ╚═════╝
`

// renderPlaceholder fills the output pane while there is no prompt.
func (a *App) renderPlaceholder() string {
	hint := "Masukkan RPS atau outline materi untuk membuat prompt."
	p := a.state.form.Params()
	if strings.TrimSpace(p.Source) != "" && p.Unit < 1 {
		hint = "Nomor pertemuan harus lebih dari 0."
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		styleLogo.Render(logo),
		styleSubtitle.Render("Lecture Prompt Generator"),
		"",
		styleSubtitle.Render(hint),
	)

	return lipgloss.Place(
		a.state.output.Width,
		a.state.output.Height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
