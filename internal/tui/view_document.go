package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/lpg/internal/document"
)

// renderDocumentInfo shows the last extracted file under the path input.
func (a *App) renderDocumentInfo(width int) string {
	doc := a.state.document
	if doc == nil {
		name := a.state.form.FileName()
		if name == "" {
			return styleSubtitle.Render("Ketik path file .docx lalu tekan Enter")
		}
		return styleSubtitle.Render(name)
	}
	meta := doc.Metadata

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(truncate(meta.Title, width-4))

	metaParts := []string{
		strings.ToUpper(meta.SourceFormat),
		meta.FileSizeHuman(),
		fmt.Sprintf("%d paragraf", meta.ParagraphCount),
		fmt.Sprintf("~%d kata", meta.WordCount),
	}
	metaLine := styleSubtitle.Render(strings.Join(metaParts, "  |  "))

	lines := []string{title, metaLine}
	if meta.Oversize {
		warn := fmt.Sprintf("File melebihi %d MB, hasil ekstraksi tetap dipakai", document.MaxFileSize/(1024*1024))
		lines = append(lines, lipgloss.NewStyle().Foreground(colorWarning).Render(warn))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(colorMuted).Render(wrapText(truncate(doc.Preview, 160), width-4)))

	return styleBox.Copy().
		Width(width - 2).
		BorderForeground(colorSuccess).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
