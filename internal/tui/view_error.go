package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/lpg/internal/document"
)

const (
	msgUnsupported = "Hanya file .docx yang didukung"
	msgCorrupt     = "Gagal membaca file DOCX. Pastikan file tidak rusak."
	msgNotFound    = "File tidak ditemukan"
)

// uploadMessage turns an extraction error into the text shown to the user.
func uploadMessage(err error) string {
	switch {
	case errors.Is(err, document.ErrUnsupportedFormat):
		return msgUnsupported
	case errors.Is(err, document.ErrNotFound):
		return msgNotFound
	default:
		return msgCorrupt
	}
}

func uploadSuggestions(err error) []string {
	switch {
	case errors.Is(err, document.ErrUnsupportedFormat):
		return []string{
			"Simpan ulang dokumen sebagai .docx (Word 2007 ke atas)",
			"Atau salin isinya lewat mode Paste",
		}
	case errors.Is(err, document.ErrNotFound):
		return []string{
			"Periksa kembali path file",
			"Path relatif dihitung dari direktori kerja",
		}
	case errors.Is(err, document.ErrCorrupt):
		return []string{
			"Buka dan simpan ulang file di Word atau LibreOffice",
			"Atau salin isinya lewat mode Paste",
		}
	}
	return nil
}

// renderUploadError is the inline error box under the path input. The form
// stays usable; Enter retries.
func (a *App) renderUploadError(width int) string {
	err := a.state.upload.Err()
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(colorError).Bold(true).Render(uploadMessage(err)))

	if suggestions := uploadSuggestions(err); len(suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(styleSubtitle.Render(strings.Join(suggestions, "\n")))
	}

	return styleBox.Copy().
		Width(width - 2).
		BorderForeground(colorError).
		Render(b.String())
}
