package tui

import (
	"fmt"
	"path/filepath"
	"strings"
)

// renderUploadStatus is the busy line shown while a document is extracted.
func (a *App) renderUploadStatus() string {
	path := strings.Trim(strings.TrimSpace(a.state.path.Value()), `"'`)
	return fmt.Sprintf("%s %s",
		a.state.spinner.View(),
		styleSubtitle.Render(fmt.Sprintf("Mengekstrak %s...", truncate(filepath.Base(path), 40))))
}
