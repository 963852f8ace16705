package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	usage := []string{
		"  Pilih mode input: Upload (.docx), Paste, atau Manual (outline).",
		"  Atur parameter, prompt di kanan diperbarui langsung.",
		"  Baris yang terpengaruh perubahan terakhir ditandai.",
		"  Salin prompt lalu tempel ke chat LLM pilihan Anda.",
	}
	usageBox := styleBox.Copy().
		Width(64).
		Render(strings.Join(usage, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, usageBox))
	b.WriteString("\n\n")

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	var shortcuts []string
	for _, k := range []key.Binding{
		keys.Tab, keys.ShiftTab, keys.Up, keys.Down, keys.Left, keys.Right,
		keys.Toggle, keys.Enter, keys.Copy, keys.Clear, keys.ScrollUp,
		keys.ScrollDown, keys.Settings, keys.Help, keys.Quit,
	} {
		h := k.Help()
		shortcuts = append(shortcuts, fmt.Sprintf("  %-12s %s", h.Key, h.Desc))
	}

	shortcutsBox := styleBox.Copy().
		Width(64).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
