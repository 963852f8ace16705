package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/lpg/internal/config"
)

type choice struct {
	name        string
	description string
}

func (a *App) renderSetup() string {
	if a.state.setupStep == 1 {
		var items []choice
		for _, m := range config.InputModes {
			items = append(items, choice{m.Name, m.Description})
		}
		return a.renderChoice("Mode input awal:", items, "[j/k] Navigate  [Enter] Select  [Esc] Back")
	}

	var items []choice
	for _, v := range config.Variants {
		items = append(items, choice{v.Name, v.Description})
	}
	return a.renderChoice("Welcome! Pilih jenis generator:", items, "[j/k] Navigate  [Enter] Select")
}

func (a *App) renderChoice(heading string, items []choice, help string) string {
	var b strings.Builder

	// Header
	header := styleLogo.Render(logo)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n\n")

	title := lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render(heading)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	var lines []string
	for i, item := range items {
		if i == a.state.setupSelected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Render(fmt.Sprintf("> [x] %-14s %s", item.name, item.description)))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(colorMuted).
				Render(fmt.Sprintf("  [ ] %-14s %s", item.name, item.description)))
		}
	}

	listBox := styleBox.Copy().
		Width(60).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	if a.state.configErr != nil {
		errLine := lipgloss.NewStyle().
			Foreground(colorError).
			Render("Could not save config: " + a.state.configErr.Error())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errLine))
		b.WriteString("\n\n")
	}

	instructions := styleStatusBar.Render(help)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
