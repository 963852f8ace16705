package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/lpg/internal/config"
	"github.com/sant0-9/lpg/internal/prompt"
)

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	cfg := a.state.config

	switch msg.String() {
	case "v":
		a.setVariant(prompt.Next(prompt.Variants(), cfg.Variant))
		return tea.Batch(a.saveConfig(), a.refresh())
	case "m":
		cfg.InputMode = cfg.InputMode.Next()
		return a.saveConfig()
	case "r":
		a.state.needsSetup = true
		a.state.setupStep = 0
		a.state.setupSelected = 0
		a.view = viewSetup
	}
	return nil
}

func (a *App) renderSettings() string {
	var b strings.Builder
	cfg := a.state.config

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	variant := string(cfg.Variant)
	if info := config.GetVariant(cfg.Variant); info != nil {
		variant = info.Name
	}
	mode := string(cfg.InputMode)
	if info := config.GetInputMode(cfg.InputMode); info != nil {
		mode = info.Name
	}

	configPath, _ := config.ConfigPath()
	logPath, _ := cfg.LogPath()
	storePath := "-"
	if p, ok := a.store.(interface{ Path() string }); ok {
		storePath = p.Path()
	}

	configLines := []string{
		fmt.Sprintf("  Generator:  %s", variant),
		fmt.Sprintf("  Input awal: %s", mode),
		"",
		fmt.Sprintf("  Config: %s", truncate(configPath, 50)),
		fmt.Sprintf("  State:  %s", truncate(storePath, 50)),
		fmt.Sprintf("  Log:    %s", truncate(logPath, 50)),
	}

	configBox := styleBox.Copy().
		Width(64).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	actions := []string{
		"  [v] Switch generator",
		"  [m] Change initial input mode",
		"  [r] Reset setup",
	}
	actionsBox := styleBox.Copy().
		Width(64).
		Render(strings.Join(actions, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, actionsBox))
	b.WriteString("\n\n")

	if a.state.configErr != nil {
		errLine := lipgloss.NewStyle().
			Foreground(colorError).
			Render("Could not save config: " + a.state.configErr.Error())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errLine))
		b.WriteString("\n\n")
	}

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
