package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/lpg/internal/config"
	"github.com/sant0-9/lpg/internal/form"
	"github.com/sant0-9/lpg/internal/prompt"
)

var fieldLabels = map[prompt.Field]string{
	prompt.FieldMode:          "Input",
	prompt.FieldSource:        "RPS",
	prompt.FieldUnit:          "Pertemuan ke",
	prompt.FieldTopic:         "Topik",
	prompt.FieldLevel:         "Jenjang",
	prompt.FieldDelivery:      "Penyampaian",
	prompt.FieldDepth:         "Kedalaman",
	prompt.FieldPerspective:   "Sudut Pandang",
	prompt.FieldLearningModel: "Model Belajar",
	prompt.FieldScenario:      "Skenario",
	prompt.FieldAudience:      "Sasaran",
	prompt.FieldLength:        "Panjang (kata)",
	prompt.FieldLanguage:      "Bahasa",
	prompt.FieldAddress:       "Gaya Sapaan",
	prompt.FieldAnalogy:       "Analogi",
	prompt.FieldFormat:        "Format",
	prompt.FieldExercises:     "Latihan Soal",
	prompt.FieldReferences:    "Referensi",
}

func (a *App) renderForm() string {
	width := a.formWidth()

	title := styleLogo.Render("LPG")
	variant := string(a.state.config.Variant)
	if info := config.GetVariant(a.state.config.Variant); info != nil {
		variant = info.Name
	}
	header := title + "  " + styleSubtitle.Render("Lecture Prompt Generator  |  "+variant)

	var rows []string
	current := a.focused()
	for _, field := range a.rows() {
		rows = append(rows, a.renderRow(field, field == current, width))
	}
	left := lipgloss.NewStyle().Width(width).Render(strings.Join(rows, "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", a.renderOutputPane())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, a.renderStatus())
}

func (a *App) renderRow(field prompt.Field, focused bool, width int) string {
	cursor := "  "
	labelStyle := styleLabel
	if focused {
		cursor = styleFocused.Render("> ")
		labelStyle = styleLabel.Copy().Foreground(colorSecondary).Bold(true)
	}

	label := fieldLabels[field]
	if field == prompt.FieldSource && a.state.form.InputMode() == form.InputManual {
		label = "Outline"
	}
	line := cursor + labelStyle.Render(label)

	switch field {
	case prompt.FieldSource:
		return line + "\n" + a.renderSource(width)
	case prompt.FieldMode:
		return line + a.renderTabs()
	}
	return line + a.renderValue(field, focused)
}

func (a *App) renderTabs() string {
	var tabs []string
	for _, m := range config.InputModes {
		if m.ID == a.state.form.InputMode() {
			tabs = append(tabs, styleTabActive.Render(m.Name))
		} else {
			tabs = append(tabs, styleTabInactive.Render(m.Name))
		}
	}
	return strings.Join(tabs, " ")
}

func (a *App) renderSource(width int) string {
	s := a.state
	if s.form.InputMode() != form.InputUpload {
		return s.source.View()
	}

	parts := []string{
		styleBox.Copy().Width(width - 2).Render(s.path.View()),
	}
	switch {
	case s.upload.Pending():
		parts = append(parts, a.renderUploadStatus())
	case s.upload.Err() != nil:
		parts = append(parts, a.renderUploadError(width))
	default:
		parts = append(parts, a.renderDocumentInfo(width))
	}
	return strings.Join(parts, "\n")
}

func (a *App) renderValue(field prompt.Field, focused bool) string {
	s := a.state
	p := s.form.Params()

	switch field {
	case prompt.FieldUnit:
		return s.unit.View()
	case prompt.FieldTopic:
		return s.topic.View()
	case prompt.FieldScenario:
		return s.scenario.View()
	case prompt.FieldExercises:
		return toggle(p.Exercises)
	case prompt.FieldReferences:
		return toggle(p.References)
	case prompt.FieldLength:
		if p.Format == prompt.FormatPresentation {
			return styleSubtitle.Render("Otomatis")
		}
	}

	value := selected(field, p)
	if focused {
		return styleFocused.Render(fmt.Sprintf("< %s >", value))
	}
	return "  " + value
}

func selected(field prompt.Field, p prompt.Params) string {
	switch field {
	case prompt.FieldLevel:
		return string(p.Level)
	case prompt.FieldDelivery:
		return string(p.Delivery)
	case prompt.FieldDepth:
		return string(p.Depth)
	case prompt.FieldPerspective:
		return string(p.Perspective)
	case prompt.FieldLearningModel:
		return string(p.LearningModel)
	case prompt.FieldAudience:
		return string(p.Audience)
	case prompt.FieldLength:
		return string(p.Length)
	case prompt.FieldLanguage:
		return string(p.Language)
	case prompt.FieldAddress:
		return string(p.Address)
	case prompt.FieldAnalogy:
		return string(p.Analogy)
	case prompt.FieldFormat:
		return string(p.Format)
	}
	return ""
}

func toggle(on bool) string {
	if on {
		return lipgloss.NewStyle().Foreground(colorSuccess).Render("[x] Ya")
	}
	return styleSubtitle.Render("[ ] Tidak")
}
