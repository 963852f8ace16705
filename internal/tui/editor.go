package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/lpg/internal/form"
	"github.com/sant0-9/lpg/internal/prompt"
)

// rows lists the form rows in display order. Unit and topic are hidden in
// manual mode and the scenario only shows for models that use one.
func (a *App) rows() []prompt.Field {
	f := a.state.form
	p := f.Params()

	rows := []prompt.Field{prompt.FieldMode, prompt.FieldSource}
	if f.InputMode() != form.InputManual {
		rows = append(rows, prompt.FieldUnit, prompt.FieldTopic)
	}
	if p.Variant == prompt.VariantLearningModel {
		rows = append(rows, prompt.FieldPerspective, prompt.FieldLearningModel)
		if p.LearningModel.UsesScenario() {
			rows = append(rows, prompt.FieldScenario)
		}
		rows = append(rows, prompt.FieldAudience)
	} else {
		rows = append(rows, prompt.FieldLevel, prompt.FieldDelivery, prompt.FieldDepth)
	}
	return append(rows,
		prompt.FieldLength,
		prompt.FieldLanguage,
		prompt.FieldAddress,
		prompt.FieldAnalogy,
		prompt.FieldFormat,
		prompt.FieldExercises,
		prompt.FieldReferences,
	)
}

func (a *App) focused() prompt.Field {
	rows := a.rows()
	a.state.row = max(0, min(a.state.row, len(rows)-1))
	return rows[a.state.row]
}

// multiline reports whether the source textarea has focus. It consumes
// arrows and enter itself.
func (a *App) multiline() bool {
	return a.focused() == prompt.FieldSource && a.state.form.InputMode() != form.InputUpload
}

// editing reports whether the focused row takes typed text.
func (a *App) editing() bool {
	switch a.focused() {
	case prompt.FieldSource, prompt.FieldUnit, prompt.FieldTopic, prompt.FieldScenario:
		return true
	}
	return false
}

// focus moves keyboard focus to the widget of the current row.
func (a *App) focus() tea.Cmd {
	s := a.state
	s.path.Blur()
	s.source.Blur()
	s.unit.Blur()
	s.topic.Blur()
	s.scenario.Blur()

	switch a.focused() {
	case prompt.FieldSource:
		if s.form.InputMode() == form.InputUpload {
			return s.path.Focus()
		}
		return s.source.Focus()
	case prompt.FieldUnit:
		return s.unit.Focus()
	case prompt.FieldTopic:
		return s.topic.Focus()
	case prompt.FieldScenario:
		return s.scenario.Focus()
	}
	return nil
}

func (a *App) moveRow(dir int) tea.Cmd {
	n := len(a.rows())
	a.state.row = (a.state.row + dir + n) % n
	field := a.focused()
	a.state.form.Touch(field)
	return tea.Batch(a.focus(), a.refresh())
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Copy):
		return a.copyPrompt(), true
	case key.Matches(msg, keys.Clear):
		return a.clearSource(), true
	case key.Matches(msg, keys.Settings):
		a.view = viewSettings
		return nil, true
	case key.Matches(msg, keys.Tab):
		return a.moveRow(1), true
	case key.Matches(msg, keys.ShiftTab):
		return a.moveRow(-1), true
	case key.Matches(msg, keys.ScrollUp):
		a.state.output.HalfViewUp()
		return nil, true
	case key.Matches(msg, keys.ScrollDown):
		a.state.output.HalfViewDown()
		return nil, true
	}

	if a.multiline() {
		return nil, false
	}

	switch {
	case msg.Type == tea.KeyUp:
		return a.moveRow(-1), true
	case msg.Type == tea.KeyDown:
		return a.moveRow(1), true
	case key.Matches(msg, keys.Enter):
		if a.focused() == prompt.FieldSource {
			return a.startUpload(), true
		}
		return a.moveRow(1), true
	}

	if a.editing() {
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.Up):
		return a.moveRow(-1), true
	case key.Matches(msg, keys.Down):
		return a.moveRow(1), true
	case key.Matches(msg, keys.Help):
		a.view = viewHelp
		return nil, true
	case key.Matches(msg, keys.Left):
		return a.cycle(-1), true
	case key.Matches(msg, keys.Right), key.Matches(msg, keys.Toggle):
		return a.cycle(1), true
	}
	return nil, true
}

func step[T comparable](values []T, v T, dir int) T {
	if dir < 0 {
		return prompt.Prev(values, v)
	}
	return prompt.Next(values, v)
}

// cycle moves the focused selector by one value, or flips a toggle.
func (a *App) cycle(dir int) tea.Cmd {
	f := a.state.form
	p := f.Params()

	switch a.focused() {
	case prompt.FieldMode:
		f.SetInputMode(step(form.InputModes(), f.InputMode(), dir))
		return tea.Batch(a.focus(), a.refresh())
	case prompt.FieldLevel:
		f.SetLevel(step(prompt.Levels(), p.Level, dir))
	case prompt.FieldDelivery:
		f.SetDelivery(step(prompt.Deliveries(), p.Delivery, dir))
	case prompt.FieldDepth:
		f.SetDepth(step(prompt.Depths(), p.Depth, dir))
	case prompt.FieldPerspective:
		f.SetPerspective(step(prompt.Perspectives(), p.Perspective, dir))
	case prompt.FieldLearningModel:
		f.SetLearningModel(step(prompt.LearningModels(), p.LearningModel, dir))
	case prompt.FieldAudience:
		f.SetAudience(step(prompt.Audiences(), p.Audience, dir))
	case prompt.FieldLength:
		if p.Format == prompt.FormatPresentation {
			return nil
		}
		f.SetLength(step(prompt.Lengths(), p.Length, dir))
	case prompt.FieldLanguage:
		f.SetLanguage(step(prompt.Languages(), p.Language, dir))
	case prompt.FieldAddress:
		f.SetAddress(step(prompt.Addresses(), p.Address, dir))
	case prompt.FieldAnalogy:
		f.SetAnalogy(step(prompt.Analogies(), p.Analogy, dir))
	case prompt.FieldFormat:
		f.SetFormat(step(prompt.Formats(), p.Format, dir))
	case prompt.FieldExercises:
		f.SetExercises(!p.Exercises)
	case prompt.FieldReferences:
		f.SetReferences(!p.References)
	default:
		return nil
	}
	return a.refresh()
}

// updateInput forwards msg to the focused text widget and copies any new
// value into the form.
func (a *App) updateInput(msg tea.Msg) tea.Cmd {
	s := a.state
	f := s.form
	p := f.Params()

	var cmd tea.Cmd
	switch a.focused() {
	case prompt.FieldSource:
		if f.InputMode() == form.InputUpload {
			s.path, cmd = s.path.Update(msg)
			return cmd
		}
		s.source, cmd = s.source.Update(msg)
		if v := s.source.Value(); v != p.Source {
			f.SetSource(v)
			a.persist()
			return tea.Batch(cmd, a.refresh())
		}

	case prompt.FieldUnit:
		s.unit, cmd = s.unit.Update(msg)
		n, err := strconv.Atoi(strings.TrimSpace(s.unit.Value()))
		if err != nil {
			n = 0
		}
		if n != p.Unit {
			f.SetUnit(n)
			return tea.Batch(cmd, a.refresh())
		}

	case prompt.FieldTopic:
		s.topic, cmd = s.topic.Update(msg)
		if v := s.topic.Value(); v != p.Topic {
			f.SetTopic(v)
			return tea.Batch(cmd, a.refresh())
		}

	case prompt.FieldScenario:
		s.scenario, cmd = s.scenario.Update(msg)
		if v := s.scenario.Value(); v != p.Scenario {
			f.SetScenario(v)
			return tea.Batch(cmd, a.refresh())
		}
	}
	return cmd
}

// resize lays out the two columns: the form on the left, the prompt on the
// right.
func (a *App) resize() {
	s := a.state
	formWidth := a.formWidth()

	s.source.SetWidth(formWidth - 4)
	s.path.Width = formWidth - 8
	s.topic.Width = formWidth - 24
	s.scenario.Width = formWidth - 24

	s.output.Width = max(10, a.width-formWidth-5)
	s.output.Height = max(3, a.height-5)
	a.setOutput()
}

func (a *App) formWidth() int {
	return max(40, min(60, a.width/2))
}
