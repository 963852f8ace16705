package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/lpg/internal/clipboard"
	"github.com/sant0-9/lpg/internal/config"
	"github.com/sant0-9/lpg/internal/document"
	"github.com/sant0-9/lpg/internal/logging"
	"github.com/sant0-9/lpg/internal/store"
)

type view int

const (
	viewSetup view = iota
	viewForm
	viewSettings
	viewHelp
)

// Converter extracts the text of an uploaded document.
type Converter interface {
	Convert(ctx context.Context, path string) (*document.Document, error)
}

// Store persists the source text between sessions.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Clear(key string) error
}

// Options wires the collaborators of the App. Config nil means first run.
// Nil collaborators fall back to the real implementations.
type Options struct {
	Config    *config.Config
	Converter Converter
	Store     Store
	Clipboard clipboard.Writer
	Logger    *logging.Logger
}

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool

	converter Converter
	store     Store
	clipboard clipboard.Writer
	log       *logging.Logger
}

func NewApp(opts Options) *App {
	a := &App{
		view:      viewForm,
		converter: opts.Converter,
		store:     opts.Store,
		clipboard: opts.Clipboard,
		log:       opts.Logger,
	}
	if a.log == nil {
		a.log = logging.Nop()
	}
	a.log = a.log.With("component", "tui")
	if a.converter == nil {
		a.converter = document.NewConverter()
	}
	if a.clipboard == nil {
		a.clipboard = clipboard.System()
	}
	if a.store == nil {
		path, err := config.StatePath()
		if err != nil {
			a.log.Warn("no state path, using working directory", "error", err)
			path = "state.yaml"
		}
		a.store = store.Open(path)
	}

	cfg := opts.Config
	needsSetup := cfg == nil
	if needsSetup {
		cfg = config.DefaultConfig()
	}

	source, err := a.store.Get(store.SourceKey)
	if err != nil {
		a.log.Warn("restore source failed", "error", err)
	}

	a.state = newState(cfg, source)
	a.state.needsSetup = needsSetup
	if needsSetup {
		a.view = viewSetup
	}
	return a
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		return tea.WindowSize()
	}
	return tea.Batch(tea.WindowSize(), a.focus(), a.refresh())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		a.state.output, cmd = a.state.output.Update(msg)
		return a, cmd

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.state.configErr = nil
		a.view = viewForm
		a.log.Info("setup complete",
			"variant", a.state.config.Variant,
			"input_mode", a.state.config.InputMode)
		return a, tea.Batch(a.focus(), a.refresh())

	case setupErrorMsg:
		a.state.configErr = msg.error
		a.log.Error("save config failed", "error", msg.error)
		return a, nil

	case configSavedMsg:
		a.state.configErr = msg.err
		if msg.err != nil {
			a.log.Error("save config failed", "error", msg.err)
		}
		return a, nil

	case documentMsg:
		return a, a.finishUpload(msg)

	case copyDoneMsg:
		return a, a.finishCopy(msg)

	case copyResetMsg:
		if msg.seq == a.state.copySeq {
			a.state.copy.Reset()
		}
		return a, nil

	case highlightMsg:
		if msg.seq == a.state.highlightSeq {
			a.applyHighlight()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.state.upload.Pending() {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd
	}

	if a.view == viewForm {
		cmds = append(cmds, a.updateInput(msg))
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.Quit) {
		if a.view == viewSettings || a.view == viewHelp {
			a.view = viewForm
			return nil, true
		}
		if a.view == viewSetup && a.state.setupStep == 1 {
			a.state.setupStep = 0
			a.state.setupSelected = 0
			return nil, true
		}
		a.quitting = true
		return tea.Quit, true
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg), true
	case viewSettings:
		return a.handleSettingsKey(msg), true
	case viewHelp:
		return nil, true
	}

	return a.handleFormKey(msg)
}

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	n := len(config.Variants)
	if a.state.setupStep == 1 {
		n = len(config.InputModes)
	}

	switch {
	case key.Matches(msg, keys.Up):
		if a.state.setupSelected > 0 {
			a.state.setupSelected--
		}
	case key.Matches(msg, keys.Down):
		if a.state.setupSelected < n-1 {
			a.state.setupSelected++
		}
	case key.Matches(msg, keys.Enter):
		if a.state.setupStep == 0 {
			a.setVariant(config.Variants[a.state.setupSelected].ID)
			a.state.setupStep = 1
			a.state.setupSelected = 0
			return nil
		}
		mode := config.InputModes[a.state.setupSelected].ID
		a.state.config.InputMode = mode
		a.state.form.SetInputMode(mode)
		a.state.row = 0
		return a.finishSetup()
	}

	return nil
}

func (a *App) finishSetup() tea.Cmd {
	cfg := a.state.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

func (a *App) saveConfig() tea.Cmd {
	cfg := a.state.config
	return func() tea.Msg {
		return configSavedMsg{cfg.Save()}
	}
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type configSavedMsg struct{ err error }

type documentMsg struct {
	path string
	doc  *document.Document
	err  error
}

type copyDoneMsg struct{ err error }
type copyResetMsg struct{ seq int }
type highlightMsg struct{ seq int }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderForm()
	}
}

func (a *App) tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
