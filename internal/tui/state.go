package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sant0-9/lpg/internal/config"
	"github.com/sant0-9/lpg/internal/document"
	"github.com/sant0-9/lpg/internal/form"
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool
	configErr  error

	// Setup wizard state
	setupStep     int
	setupSelected int

	// Form
	form *form.State
	row  int

	path     textinput.Model
	source   textarea.Model
	unit     textinput.Model
	topic    textinput.Model
	scenario textinput.Model

	// Upload
	document *document.Document
	upload   form.Task
	spinner  spinner.Model

	// Output
	output       viewport.Model
	prompt       string
	highlight    form.Span
	highlighted  bool
	highlightSeq int

	// Copy
	copy    form.Task
	copySeq int
}

func newState(cfg *config.Config, source string) *state {
	p := cfg.Defaults.Params(cfg.Variant)
	p.Source = source

	path := textinput.New()
	path.Placeholder = "/path/to/rps.docx"
	path.CharLimit = 500
	path.Width = 40

	src := textarea.New()
	src.Placeholder = "Tempel isi RPS atau tulis outline materi..."
	src.ShowLineNumbers = false
	src.CharLimit = 0
	src.MaxHeight = 0
	src.MaxWidth = 0
	src.SetHeight(6)
	src.SetValue(source)

	unit := textinput.New()
	unit.CharLimit = 3
	unit.Width = 5
	unit.SetValue(strconv.Itoa(p.Unit))

	topic := textinput.New()
	topic.Placeholder = "opsional"
	topic.CharLimit = 200
	topic.Width = 30

	scenario := textinput.New()
	scenario.Placeholder = "opsional, skenario bawaan dipakai jika kosong"
	scenario.CharLimit = 300
	scenario.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleFocused

	return &state{
		config:   cfg,
		form:     form.New(p, cfg.InputMode),
		path:     path,
		source:   src,
		unit:     unit,
		topic:    topic,
		scenario: scenario,
		spinner:  sp,
		output:   viewport.New(0, 0),
	}
}
