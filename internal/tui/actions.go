package tui

import (
	"context"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/lpg/internal/prompt"
	"github.com/sant0-9/lpg/internal/store"
)

// refresh reassembles the prompt and schedules the highlight. The highlight
// waits for highlight_delay so a burst of keystrokes settles first.
func (a *App) refresh() tea.Cmd {
	s := a.state
	s.prompt = ""
	if s.form.Valid() {
		s.prompt = s.form.Prompt()
	}
	s.highlighted = false
	a.setOutput()

	s.highlightSeq++
	return a.tick(s.config.HighlightDelayDuration(), highlightMsg{seq: s.highlightSeq})
}

func (a *App) applyHighlight() {
	s := a.state
	s.highlight, s.highlighted = s.form.Highlight(s.prompt)
	line := a.setOutput()
	if s.highlighted {
		s.output.SetYOffset(line - s.output.Height/2)
	}
}

// setOutput renders the prompt into the viewport and returns the display
// line of the highlight.
func (a *App) setOutput() int {
	s := a.state
	if s.prompt == "" {
		s.output.SetContent(a.renderPlaceholder())
		return 0
	}
	content, line := renderOutput(s.prompt, s.output.Width, s.highlight, s.highlighted)
	s.output.SetContent(content)
	return line
}

func (a *App) persist() {
	source := a.state.form.Params().Source
	var err error
	if source == "" {
		err = a.store.Clear(store.SourceKey)
	} else {
		err = a.store.Set(store.SourceKey, source)
	}
	if err != nil {
		a.log.Warn("persist source failed", "error", err)
	}
}

// clearSource empties the source, forgets the uploaded document and any
// upload error.
func (a *App) clearSource() tea.Cmd {
	s := a.state
	s.form.Clear()
	s.source.Reset()
	s.path.Reset()
	s.document = nil
	s.upload.Reset()
	a.persist()
	a.log.Info("source cleared")
	return a.refresh()
}

// startUpload extracts the file in the path input. It does nothing while an
// extraction is already running.
func (a *App) startUpload() tea.Cmd {
	path := strings.Trim(strings.TrimSpace(a.state.path.Value()), `"'`)
	if path == "" {
		return nil
	}
	if !a.state.upload.Begin() {
		return nil
	}
	a.log.Info("extract document", "path", path)
	return tea.Batch(a.state.spinner.Tick, a.extract(path))
}

func (a *App) extract(path string) tea.Cmd {
	conv := a.converter
	return func() tea.Msg {
		doc, err := conv.Convert(context.Background(), path)
		return documentMsg{path: path, doc: doc, err: err}
	}
}

func (a *App) finishUpload(msg documentMsg) tea.Cmd {
	s := a.state
	if msg.err != nil {
		s.upload.Fail(msg.err)
		a.log.Warn("extract document failed", "path", msg.path, "error", msg.err)
		return nil
	}

	s.upload.Succeed()
	s.document = msg.doc
	s.form.SetDocument(filepath.Base(msg.path), msg.doc.Content)
	s.source.SetValue(msg.doc.Content)
	a.persist()
	a.log.Info("document extracted",
		"path", msg.path,
		"paragraphs", msg.doc.Metadata.ParagraphCount,
		"words", msg.doc.Metadata.WordCount,
		"oversize", msg.doc.Metadata.Oversize)
	return a.refresh()
}

// copyPrompt writes the prompt to the clipboard. Nothing happens while the
// form is incomplete or a copy is in flight.
func (a *App) copyPrompt() tea.Cmd {
	text := a.state.prompt
	if text == "" || !a.state.copy.Begin() {
		return nil
	}
	w := a.clipboard
	return func() tea.Msg {
		return copyDoneMsg{err: w.WriteAll(text)}
	}
}

func (a *App) finishCopy(msg copyDoneMsg) tea.Cmd {
	s := a.state
	s.copySeq++
	if msg.err != nil {
		s.copy.Fail(msg.err)
		a.log.Warn("copy to clipboard failed", "error", msg.err)
	} else {
		s.copy.Succeed()
		a.log.Debug("prompt copied", "words", prompt.CountWords(s.prompt))
	}
	return a.tick(s.config.CopiedFlashDuration(), copyResetMsg{seq: s.copySeq})
}

// setVariant switches the generator variant for this session and the saved
// config.
func (a *App) setVariant(v prompt.Variant) {
	a.state.config.Variant = v
	a.state.form.SetVariant(v)
}
