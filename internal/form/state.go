package form

import (
	"strings"

	"github.com/sant0-9/lpg/internal/prompt"
)

// State is the form behind the UI: the current parameter record, the active
// input mode and the field the user touched last. Every setter replaces one
// field and records it, so the next render can highlight its effect.
type State struct {
	params   prompt.Params
	input    InputMode
	changed  prompt.Field
	fileName string
}

// New starts a form from p in the given input mode. p.Mode is ignored; the
// input mode decides the template branch.
func New(p prompt.Params, input InputMode) *State {
	return &State{params: p, input: input}
}

// Params returns a fresh parameter record reflecting the form.
func (s *State) Params() prompt.Params {
	p := s.params
	p.Mode = s.input.Assembly()
	return p
}

// Prompt assembles the current prompt. It is "" while the source is blank.
func (s *State) Prompt() string {
	return prompt.Assemble(s.Params())
}

func (s *State) InputMode() InputMode  { return s.input }
func (s *State) Changed() prompt.Field { return s.changed }
func (s *State) FileName() string      { return s.fileName }

// Valid reports whether the form can produce a prompt. The unit is not
// asked for in manual mode.
func (s *State) Valid() bool {
	if strings.TrimSpace(s.params.Source) == "" {
		return false
	}
	return s.input == InputManual || s.params.Unit > 0
}

// Touch marks field as the one of interest without changing it.
func (s *State) Touch(field prompt.Field) { s.changed = field }

// SetInputMode switches the acquisition mode. The source is kept: in manual
// mode the same text is read as an outline.
func (s *State) SetInputMode(m InputMode) {
	s.input = m
	s.changed = prompt.FieldMode
}

func (s *State) SetSource(v string) {
	s.params.Source = v
	s.changed = prompt.FieldSource
}

// SetDocument replaces the source with text extracted from name.
func (s *State) SetDocument(name, text string) {
	s.fileName = name
	s.SetSource(text)
}

// Clear empties the source and forgets the uploaded file.
func (s *State) Clear() {
	s.fileName = ""
	s.SetSource("")
}

func (s *State) SetUnit(v int) {
	s.params.Unit = v
	s.changed = prompt.FieldUnit
}

func (s *State) SetTopic(v string) {
	s.params.Topic = v
	s.changed = prompt.FieldTopic
}

// SetVariant does not record a change; the whole prompt differs.
func (s *State) SetVariant(v prompt.Variant) {
	s.params.Variant = v
	s.changed = prompt.FieldNone
}

func (s *State) SetLevel(v prompt.Level) {
	s.params.Level = v
	s.changed = prompt.FieldLevel
}

func (s *State) SetDelivery(v prompt.Delivery) {
	s.params.Delivery = v
	s.changed = prompt.FieldDelivery
}

func (s *State) SetDepth(v prompt.Depth) {
	s.params.Depth = v
	s.changed = prompt.FieldDepth
}

func (s *State) SetPerspective(v prompt.Perspective) {
	s.params.Perspective = v
	s.changed = prompt.FieldPerspective
}

func (s *State) SetLearningModel(v prompt.LearningModel) {
	s.params.LearningModel = v
	s.changed = prompt.FieldLearningModel
}

func (s *State) SetAudience(v prompt.Audience) {
	s.params.Audience = v
	s.changed = prompt.FieldAudience
}

func (s *State) SetScenario(v string) {
	s.params.Scenario = v
	s.changed = prompt.FieldScenario
}

func (s *State) SetLength(v prompt.Length) {
	s.params.Length = v
	s.changed = prompt.FieldLength
}

func (s *State) SetLanguage(v prompt.Language) {
	s.params.Language = v
	s.changed = prompt.FieldLanguage
}

func (s *State) SetAddress(v prompt.Address) {
	s.params.Address = v
	s.changed = prompt.FieldAddress
}

func (s *State) SetAnalogy(v prompt.Analogy) {
	s.params.Analogy = v
	s.changed = prompt.FieldAnalogy
}

func (s *State) SetFormat(v prompt.Format) {
	s.params.Format = v
	s.changed = prompt.FieldFormat
}

func (s *State) SetExercises(v bool) {
	s.params.Exercises = v
	s.changed = prompt.FieldExercises
}

func (s *State) SetReferences(v bool) {
	s.params.References = v
	s.changed = prompt.FieldReferences
}

// Span is a byte range of a generated prompt, with the zero-based line it
// starts on.
type Span struct {
	Start, End int
	Line       int
}

// Highlight locates the effect of the last changed field in text: from the
// field's marker to the end of that line. It reports false when nothing
// changed, the field has no visible effect, or the marker is not in text.
func (s *State) Highlight(text string) (Span, bool) {
	start := prompt.Locate(s.changed, s.Params(), text)
	if start < 0 {
		return Span{}, false
	}

	end := len(text)
	if i := strings.IndexByte(text[start:], '\n'); i >= 0 {
		end = start + i
	}

	return Span{
		Start: start,
		End:   end,
		Line:  strings.Count(text[:start], "\n"),
	}, true
}
