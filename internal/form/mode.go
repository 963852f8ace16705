package form

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sant0-9/lpg/internal/prompt"
	"gopkg.in/yaml.v3"
)

var ErrInvalidInputMode = errors.New("invalid input mode")

// InputMode is how the source text is acquired. Exactly one is active.
type InputMode string

const (
	InputUpload InputMode = "upload"
	InputPaste  InputMode = "paste"
	// InputManual treats the source as an outline instead of an RPS.
	InputManual InputMode = "manual"
)

var inputModes = []InputMode{InputUpload, InputPaste, InputManual}

func InputModes() []InputMode { return slices.Clone(inputModes) }

func ParseInputMode(s string) (InputMode, error) {
	m := InputMode(s)
	if !slices.Contains(inputModes, m) {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidInputMode)
	}
	return m, nil
}

func (m *InputMode) UnmarshalYAML(n *yaml.Node) error {
	var raw string
	if err := n.Decode(&raw); err != nil {
		return err
	}
	v, err := ParseInputMode(raw)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Assembly returns the template branch the mode selects.
func (m InputMode) Assembly() prompt.Mode {
	if m == InputManual {
		return prompt.ModeOutline
	}
	return prompt.ModeContext
}

func (m InputMode) Next() InputMode { return prompt.Next(inputModes, m) }
func (m InputMode) Prev() InputMode { return prompt.Prev(inputModes, m) }
