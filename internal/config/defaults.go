package config

import "github.com/sant0-9/lpg/internal/prompt"

// Defaults are the form values a new session starts with.
type Defaults struct {
	Unit          int                  `yaml:"unit"`
	Level         prompt.Level         `yaml:"level"`
	Delivery      prompt.Delivery      `yaml:"delivery"`
	Depth         prompt.Depth         `yaml:"depth"`
	Perspective   prompt.Perspective   `yaml:"perspective"`
	LearningModel prompt.LearningModel `yaml:"learning_model"`
	Audience      prompt.Audience      `yaml:"audience"`
	Length        prompt.Length        `yaml:"length"`
	Language      prompt.Language      `yaml:"language"`
	Address       prompt.Address       `yaml:"address"`
	Analogy       prompt.Analogy       `yaml:"analogy"`
	Format        prompt.Format        `yaml:"format"`
	Exercises     bool                 `yaml:"exercises"`
	References    bool                 `yaml:"references"`
}

func DefaultDefaults() Defaults {
	p := prompt.DefaultParams()
	return Defaults{
		Unit:          p.Unit,
		Level:         p.Level,
		Delivery:      p.Delivery,
		Depth:         p.Depth,
		Perspective:   p.Perspective,
		LearningModel: p.LearningModel,
		Audience:      p.Audience,
		Length:        p.Length,
		Language:      p.Language,
		Address:       p.Address,
		Analogy:       p.Analogy,
		Format:        p.Format,
		Exercises:     p.Exercises,
		References:    p.References,
	}
}

// Params returns prompt parameters seeded from the defaults for variant.
func (d Defaults) Params(variant prompt.Variant) prompt.Params {
	p := prompt.DefaultParams()
	p.Variant = variant
	p.Unit = d.Unit
	p.Level = d.Level
	p.Delivery = d.Delivery
	p.Depth = d.Depth
	p.Perspective = d.Perspective
	p.LearningModel = d.LearningModel
	p.Audience = d.Audience
	p.Length = d.Length
	p.Language = d.Language
	p.Address = d.Address
	p.Analogy = d.Analogy
	p.Format = d.Format
	p.Exercises = d.Exercises
	p.References = d.References
	return p
}
