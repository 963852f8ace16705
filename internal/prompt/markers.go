package prompt

import "strings"

// Field names one user-editable input of the form.
type Field string

const (
	FieldNone          Field = ""
	FieldSource        Field = "source"
	FieldMode          Field = "mode"
	FieldUnit          Field = "unit"
	FieldTopic         Field = "topic"
	FieldLevel         Field = "level"
	FieldDelivery      Field = "delivery"
	FieldDepth         Field = "depth"
	FieldPerspective   Field = "perspective"
	FieldLearningModel Field = "learning_model"
	FieldAudience      Field = "audience"
	FieldScenario      Field = "scenario"
	FieldLength        Field = "length"
	FieldLanguage      Field = "language"
	FieldAddress       Field = "address"
	FieldAnalogy       Field = "analogy"
	FieldFormat        Field = "format"
	FieldExercises     Field = "exercises"
	FieldReferences    Field = "references"
)

// Marker returns the substring of Assemble(p) that belongs to field, built
// from the same labels the template uses. It returns "" when the field has
// no visible effect for p.
func Marker(field Field, p Params) string {
	course := p.Variant != VariantLearningModel
	context := p.Mode != ModeOutline

	switch field {
	case FieldSource:
		if context {
			return headerContext
		}
		return headerOutline
	case FieldMode:
		return headerTask
	case FieldUnit:
		if context {
			return unitLabel
		}
	case FieldTopic:
		if !context {
			return ""
		}
		if hasText(p.Topic) {
			return topicLabel
		}
		return inferTopic
	case FieldLevel:
		if course {
			return labelLevel
		}
	case FieldDelivery:
		if course {
			return labelDelivery
		}
	case FieldDepth:
		if course {
			return paramDepth
		}
	case FieldPerspective:
		if !course {
			return labelPerspective
		}
	case FieldLearningModel, FieldScenario:
		if !course {
			return labelLearningModel
		}
	case FieldAudience:
		if !course {
			return labelAudience
		}
	case FieldLength:
		return paramLength
	case FieldLanguage:
		return paramLanguage
	case FieldAddress:
		return labelAddress
	case FieldAnalogy:
		return labelAnalogy
	case FieldFormat:
		return labelFormat
	case FieldExercises:
		if !p.Exercises {
			return exercisesBan
		}
		if p.slides() {
			return "- Slide " + exercisesRule
		}
		return "- " + exercisesRule
	case FieldReferences:
		if p.References {
			return "### Daftar Referensi"
		}
		return antiHallucination
	}
	return ""
}

// Locate returns the byte offset of field's marker in text, a prompt
// assembled from p, or -1. Markers placed after the source block are only
// searched for past its closing delimiter, so pasted text cannot shadow them.
func Locate(field Field, p Params, text string) int {
	marker := Marker(field, p)
	if marker == "" {
		return -1
	}

	from := 0
	if !beforeSource(field) {
		end := endContext
		if p.Mode == ModeOutline {
			end = endOutline
		}
		if i := strings.LastIndex(text, end); i >= 0 {
			from = i + len(end)
		}
	}

	i := strings.Index(text[from:], marker)
	if i < 0 {
		return -1
	}
	return from + i
}

// beforeSource reports whether field's marker sits in the role block or the
// source header, ahead of the user's text.
func beforeSource(field Field) bool {
	switch field {
	case FieldSource, FieldLevel, FieldDelivery, FieldPerspective,
		FieldLearningModel, FieldScenario, FieldAudience,
		FieldAddress, FieldAnalogy, FieldFormat:
		return true
	}
	return false
}
