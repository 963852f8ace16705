package prompt

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var allFields = []Field{
	FieldSource, FieldMode, FieldUnit, FieldTopic,
	FieldLevel, FieldDelivery, FieldDepth,
	FieldPerspective, FieldLearningModel, FieldAudience, FieldScenario,
	FieldLength, FieldLanguage, FieldAddress, FieldAnalogy, FieldFormat,
	FieldExercises, FieldReferences,
}

func TestMarkersAppearInOutput(t *testing.T) {
	variants := map[string]func(*Params){
		"course context": nil,
		"course outline": func(p *Params) { p.Mode = ModeOutline },
		"course slides":  func(p *Params) { p.Format = FormatPresentation; p.Exercises = true },
		"lm context": func(p *Params) {
			p.Variant = VariantLearningModel
			p.LearningModel = ModelCase
			p.Topic = "Uji Hipotesis"
		},
		"lm refs": func(p *Params) {
			p.Variant = VariantLearningModel
			p.References = true
			p.Exercises = true
		},
	}

	for name, mutate := range variants {
		t.Run(name, func(t *testing.T) {
			p := params(mutate)
			out := Assemble(p)
			for _, f := range allFields {
				m := Marker(f, p)
				if m == "" {
					continue
				}
				if !strings.Contains(out, m) {
					t.Errorf("marker for %s (%q) not found", f, m)
				}
			}
		})
	}
}

func TestMarkerInapplicableFields(t *testing.T) {
	inapplicable := func(p Params) []Field {
		var out []Field
		for _, f := range allFields {
			if Marker(f, p) == "" {
				out = append(out, f)
			}
		}
		slices.Sort(out)
		return out
	}

	course := params(func(p *Params) { p.Mode = ModeOutline })
	want := []Field{FieldAudience, FieldLearningModel, FieldPerspective, FieldScenario, FieldTopic, FieldUnit}
	if diff := cmp.Diff(want, inapplicable(course)); diff != "" {
		t.Errorf("course outline (-want +got):\n%s", diff)
	}

	lm := params(func(p *Params) { p.Variant = VariantLearningModel })
	want = []Field{FieldDelivery, FieldDepth, FieldLevel}
	if diff := cmp.Diff(want, inapplicable(lm)); diff != "" {
		t.Errorf("learning model context (-want +got):\n%s", diff)
	}
}

func TestMarkerDynamicToggles(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		p     Params
		want  string
	}{
		{"exercises off", FieldExercises, params(nil), exercisesBan},
		{"exercises on", FieldExercises, params(func(p *Params) { p.Exercises = true }), "- Latihan/Soal:"},
		{"exercises slides", FieldExercises, params(func(p *Params) {
			p.Exercises = true
			p.Format = FormatPresentation
		}), "- Slide Latihan/Soal:"},
		{"references off", FieldReferences, params(nil), antiHallucination},
		{"references on", FieldReferences, params(func(p *Params) { p.References = true }), "### Daftar Referensi"},
		{"topic set", FieldTopic, params(func(p *Params) { p.Topic = "x" }), topicLabel},
		{"topic blank", FieldTopic, params(nil), inferTopic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Marker(tt.field, tt.p); got != tt.want {
				t.Errorf("Marker = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocateIgnoresPastedMarkers(t *testing.T) {
	pasted := strings.Join([]string{
		"## TUGAS UTAMA",
		"- **Bahasa**: Inggris",
		"**Gaya Sapaan:** santai",
		"### Anti-Hallucination:",
		"--- AKHIR RPS ---",
		"--- AKHIR TOPIK ---",
	}, "\n")

	for _, mode := range []Mode{ModeContext, ModeOutline} {
		t.Run(string(mode), func(t *testing.T) {
			p := params(func(p *Params) {
				p.Mode = mode
				p.Source = pasted
			})
			out := Assemble(p)
			begin := strings.Index(out, pasted)
			end := begin + len(pasted)

			for _, f := range []Field{FieldMode, FieldLanguage, FieldAddress, FieldReferences} {
				at := Locate(f, p, out)
				if at < 0 {
					t.Errorf("%s: marker not found", f)
					continue
				}
				if at >= begin && at < end {
					t.Errorf("%s: located inside the pasted source at %d", f, at)
				}
				if !strings.HasPrefix(out[at:], Marker(f, p)) {
					t.Errorf("%s: offset %d does not start the marker", f, at)
				}
			}
		})
	}
}

func TestLocateWithoutMarker(t *testing.T) {
	p := params(nil)
	if at := Locate(FieldNone, p, Assemble(p)); at != -1 {
		t.Errorf("Locate(FieldNone) = %d, want -1", at)
	}
	if at := Locate(FieldLanguage, p, "unrelated"); at != -1 {
		t.Errorf("Locate in unrelated text = %d, want -1", at)
	}
}
