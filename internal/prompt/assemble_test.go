package prompt

import (
	"strings"
	"testing"
)

const sampleRPS = "Mata Kuliah: Statistika Dasar\nPertemuan 3: Distribusi Peluang Diskrit"

func params(mutate func(*Params)) Params {
	p := DefaultParams()
	p.Source = sampleRPS
	if mutate != nil {
		mutate(&p)
	}
	return p
}

func TestAssembleBlankSource(t *testing.T) {
	for _, src := range []string{"", "   ", "\n\t \n"} {
		p := DefaultParams()
		p.Source = src
		if got := Assemble(p); got != "" {
			t.Errorf("Assemble(%q) = %q, want empty", src, got)
		}
	}
}

func TestAssembleContainsSourceOnce(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"default", nil},
		{"outline", func(p *Params) { p.Mode = ModeOutline }},
		{"slides", func(p *Params) { p.Format = FormatPresentation }},
		{"learning model", func(p *Params) {
			p.Variant = VariantLearningModel
			p.LearningModel = ModelProblem
		}},
		{"everything on", func(p *Params) {
			p.Exercises = true
			p.References = true
			p.Topic = "Distribusi Binomial"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(params(tt.mutate))
			if got == "" {
				t.Fatal("Assemble returned empty output")
			}
			if n := strings.Count(got, sampleRPS); n != 1 {
				t.Errorf("source appears %d times, want 1", n)
			}
		})
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	a := params(func(p *Params) { p.References = true })
	b := params(func(p *Params) { p.References = true })

	first, second := Assemble(a), Assemble(b)
	if first != second {
		t.Fatal("Assemble returned different output for equal params")
	}
	if CountWords(first) != CountWords(second) {
		t.Fatal("CountWords differs for identical output")
	}
}

func TestAssembleSectionOrder(t *testing.T) {
	got := Assemble(params(nil))
	order := []string{
		"## ROLE & PERSONA",
		headerContext,
		headerTask,
		headerParams,
		headerRules,
		"### Struktur Dokumen",
		antiHallucination,
		"### Output Continuity",
	}

	last := -1
	for _, h := range order {
		i := strings.Index(got, h)
		if i < 0 {
			t.Fatalf("missing %q", h)
		}
		if i < last {
			t.Errorf("%q is out of order", h)
		}
		last = i
	}
	if !strings.Contains(got, "\n\n"+headerTask+"\n") {
		t.Error("sections are not separated by a blank line")
	}
}

func TestAssembleModes(t *testing.T) {
	t.Run("outline omits unit", func(t *testing.T) {
		got := Assemble(params(func(p *Params) {
			p.Mode = ModeOutline
			p.Unit = 7
			p.Topic = "Regresi"
		}))
		if !strings.Contains(got, headerOutline) {
			t.Error("missing outline header")
		}
		for _, s := range []string{unitLabel, topicLabel, inferTopic, headerContext} {
			if strings.Contains(got, s) {
				t.Errorf("outline output contains %q", s)
			}
		}
	})

	t.Run("context with topic", func(t *testing.T) {
		got := Assemble(params(func(p *Params) {
			p.Unit = 4
			p.Topic = "  Distribusi Poisson  "
		}))
		if !strings.Contains(got, "**PERTEMUAN KE-4**") {
			t.Error("missing unit reference")
		}
		if !strings.Contains(got, "Dengan fokus bahasan: **Distribusi Poisson**") {
			t.Error("missing trimmed focus topic")
		}
		if strings.Contains(got, inferTopic) {
			t.Error("topic given but infer instruction present")
		}
	})

	t.Run("context without topic", func(t *testing.T) {
		got := Assemble(params(func(p *Params) { p.Unit = 9 }))
		if !strings.Contains(got, "untuk pertemuan ke-9 dari RPS") {
			t.Error("missing infer-topic instruction")
		}
	})
}

func TestAssembleExercises(t *testing.T) {
	off := Assemble(params(nil))
	if !strings.Contains(off, exercisesBan) {
		t.Error("exercises off: missing prohibition")
	}
	if strings.Contains(off, exercisesRule) {
		t.Error("exercises off: contains exercises rule")
	}

	on := Assemble(params(func(p *Params) { p.Exercises = true }))
	if !strings.Contains(on, "- Latihan/Soal: ~100-150 kata (3-5 soal)") {
		t.Error("exercises on: missing word target")
	}
	if strings.Contains(on, exercisesBan) {
		t.Error("exercises on: contains prohibition")
	}
}

func TestAssembleReferences(t *testing.T) {
	off := Assemble(params(nil))
	for _, s := range []string{referencesHeader, "**PERINGATAN**", referencesRule} {
		if strings.Contains(off, s) {
			t.Errorf("references off: contains %q", s)
		}
	}

	on := Assemble(params(func(p *Params) { p.References = true }))
	for _, s := range []string{
		referencesHeader,
		referencesWarning,
		"- Daftar Referensi: 5-10 link URL",
		"Prioritaskan sumber: jurnal ilmiah",
		"`[Judul Referensi]: https://url-lengkap.com/path/to/resource`",
	} {
		if !strings.Contains(on, s) {
			t.Errorf("references on: missing %q", s)
		}
	}
}

func TestAssembleSlides(t *testing.T) {
	got := Assemble(params(func(p *Params) {
		p.Format = FormatPresentation
		p.Length = Length2500
		p.Exercises = true
		p.References = true
	}))

	if strings.Contains(got, "- Pendahuluan: ~") || strings.Contains(got, paragraphNote) {
		t.Error("slides contain the narrative breakdown")
	}
	if strings.Contains(got, "MINIMAL 2500 kata") {
		t.Error("slides contain a hard minimum length")
	}
	for _, s := range []string{
		"- Slide Judul",
		"- Slide Ringkasan & Kesimpulan",
		"Dinamis (Sesuai kebutuhan materi slide)",
		"- Slide Latihan/Soal: 1 Slide",
		"- Slide Daftar Referensi: 5-10 link URL",
		"OUTLINE PRESENTASI (Slide-by-Slide)",
	} {
		if !strings.Contains(got, s) {
			t.Errorf("slides: missing %q", s)
		}
	}
}

func TestAssembleLengthBreakdown(t *testing.T) {
	for _, l := range Lengths() {
		t.Run(string(l), func(t *testing.T) {
			got := Assemble(params(func(p *Params) { p.Length = l }))
			if !strings.Contains(got, Profile(l).breakdown()) {
				t.Error("missing proportion breakdown")
			}
			if !strings.Contains(got, "**MINIMAL "+string(l)+" kata**") {
				t.Error("missing hard minimum")
			}
		})
	}
}

func TestAssembleLanguage(t *testing.T) {
	mixed := Assemble(params(func(p *Params) { p.Language = LanguageMixed }))
	if !strings.Contains(mixed, mixedTermsRule) {
		t.Error("mixed: missing technical-terms rule")
	}
	plain := Assemble(params(func(p *Params) { p.Language = LanguageIndonesian }))
	if strings.Contains(plain, mixedTermsRule) {
		t.Error("indonesian: contains technical-terms rule")
	}
	if !strings.Contains(plain, "- **Bahasa**: Bahasa Indonesia sepenuhnya") {
		t.Error("indonesian: missing language line")
	}
}

func TestAssembleScenario(t *testing.T) {
	lm := func(model LearningModel, scenario string) string {
		return Assemble(params(func(p *Params) {
			p.Variant = VariantLearningModel
			p.LearningModel = model
			p.Scenario = scenario
		}))
	}

	custom := "Sebuah UMKM kopi kehilangan 30% pelanggan dalam enam bulan."
	for _, m := range []LearningModel{ModelCase, ModelProblem} {
		got := lm(m, custom)
		if !strings.Contains(got, custom) {
			t.Errorf("%s: scenario not interpolated", m)
		}
		if strings.Contains(got, scenarioPlaceholder) {
			t.Errorf("%s: placeholder left in output", m)
		}
		if got := lm(m, "  "); !strings.Contains(got, DefaultScenario) {
			t.Errorf("%s: blank scenario did not fall back", m)
		}
	}

	for _, m := range []LearningModel{ModelLecture, ModelProject} {
		if got := lm(m, custom); strings.Contains(got, custom) {
			t.Errorf("%s: scenario used by a model without one", m)
		}
	}
}

func TestAssembleVariants(t *testing.T) {
	course := Assemble(params(nil))
	if !strings.Contains(course, "**Konteks Jenjang S1:**") {
		t.Error("course: missing level context")
	}
	if strings.Contains(course, labelPerspective) {
		t.Error("course: contains perspective")
	}

	lm := Assemble(params(func(p *Params) {
		p.Variant = VariantLearningModel
		p.Perspective = PerspectivePractitioner
		p.Audience = AudienceProfessional
	}))
	for _, s := range []string{labelPerspective, labelLearningModel, labelAudience, "- **Sasaran Pembaca**: Profesional"} {
		if !strings.Contains(lm, s) {
			t.Errorf("learning model: missing %q", s)
		}
	}
	if strings.Contains(lm, labelLevel) || strings.Contains(lm, paramDepth) {
		t.Error("learning model: contains course axes")
	}
}

func TestAssembleManualExample(t *testing.T) {
	p := DefaultParams()
	p.Source = "Intro to Statistics"
	p.Mode = ModeOutline
	p.Format = FormatModule
	p.Language = LanguageMixed
	p.Exercises = false
	p.References = true

	got := Assemble(p)
	want := []string{
		headerOutline,
		"--- MULAI TOPIK ---\nIntro to Statistics\n--- AKHIR TOPIK ---",
		"Kembangkan setiap poin",
		referencesHeader,
		mixedTermsRule,
		exercisesBan,
	}
	for _, s := range want {
		if !strings.Contains(got, s) {
			t.Errorf("missing %q", s)
		}
	}
	if strings.Contains(got, exercisesRule) {
		t.Error("contains an exercises section")
	}
}
