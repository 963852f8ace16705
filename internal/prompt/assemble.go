package prompt

import (
	"fmt"
	"strings"
)

// Labels shared by the template and the highlight markers.
const (
	labelLevel         = "**Konteks Jenjang"
	labelDelivery      = "**Gaya Penyampaian:**"
	labelPerspective   = "**Sudut Pandang:**"
	labelLearningModel = "**Model Pembelajaran:**"
	labelAudience      = "**Sasaran Pembaca:**"
	labelAddress       = "**Gaya Sapaan:**"
	labelAnalogy       = "**Penggunaan Analogi:**"
	labelFormat        = "**Gaya Penulisan:**"

	headerContext = "## KONTEKS RPS (DATA UTAMA)"
	headerOutline = "## TOPIK / OUTLINE MATERI (INPUT MANUAL)"
	headerTask    = "## TUGAS UTAMA"
	headerParams  = "## PARAMETER PEMBELAJARAN"
	headerRules   = "## ATURAN WAJIB (AUTO-RULES)"

	endContext = "--- AKHIR RPS ---"
	endOutline = "--- AKHIR TOPIK ---"

	unitLabel     = "**PERTEMUAN KE-"
	topicLabel    = "Dengan fokus bahasan:"
	inferTopic    = "Cari dan identifikasi topik pembelajaran"
	paramLevel    = "- **Jenjang Pendidikan**:"
	paramDelivery = "- **Gaya Penyampaian**:"
	paramDepth    = "- **Level Materi**:"
	paramLength   = "- **Target Panjang**:"
	paramLanguage = "- **Bahasa**:"

	exercisesRule     = "Latihan/Soal:"
	exercisesBan      = "- Jangan menyertakan soal latihan/kuis"
	referencesRule    = "Daftar Referensi:"
	referencesHeader  = "### Daftar Referensi (WAJIB jika diminta):"
	referencesWarning = "**PERINGATAN**: Pastikan URL yang diberikan adalah URL yang BENAR dan EXIST. Verifikasi sebelum menyertakan."
	antiHallucination = "### Anti-Hallucination:"
	mixedTermsRule    = "- Istilah teknis ditulis dalam Bahasa Inggris dengan format *italic*"

	slideSkeleton = `- Slide Judul
- Slide Tujuan Pembelajaran
- Slide Apersepsi/Pendahuluan
- Slide Inti Materi (pecah menjadi 5-10 slide)
- Slide Studi Kasus/Contoh
- Slide Ringkasan & Kesimpulan`

	paragraphNote = "**Perhatian**: Pecah setiap poin ulasan materi menjadi paragraf yang mendalam. Jangan hanya membuat listing poin."
)

// Assemble builds the prompt for p. It returns "" when p.Source is blank and
// is otherwise total over the closed axes.
func Assemble(p Params) string {
	if strings.TrimSpace(p.Source) == "" {
		return ""
	}

	sections := []string{
		rolePersona(p),
		sourceContext(p),
		primaryTask(p),
		parameterSummary(p),
		structuralRules(p),
	}
	return strings.Join(sections, "\n\n")
}

func rolePersona(p Params) string {
	var b strings.Builder
	b.WriteString("## ROLE & PERSONA\n")
	b.WriteString("Bertindaklah sebagai dosen perguruan tinggi Indonesia yang berpengalaman dalam menyusun materi pembelajaran. Gunakan bahasa formal, akademis, namun mudah dipahami oleh mahasiswa.\n\n")

	if p.Variant == VariantLearningModel {
		fmt.Fprintf(&b, "%s %s\n", labelPerspective, perspectiveContext[p.Perspective])
		fmt.Fprintf(&b, "%s %s\n", labelLearningModel, learningModelText(p))
		fmt.Fprintf(&b, "%s %s\n", labelAudience, audienceContext[p.Audience])
	} else {
		fmt.Fprintf(&b, "%s %s:** %s\n", labelLevel, p.Level, levelContext[p.Level])
		fmt.Fprintf(&b, "%s %s\n", labelDelivery, deliveryContext[p.Delivery])
	}
	fmt.Fprintf(&b, "%s %s\n", labelAddress, addressContext[p.Address])
	fmt.Fprintf(&b, "%s %s\n", labelAnalogy, analogyInstruction[p.Analogy])
	fmt.Fprintf(&b, "%s %s", labelFormat, formatInstruction[p.Format])
	return b.String()
}

func learningModelText(p Params) string {
	text := learningModelContext[p.LearningModel]
	if !p.LearningModel.UsesScenario() {
		return text
	}
	scenario := strings.TrimSpace(p.Scenario)
	if scenario == "" {
		scenario = DefaultScenario
	}
	return strings.Replace(text, scenarioPlaceholder, scenario, 1)
}

func sourceContext(p Params) string {
	if p.Mode == ModeOutline {
		return headerOutline + "\n" +
			"Berikut adalah topik atau outline materi yang harus dikembangkan menjadi dokumen pembelajaran lengkap:\n\n" +
			"--- MULAI TOPIK ---\n" + p.Source + "\n" + endOutline
	}
	return headerContext + "\n" +
		"Berikut adalah Rencana Pembelajaran Semester (RPS) lengkap untuk mata kuliah ini sebagai konteks utama:\n\n" +
		"--- AWAL RPS ---\n" + p.Source + "\n" + endContext
}

func primaryTask(p Params) string {
	if p.Mode == ModeOutline {
		return headerTask + "\n" +
			"Buatlah DOKUMEN MATERI PEMBELAJARAN berdasarkan topik/outline di atas. Kembangkan setiap poin menjadi materi yang daging dan komprehensif."
	}

	var b strings.Builder
	b.WriteString(headerTask + "\n")
	fmt.Fprintf(&b, "Buatlah DOKUMEN MATERI PEMBELAJARAN (Modul Ajar) hanya untuk %s%d**.", unitLabel, p.Unit)
	if topic := strings.TrimSpace(p.Topic); topic != "" {
		fmt.Fprintf(&b, "\n%s **%s**", topicLabel, topic)
	} else {
		fmt.Fprintf(&b, "\n%s untuk pertemuan ke-%d dari RPS yang diberikan.", inferTopic, p.Unit)
	}
	return b.String()
}

func lengthText(p Params) string {
	if p.slides() {
		return "Dinamis (Sesuai kebutuhan materi slide)"
	}
	return fmt.Sprintf("**MINIMAL %s kata** (JANGAN kurang, elaborasi sedetail mungkin)", p.Length)
}

func parameterSummary(p Params) string {
	lines := []string{headerParams}
	if p.Variant == VariantLearningModel {
		lines = append(lines,
			fmt.Sprintf("- **Sudut Pandang**: %s", p.Perspective),
			fmt.Sprintf("- **Model Pembelajaran**: %s", p.LearningModel),
			fmt.Sprintf("- **Sasaran Pembaca**: %s", p.Audience),
		)
	} else {
		lines = append(lines,
			fmt.Sprintf("%s %s", paramLevel, p.Level),
			fmt.Sprintf("%s %s", paramDelivery, p.Delivery),
			fmt.Sprintf("%s %s", paramDepth, depthContext[p.Depth]),
		)
	}
	lines = append(lines,
		fmt.Sprintf("%s %s", paramLength, lengthText(p)),
		fmt.Sprintf("%s %s", paramLanguage, languageInstruction[p.Language]),
	)
	return strings.Join(lines, "\n")
}

func structure(p Params) string {
	var b strings.Builder
	slide := ""
	if p.slides() {
		slide = "Slide "
		b.WriteString(slideSkeleton)
	} else {
		b.WriteString(Profile(p.Length).breakdown())
		b.WriteString("\n\n" + paragraphNote)
	}

	if p.Exercises {
		target := "~100-150 kata (3-5 soal)"
		if p.slides() {
			target = "1 Slide"
		}
		fmt.Fprintf(&b, "\n- %s%s %s", slide, exercisesRule, target)
	}
	if p.References {
		fmt.Fprintf(&b, "\n- %s%s 5-10 link URL", slide, referencesRule)
	}
	return b.String()
}

func structuralRules(p Params) string {
	var b strings.Builder
	b.WriteString(headerRules + "\n\n")
	b.WriteString("### Struktur Dokumen (dengan Proporsi):\n")
	b.WriteString(structure(p))

	b.WriteString("\n\n### Format Output:\n")
	b.WriteString("- Gunakan format **Markdown** dengan heading yang jelas (# ## ###)\n")
	if p.slides() {
		b.WriteString("- Output berupa OUTLINE PRESENTASI (Slide-by-Slide)\n- Gunakan bullet points, hindari paragraf panjang\n")
	} else {
		b.WriteString("- Output berupa teks naratif terstruktur (BUKAN slide/PPT)\n")
	}
	b.WriteString("- Selaraskan dengan Capaian Pembelajaran Mata Kuliah (CPMK) yang ada di RPS")
	if p.Language == LanguageMixed {
		b.WriteString("\n" + mixedTermsRule)
	}

	b.WriteString("\n\n" + antiHallucination + "\n")
	b.WriteString("- JANGAN menyebutkan nama buku/referensi yang tidak tercantum di RPS\n")
	b.WriteString("- JANGAN membuat kutipan atau sitasi fiktif\n")
	b.WriteString("- Jika informasi tidak tersedia di RPS, tulis **[perlu dilengkapi oleh dosen]**")

	b.WriteString("\n\n### Larangan:\n")
	b.WriteString("- Hindari bahasa marketing/promosi")
	if !p.Exercises {
		b.WriteString("\n" + exercisesBan)
	}

	if p.References {
		b.WriteString("\n\n" + referencesHeader + "\n")
		b.WriteString("Di akhir dokumen, sertakan bagian **Daftar Referensi** dengan format:\n")
		b.WriteString("- 5-10 link URL lengkap yang relevan dengan materi\n")
		b.WriteString(`- Tulis URL secara utuh (contoh: "https://jurnal.id/artikel-123")` + "\n")
		b.WriteString("- Prioritaskan sumber: jurnal ilmiah, repositori institusi, situs .edu/.ac.id, Wikipedia\n")
		b.WriteString("- Format Markdown: `[Judul Referensi]: https://url-lengkap.com/path/to/resource` (Agar URL terlihat jelas)\n\n")
		b.WriteString(referencesWarning)
	}

	b.WriteString("\n\n### Output Continuity (PENTING):\n")
	b.WriteString("Mengingat target panjang dokumen yang tinggi, jika respons terhenti karena batasan token:\n")
	b.WriteString("1. Jangan memotong kalimat di tengah kata.\n")
	b.WriteString("2. Tulis secara eksplisit di baris terakhir: **\"[Materi belum selesai. Ketik 'Lanjutkan' untuk meneruskan ke bagian berikutnya...]\"**")
	return b.String()
}
