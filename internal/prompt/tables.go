package prompt

import "fmt"

// DefaultScenario is used when a case- or problem-based model has no
// scenario text.
const DefaultScenario = "Sebuah institusi atau perusahaan di Indonesia menghadapi permasalahan nyata yang relevan dengan topik pertemuan ini; susun konteks, data pendukung, dan kendala yang realistis."

const scenarioPlaceholder = "{scenario}"

var levelContext = map[Level]string{
	LevelD3: "Fokus pada aspek praktis dan aplikatif. Gunakan bahasa yang sederhana dan langsung. Berikan contoh konkret dari dunia kerja.",
	LevelS1: "Keseimbangan antara teori dan praktik. Gunakan bahasa akademis namun tetap accessible. Sertakan landasan konseptual sebelum aplikasi.",
	LevelS2: "Pendekatan analitis dan kritis. Gunakan referensi jurnal jika relevan. Dorong diskusi mendalam dan pemikiran reflektif.",
}

var deliveryContext = map[Delivery]string{
	DeliveryTheoretical: "Fokus pada konsep, definisi, dan landasan teori secara mendalam.",
	DeliveryPractical:   "Fokus pada aplikasi nyata, contoh konkret, dan panduan how-to.",
	DeliveryCaseStudy:   "Analisis kasus real-world secara mendalam dengan pembahasan komprehensif.",
}

var depthContext = map[Depth]string{
	DepthBasic:        "Taksonomi Bloom C1-C2 (Mengingat & Memahami). Fokus pada definisi istilah, penjelasan konsep dasar, identifikasi ciri-ciri, dan pemahaman prinsip utama secara luas.",
	DepthIntermediate: "Taksonomi Bloom C3-C4 (Menerapkan & Menganalisis). Fokus pada penerapan konsep dalam situasi nyata, analisis komponen-komponen, studi kasus sederhana, dan pemecahan masalah prosedural.",
	DepthAdvanced:     "Taksonomi Bloom C5-C6 (Mengevaluasi & Mencipta). Fokus pada evaluasi kritis terhadap teori, perbandingan pendekatan, sintesis ide dari berbagai sumber, dan perancangan strategi atau solusi baru.",
}

var perspectiveContext = map[Perspective]string{
	PerspectiveAcademic:     "Tulis dari sudut pandang akademisi: runtut, berbasis konsep, dan mengaitkan setiap bahasan dengan landasan keilmuan.",
	PerspectivePractitioner: "Tulis dari sudut pandang praktisi industri: utamakan pengalaman lapangan, praktik terbaik, dan kendala yang sering ditemui.",
	PerspectiveResearcher:   "Tulis dari sudut pandang peneliti: tonjolkan pertanyaan terbuka, metodologi, dan perkembangan riset terkini.",
}

var learningModelContext = map[LearningModel]string{
	ModelLecture: "Model CERAMAH: Sajikan materi secara ekspositori dan berurutan, dari konsep dasar menuju penerapan, dengan penegasan poin kunci di setiap akhir bagian.",
	ModelCase:    "Model STUDI KASUS (Case-Based Learning): Bangun materi di sekitar kasus berikut: " + scenarioPlaceholder + " Uraikan konsep yang dibutuhkan untuk menganalisis kasus, lalu pandu pembaca menarik kesimpulan.",
	ModelProject: "Model PROYEK (Project-Based Learning): Arahkan materi menuju satu proyek yang dapat dikerjakan mahasiswa, lengkap dengan tahapan, luaran, dan kriteria keberhasilan.",
	ModelProblem: "Model PEMECAHAN MASALAH (Problem-Based Learning): Mulai dari permasalahan berikut: " + scenarioPlaceholder + " Susun materi sebagai langkah-langkah identifikasi, eksplorasi, dan penyelesaian masalah.",
}

var audienceContext = map[Audience]string{
	AudienceFreshmen:     "Pembaca adalah mahasiswa tahun pertama. Hindari asumsi pengetahuan awal dan jelaskan istilah saat pertama kali muncul.",
	AudienceSenior:       "Pembaca adalah mahasiswa tingkat akhir yang sudah menguasai dasar. Langsung masuk ke pembahasan inti dan keterkaitan antar konsep.",
	AudienceProfessional: "Pembaca adalah profesional yang sedang meningkatkan kompetensi. Tekankan relevansi langsung terhadap pekerjaan dan efisiensi penyampaian.",
}

var addressContext = map[Address]string{
	AddressInclusive: `Gunakan kata ganti "kita" untuk menciptakan suasana belajar yang inklusif dan partisipatif. Contoh: "Kita akan mempelajari...", "Mari kita bahas..."`,
	AddressFormal:    `Gunakan kata ganti "Anda" untuk gaya penulisan formal seperti buku teks. Contoh: "Anda akan mempelajari...", "Setelah mempelajari materi ini, Anda diharapkan..."`,
	AddressNeutral:   `Gunakan kata ganti orang ketiga "mahasiswa" untuk gaya penulisan objektif dan netral. Contoh: "Mahasiswa akan mempelajari...", "Mahasiswa diharapkan mampu..."`,
}

var analogyInstruction = map[Analogy]string{
	AnalogyNone: "JANGAN gunakan analogi sama sekali. Jelaskan konsep secara langsung tanpa perumpamaan.",
	AnalogyFew:  "Gunakan 1-2 analogi sederhana hanya untuk konsep yang sangat abstrak atau sulit dipahami.",
	AnalogyMany: "Gunakan analogi dan perumpamaan secara aktif untuk setiap konsep penting. Hubungkan dengan pengalaman sehari-hari mahasiswa.",
}

var formatInstruction = map[Format]string{
	FormatModule:       "Gaya MODUL AJAR: Instruksional dan learning-oriented. Sertakan tujuan pembelajaran di awal, penjelasan step-by-step, dan cek pemahaman. Format modular dengan bagian-bagian yang jelas.",
	FormatBook:         "Gaya BUKU TEKS: Naratif akademis dan ensiklopedis. Penjelasan komprehensif dengan alur logis. Bahasa formal dengan elaborasi mendalam seperti buku referensi.",
	FormatPresentation: "Gaya PRESENTASI: Format slide/bullet-points. Ringkas, padat, dan visual. Fokus pada poin-poin kunci dan hierarki informasi yang jelas untuk ditampilkan di layar.",
}

var languageInstruction = map[Language]string{
	LanguageIndonesian: "Bahasa Indonesia sepenuhnya",
	LanguageMixed:      "Bahasa Indonesia dengan istilah teknis dalam Bahasa Inggris (italic)",
}

func init() {
	mustCover("level", levels, levelContext)
	mustCover("delivery", deliveries, deliveryContext)
	mustCover("depth", depths, depthContext)
	mustCover("perspective", perspectives, perspectiveContext)
	mustCover("learning model", learningModels, learningModelContext)
	mustCover("audience", audiences, audienceContext)
	mustCover("address", addresses, addressContext)
	mustCover("analogy", analogies, analogyInstruction)
	mustCover("format", formats, formatInstruction)
	mustCover("language", languages, languageInstruction)
	mustCover("length", lengths, lengthProfiles)
}

func mustCover[K comparable, V any](axis string, values []K, table map[K]V) {
	for _, v := range values {
		if _, ok := table[v]; !ok {
			panic(fmt.Sprintf("prompt: %s table has no entry for %v", axis, v))
		}
	}
}
