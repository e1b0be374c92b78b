// Package questions holds the static questionnaire catalog: the general
// section, the four role-specific sets and the closing section.
package questions

import (
	"github.com/freelinkd/kuesioner-api/internal/wizard"
)

// Question is one catalog entry. Type is set for the general and closing
// sections ("radio", "text", "select", "rating"); role-specific questions
// are all 1-5 agreement ratings grouped by Category.
type Question struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Type     string `json:"type,omitempty"`
	Category string `json:"category,omitempty"`
}

// QaUmum is the general section. Question 3 selects the respondent role.
var QaUmum = []Question{
	{ID: 1, Text: "Sejauh mana Anda mengenal platform freelancing seperti Upwork, Fiverr, Sribulancer, atau Fastwork?", Type: "radio"},
	{ID: 2, Text: "Menurut Anda, apa tantangan utama dalam mencari/merekrut freelancer di platform online saat ini?", Type: "text"},
	{ID: 3, Text: "Sebagai apa anda saat ini?", Type: "select"},
}

var Freelancer = []Question{
	{ID: 1, Category: "Efisiensi Pencocokan (Matching) Berbasis AI", Text: "Saya merasa sistem pencocokan Freelinkd mampu menemukan proyek/kandidat yang relevan dengan cepat."},
	{ID: 2, Category: "Efisiensi Pencocokan (Matching) Berbasis AI", Text: "Saya puas dengan relevansi antara deskripsi proyek UMKM dan keterampilan freelancer yang direkomendasikan."},
	{ID: 3, Category: "AI Fairness", Text: "Sistem ini memberi kesempatan yang sama bagi freelancer pemula tanpa diskriminasi tersirat."},
	{ID: 4, Category: "AI Fairness", Text: "Saya percaya bahwa hasil pencocokan didasarkan pada kualifikasi teknis dan riwayat proyek, bukan faktor pribadi."},
	{ID: 5, Category: "AI Fairness", Text: "Saya merasa proses pencocokan di Freelinkd adil karena tidak mempertimbangkan jenis kelamin, usia, atau lokasi."},
	{ID: 6, Category: "User Experience", Text: "Antarmuka website Freelinkd mudah digunakan dan intuitif."},
	{ID: 7, Category: "User Experience", Text: "Saya dapat dengan mudah mengelola profil, proyek, dan komunikasi dalam satu platform."},
	{ID: 8, Category: "Dampak Ekonomi & Pengembangan Karier", Text: "Saya mendapatkan lebih banyak peluang kerja/proyek setelah bergabung dengan Freelinkd."},
	{ID: 9, Category: "Dampak Ekonomi & Pengembangan Karier", Text: "Platform ini membantu saya mengembangkan keterampilan professional."},
	{ID: 10, Category: "Kolaborasi & Komunikasi", Text: "Fitur chat real-time membantu komunikasi antara UMKM dan freelancer secara efektif."},
}

var Guru = []Question{
	{ID: 1, Category: "Efisiensi Pencocokan (Matching) Berbasis AI", Text: "Sistem seperti Freelinkd dapat mengurangi ketidaksesuaian keterampilan lulusan dengan kebutuhan industri (skills mismatch)."},
	{ID: 2, Category: "Efisiensi Pencocokan (Matching) Berbasis AI", Text: "Teknologi pencocokan berbasis embedding AI dapat meningkatkan efisiensi sistem perekrutan digital."},
	{ID: 3, Category: "AI Fairness", Text: "Saya setuju bahwa sistem yang tidak melihat usia atau gender dapat meningkatkan keadilan akses bagi siswa."},
	{ID: 4, Category: "Transparansi, Kepercayaan, dan Dampak Pendidikan", Text: "Saya melihat pentingnya siswa/mahasiswa mendapatkan pengalaman kerja nyata selama masa studi."},
	{ID: 5, Category: "Transparansi, Kepercayaan, dan Dampak Pendidikan", Text: "Platform dengan fitur portofolio digital membantu siswa membangun identitas profesional sejak dini."},
	{ID: 6, Category: "User Experience", Text: "Antarmuka website Freelinkd mudah digunakan dan intuitif."},
}

var Student = []Question{
	{ID: 1, Category: "Persepsi Terhadap Efisiensi & Teknologi AI", Text: "Saya percaya sistem berbasis AI dapat mempercepat proses pencarian proyek yang sesuai dengan kemampuan pengguna."},
	{ID: 2, Category: "Persepsi Terhadap Efisiensi & Teknologi AI", Text: "Teknologi AI seperti pada Freelinkd berpotensi memudahkan mahasiswa menemukan peluang kerja digital."},
	{ID: 3, Category: "AI Fairness", Text: "Platform kerja digital sebaiknya memberikan peluang setara bagi semua orang tanpa memandang latar belakang."},
	{ID: 4, Category: "AI Fairness", Text: "Saya khawatir tidak mendapat proyek karena kurangnya reputasi atau ulasan pertama kali. (Reverse-coded; ukur hambatan entry-level)"},
	{ID: 5, Category: "Dampak Ekonomi & Pengembangan Karier", Text: "Saya merasa kesulitan mendapatkan pengalaman kerja nyata selama masa studi."},
	{ID: 6, Category: "Dampak Ekonomi & Pengembangan Karier", Text: "Saya tertarik untuk menjadi freelancer di bidang teknologi, desain, atau konten digital."},
	{ID: 7, Category: "Dampak Ekonomi & Pengembangan Karier", Text: "Saya menilai sistem seperti Freelinkd relevan dengan kebutuhan dunia kerja modern."},
	{ID: 8, Category: "User Experience", Text: "Antarmuka website Freelinkd mudah digunakan dan intuitif."},
}

var Umkm = []Question{
	{ID: 1, Category: "Efisiensi Pencocokan (Matching) Berbasis AI", Text: "Fitur pencarian dan filter membantu saya menemukan informasi dengan cepat."},
	{ID: 2, Category: "Efisiensi Pencocokan (Matching) Berbasis AI", Text: "Saya merasa waktu perekrutan berkurang karena sistem langsung menampilkan kandidat dengan vektor keterampilan yang mirip dengan kebutuhan proyek."},
	{ID: 3, Category: "AI Fairness", Text: "Sistem ini memberi kesempatan yang sama bagi freelancer pemula tanpa diskriminasi tersirat."},
	{ID: 4, Category: "User Experience", Text: "Antarmuka website Freelinkd mudah digunakan dan intuitif."},
	{ID: 5, Category: "Kepercayaan & Transparansi", Text: "Informasi badge, harga rata-rata, dan rating membantu saya membuat keputusan kerja sama."},
	{ID: 6, Category: "Kolaborasi & Komunikasi", Text: "Saya kesulitan merekrut tenaga kerja profesional karena keterbatasan anggaran."},
	{ID: 7, Category: "Kolaborasi & Komunikasi", Text: "Fitur chat real-time membantu komunikasi antara UMKM dan freelancer secara efektif."},
}

var QaEnd = []Question{
	{ID: 1, Text: "Secara umum, saya percaya Freelinkd dapat membantu mengurangi kesenjangan antara dunia pendidikan dan dunia kerja.", Type: "rating"},
	{ID: 2, Text: "Saya bersedia merekomendasikan Freelinkd kepada orang lain yang membutuhkan.", Type: "rating"},
	{ID: 3, Text: "Saran atau masukan tambahan untuk pengembangan Freelinkd:", Type: "text"},
}

// ForRole returns the role-specific question set for one of the four role
// labels.
func ForRole(role string) ([]Question, bool) {
	switch role {
	case wizard.RoleStudentFreelancer:
		return Freelancer, true
	case wizard.RoleGuru:
		return Guru, true
	case wizard.RoleStudentNonFreelancer:
		return Student, true
	case wizard.RoleUMKM:
		return Umkm, true
	}
	return nil, false
}

// IsFreeText reports whether a question in the set takes typed free text.
// Role-specific questions carry no type and are all ratings.
func IsFreeText(set []Question, id int) bool {
	for _, q := range set {
		if q.ID == id {
			return q.Type == "text"
		}
	}
	return false
}
