package scoring

import (
	"fmt"

	"github.com/MikeSquared-Agency/Peminatan/internal/riasec"
)

// DefaultHollandCode is used when advice is requested without a profile.
const DefaultHollandCode = "RIA"

var hollandAdvice = map[riasec.Dimension]string{
	riasec.Realistic:     "Pertimbangkan jurusan teknik atau sains terapan.",
	riasec.Investigative: "Kamu cocok di bidang riset, MIPA, atau teknologi.",
	riasec.Artistic:      "Eksplorasi jurusan seni, desain, sastra, atau komunikasi.",
	riasec.Social:        "Pertimbangkan pendidikan, psikologi, atau kesehatan.",
	riasec.Enterprising:  "Bisnis, manajemen, hukum, atau kepemimpinan sangat cocok untukmu.",
	riasec.Conventional:  "Akuntansi, keuangan, statistika, atau administrasi bisnis bisa jadi pilihan tepat.",
}

var nextSteps = []string{
	"Diskusikan hasil ini dengan guru BK",
	"Konsultasikan dengan orang tua",
	"Cek ketersediaan guru dan kelas peminatan di sekolah",
	"Pertimbangkan beban belajar dan kemampuan akademik",
	"Konfirmasi pilihan sebelum akhir semester 2 kelas 10",
}

const (
	minimumWarning = "⚠️ Beberapa mata pelajaran pilihanmu mensyaratkan nilai minimum tertentu. Diskusikan dengan guru BK dan wali kelas."
	timingNote     = "Proses pemilihan ini dilakukan pada akhir semester 2 kelas 10, dengan bimbingan guru BK dan wali kelas."
	decisionNote   = "Keputusan akhir tetap ada pada siswa, orang tua, dan pihak sekolah setelah melalui sesi konsultasi."
	reminder       = "Sistem ini bersifat pendukung, bukan penentu. Keputusan terbaik lahir dari diskusi yang komprehensif."
)

// AdviceRequest is the input for a simulated counsellor (guru BK) session.
type AdviceRequest struct {
	HollandCode        string   `json:"holland_code"`
	TopRecommendations []string `json:"top_recommendations"`
	Aspiration         string   `json:"aspiration"`
	MeetsMinimum       bool     `json:"meets_minimum"`
}

// Advice is the counsellor's response.
type Advice struct {
	Advice    []string `json:"advice"`
	NextSteps []string `json:"next_steps"`
	Reminder  string   `json:"reminder"`
}

// Counsel builds advice from the first two letters of the Holland code, the
// minimum-grade status and the aspiration. Only upper-case RIASEC letters
// count; anything else in those two positions is skipped.
func Counsel(req AdviceRequest) Advice {
	code := req.HollandCode
	if code == "" {
		code = DefaultHollandCode
	}

	if len(code) > 2 {
		code = code[:2]
	}
	var points []string
	for i := 0; i < len(code); i++ {
		letter := code[i]
		if letter < 'A' || letter > 'Z' {
			continue
		}
		if d, ok := riasec.FromInitial(rune(letter)); ok {
			points = append(points, hollandAdvice[d])
		}
	}
	if !req.MeetsMinimum {
		points = append(points, minimumWarning)
	}
	if req.Aspiration != "" {
		points = append(points, fmt.Sprintf("Cita-citamu sebagai %s sudah terefleksi dalam rekomendasi sistem. Konfirmasikan pilihan ini bersama orang tua.", req.Aspiration))
	}
	points = append(points, timingNote, decisionNote)

	steps := make([]string, len(nextSteps))
	copy(steps, nextSteps)
	return Advice{Advice: points, NextSteps: steps, Reminder: reminder}
}
