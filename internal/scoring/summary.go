package scoring

import (
	"fmt"

	"github.com/MikeSquared-Agency/Peminatan/internal/saw"
)

const methodName = "Simple Additive Weighting (SAW)"

var summaryNames = []string{"Nilai Akademik Rapor", "Kecocokan RIASEC", "Relevansi Cita-cita", "Ketersediaan di Sekolah"}

type SummaryCriterion struct {
	Name   string   `json:"name"`
	Weight string   `json:"weight"`
	Type   saw.Type `json:"type"`
}

// Summary describes how a recommendation was computed.
type Summary struct {
	Method            string             `json:"method"`
	Criteria          []SummaryCriterion `json:"criteria"`
	TotalAlternatives int                `json:"total_alternatives"`
	Top5              []string           `json:"top5"`
}

// NewSummary reports the weights that were actually applied, as percentages.
func NewSummary(w WeightSet, recs []Recommendation) Summary {
	criteria := make([]SummaryCriterion, 0, len(summaryNames))
	for i, v := range w.asList() {
		criteria = append(criteria, SummaryCriterion{
			Name:   summaryNames[i],
			Weight: fmt.Sprintf("%g%%", round(v*100, 2)),
			Type:   saw.Benefit,
		})
	}
	return Summary{
		Method:            methodName,
		Criteria:          criteria,
		TotalAlternatives: len(recs),
		Top5:              TopSubjects(recs, 5),
	}
}
