package scoring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MikeSquared-Agency/Peminatan/internal/catalog"
	"github.com/MikeSquared-Agency/Peminatan/internal/saw"
)

// CriterionValues holds one value per criterion.
type CriterionValues struct {
	Academic     float64 `json:"academic"`
	RIASEC       float64 `json:"riasec"`
	Aspiration   float64 `json:"aspiration"`
	Availability float64 `json:"availability"`
}

func criterionValues(row []float64) CriterionValues {
	return CriterionValues{
		Academic:     round(row[0], 4),
		RIASEC:       round(row[1], 4),
		Aspiration:   round(row[2], 4),
		Availability: round(row[3], 4),
	}
}

// Recommendation is one ranked subject. The *_score, riasec_match and
// availability fields are the raw features on a 0..100 scale.
type Recommendation struct {
	Subject         string          `json:"subject"`
	Category        string          `json:"category"`
	Rank            int             `json:"rank"`
	Score           float64         `json:"score"`
	AcademicScore   float64         `json:"academic_score"`
	RIASECMatch     float64         `json:"riasec_match"`
	AspirationScore float64         `json:"aspiration_score"`
	Availability    float64         `json:"availability"`
	Normalized      CriterionValues `json:"normalized"`
	Weighted        CriterionValues `json:"weighted"`
	MinGrade        float64         `json:"min_grade"`
	MeetsMinimum    bool            `json:"meets_minimum"`
	Factors         []FactorResult  `json:"factors,omitempty"`
}

// Outcome is the full result of one recommendation run.
type Outcome struct {
	Recommendations []Recommendation `json:"recommendations"`
	Weights         WeightSet        `json:"weights"`
	Summary         Summary          `json:"saw_summary"`
	CareerMatch     *CareerMatch     `json:"career_match,omitempty"`
}

// Scorer turns student profiles into ranked subject recommendations. It holds
// only read-only state and is safe for concurrent use.
type Scorer struct {
	catalog *catalog.Catalog
	weights WeightSet
	logger  *slog.Logger
}

// NewScorer creates a Scorer backed by cat with the given default weights.
func NewScorer(cat *catalog.Catalog, weights WeightSet, logger *slog.Logger) *Scorer {
	return &Scorer{
		catalog: cat,
		weights: weights,
		logger:  logger,
	}
}

// Weights returns the default weight set.
func (s *Scorer) Weights() WeightSet { return s.weights }

// Catalog returns the reference data the scorer works from.
func (s *Scorer) Catalog() *catalog.Catalog { return s.catalog }

// Recommend ranks subjects for student with SAW. A nil subjects slice means the
// whole catalog. custom overrides individual default weights.
func (s *Scorer) Recommend(ctx context.Context, student Student, subjects []catalog.Subject, custom CustomWeights) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(student.Grades) == 0 {
		return nil, &ValidationError{Field: "grades", Message: "must not be empty"}
	}
	if subjects == nil {
		subjects = s.catalog.Subjects
	}
	if len(subjects) == 0 {
		return nil, &ValidationError{Field: "subjects", Message: "no subjects to rank"}
	}

	weights, err := s.weights.Apply(custom)
	if err != nil {
		return nil, err
	}
	criteria, err := weights.Criteria()
	if err != nil {
		return nil, err
	}

	matrix := make([][]float64, len(subjects))
	factors := make([][]FactorResult, len(subjects))
	for i, subj := range subjects {
		sc := &SubjectContext{Subject: subj, Student: &student, Catalog: s.catalog}
		factors[i] = subjectFactors(sc)
		row := make([]float64, len(factors[i]))
		for j, f := range factors[i] {
			row[j] = f.Score
		}
		matrix[i] = row
	}

	res, err := saw.Calculate(matrix, criteria)
	if err != nil {
		return nil, fmt.Errorf("calculate: %w", err)
	}

	wl := weights.asList()
	recs := make([]Recommendation, 0, len(subjects))
	for _, i := range res.Ordered() {
		subj := subjects[i]
		for j := range factors[i] {
			factors[i][j].Weight = wl[j]
			factors[i][j].Weighted = res.Weighted[i][j]
		}
		academic := round(matrix[i][0]*100, 1)
		recs = append(recs, Recommendation{
			Subject:         subj.Name,
			Category:        subj.Category,
			Rank:            res.Ranks[i],
			Score:           round(res.Scores[i], 4),
			AcademicScore:   academic,
			RIASECMatch:     round(matrix[i][1]*100, 1),
			AspirationScore: round(matrix[i][2]*100, 1),
			Availability:    round(matrix[i][3]*100, 1),
			Normalized:      criterionValues(res.Normalized[i]),
			Weighted:        criterionValues(res.Weighted[i]),
			MinGrade:        subj.MinGrade,
			MeetsMinimum:    academic >= subj.MinGrade,
			Factors:         factors[i],
		})
	}

	out := &Outcome{
		Recommendations: recs,
		Weights:         weights,
		Summary:         NewSummary(weights, recs),
		CareerMatch:     MatchCareerPackage(s.catalog, student.Aspiration, recs),
	}

	s.logger.Debug("subjects ranked",
		"alternatives", len(recs),
		"top", recs[0].Subject,
		"top_score", recs[0].Score,
	)
	return out, nil
}

// TopSubjects returns the names of the first n recommendations.
func TopSubjects(recs []Recommendation, n int) []string {
	if n > len(recs) {
		n = len(recs)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = recs[i].Subject
	}
	return out
}
