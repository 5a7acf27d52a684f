package hermes

import "time"

// RecommendationComputedEvent is emitted after a subject recommendation.
type RecommendationComputedEvent struct {
	RecommendationID string             `json:"recommendation_id"`
	StudentName      string             `json:"student_name"`
	StudentClass     string             `json:"student_class,omitempty"`
	Aspiration       string             `json:"aspiration,omitempty"`
	TopSubjects      []string           `json:"top_subjects"`
	TopScore         float64            `json:"top_score"`
	CareerPackage    string             `json:"career_package,omitempty"`
	Weights          map[string]float64 `json:"weights"`
	GeneratedAt      time.Time          `json:"generated_at"`
}

// AssessmentComputedEvent is emitted after a RIASEC questionnaire is scored.
type AssessmentComputedEvent struct {
	AssessmentID string             `json:"assessment_id"`
	HollandCode  string             `json:"holland_code"`
	TopType      string             `json:"top_type"`
	Scores       map[string]float64 `json:"scores"`
	GeneratedAt  time.Time          `json:"generated_at"`
}
