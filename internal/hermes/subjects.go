package hermes

const (
	SubjectAll             = "peminatan.>"
	SubjectRecommendations = "peminatan.recommendation.*.computed"
	SubjectAssessments     = "peminatan.riasec.*.computed"

	StreamName   = "PEMINATAN_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectRecommendationComputed(id string) string {
	return "peminatan.recommendation." + id + ".computed"
}

func SubjectAssessmentComputed(id string) string { return "peminatan.riasec." + id + ".computed" }
