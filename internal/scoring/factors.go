package scoring

import (
	"math"
	"strings"

	"github.com/MikeSquared-Agency/Peminatan/internal/catalog"
	"github.com/MikeSquared-Agency/Peminatan/internal/riasec"
)

// Fallback feature values.
const (
	unmappedInterest    = 0.3
	emptyAspiration     = 0.5
	unmatchedAspiration = 0.3
	aspirationStep      = 0.15
	aspirationFloor     = 0.4
	defaultAvailability = 0.80
	riasecScaleMax      = 5.0
	gradeScaleMax       = 100.0
)

// FactorResult captures one criterion's contribution to a subject's score.
type FactorResult struct {
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Weight    float64 `json:"weight"`
	Weighted  float64 `json:"weighted"`
	Available bool    `json:"available"`
	Reason    string  `json:"reason"`
}

// Student is the profile a recommendation is computed for.
type Student struct {
	Name       string                       `json:"student_name"`
	Class      string                       `json:"student_class"`
	Grades     map[string]float64           `json:"grades"`
	RIASEC     map[riasec.Dimension]float64 `json:"riasec_scores"`
	Aspiration string                       `json:"aspiration"`
}

// SubjectContext bundles the inputs needed to score one student–subject pair.
type SubjectContext struct {
	Subject catalog.Subject
	Student *Student
	Catalog *catalog.Catalog
}

// AcademicFactor scales the report grade into 0..1. A missing grade scores 0.
// Grades outside 0..100 are passed through as is.
func AcademicFactor(sc *SubjectContext) FactorResult {
	grade, ok := sc.Student.Grades[sc.Subject.Name]
	if !ok {
		return FactorResult{Name: KeyAcademic, Score: 0, Available: false, Reason: "no grade"}
	}
	return FactorResult{Name: KeyAcademic, Score: grade / gradeScaleMax, Available: true, Reason: "from report card"}
}

// InterestFactor averages the student's scores on the dimensions the subject
// suits, each scaled from 1..5 into 0..1 and capped at 1.
func InterestFactor(sc *SubjectContext) FactorResult {
	dims := sc.Catalog.SubjectRIASEC[sc.Subject.Name]
	if len(dims) == 0 {
		return FactorResult{Name: KeyRIASEC, Score: unmappedInterest, Available: false, Reason: "subject not mapped"}
	}
	var sum float64
	for _, d := range dims {
		sum += sc.Student.RIASEC[d] / riasecScaleMax
	}
	return FactorResult{Name: KeyRIASEC, Score: math.Min(sum/float64(len(dims)), 1.0), Available: true, Reason: "mapped dimensions"}
}

// AspirationFactor rewards subjects listed under a keyword found in the
// student's aspiration. Earlier positions in a keyword's list score higher,
// never below 0.4. The best match across all keywords wins.
func AspirationFactor(sc *SubjectContext) FactorResult {
	if sc.Student.Aspiration == "" {
		return FactorResult{Name: KeyAspiration, Score: emptyAspiration, Available: false, Reason: "no aspiration"}
	}
	aspiration := strings.ToLower(sc.Student.Aspiration)

	best := -1.0
	reason := ""
	for _, rule := range sc.Catalog.Aspirations {
		if !strings.Contains(aspiration, rule.Keyword) {
			continue
		}
		for idx, name := range rule.Subjects {
			if name != sc.Subject.Name {
				continue
			}
			score := math.Max(1.0-aspirationStep*float64(idx), aspirationFloor)
			if score > best {
				best = score
				reason = "keyword: " + rule.Keyword
			}
			break
		}
	}
	if best < 0 {
		return FactorResult{Name: KeyAspiration, Score: unmatchedAspiration, Available: true, Reason: "no keyword match"}
	}
	return FactorResult{Name: KeyAspiration, Score: best, Available: true, Reason: reason}
}

// AvailabilityFactor looks up how commonly a school offers the subject's category.
func AvailabilityFactor(sc *SubjectContext) FactorResult {
	v, ok := sc.Catalog.Availability[sc.Subject.Category]
	if !ok {
		return FactorResult{Name: KeyAvailability, Score: defaultAvailability, Available: false, Reason: "category not mapped"}
	}
	return FactorResult{Name: KeyAvailability, Score: v, Available: true, Reason: "category " + sc.Subject.Category}
}

// subjectFactors computes the four criteria in matrix column order.
func subjectFactors(sc *SubjectContext) []FactorResult {
	return []FactorResult{
		AcademicFactor(sc),
		InterestFactor(sc),
		AspirationFactor(sc),
		AvailabilityFactor(sc),
	}
}

// round rounds half to even.
func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}
