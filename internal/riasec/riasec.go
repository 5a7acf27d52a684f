// Package riasec scores the Holland vocational-interest questionnaire.
package riasec

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Dimension is one of the six RIASEC interest types.
type Dimension string

const (
	Realistic     Dimension = "realistic"
	Investigative Dimension = "investigative"
	Artistic      Dimension = "artistic"
	Social        Dimension = "social"
	Enterprising  Dimension = "enterprising"
	Conventional  Dimension = "conventional"
)

// Dimensions lists the six types in canonical R-I-A-S-E-C order.
var Dimensions = []Dimension{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}

// Valid reports whether d is one of the six dimensions.
func (d Dimension) Valid() bool {
	for _, known := range Dimensions {
		if d == known {
			return true
		}
	}
	return false
}

// Initial returns the upper-case letter used in Holland codes.
func (d Dimension) Initial() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d)[:1])
}

// FromInitial maps a Holland code letter back to its dimension.
func FromInitial(letter rune) (Dimension, bool) {
	for _, d := range Dimensions {
		if d.Initial() == strings.ToUpper(string(letter)) {
			return d, true
		}
	}
	return "", false
}

// Question is one questionnaire statement answered on a 1..5 scale.
type Question struct {
	ID        int       `yaml:"id" json:"id"`
	Text      string    `yaml:"text" json:"text"`
	Type      Dimension `yaml:"type" json:"type"`
	Dimension string    `yaml:"dimension" json:"dimension"`
}

const (
	MinAnswer = 1
	MaxAnswer = 5
)

var (
	ErrAnswerCount = errors.New("wrong number of answers")
	ErrAnswerRange = errors.New("answer out of range")
)

// ValidationError rejects a questionnaire submission.
type ValidationError struct {
	Kind   error
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("riasec: %s: %s", e.Kind, e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// DimensionScore pairs a dimension with its mean answer.
type DimensionScore struct {
	Type  Dimension `json:"type"`
	Score float64   `json:"score"`
}

// Profile is the outcome of a scored questionnaire.
type Profile struct {
	Scores      map[Dimension]float64 `json:"scores"`
	Sorted      []DimensionScore      `json:"sorted_dimensions"`
	HollandCode string                `json:"holland_code"`
	TopType     Dimension             `json:"top_type"`
}

// Score averages the answers per dimension (rounded half to even, two decimals) and derives
// the Holland code. answers must line up with questions, each within 1..5.
func Score(questions []Question, answers []float64) (Profile, error) {
	if len(answers) != len(questions) {
		return Profile{}, &ValidationError{
			Kind:   ErrAnswerCount,
			Detail: fmt.Sprintf("expected %d answers, got %d", len(questions), len(answers)),
		}
	}
	for i, a := range answers {
		if math.IsNaN(a) || a < MinAnswer || a > MaxAnswer {
			return Profile{}, &ValidationError{
				Kind:   ErrAnswerRange,
				Detail: fmt.Sprintf("answer %d must be between %d and %d", i+1, MinAnswer, MaxAnswer),
			}
		}
	}

	totals := make(map[Dimension][]float64, len(Dimensions))
	for i, a := range answers {
		totals[questions[i].Type] = append(totals[questions[i].Type], a)
	}

	scores := make(map[Dimension]float64, len(Dimensions))
	for _, d := range Dimensions {
		vals := totals[d]
		if len(vals) == 0 {
			scores[d] = 0
			continue
		}
		var sum float64
		for _, v := range vals {
			sum += v
		}
		scores[d] = math.RoundToEven(sum/float64(len(vals))*100) / 100
	}
	return NewProfile(scores), nil
}

// NewProfile derives the sorted dimensions and Holland code from per-dimension
// scores. Missing dimensions count as zero.
func NewProfile(scores map[Dimension]float64) Profile {
	sorted := make([]DimensionScore, len(Dimensions))
	full := make(map[Dimension]float64, len(Dimensions))
	for i, d := range Dimensions {
		sorted[i] = DimensionScore{Type: d, Score: scores[d]}
		full[d] = scores[d]
	}
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Score > sorted[b].Score })

	var code strings.Builder
	for _, ds := range sorted[:3] {
		code.WriteString(ds.Type.Initial())
	}
	return Profile{
		Scores:      full,
		Sorted:      sorted,
		HollandCode: code.String(),
		TopType:     sorted[0].Type,
	}
}
