package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MikeSquared-Agency/Peminatan/internal/saw"
)

// Criterion keys, in matrix column order. They double as the keys accepted in
// custom weight overrides.
const (
	KeyAcademic     = "academic"
	KeyRIASEC       = "riasec"
	KeyAspiration   = "aspiration"
	KeyAvailability = "availability"
)

var criterionKeys = []string{KeyAcademic, KeyRIASEC, KeyAspiration, KeyAvailability}

// Column names passed to the SAW engine.
var criterionNames = []string{"Nilai Akademik", "Kecocokan RIASEC", "Relevansi Cita-cita", "Ketersediaan"}

// WeightSet defines the relative importance of the four recommendation criteria.
// All weights must sum to 1.0 (±saw.WeightTolerance).
type WeightSet struct {
	Academic     float64 `json:"academic" yaml:"academic"`
	RIASEC       float64 `json:"riasec" yaml:"riasec"`
	Aspiration   float64 `json:"aspiration" yaml:"aspiration"`
	Availability float64 `json:"availability" yaml:"availability"`
}

// DefaultWeights returns the standard 40/30/20/10 distribution.
func DefaultWeights() WeightSet {
	return WeightSet{
		Academic:     0.40,
		RIASEC:       0.30,
		Aspiration:   0.20,
		Availability: 0.10,
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.Academic + w.RIASEC + w.Aspiration + w.Availability
}

// Validate checks that the weights form a usable criteria set.
func (w WeightSet) Validate() error {
	_, err := w.Criteria()
	return err
}

// Criteria converts the weights into validated SAW criteria. Every criterion is
// a benefit criterion.
func (w WeightSet) Criteria() (saw.Criteria, error) {
	return saw.NewCriteria(
		w.asList(),
		[]saw.Type{saw.Benefit, saw.Benefit, saw.Benefit, saw.Benefit},
		criterionNames,
	)
}

// CustomWeights overrides individual weights by criterion key.
type CustomWeights map[string]float64

// Apply returns w with the overrides in cw applied. Keys that are not
// overridden keep their value from w.
func (w WeightSet) Apply(cw CustomWeights) (WeightSet, error) {
	var unknown []string
	for k, v := range cw {
		switch k {
		case KeyAcademic:
			w.Academic = v
		case KeyRIASEC:
			w.RIASEC = v
		case KeyAspiration:
			w.Aspiration = v
		case KeyAvailability:
			w.Availability = v
		default:
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return w, &ValidationError{
			Field:   "custom_weights",
			Message: fmt.Sprintf("unknown criteria %s (want %s)", strings.Join(unknown, ", "), strings.Join(criterionKeys, ", ")),
		}
	}
	return w, nil
}

func (w WeightSet) asList() []float64 {
	return []float64{w.Academic, w.RIASEC, w.Aspiration, w.Availability}
}
