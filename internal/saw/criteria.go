// Package saw implements Simple Additive Weighting: per-criterion normalization of a
// decision matrix, weighting, additive scoring and ranking of the alternatives.
//
// Everything in this package is a pure function of its arguments. Criteria are
// validated once by NewCriteria and then passed explicitly to each calculation.
package saw

import (
	"fmt"
	"math"
)

// WeightTolerance is the allowed distance between the weight total and 1.0.
const WeightTolerance = 1e-4

// Type tells the normalizer whether larger raw values are better.
type Type string

const (
	Benefit Type = "benefit"
	Cost    Type = "cost"
)

// Valid reports whether t is a known criterion type.
func (t Type) Valid() bool {
	return t == Benefit || t == Cost
}

// Criterion is one column of the decision matrix.
type Criterion struct {
	Name   string  `json:"name"`
	Type   Type    `json:"type"`
	Weight float64 `json:"weight"`
}

// Criteria is a validated, immutable set of criteria. The zero value is not
// configured and is rejected by Calculate.
type Criteria struct {
	items []Criterion
}

// NewCriteria validates weights, types and optional names and returns the
// criteria they describe. names may be nil, in which case C1..Cn are used.
func NewCriteria(weights []float64, types []Type, names []string) (Criteria, error) {
	if len(weights) != len(types) {
		return Criteria{}, configErrorf(ErrCountMismatch, "%d weights, %d types", len(weights), len(types))
	}
	if len(weights) == 0 {
		return Criteria{}, configErrorf(ErrCountMismatch, "no criteria given")
	}
	if names != nil && len(names) != len(weights) {
		return Criteria{}, configErrorf(ErrCountMismatch, "%d weights, %d names", len(weights), len(names))
	}

	var sum float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return Criteria{}, configErrorf(ErrWeightSum, "weight %d is not finite", i+1)
		}
		if w < 0 {
			return Criteria{}, configErrorf(ErrNegativeWeight, "weight %d is %g", i+1, w)
		}
		sum += w
	}
	sum = roundTo(sum, 6)
	if math.Abs(sum-1.0) > WeightTolerance {
		return Criteria{}, &ConfigurationError{
			Kind:   ErrWeightSum,
			Detail: fmt.Sprintf("current total %g", sum),
			Sum:    sum,
		}
	}

	items := make([]Criterion, len(weights))
	seen := make(map[string]bool, len(weights))
	for i := range weights {
		if !types[i].Valid() {
			return Criteria{}, configErrorf(ErrUnknownType, "criterion %d has type %q", i+1, types[i])
		}
		name := fmt.Sprintf("C%d", i+1)
		if names != nil {
			name = names[i]
		}
		if seen[name] {
			return Criteria{}, configErrorf(ErrDuplicateName, "%q", name)
		}
		seen[name] = true
		items[i] = Criterion{Name: name, Type: types[i], Weight: weights[i]}
	}
	return Criteria{items: items}, nil
}

// Configured reports whether c came out of NewCriteria.
func (c Criteria) Configured() bool { return len(c.items) > 0 }

// Len returns the number of criteria.
func (c Criteria) Len() int { return len(c.items) }

// At returns the i-th criterion.
func (c Criteria) At(i int) Criterion { return c.items[i] }

// List returns a copy of the criteria in column order.
func (c Criteria) List() []Criterion {
	out := make([]Criterion, len(c.items))
	copy(out, c.items)
	return out
}

func (c Criteria) Weights() []float64 {
	out := make([]float64, len(c.items))
	for i, it := range c.items {
		out[i] = it.Weight
	}
	return out
}

func (c Criteria) Types() []Type {
	out := make([]Type, len(c.items))
	for i, it := range c.items {
		out[i] = it.Type
	}
	return out
}

func (c Criteria) Names() []string {
	out := make([]string, len(c.items))
	for i, it := range c.items {
		out[i] = it.Name
	}
	return out
}

// Sum returns the total of all weights.
func (c Criteria) Sum() float64 {
	var s float64
	for _, it := range c.items {
		s += it.Weight
	}
	return s
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}
