package saw

import "sort"

// Result is the full record of one SAW calculation. All slices are indexed by
// the row order of the input matrix.
type Result struct {
	Criteria   Criteria    `json:"-"`
	Raw        [][]float64 `json:"raw_matrix"`
	Normalized [][]float64 `json:"normalized_matrix"`
	Weighted   [][]float64 `json:"weighted_matrix"`
	Scores     []float64   `json:"final_scores"`
	Ranks      []int       `json:"ranks"`
}

// Calculate normalizes matrix, applies the criteria weights, sums every row
// into a final score and ranks the rows. criteria must come from NewCriteria.
func Calculate(matrix [][]float64, criteria Criteria) (*Result, error) {
	if !criteria.Configured() {
		return nil, &ConfigurationError{Kind: ErrNotConfigured}
	}
	normalized, err := Normalize(matrix, criteria.Types())
	if err != nil {
		return nil, err
	}

	weights := criteria.Weights()
	weighted := make([][]float64, len(normalized))
	scores := make([]float64, len(normalized))
	for i, row := range normalized {
		weighted[i] = make([]float64, len(row))
		for j, v := range row {
			weighted[i][j] = v * weights[j]
			scores[i] += weighted[i][j]
		}
	}

	return &Result{
		Criteria:   criteria,
		Raw:        cloneMatrix(matrix),
		Normalized: normalized,
		Weighted:   weighted,
		Scores:     scores,
		Ranks:      Rank(scores),
	}, nil
}

// Rank assigns 1..len(scores) by descending score. Equal scores keep their
// input order, so no two alternatives share a rank.
func Rank(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranks := make([]int, len(scores))
	for pos, idx := range order {
		ranks[idx] = pos + 1
	}
	return ranks
}

// Ordered returns row indices sorted by rank, best first.
func (r *Result) Ordered() []int {
	order := make([]int, len(r.Ranks))
	for idx, rank := range r.Ranks {
		order[rank-1] = idx
	}
	return order
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
