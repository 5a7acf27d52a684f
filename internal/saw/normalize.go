package saw

import "math"

// Normalize rescales every column of matrix independently according to its type:
//
//	benefit: r = x / max(column), or 0 for the whole column when max == 0
//	cost:    r = min(column) / x, or 0 for any cell where x == 0
//
// The zero cases never produce NaN or Inf. matrix is not modified.
func Normalize(matrix [][]float64, types []Type) ([][]float64, error) {
	rows, cols, err := shape(matrix)
	if err != nil {
		return nil, err
	}
	if len(types) != cols {
		return nil, configErrorf(ErrCountMismatch, "%d columns, %d types", cols, len(types))
	}
	for j, t := range types {
		if !t.Valid() {
			return nil, configErrorf(ErrUnknownType, "column %d has type %q", j+1, t)
		}
	}

	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	for j, t := range types {
		switch t {
		case Benefit:
			normalizeBenefit(matrix, out, j)
		case Cost:
			normalizeCost(matrix, out, j)
		}
	}
	return out, nil
}

func normalizeBenefit(in, out [][]float64, j int) {
	maxVal := in[0][j]
	for _, row := range in[1:] {
		maxVal = math.Max(maxVal, row[j])
	}
	if maxVal == 0 {
		// out is freshly allocated, the column is already zero.
		return
	}
	for i, row := range in {
		out[i][j] = row[j] / maxVal
	}
}

func normalizeCost(in, out [][]float64, j int) {
	minVal := in[0][j]
	for _, row := range in[1:] {
		minVal = math.Min(minVal, row[j])
	}
	for i, row := range in {
		if row[j] == 0 {
			out[i][j] = 0
			continue
		}
		out[i][j] = minVal / row[j]
	}
}

// shape validates matrix and returns its dimensions.
func shape(matrix [][]float64) (rows, cols int, err error) {
	if len(matrix) == 0 {
		return 0, 0, validationErrorf(ErrEmptyMatrix, "no alternatives")
	}
	cols = len(matrix[0])
	if cols == 0 {
		return 0, 0, validationErrorf(ErrEmptyMatrix, "no criteria columns")
	}
	for i, row := range matrix {
		if len(row) != cols {
			return 0, 0, validationErrorf(ErrRaggedMatrix, "row %d has %d values, want %d", i+1, len(row), cols)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, validationErrorf(ErrNonFinite, "row %d column %d", i+1, j+1)
			}
		}
	}
	return len(matrix), cols, nil
}
