// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"

	"github.com/katalvlaran/plotpca/matrix"
)

// Method selects the factorization backend.
type Method int

const (
	// MethodSVD factorizes the standardized matrix with gonum's thin SVD.
	MethodSVD Method = iota
	// MethodEigen diagonalizes ZᵀZ with the Jacobi solver.
	MethodEigen
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodSVD:
		return "svd"
	case MethodEigen:
		return "eigen"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "svd"/"eigen" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "svd", "":
		return MethodSVD, nil
	case "eigen":
		return MethodEigen, nil
	}

	return 0, fmt.Errorf("%w: unknown method %q", ErrOptionViolation, s)
}

// Result holds one projection.
//
//   - Scores:   r×k, row i = sample i in component space.
//   - Singular: k singular values, non-increasing.
//   - Loadings: k×c, row i = unit direction of component i.
//   - Means, Stds: per-column statistics used for standardization.
type Result struct {
	Scores   *matrix.Dense
	Singular []float64
	Loadings *matrix.Dense
	Means    []float64
	Stds     []float64
	Method   Method

	totalSS float64 // ‖Z‖²_F, the total variance mass before truncation
}

// Components returns k, the number of retained components.
func (r *Result) Components() int { return len(r.Singular) }

// ExplainedVariance returns s_i² / ‖Z‖²_F for each retained component.
// Entries are NaN when the projection is degenerate.
func (r *Result) ExplainedVariance() []float64 {
	out := make([]float64, len(r.Singular))
	for i, s := range r.Singular {
		out[i] = s * s / r.totalSS
	}

	return out
}

// Component returns the scores of component i (a column of Scores).
func (r *Result) Component(i int) ([]float64, error) {
	return r.Scores.Col(i)
}
