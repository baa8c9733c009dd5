// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"

	"github.com/katalvlaran/plotpca/matrix"
)

// factorizeEigen diagonalizes the smaller of the two Gram matrices of Z.
// Eigenvalues of either are the squared singular values of Z. With r ≥ c it
// uses G = ZᵀZ (c×c), whose eigenvectors are the right singular vectors.
// With r < c it uses K = ZZᵀ (r×r) and recovers each right singular vector
// as v = Zᵀu/σ, so the cost follows the number of observations when features
// outnumber them. Only the `keep` largest pairs are returned.
func factorizeEigen(z *matrix.Dense, keep int, tol float64, maxIter int) (*factorization, error) {
	var (
		f   *factorization
		err error
	)
	if z.Rows() < z.Cols() {
		f, err = eigenByObservations(z, tol, maxIter)
	} else {
		f, err = eigenByVariables(z, tol, maxIter)
	}
	if err != nil {
		return nil, fmt.Errorf("pca: eigen: %w", err)
	}
	if keep >= len(f.values) {
		return f, nil
	}

	s, l, err := order(f, keep)
	if err != nil {
		return nil, fmt.Errorf("pca: eigen: %w", err)
	}

	return &factorization{values: s, loadings: l}, nil
}

func eigenByVariables(z *matrix.Dense, tol float64, maxIter int) (*factorization, error) {
	vals, q, _, err := symmetricEigen(z, tol, maxIter)
	if err != nil {
		return nil, err
	}
	// Eigenvectors are Q's columns; loadings want them as rows.
	qt, err := matrix.Transpose(q)
	if err != nil {
		return nil, err
	}

	return &factorization{values: singularValues(vals), loadings: qt.(*matrix.Dense)}, nil
}

func eigenByObservations(z *matrix.Dense, tol float64, maxIter int) (*factorization, error) {
	zt, err := matrix.Transpose(z)
	if err != nil {
		return nil, err
	}
	vals, q, absTol, err := symmetricEigen(zt, tol, maxIter)
	if err != nil {
		return nil, err
	}
	// Row i of UᵀZ is σ_i·v_iᵀ.
	ut, err := matrix.Transpose(q)
	if err != nil {
		return nil, err
	}
	prod, err := matrix.Mul(ut, z)
	if err != nil {
		return nil, err
	}
	loadings := prod.(*matrix.Dense)

	values := singularValues(vals)
	floor := math.Sqrt(absTol)
	for i, sv := range values {
		row := loadings.RawRowView(i)
		if sv <= floor {
			// Null direction: no defined loading, score is zero either way.
			values[i] = 0
			clear(row)
			continue
		}
		for j := range row {
			row[j] /= sv
		}
	}

	return &factorization{values: values, loadings: loadings}, nil
}

// symmetricEigen diagonalizes the Gram matrix of x (xᵀx) and returns the
// absolute off-diagonal tolerance it used.
func symmetricEigen(x matrix.Matrix, tol float64, maxIter int) ([]float64, *matrix.Dense, float64, error) {
	g, err := matrix.Gram(x)
	if err != nil {
		return nil, nil, 0, err
	}
	// Relative threshold: off-diagonal mass is measured against G's scale.
	absTol := tol * math.Max(1, frobenius(g))
	vals, q, err := matrix.Eigen(g, absTol, maxIter)
	if err != nil {
		return nil, nil, 0, err
	}

	return vals, q, absTol, nil
}

func singularValues(eig []float64) []float64 {
	out := make([]float64, len(eig))
	for i, l := range eig {
		out[i] = math.Sqrt(math.Max(l, 0))
	}

	return out
}

func frobenius(m *matrix.Dense) float64 {
	return math.Sqrt(sumSquares(m))
}
