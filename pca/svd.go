// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/plotpca/matrix"
)

// factorizeSVD runs gonum's thin SVD, Z = U·Σ·Vᵀ, and returns Σ's diagonal
// with the rows of Vᵀ as loadings.
func factorizeSVD(z *matrix.Dense) (*factorization, error) {
	g, err := matrix.ToGonum(z)
	if err != nil {
		return nil, fmt.Errorf("pca: svd: %w", err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDThin); !ok {
		return nil, ErrFactorization
	}
	values := svd.Values(nil)

	var v mat.Dense
	svd.VTo(&v)
	loadings, err := matrix.FromGonum(v.T())
	if err != nil {
		return nil, fmt.Errorf("pca: svd: %w", err)
	}

	return &factorization{values: values, loadings: loadings}, nil
}
