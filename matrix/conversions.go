// SPDX-License-Identifier: MIT
// Package matrix: conversions to and from gonum's mat.Dense.
//
// gonum provides LAPACK-grade factorizations (SVD); the bridge keeps the
// rest of the pipeline on this package's Dense.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense. gonum rejects zero-area matrices,
// so m must have at least one row and one column (ErrInvalidDimensions).
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// Zero-area gonum values (empty mat.Dense) map to ErrInvalidDimensions.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	if e, ok := g.(*mat.Dense); ok && e.IsEmpty() {
		return nil, matrixErrorf(opFromGonum, ErrInvalidDimensions)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("dims %dx%d: %w", r, c, err))
	}
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		for j := 0; j < c; j++ {
			row[j] = g.At(i, j)
		}
	}

	return out, nil
}
