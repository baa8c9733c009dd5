// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics behind PCA standardization: centering,
//     population standard deviation and per-column division.
//   - Keep the per-row work in vecmath block kernels; the flat row-major
//     layout makes every row a contiguous block.
//
// Exposed API (see api.go):
//   - CenterColumns(X)      -> (Xc, means)       // subtract per-column mean
//   - ColumnStds(X)         -> stds              // sqrt(Σ(x-mean)²/r), ddof=0
//   - DivideColumns(X, d)   -> Y                 // Y[i,j] = X[i,j]/d[j]
//
// Numeric policy:
//   - NaN anywhere in a column makes its mean/std NaN.
//   - Dividing a centered constant column by its zero std gives 0/0 = NaN
//     without an error; callers that need finite output remove constant
//     features first.
//   - Zero-size matrices (0×N or N×0) are treated as no-ops.

package matrix

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Operation name constants for unified error wrapping.
const (
	opCenterColumns = "CenterColumns"
	opColumnStds    = "ColumnStds"
	opDivideColumns = "DivideColumns"
)

// columnMeans returns Σ_i X[i,j] / r for each column j of a Dense.
// r must be > 0.
func columnMeans(d *Dense) []float64 {
	means := make([]float64, d.c)
	for i := 0; i < d.r; i++ {
		vecmath.AddBlockInPlace(means, d.RawRowView(i))
	}
	vecmath.ScaleBlock(means, means, 1.0/float64(d.r))

	return means
}

// centerColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: Validate X (non-nil) and handle zero-size as a strict no-op.
//   - Stage 2: Accumulate column sums row by row (block add), divide by r.
//   - Stage 3: Copy X and add the negated means to every row in place.
//
// Returns:
//   - *Dense: centered copy (r×c); for r==0 or c==0 a zero-area copy.
//   - []float64: column means (len=c; zeros when r==0).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	out := src.Clone().(*Dense)
	if out.r == 0 || out.c == 0 {
		return out, make([]float64, out.c), nil
	}

	means := columnMeans(out)
	neg := make([]float64, out.c)
	vecmath.ScaleBlock(neg, means, -1)
	for i := 0; i < out.r; i++ {
		vecmath.AddBlockInPlace(out.RawRowView(i), neg)
	}

	return out, means, nil
}

// columnStds returns the population standard deviation of each column.
//
// Implementation:
//   - Stage 1: center a copy (centerColumns).
//   - Stage 2: square each centered row (block multiply) and accumulate.
//   - Stage 3: divide by r and take square roots.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the centered copy.
func columnStds(X Matrix) ([]float64, error) {
	xc, _, err := centerColumns(X)
	if err != nil {
		return nil, matrixErrorf(opColumnStds, err)
	}
	stds := make([]float64, xc.c)
	if xc.r == 0 {
		return stds, nil
	}
	sq := make([]float64, xc.c)
	for i := 0; i < xc.r; i++ {
		row := xc.RawRowView(i)
		vecmath.MulBlock(sq, row, row)
		vecmath.AddBlockInPlace(stds, sq)
	}
	invR := 1.0 / float64(xc.r)
	for j := range stds {
		stds[j] = math.Sqrt(stds[j] * invR)
	}

	return stds, nil
}

// divideColumns computes out[i,j] = X[i,j] / divisors[j] on a copy.
// Division is done directly, so a tiny divisor does not overflow through
// its reciprocal.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(divisors) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func divideColumns(X Matrix, divisors []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opDivideColumns, err)
	}
	if err := ValidateVecLen(divisors, X.Cols()); err != nil {
		return nil, matrixErrorf(opDivideColumns, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opDivideColumns, err)
	}
	out := src.Clone().(*Dense)
	for i := 0; i < out.r; i++ {
		row := out.RawRowView(i)
		for j, d := range divisors {
			row[j] /= d
		}
	}

	return out, nil
}
