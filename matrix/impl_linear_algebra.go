// SPDX-License-Identifier: MIT
// Package matrix: canonical linear-algebra kernels (Mul, Transpose, Eigen).
//
// Purpose:
//   - Provide the small set of kernels the PCA pipeline composes.
//   - Define operation tags for determinism and uniform error reporting.
//
// Notes:
//   - Kernels use central validators and wrap failures via matrixErrorf.
//   - IEEE-754 semantics are preserved: NaN/Inf in operands propagate into
//     results, there is no zero-skipping shortcut in the products.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opEigen     = "Eigen"
	opGram      = "Gram"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication (a × b).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate result r×p.
//   - Stage 2: Dense×Dense fast-path in i→k→j order on flat buffers;
//     otherwise a generic i→j→k loop through At.
//
// Behavior highlights:
//   - Zero-area operands are legal: an r×0 times 0×p product is an r×p zero matrix.
//   - NaN/Inf propagate (0*Inf is NaN).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*n*p), Space O(r*p).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated; zero-area input gives zero-area output.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Gram returns XᵀX (c×c) without materializing Xᵀ.
// Entry (p,q) sums x[k,p]*x[k,q] over k in the same order as entry (q,p),
// so the result is bitwise symmetric and passes ValidateSymmetric(·, 0).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Gram(x Matrix) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	d, err := asDense(x)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	r, c := d.r, d.c
	out, err := newDenseZeroOK(c, c)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	var p, q, k int
	var acc float64
	for p = 0; p < c; p++ {
		for q = p; q < c; q++ {
			acc = ZeroSum
			for k = 0; k < r; k++ {
				acc += d.data[k*c+p] * d.data[k*c+q]
			}
			out.data[p*c+q] = acc
			out.data[q*c+p] = acc
		}
	}

	return out, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and
//     apply a Jacobi rotation, accumulating the rotations into Q.
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: convergence threshold on the largest off-diagonal magnitude.
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix), unsorted.
//   - *Dense: Q whose columns are the matching unit eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry,
//     ErrMatrixEigenFailed (max off-diagonal ≥ tol after maxIter, or non-finite input).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter * n²), Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	a := src.Clone().(*Dense)
	q, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter, i, j, p, r int
		maxOff, off      float64
		app, aqq, apq    float64
		arp, arq         float64
		theta, t, c, s   float64
		converged        bool
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: pivot search.
		maxOff = ZeroSum
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[i*n+j])
				if math.IsNaN(off) {
					return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
				}
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		// J.2: convergence.
		if maxOff < tol || maxOff == 0 {
			converged = true
			break
		}
		// J.3: rotation parameters.
		app = a.data[p*n+p]
		aqq = a.data[r*n+r]
		apq = a.data[p*n+r]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate rows/cols p and r.
		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			arp = a.data[i*n+p]
			arq = a.data[i*n+r]
			a.data[i*n+p] = c*arp - s*arq
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = s*arp + c*arq
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[r*n+r] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		// J.5: accumulate into Q.
		for i = 0; i < n; i++ {
			arp = q.data[i*n+p]
			arq = q.data[i*n+r]
			q.data[i*n+p] = c*arp - s*arq
			q.data[i*n+r] = s*arp + c*arq
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
