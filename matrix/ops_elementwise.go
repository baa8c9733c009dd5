// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise kernels (ew*) for sanitization and
//     comparison; public facades live in api.go.
//   - Keep all loops deterministic with Dense fast-paths on the flat buffer.

package matrix

import (
	"fmt"
	"math"
)

const (
	opReplaceInfNaN  = "ReplaceInfNaN"
	opCountNonFinite = "CountNonFinite"
	opAllClose       = "AllClose"
)

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// ewReplaceInfNaN copies X replacing every {±Inf, NaN} by val.
// val must be finite (ErrNaNInf otherwise). Zero-area input yields a
// zero-area copy. Time O(r*c), Space O(r*c).
func ewReplaceInfNaN(X Matrix, val float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opReplaceInfNaN, err)
	}
	if isNonFinite(val) {
		return nil, matrixErrorf(opReplaceInfNaN, ErrNaNInf)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opReplaceInfNaN, err)
	}
	out := src.Clone().(*Dense)
	for idx, v := range out.data {
		if isNonFinite(v) {
			out.data[idx] = val
		}
	}

	return out, nil
}

// ewCountNonFinite counts NaN and ±Inf entries. Time O(r*c), Space O(1).
func ewCountNonFinite(X Matrix) (int, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf(opCountNonFinite, err)
	}
	n := 0
	if d, ok := X.(*Dense); ok {
		for _, v := range d.data {
			if isNonFinite(v) {
				n++
			}
		}

		return n, nil
	}
	r, c := X.Rows(), X.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opCountNonFinite, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if isNonFinite(v) {
				n++
			}
		}
	}

	return n, nil
}

// closeTo applies the AllClose relation to a single pair.
// NaN matches only NaN; +Inf matches +Inf and -Inf matches -Inf.
func closeTo(a, b, rtol, atol float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeTo(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeTo(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
