// SPDX-License-Identifier: MIT

package variance

import (
	"fmt"

	"github.com/katalvlaran/plotpca/matrix"
)

// NonConstantRows returns a Mask with mask[i] == true iff row i of m holds
// at least one value v with v != m[i,0]. See the package doc for the exact
// equality semantics (no tolerance, NaN never equal).
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
func NonConstantRows(m matrix.Matrix) (Mask, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("NonConstantRows: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	mask := make(Mask, r)
	if d, ok := m.(*matrix.Dense); ok {
		for i := 0; i < r; i++ {
			mask[i] = rowVaries(d.RawRowView(i))
		}

		return mask, nil
	}

	row := make([]float64, c)
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if row[j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("NonConstantRows: %w", err)
			}
		}
		mask[i] = rowVaries(row)
	}

	return mask, nil
}

// rowVaries reports whether any value differs from the first one.
func rowVaries(row []float64) bool {
	for _, v := range row[min(1, len(row)):] {
		if v != row[0] {
			return true
		}
	}

	return false
}

// Apply returns a copy of m holding only the rows flagged in mask, in order.
// If every row is dropped the result is a legal 0×c Dense.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrMaskLength.
func Apply(m matrix.Matrix, mask Mask) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}
	if len(mask) != m.Rows() {
		return nil, fmt.Errorf("Apply: mask=%d rows=%d: %w", len(mask), m.Rows(), ErrMaskLength)
	}
	d, ok := m.(*matrix.Dense)
	if !ok {
		var err error
		if d, err = toDense(m); err != nil {
			return nil, fmt.Errorf("Apply: %w", err)
		}
	}

	return d.SelectRows(mask.Indices())
}

// RemoveConstantRows drops every constant row of m and returns the filtered
// copy together with the mask that produced it. Applying it again to its own
// output removes nothing.
func RemoveConstantRows(m matrix.Matrix) (*matrix.Dense, Mask, error) {
	mask, err := NonConstantRows(m)
	if err != nil {
		return nil, nil, err
	}
	out, err := Apply(m, mask)
	if err != nil {
		return nil, nil, err
	}

	return out, mask, nil
}

// toDense copies a non-Dense Matrix (at least 1×1) into a *matrix.Dense.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	r, c := m.Rows(), m.Cols()
	flat := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			flat = append(flat, v)
		}
	}

	return matrix.NewDenseFrom(r, c, flat, matrix.WithNoCopy())
}
