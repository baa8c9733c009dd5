// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/plotpca/matrix"
)

func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()

	d := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	g, err := matrix.ToGonum(hide{d})
	if err != nil {
		t.Fatalf("ToGonum: %v", err)
	}
	r, c := g.Dims()
	if r != 2 || c != 3 || g.At(1, 2) != 6 {
		t.Fatalf("gonum copy mismatch: %v", mat.Formatted(g))
	}

	// The gonum copy is independent.
	g.Set(0, 0, -1)
	if MustAt(t, d, 0, 0) != 1 {
		t.Fatalf("ToGonum aliased storage")
	}

	back, err := matrix.FromGonum(g.T())
	if err != nil {
		t.Fatalf("FromGonum: %v", err)
	}
	CompareExact(t, [][]float64{{-1, 4}, {2, 5}, {3, 6}}, back)
}

func TestToGonum_RejectsZeroArea(t *testing.T) {
	t.Parallel()

	d := NewFilledDense(t, 1, 2, []float64{1, 2})
	empty, _ := d.SelectRows(nil)
	_, err := matrix.ToGonum(empty)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromGonum(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}
