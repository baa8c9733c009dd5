// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/plotpca/matrix"
)

// factorization is what a backend hands back: all min(r,c) singular values
// in backend order and the matching unit loading rows (len(values)×c).
type factorization struct {
	values   []float64
	loadings *matrix.Dense
}

// Project standardizes x column-wise and projects it onto its principal
// components.
//
// Stages:
//  1. Validate options and shape (ErrOptionViolation, ErrEmptyInput).
//  2. Standardize: Z = (x - mean) / std (population std). WithoutScaling
//     skips the division.
//  3. Non-finite Z (zero-variance column or NaN input): warn, return an
//     all-NaN Result of the usual shapes.
//  4. Factorize Z with the configured backend.
//  5. Order components by descending singular value, orient signs, truncate.
//  6. Scores = Z · Loadingsᵀ.
//
// Complexity: O(r·c·min(r,c)) for MethodSVD, O(r·c² + iter·c²) for MethodEigen.
func Project(x matrix.Matrix, opts ...Option) (*Result, error) {
	// 1) Options and shape.
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("pca: %w", err)
	}
	r, c := x.Rows(), x.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyInput, r, c)
	}
	full := min(r, c)
	k := full
	if o.components > 0 && o.components < k {
		k = o.components
	}

	// 2) Standardize.
	z, means, stds, err := standardize(x, o.scale)
	if err != nil {
		return nil, fmt.Errorf("pca: standardize: %w", err)
	}
	if o.scale {
		if n := countZero(stds); n > 0 {
			o.logger.Warn("zero standard deviation, standardized columns are NaN",
				"columns", n, "rows", r, "cols", c)
		}
	}

	// 3) Degenerate input short-circuits to NaN output.
	bad, err := matrix.CountNonFinite(z)
	if err != nil {
		return nil, fmt.Errorf("pca: %w", err)
	}
	if bad > 0 {
		o.logger.Warn("non-finite values after standardization, projection is NaN",
			"cells", bad, "rows", r, "cols", c, "method", o.method.String())

		return nanResult(r, c, k, means, stds, o.method)
	}

	// 4) Factorize.
	var f *factorization
	switch o.method {
	case MethodEigen:
		f, err = factorizeEigen(z, full, o.tol, o.maxIter)
	default:
		f, err = factorizeSVD(z)
	}
	if err != nil {
		return nil, err
	}

	// 5) Order, orient, truncate.
	singular, loadings, err := order(f, k)
	if err != nil {
		return nil, fmt.Errorf("pca: order components: %w", err)
	}
	orientSigns(loadings)

	// 6) Scores = Z · Lᵀ.
	lt, err := matrix.Transpose(loadings)
	if err != nil {
		return nil, fmt.Errorf("pca: %w", err)
	}
	prod, err := matrix.Mul(z, lt)
	if err != nil {
		return nil, fmt.Errorf("pca: scores: %w", err)
	}

	return &Result{
		Scores:   prod.(*matrix.Dense),
		Singular: singular,
		Loadings: loadings,
		Means:    means,
		Stds:     stds,
		Method:   o.method,
		totalSS:  sumSquares(z),
	}, nil
}

func standardize(x matrix.Matrix, scale bool) (*matrix.Dense, []float64, []float64, error) {
	z, means, err := matrix.CenterColumns(x)
	if err != nil {
		return nil, nil, nil, err
	}
	if !scale {
		stds := make([]float64, len(means))
		for j := range stds {
			stds[j] = 1
		}

		return z, means, stds, nil
	}
	stds, err := matrix.ColumnStds(z)
	if err != nil {
		return nil, nil, nil, err
	}
	if z, err = matrix.DivideColumns(z, stds); err != nil {
		return nil, nil, nil, err
	}

	return z, means, stds, nil
}

// order sorts components by descending singular value (stable), keeps the
// first k and gathers the matching loading rows.
func order(f *factorization, k int) ([]float64, *matrix.Dense, error) {
	idx := make([]int, len(f.values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return f.values[idx[a]] > f.values[idx[b]]
	})
	idx = idx[:k]

	singular := make([]float64, k)
	for i, p := range idx {
		singular[i] = f.values[p]
	}
	loadings, err := f.loadings.SelectRows(idx)
	if err != nil {
		return nil, nil, err
	}

	return singular, loadings, nil
}

// orientSigns flips each loading row so that its largest-magnitude entry is
// positive. The first such entry wins on ties.
func orientSigns(l *matrix.Dense) {
	for i := 0; i < l.Rows(); i++ {
		row := l.RawRowView(i)
		best := 0
		for j := 1; j < len(row); j++ {
			if math.Abs(row[j]) > math.Abs(row[best]) {
				best = j
			}
		}
		if row[best] < 0 {
			for j := range row {
				row[j] = -row[j]
			}
		}
	}
}

func nanResult(r, c, k int, means, stds []float64, m Method) (*Result, error) {
	scores, err := nanDense(r, k)
	if err != nil {
		return nil, fmt.Errorf("pca: %w", err)
	}
	loadings, err := nanDense(k, c)
	if err != nil {
		return nil, fmt.Errorf("pca: %w", err)
	}
	singular := make([]float64, k)
	for i := range singular {
		singular[i] = math.NaN()
	}

	return &Result{
		Scores:   scores,
		Singular: singular,
		Loadings: loadings,
		Means:    means,
		Stds:     stds,
		Method:   m,
		totalSS:  math.NaN(),
	}, nil
}

func nanDense(r, c int) (*matrix.Dense, error) {
	buf := make([]float64, r*c)
	for i := range buf {
		buf[i] = math.NaN()
	}

	return matrix.NewDenseFrom(r, c, buf, matrix.WithNoCopy())
}

func countZero(v []float64) int {
	n := 0
	for _, x := range v {
		if x == 0 {
			n++
		}
	}

	return n
}

func sumSquares(z *matrix.Dense) float64 {
	var s float64
	for i := 0; i < z.Rows(); i++ {
		for _, v := range z.RawRowView(i) {
			s += v * v
		}
	}

	return s
}
