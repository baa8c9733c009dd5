// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, documented entry points; each facade delegates to the
//     canonical implementation without duplicating logic.
//   - Keep names explicit and intention-revealing.

package matrix

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} are replaced by 'val' (finite).
// Time: O(r*c). Space: O(r*c). Deterministic.
//
// Policy: 'val' must be finite; otherwise ErrNaNInf is returned.
// Log2 fold-change tables are sanitized with val=0 before filtering.
func ReplaceInfNaN(m Matrix, val float64) (*Dense, error) { return ewReplaceInfNaN(m, val) }

// CountNonFinite returns the number of NaN/±Inf entries in m.
func CountNonFinite(m Matrix) (int, error) { return ewCountNonFinite(m) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN matches only NaN; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// ---------- Statistics (public surface → internal implementations) ----------

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the means.
// Time: O(r*c). Space: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// ColumnStds returns per-column population standard deviations (divisor r).
func ColumnStds(X Matrix) ([]float64, error) { return columnStds(X) }

// DivideColumns returns Y with Y[i,j] = X[i,j]/divisors[j]. A zero divisor
// yields ±Inf, or NaN for a zero numerator; no error is raised for it.
func DivideColumns(X Matrix, divisors []float64) (*Dense, error) {
	return divideColumns(X, divisors)
}
