// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives used by the
// PCA pipeline: a row-major Dense matrix, multiplication and transposition
// kernels, column statistics for standardization, non-finite sanitization,
// a Jacobi eigen solver for symmetric matrices and a bridge to gonum.
//
// What
//
//   - Dense: cache-friendly row-major float64 storage with bounds-checked
//     At/Set that return errors instead of panicking.
//   - Kernels: Mul, Transpose, SelectRows (copy-based row subsetting).
//   - Statistics: CenterColumns, ColumnStds (population, ddof=0),
//     DivideColumns; pca composes them into z-scoring.
//   - Sanitization: ReplaceInfNaN, CountNonFinite, AllClose.
//   - Spectral: Eigen (cyclic-pivot Jacobi) for symmetric input.
//   - Interop: ToGonum / FromGonum for factorizations gonum already provides.
//
// Numeric policy
//
//	Intensity tables legitimately carry NaN (missing quantification) and
//	log2 fold-change tables carry ±Inf (division by zero upstream), so a
//	Dense accepts non-finite values unless it was built WithStrictFinite().
//	Arithmetic follows IEEE-754: a zero standard deviation turns a column
//	into ±Inf/NaN instead of returning an error.
//
// Determinism
//
//	Every kernel walks its operands in a fixed i→j order. There is no
//	randomness and no map iteration anywhere in the package.
//
// Zero-area matrices
//
//	NewDense rejects rows<=0 or cols<=0. Kernels may still produce 0×N or
//	N×0 results (for example when a filter drops every row); those flow
//	through Transpose, SelectRows and the statistics as no-ops.
package matrix
