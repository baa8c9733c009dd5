// SPDX-License-Identifier: MIT

// Package pca projects a sample×feature matrix onto its principal components.
//
// What
//
//   - Project standardizes every column (subtract mean, divide by the
//     population standard deviation), factorizes the standardized matrix,
//     orders components by descending singular value and returns
//     Scores = Z · Loadingsᵀ together with the singular values and loadings.
//   - Two interchangeable backends:
//     MethodSVD  : thin SVD from gonum (default);
//     MethodEigen: Jacobi eigen-decomposition of ZᵀZ from package matrix,
//     singular values s_i = √max(λ_i, 0).
//
// Orientation
//
//	Rows are observations (samples) and columns are variables (features).
//	Standardization is per column. Callers holding feature×sample tables
//	transpose first.
//
// Ordering and signs
//
//	Components are sorted by singular value, largest first (stable for ties).
//	Each loading row is oriented so that its largest-magnitude entry is
//	positive, which makes plots reproducible across backends and runs.
//
// Degenerate input
//
//	A zero-variance column standardizes to NaN. Project does not fail on it:
//	it logs a warning and returns a Result whose every entry is NaN, with the
//	same shapes a healthy input would produce. Remove constant features
//	(package variance) to avoid this.
package pca
