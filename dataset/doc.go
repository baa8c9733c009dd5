// SPDX-License-Identifier: MIT

// Package dataset models the intensity and fold-change tables fed to the
// PCA pipeline and loads them from delimited text.
//
// A Dataset is feature-major: rows are features (proteins, peptides), columns
// are samples, Columns names the samples and RowIDs names the features.
// ReadTable parses TSV/CSV input with qframe, picks the numeric value
// columns (optionally by name prefix) and widens integer columns to float64.
// Missing numeric cells arrive as NaN.
//
// Sample labels for plots come from TrimLabel, which strips a literal prefix
// such as "Intensity " from column names.
package dataset
