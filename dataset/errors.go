// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrNilDataset is returned when a nil *Dataset is passed.
	ErrNilDataset = errors.New("dataset: nil dataset")

	// ErrShape is returned when label slices disagree with the matrix shape.
	ErrShape = errors.New("dataset: labels do not match matrix shape")

	// ErrNoValueColumns is returned when a table has no numeric value column.
	ErrNoValueColumns = errors.New("dataset: no numeric value columns")

	// ErrNoRows is returned when a table has a header but no data rows.
	ErrNoRows = errors.New("dataset: table has no rows")

	// ErrUnknownColumn is returned when a named column is absent.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrColumnType is returned for a column whose type cannot be used.
	ErrColumnType = errors.New("dataset: unsupported column type")

	// ErrRowMismatch is returned by ConcatColumns for differing row identifiers.
	ErrRowMismatch = errors.New("dataset: row identifiers differ")
)
